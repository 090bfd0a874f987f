package precedence

import "sort"

// InfixEntry is one infix arm: all Names share the (Left, Right) pair.
type InfixEntry struct {
	Left  uint16
	Right uint16
	Names []string
	Line  int
}

// RightAssoc reports whether the operator groups to the right.
// It holds iff the left binding power strictly exceeds the right one.
func (e InfixEntry) RightAssoc() bool {
	return e.Left > e.Right
}

// PrefixEntry is one prefix arm: all Names share Power.
type PrefixEntry struct {
	Power uint16
	Names []string
	Line  int
}

// Table holds entries in scan order.
type Table struct {
	Infix  []InfixEntry
	Prefix []PrefixEntry
}

// SortedInfix returns a copy of the infix entries ordered by ascending left
// binding power. Entries with equal left power keep their scan order.
func (t Table) SortedInfix() []InfixEntry {
	out := make([]InfixEntry, len(t.Infix))
	copy(out, t.Infix)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Left < out[j].Left
	})
	return out
}

// Empty reports whether no entries were recovered.
func (t Table) Empty() bool {
	return len(t.Infix) == 0 && len(t.Prefix) == 0
}
