package taxonomy

// Variant is one case of the TokenKind enumeration.
type Variant struct {
	Name    string
	Section Section // SectionNone when declared before any header
	Literal string  // exact spelling, empty unless HasLiteral
	// HasLiteral is set for variants declared with a token("...") annotation.
	HasLiteral bool
	Line       int
}

// Stats is the taxonomy recovered from one scan.
type Stats struct {
	Total     int
	BySection map[Section]int
	// Keywords holds keyword spellings, deduplicated and sorted ascending.
	Keywords []string
	// Literals maps variant names to their exact spelling.
	Literals map[string]string
	Variants []Variant
}

func newStats() Stats {
	by := make(map[Section]int, len(Sections))
	for _, s := range Sections {
		by[s] = 0
	}
	return Stats{
		BySection: by,
		Literals:  make(map[string]string),
	}
}

// Count returns the number of variants attributed to sec.
func (s Stats) Count(sec Section) int {
	return s.BySection[sec]
}

// Attributed returns the number of variants that landed in some section.
// It never exceeds Total.
func (s Stats) Attributed() int {
	n := 0
	for _, sec := range Sections {
		n += s.BySection[sec]
	}
	return n
}

// Literal returns the exact spelling recorded for a variant.
func (s Stats) Literal(name string) (string, bool) {
	lit, ok := s.Literals[name]
	return lit, ok
}
