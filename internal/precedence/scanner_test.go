package precedence

import (
	"reflect"
	"testing"

	"docsync/internal/diag"
)

const tableSource = `impl TokenKind {
    pub fn is_trivia(self) -> bool {
        matches!(self, Self::Whitespace | Self::Comment)
    }

    /// Returns (left, right) binding power.
    pub fn infix_binding_power(self) -> Option<(u8, u8)> {
        match self {
            Self::Star | Self::Slash => Some((20, 21)),
            Self::Plus | Self::Minus => Some((10, 11)),
            Self::Assign => Some((5, 4)),
            Self::Lt | Self::Gt => Some((10, 10)),
            _ => None,
        }
    }

    pub fn prefix_binding_power(self) -> Option<u8> {
        match self {
            Self::Minus | Self::KwNot => 30,
            Self::Plus => 30,
            _ => None,
        }
    }
}
`

func TestScanTable(t *testing.T) {
	bag := diag.NewBag(0)
	tbl := Scan(tableSource, &diag.BagReporter{Bag: bag})

	wantInfix := []InfixEntry{
		{Left: 20, Right: 21, Names: []string{"Star", "Slash"}, Line: 9},
		{Left: 10, Right: 11, Names: []string{"Plus", "Minus"}, Line: 10},
		{Left: 5, Right: 4, Names: []string{"Assign"}, Line: 11},
		{Left: 10, Right: 10, Names: []string{"Lt", "Gt"}, Line: 12},
	}
	if !reflect.DeepEqual(tbl.Infix, wantInfix) {
		t.Fatalf("infix = %+v\nwant %+v", tbl.Infix, wantInfix)
	}
	wantPrefix := []PrefixEntry{
		{Power: 30, Names: []string{"Minus", "KwNot"}, Line: 19},
		{Power: 30, Names: []string{"Plus"}, Line: 20},
	}
	if !reflect.DeepEqual(tbl.Prefix, wantPrefix) {
		t.Fatalf("prefix = %+v\nwant %+v", tbl.Prefix, wantPrefix)
	}
	if got := bag.Count(diag.PrecWildcardArm); got != 2 {
		t.Fatalf("wildcard skips = %d, want 2", got)
	}
	if bag.Count(diag.PrecInfixNotFound) != 0 || bag.Count(diag.PrecPrefixNotFound) != 0 {
		t.Fatalf("unexpected routine-not-found diagnostics: %v", bag.Items())
	}
}

func TestSortedInfixIsStable(t *testing.T) {
	tbl := Scan(tableSource, nil)
	sorted := tbl.SortedInfix()
	var lefts []uint16
	var first []string
	for _, e := range sorted {
		lefts = append(lefts, e.Left)
		first = append(first, e.Names[0])
	}
	if !reflect.DeepEqual(lefts, []uint16{5, 10, 10, 20}) {
		t.Fatalf("lefts = %v", lefts)
	}
	// Plus was declared before Lt; both have left power 10.
	if !reflect.DeepEqual(first, []string{"Assign", "Plus", "Lt", "Star"}) {
		t.Fatalf("order = %v", first)
	}
	if tbl.Infix[0].Names[0] != "Star" {
		t.Fatalf("SortedInfix must not reorder the scan-order table")
	}
}

func TestRightAssoc(t *testing.T) {
	tests := []struct {
		left, right uint16
		want        bool
	}{
		{5, 4, true},
		{4, 4, false},
		{10, 11, false},
		{1, 0, true},
	}
	for _, tt := range tests {
		e := InfixEntry{Left: tt.left, Right: tt.right}
		if got := e.RightAssoc(); got != tt.want {
			t.Errorf("RightAssoc(%d, %d) = %v, want %v", tt.left, tt.right, got, tt.want)
		}
	}
}

func TestMalformedArmsAreSkipped(t *testing.T) {
	src := `fn infix_binding_power(self) -> Option<(u8, u8)> {
    Self::Pipe => Some(LOW),
    Self::Caret => Some((99999999, 1)),
    Self::Amp => Some((7, 8)),
fn prefix_binding_power(self) -> Option<u8> {
    Self::Bang => Some(40),
    Self::Tilde => 41,
}`
	bag := diag.NewBag(0)
	tbl := Scan(src, &diag.BagReporter{Bag: bag})
	if len(tbl.Infix) != 1 || tbl.Infix[0].Names[0] != "Amp" {
		t.Fatalf("infix = %+v", tbl.Infix)
	}
	if len(tbl.Prefix) != 1 || tbl.Prefix[0].Names[0] != "Tilde" || tbl.Prefix[0].Power != 41 {
		t.Fatalf("prefix = %+v", tbl.Prefix)
	}
	if bag.Count(diag.PrecMissingInfixPair) != 1 {
		t.Errorf("missing pair diagnostics = %d", bag.Count(diag.PrecMissingInfixPair))
	}
	if bag.Count(diag.PrecBindingPowerRange) != 1 {
		t.Errorf("range diagnostics = %d", bag.Count(diag.PrecBindingPowerRange))
	}
	if bag.Count(diag.PrecMissingPrefixBP) != 1 {
		t.Errorf("missing prefix diagnostics = %d", bag.Count(diag.PrecMissingPrefixBP))
	}
}

func TestPrefixMarkerExitsInfix(t *testing.T) {
	src := `fn infix_binding_power() {
    A => (1, 2),
fn prefix_binding_power() {
    B => (3, 4),
    C => 5,
}`
	tbl := Scan(src, nil)
	if len(tbl.Infix) != 1 {
		t.Fatalf("infix = %+v", tbl.Infix)
	}
	// "B => (3, 4)" has no integer directly after =>, so prefix skips it.
	if len(tbl.Prefix) != 1 || tbl.Prefix[0].Names[0] != "C" {
		t.Fatalf("prefix = %+v", tbl.Prefix)
	}
}

func TestArmsOutsideRoutinesIgnored(t *testing.T) {
	src := `fn describe(self) -> &'static str {
    Self::Plus => (1, 2),
}`
	bag := diag.NewBag(0)
	tbl := Scan(src, &diag.BagReporter{Bag: bag})
	if !tbl.Empty() {
		t.Fatalf("table = %+v", tbl)
	}
	if bag.Count(diag.PrecInfixNotFound) != 1 || bag.Count(diag.PrecPrefixNotFound) != 1 {
		t.Fatalf("expected not-found warnings, got %v", bag.Items())
	}
}

func TestArmNames(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"Self::Plus | Self::Minus => Some((10, 11)),", []string{"Plus", "Minus"}},
		{"  TokenKind::Star=> (1,2)", []string{"Star"}},
		{"| Self::Or | => 3", []string{"Or"}},
		{"Bare => 1", []string{"Bare"}},
	}
	for _, tt := range tests {
		if got := armNames(tt.line); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("armNames(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
