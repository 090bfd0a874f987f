package diag

import "testing"

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 1; i <= 3; i++ {
		stored := b.Add(Diagnostic{Severity: SevInfo, Code: PrecWildcardArm, Line: i})
		if stored != (i <= 2) {
			t.Fatalf("Add #%d stored = %v", i, stored)
		}
	}
	if b.Len() != 2 || b.Cap() != 2 {
		t.Fatalf("len=%d cap=%d", b.Len(), b.Cap())
	}

	unbounded := NewBag(0)
	for i := 0; i < 100; i++ {
		unbounded.Add(Diagnostic{Code: TaxVariantWithoutSection})
	}
	if unbounded.Count(TaxVariantWithoutSection) != 100 {
		t.Fatalf("unbounded bag dropped diagnostics")
	}
}

func TestBagSortAndSeverity(t *testing.T) {
	b := NewBag(0)
	b.Add(Diagnostic{Severity: SevInfo, Code: PrecWildcardArm, Line: 9})
	b.Add(Diagnostic{Severity: SevInfo, Code: PrecMissingInfixPair, Line: 3})
	b.Add(Diagnostic{Severity: SevWarning, Code: PrecInfixNotFound, Line: 3})
	if b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("severity flags wrong")
	}
	b.Sort()
	items := b.Items()
	if items[0].Code != PrecInfixNotFound || items[1].Code != PrecMissingInfixPair || items[2].Line != 9 {
		t.Fatalf("sorted = %v", items)
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Line: 1})
	other := NewBag(0)
	other.Add(Diagnostic{Line: 2})
	other.Add(Diagnostic{Line: 3})
	a.Merge(other)
	if a.Len() != 3 || a.Cap() != 3 {
		t.Fatalf("len=%d cap=%d", a.Len(), a.Cap())
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: SevInfo, Code: PrecWildcardArm, Line: 12, Message: "wildcard arm skipped", Text: "_ => None,"}
	want := "12: INFO PRC2001: wildcard arm skipped | _ => None,"
	if got := d.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if TaxVariantWithoutSection.ID() != "TAX1001" {
		t.Fatalf("ID = %s", TaxVariantWithoutSection.ID())
	}
}

func TestMultiReporter(t *testing.T) {
	a, b := NewBag(0), NewBag(0)
	r := MultiReporter{&BagReporter{Bag: a}, nil, &BagReporter{Bag: b}}
	ReportInfo(r, PrecEmptyArm, 4, "=> 3,", "arm without names")
	ReportInfo(nil, PrecEmptyArm, 4, "", "")
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatalf("fan-out failed: %d %d", a.Len(), b.Len())
	}
}
