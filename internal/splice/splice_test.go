package splice

import (
	"errors"
	"strings"
	"testing"
)

const doc = `@startuml
package "Lexer" {
    note right
    <<TOKEN_STATS>>
    stale line
    <<TOKEN_STATS_END>>
    end note
}
  <<PRECEDENCE_TABLE>>
  <<PRECEDENCE_TABLE_END>>
@enduml
`

func TestReplaceIndentsWithStartMarker(t *testing.T) {
	got, err := Replace(doc, TokenStats, "a\n\nb")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	want := `@startuml
package "Lexer" {
    note right
    <<TOKEN_STATS>>
    a
    
    b
    <<TOKEN_STATS_END>>
    end note
}
  <<PRECEDENCE_TABLE>>
  <<PRECEDENCE_TABLE_END>>
@enduml
`
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestReplaceScenarioD(t *testing.T) {
	got, err := Replace(doc, TokenStats, "x\n\ny\n")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	lines := strings.Split(got, "\n")
	var inside []string
	for i, l := range lines {
		if strings.TrimSpace(l) == TokenStats.Start {
			for _, in := range lines[i+1:] {
				if strings.TrimSpace(in) == TokenStats.End {
					break
				}
				inside = append(inside, in)
			}
		}
	}
	want := []string{"    x", "    ", "    y"}
	if strings.Join(inside, "|") != strings.Join(want, "|") {
		t.Fatalf("inside = %q, want %q", inside, want)
	}
}

func TestReplaceIsIdempotent(t *testing.T) {
	repl := "TokenKind variants: 3\n\nKeywords (1)"
	once, err := Replace(doc, TokenStats, repl)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	twice, err := Replace(once, TokenStats, repl)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if once != twice {
		t.Fatalf("not idempotent:\n%q\n%q", once, twice)
	}
}

func TestReplaceEmptyRegion(t *testing.T) {
	got, err := Replace(doc, PrecedenceTable, "Precedence (low → high):")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !strings.Contains(got, "  <<PRECEDENCE_TABLE>>\n  Precedence (low → high):\n  <<PRECEDENCE_TABLE_END>>\n") {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestReplaceMissingMarker(t *testing.T) {
	broken := strings.Replace(doc, "<<TOKEN_STATS_END>>", "", 1)
	_, err := Replace(broken, TokenStats, "x")
	if !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("err = %v, want missing marker", err)
	}
	var se *Error
	if !errors.As(err, &se) || se.Start || se.Marker != TokenStats.End {
		t.Fatalf("err = %#v", err)
	}

	_, err = Replace("nothing here", TokenStats, "x")
	if !errors.As(err, &se) || !se.Start {
		t.Fatalf("expected missing start marker, got %v", err)
	}
}

func TestReplaceMarkerOrder(t *testing.T) {
	swapped := "<<TOKEN_STATS_END>>\nbody\n<<TOKEN_STATS>>\n"
	_, err := Replace(swapped, TokenStats, "x")
	if !errors.Is(err, ErrMarkerOrder) {
		t.Fatalf("err = %v, want marker order", err)
	}
	if errors.Is(err, ErrMissingMarker) {
		t.Fatalf("marker order error must not match missing marker")
	}
}

func TestMarkerMustOccupyWholeLine(t *testing.T) {
	text := "see <<TOKEN_STATS>> below\n<<TOKEN_STATS>>  \nold\n\t<<TOKEN_STATS_END>>\n"
	got, err := Replace(text, TokenStats, "new")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	want := "see <<TOKEN_STATS>> below\n<<TOKEN_STATS>>  \nnew\n\t<<TOKEN_STATS_END>>\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReplaceAllStopsOnFirstError(t *testing.T) {
	text := "<<TOKEN_STATS>>\n<<TOKEN_STATS_END>>\n"
	_, err := ReplaceAll(text, "diagram.puml",
		Block{Region: TokenStats, Replacement: "a"},
		Block{Region: PrecedenceTable, Replacement: "b"},
	)
	if !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "start marker <<PRECEDENCE_TABLE>> not found in diagram.puml") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestIndent(t *testing.T) {
	if got := Indent("a\n\nb\n", "\t"); got != "\ta\n\t\n\tb" {
		t.Fatalf("Indent = %q", got)
	}
	if got := Indent("", "  "); got != "" {
		t.Fatalf("Indent(empty) = %q", got)
	}
}
