package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"docsync/internal/precedence"
	"docsync/internal/taxonomy"
)

const source = `pub enum TokenKind {
    // TRIVIA
    Whitespace,
    // OPERATORS
    #[token("+")]
    Plus,
    #[token("-")]
    Minus,
    #[token("*")]
    Star,
    #[token(":=")]
    Assign,
    // KEYWORDS
    #[token("if")]
    KwIf,
    #[token("not")]
    KwNot,
    KwMod,
}

impl TokenKind {
    pub fn infix_binding_power(self) -> Option<(u8, u8)> {
        match self {
            Self::Star => Some((20, 21)),
            Self::Plus | Self::Minus => Some((10, 11)),
            Self::Assign => Some((5, 4)),
            Self::KwMod => Some((20, 21)),
            _ => None,
        }
    }

    pub fn prefix_binding_power(self) -> Option<u8> {
        match self {
            Self::KwNot => 30,
            Self::Minus => 40,
            _ => None,
        }
    }
}
`

func sampleFacts(t *testing.T) Facts {
	t.Helper()
	return Facts{
		Stats:      taxonomy.Scan(source, nil),
		Table:      precedence.Scan(source, nil),
		ReportPath: "docs/diagrams/generated/syntax-stats.md",
	}
}

func TestTokenStatsBlock(t *testing.T) {
	want := strings.Join([]string{
		"TokenKind variants: 8",
		"Sections:",
		"• Trivia: 1",
		"• Punctuation: 0",
		"• Operators: 4",
		"• Keywords: 3",
		"• Literals: 0",
		"• Identifiers: 0",
		"• Special: 0",
		"",
		"Keywords (2) in docs/diagrams/generated/syntax-stats.md",
	}, "\n")
	if got := TokenStatsBlock(sampleFacts(t)); got != want {
		t.Fatalf("token stats block:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrecedenceBlock(t *testing.T) {
	want := strings.Join([]string{
		"Precedence (low → high):",
		"5-4:   := (right assoc)",
		"10-11:   +, -",
		"20-21:   *",
		"20-21:   MOD",
		"30:    prefix not",
		"40:    prefix -",
	}, "\n")
	if got := PrecedenceBlock(sampleFacts(t)); got != want {
		t.Fatalf("precedence block:\n%s\nwant:\n%s", got, want)
	}
}

func TestScenarioBOrdering(t *testing.T) {
	f := Facts{Table: precedence.Table{Infix: []precedence.InfixEntry{
		{Left: 20, Right: 21, Names: []string{"Star"}},
		{Left: 10, Right: 11, Names: []string{"Plus", "Minus"}},
	}}}
	lines := InfixLines(f)
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	if lines[1] != "10-11:   Plus, Minus" || lines[2] != "20-21:   Star" {
		t.Fatalf("lines = %q", lines)
	}
	for _, l := range lines {
		if strings.HasSuffix(l, "(right assoc)") {
			t.Fatalf("unexpected right assoc in %q", l)
		}
	}
}

func TestScenarioCRightAssoc(t *testing.T) {
	f := Facts{Table: precedence.Table{Infix: []precedence.InfixEntry{
		{Left: 5, Right: 4, Names: []string{"Assign"}},
		{Left: 6, Right: 6, Names: []string{"Eq"}},
	}}}
	lines := InfixLines(f)
	if !strings.HasSuffix(lines[1], "(right assoc)") {
		t.Fatalf("line %q must be right assoc", lines[1])
	}
	if strings.HasSuffix(lines[2], "(right assoc)") {
		t.Fatalf("line %q must not be right assoc", lines[2])
	}
}

func TestMarkdown(t *testing.T) {
	want := `# Syntax Stats

- TokenKind variants: 8
- Section counts:
  - Trivia: 1
  - Punctuation: 0
  - Operators: 4
  - Keywords: 3
  - Literals: 0
  - Identifiers: 0
  - Special: 0

- Keywords (2):
  if, not

- Pratt precedence:
  Precedence (low → high):
  5-4:   := (right assoc)
  10-11:   +, -
  20-21:   *
  20-21:   MOD
  30:    prefix not
  40:    prefix -
`
	if got := Markdown(sampleFacts(t)); got != want {
		t.Fatalf("markdown:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderingIsDeterministic(t *testing.T) {
	a := Markdown(sampleFacts(t))
	for i := 0; i < 20; i++ {
		if b := Markdown(sampleFacts(t)); b != a {
			t.Fatalf("run %d differs", i)
		}
	}
}

func TestFormatFactsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatFactsJSON(&buf, sampleFacts(t)); err != nil {
		t.Fatalf("json: %v", err)
	}
	var out FactsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Total != 8 || out.Attributed != 8 {
		t.Fatalf("total/attributed = %d/%d", out.Total, out.Attributed)
	}
	if len(out.Infix) != 4 || !out.Infix[0].RightAssoc || out.Infix[0].Labels[0] != ":=" {
		t.Fatalf("infix = %+v", out.Infix)
	}
	if len(out.Prefix) != 2 || out.Prefix[0].Labels[0] != "not" {
		t.Fatalf("prefix = %+v", out.Prefix)
	}
}
