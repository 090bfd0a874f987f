package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"docsync/internal/contract"
	"docsync/internal/diag"
	"docsync/internal/drift"
)

func TestPrinterDrift(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Drift(drift.Result{
		Missing: []string{"docs/old.puml"},
		Added:   []string{"docs/new.puml"},
		Changed: []string{"docs/a.puml", "docs/b.puml"},
	})
	want := "diagram drift detected:\n" +
		"  missing file: docs/old.puml\n" +
		"  new file: docs/new.puml\n" +
		"  changed file: docs/a.puml\n" +
		"  changed file: docs/b.puml\n" +
		"run docsync drift --update to refresh the manifest\n"
	if buf.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrinterContract(t *testing.T) {
	tests := []struct {
		name string
		in   contract.Result
		want string
	}{
		{"passed", contract.Result{}, "web ide frontend contract passed\n"},
		{
			"missing only",
			contract.Result{Missing: []string{"tabs"}},
			"web ide frontend contract failed. missing snippets:\n  - tabs\n",
		},
		{
			"forbidden",
			contract.Result{Forbidden: []string{"cdn_monaco"}},
			"web ide frontend contract failed. missing snippets:\nforbidden snippets present:\n  - cdn_monaco\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf, false).Contract(tt.in)
			if buf.String() != tt.want {
				t.Fatalf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrinterSyntax(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.SyntaxWritten([]string{"a.puml", "b.md"}, []string{"b.md"})
	p.SyntaxCheck([]string{"b.md"})
	p.Diagnostics("tokens.rs", []diag.Diagnostic{{Severity: diag.SevInfo, Code: diag.PrecWildcardArm, Line: 7, Message: "wildcard arm skipped"}})
	p.Failure(errors.New("boom"))

	out := buf.String()
	for _, want := range []string{
		"unchanged a.puml\n",
		"updated b.md\n",
		"syntax artifacts out of date:\n  stale file: b.md\n",
		"tokens.rs:7: INFO PRC2001",
		"boom\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWatchModelKeepsBoundedHistory(t *testing.T) {
	events := make(chan RunEvent)
	m := NewWatchModel("watching tokens.rs", events).(*watchModel)

	m.Update(runMsg(RunEvent{Status: RunStarted}))
	if !m.running {
		t.Fatalf("start event must mark the model running")
	}
	for i := 0; i < maxHistory+3; i++ {
		m.Update(runMsg(RunEvent{Time: time.Unix(0, 0), Trigger: "tokens.rs", Status: RunUpdated}))
	}
	if m.running {
		t.Fatalf("finish event must clear running")
	}
	if len(m.runs) != maxHistory {
		t.Fatalf("history = %d, want %d", len(m.runs), maxHistory)
	}
	if !strings.Contains(m.View(), "updated") {
		t.Fatalf("view does not show runs:\n%s", m.View())
	}

	_, cmd := m.Update(closedMsg{})
	if cmd == nil || !m.done {
		t.Fatalf("closing the channel must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"docs/diagrams/syntax/syntax-pipeline.puml", 12, "docs/diag..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
