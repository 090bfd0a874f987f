// Package ui renders command results for the terminal: coloured plain-text
// summaries for one-shot commands and a Bubble Tea model for watch mode.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"docsync/internal/contract"
	"docsync/internal/diag"
	"docsync/internal/drift"
)

// Printer writes command summaries. Colour is decided once at construction.
type Printer struct {
	w    io.Writer
	good *color.Color
	bad  *color.Color
	warn *color.Color
	dim  *color.Color
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return &Printer{
		w:    w,
		good: mk(color.FgGreen),
		bad:  mk(color.FgRed, color.Bold),
		warn: mk(color.FgYellow),
		dim:  mk(color.Faint),
	}
}

func (p *Printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// SyntaxWritten reports the artifacts a syntax run wrote. stale holds the
// ones whose content changed.
func (p *Printer) SyntaxWritten(written, stale []string) {
	changed := make(map[string]bool, len(stale))
	for _, s := range stale {
		changed[s] = true
	}
	for _, path := range written {
		if changed[path] {
			p.line("%s %s", p.good.Sprint("updated"), path)
		} else {
			p.line("%s %s", p.dim.Sprint("unchanged"), path)
		}
	}
}

// DriftReminder tells the user the diagram manifest needs refreshing.
func (p *Printer) DriftReminder() {
	p.line("%s", p.warn.Sprint("diagram changed; run docsync drift --update before committing"))
}

// SyntaxCheck reports the result of syntax --check.
func (p *Printer) SyntaxCheck(stale []string) {
	if len(stale) == 0 {
		p.line("%s", p.good.Sprint("syntax artifacts up to date"))
		return
	}
	p.line("%s", p.bad.Sprint("syntax artifacts out of date:"))
	for _, path := range stale {
		p.line("  stale file: %s", path)
	}
	p.line("run docsync syntax to regenerate them")
}

// Diagnostics lists tolerated scanner skips.
func (p *Printer) Diagnostics(source string, items []diag.Diagnostic) {
	for _, d := range items {
		sev := p.dim
		if d.Severity >= diag.SevWarning {
			sev = p.warn
		}
		p.line("%s:%s", source, sev.Sprint(d.String()))
	}
}

// Drift prints a drift check result in the manifest tool's format.
func (p *Printer) Drift(r drift.Result) {
	if r.Clean() {
		p.line("%s", p.good.Sprint("no diagram drift"))
		return
	}
	p.line("%s", p.bad.Sprint("diagram drift detected:"))
	for _, path := range r.Missing {
		p.line("  missing file: %s", path)
	}
	for _, path := range r.Added {
		p.line("  new file: %s", path)
	}
	for _, path := range r.Changed {
		p.line("  changed file: %s", path)
	}
	p.line("run docsync drift --update to refresh the manifest")
}

// DriftMissing reports an absent manifest.
func (p *Printer) DriftMissing() {
	p.line("%s", p.bad.Sprint(drift.ErrManifestMissing.Error()))
}

// DriftUpdated confirms a manifest rewrite.
func (p *Printer) DriftUpdated(path string, files int) {
	p.line("%s %s (%d files)", p.good.Sprint("updated"), path, files)
}

// Contract prints a frontend contract result.
func (p *Printer) Contract(r contract.Result) {
	if r.OK() {
		p.line("%s", p.good.Sprint("web ide frontend contract passed"))
		return
	}
	p.line("%s", p.bad.Sprint("web ide frontend contract failed. missing snippets:"))
	for _, name := range r.Missing {
		p.line("  - %s", name)
	}
	if len(r.Forbidden) > 0 {
		p.line("%s", p.bad.Sprint("forbidden snippets present:"))
		for _, name := range r.Forbidden {
			p.line("  - %s", name)
		}
	}
}

// Failure prints err as a single red line.
func (p *Printer) Failure(err error) {
	p.line("%s", p.bad.Sprint(err.Error()))
}

// WatchRun prints one watch run as a plain line, for --ui=off.
func (p *Printer) WatchRun(ev RunEvent) {
	status := ev.Status.String()
	switch ev.Status {
	case RunUpdated:
		status = p.good.Sprint(status)
	case RunFailed:
		status = p.bad.Sprint(status)
	case RunStarted:
		status = p.dim.Sprint(status)
	}
	text := ev.Trigger
	if ev.Detail != "" {
		text += ": " + ev.Detail
	}
	p.line("[%s] %s %s", ev.Time.Format("15:04:05"), status, text)
}
