// Package report renders extracted syntax facts into the diagram blocks and
// the standalone Markdown statistics report.
//
// All output is a pure function of the scan results: section order is fixed,
// keywords are pre-sorted, infix entries are ordered by SortedInfix and prefix
// entries keep scan order.
package report

import (
	"fmt"
	"strings"

	"docsync/internal/display"
	"docsync/internal/precedence"
	"docsync/internal/taxonomy"
)

// PrecedenceHeader opens the precedence block.
const PrecedenceHeader = "Precedence (low → high):"

// Facts bundles everything one run extracted from the token source.
type Facts struct {
	Stats taxonomy.Stats
	Table precedence.Table
	// ReportPath is where the Markdown report lives, as shown to readers.
	ReportPath string
}

func (f Facts) resolver() *display.Resolver {
	return display.NewResolver(f.Stats.Literals)
}

// TokenStatsLines renders the token statistics region of the diagram.
func TokenStatsLines(f Facts) []string {
	lines := make([]string, 0, len(taxonomy.Sections)+4)
	lines = append(lines,
		fmt.Sprintf("TokenKind variants: %d", f.Stats.Total),
		"Sections:",
	)
	for _, sec := range taxonomy.Sections {
		lines = append(lines, fmt.Sprintf("• %s: %d", sec, f.Stats.Count(sec)))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Keywords (%d) in %s", len(f.Stats.Keywords), f.ReportPath),
	)
	return lines
}

// InfixLines renders the header and one line per infix entry, low to high.
func InfixLines(f Facts) []string {
	r := f.resolver()
	sorted := f.Table.SortedInfix()
	lines := make([]string, 0, len(sorted)+1)
	lines = append(lines, PrecedenceHeader)
	for _, e := range sorted {
		suffix := ""
		if e.RightAssoc() {
			suffix = " (right assoc)"
		}
		lines = append(lines, fmt.Sprintf("%d-%d:   %s%s", e.Left, e.Right, r.Labels(e.Names), suffix))
	}
	return lines
}

// PrefixLines renders one line per prefix entry in scan order.
func PrefixLines(f Facts) []string {
	r := f.resolver()
	lines := make([]string, 0, len(f.Table.Prefix))
	for _, e := range f.Table.Prefix {
		lines = append(lines, fmt.Sprintf("%d:    prefix %s", e.Power, r.Labels(e.Names)))
	}
	return lines
}

// PrecedenceLines is InfixLines followed by PrefixLines.
func PrecedenceLines(f Facts) []string {
	return append(InfixLines(f), PrefixLines(f)...)
}

// TokenStatsBlock is the token statistics region body.
func TokenStatsBlock(f Facts) string {
	return strings.Join(TokenStatsLines(f), "\n")
}

// PrecedenceBlock is the precedence region body.
func PrecedenceBlock(f Facts) string {
	return strings.Join(PrecedenceLines(f), "\n")
}

// Markdown renders the full statistics report, newline terminated.
func Markdown(f Facts) string {
	var b strings.Builder
	b.WriteString("# Syntax Stats\n\n")
	fmt.Fprintf(&b, "- TokenKind variants: %d\n", f.Stats.Total)
	b.WriteString("- Section counts:\n")
	for _, sec := range taxonomy.Sections {
		fmt.Fprintf(&b, "  - %s: %d\n", sec, f.Stats.Count(sec))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Keywords (%d):\n", len(f.Stats.Keywords))
	b.WriteString("  " + strings.Join(f.Stats.Keywords, ", ") + "\n")
	b.WriteString("\n")
	b.WriteString("- Pratt precedence:\n")
	for _, line := range PrecedenceLines(f) {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
