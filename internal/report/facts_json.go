package report

import (
	"encoding/json"
	"io"

	"docsync/internal/taxonomy"
)

// SectionCount is one section tally in the JSON facts.
type SectionCount struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
}

// InfixOutput is one infix entry in the JSON facts.
type InfixOutput struct {
	Left       uint16   `json:"left_bp"`
	Right      uint16   `json:"right_bp"`
	Tokens     []string `json:"tokens"`
	Labels     []string `json:"labels"`
	RightAssoc bool     `json:"right_assoc,omitempty"`
}

// PrefixOutput is one prefix entry in the JSON facts.
type PrefixOutput struct {
	Power  uint16   `json:"bp"`
	Tokens []string `json:"tokens"`
	Labels []string `json:"labels"`
}

// FactsOutput is the machine-readable view printed by `docsync scan --format json`.
type FactsOutput struct {
	Total      int            `json:"total"`
	Attributed int            `json:"attributed"`
	Sections   []SectionCount `json:"sections"`
	Keywords   []string       `json:"keywords"`
	Infix      []InfixOutput  `json:"infix"`
	Prefix     []PrefixOutput `json:"prefix"`
}

// BuildFactsOutput converts facts into their JSON shape. Infix entries are
// already ordered low to high.
func BuildFactsOutput(f Facts) FactsOutput {
	r := f.resolver()
	out := FactsOutput{
		Total:      f.Stats.Total,
		Attributed: f.Stats.Attributed(),
		Sections:   make([]SectionCount, 0, len(taxonomy.Sections)),
		Keywords:   append([]string{}, f.Stats.Keywords...),
		Infix:      []InfixOutput{},
		Prefix:     []PrefixOutput{},
	}
	for _, sec := range taxonomy.Sections {
		out.Sections = append(out.Sections, SectionCount{Section: sec.String(), Count: f.Stats.Count(sec)})
	}
	labels := func(names []string) []string {
		ls := make([]string, len(names))
		for i, n := range names {
			ls[i] = r.Label(n)
		}
		return ls
	}
	for _, e := range f.Table.SortedInfix() {
		out.Infix = append(out.Infix, InfixOutput{
			Left:       e.Left,
			Right:      e.Right,
			Tokens:     append([]string{}, e.Names...),
			Labels:     labels(e.Names),
			RightAssoc: e.RightAssoc(),
		})
	}
	for _, e := range f.Table.Prefix {
		out.Prefix = append(out.Prefix, PrefixOutput{
			Power:  e.Power,
			Tokens: append([]string{}, e.Names...),
			Labels: labels(e.Names),
		})
	}
	return out
}

// FormatFactsJSON writes the facts as indented JSON.
func FormatFactsJSON(w io.Writer, f Facts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(BuildFactsOutput(f))
}

// FormatFactsPretty writes the diagram blocks as they would be spliced.
func FormatFactsPretty(w io.Writer, f Facts) error {
	if _, err := io.WriteString(w, TokenStatsBlock(f)+"\n\n"); err != nil {
		return err
	}
	_, err := io.WriteString(w, PrecedenceBlock(f)+"\n")
	return err
}
