// Package display turns token variant identifiers into human-readable labels.
package display

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// KeywordPrefix is the identifier prefix of keyword variants.
const KeywordPrefix = "Kw"

// Resolver maps variant identifiers to labels. It is stateless apart from
// the literal table it was built with.
type Resolver struct {
	literals map[string]string
	upper    cases.Caser
}

// NewResolver returns a resolver over a variant -> literal table.
// A nil table is treated as empty.
func NewResolver(literals map[string]string) *Resolver {
	return &Resolver{
		literals: literals,
		upper:    cases.Upper(language.Und),
	}
}

// Label resolves name, in priority order:
//  1. its exact literal spelling, verbatim;
//  2. for Kw-prefixed names, the remainder in upper case;
//  3. the name itself.
func (r *Resolver) Label(name string) string {
	if lit, ok := r.literals[name]; ok {
		return lit
	}
	if rest, ok := strings.CutPrefix(name, KeywordPrefix); ok {
		// Caser carries state between calls; String resets it.
		return r.upper.String(rest)
	}
	return name
}

// Labels resolves every name and joins the labels with ", ".
func (r *Resolver) Labels(names []string) string {
	labels := make([]string, len(names))
	for i, n := range names {
		labels[i] = r.Label(n)
	}
	return strings.Join(labels, ", ")
}
