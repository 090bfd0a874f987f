package taxonomy

import "strings"

// Section is a semantic category of token variants.
type Section uint8

const (
	// SectionNone means no header has been seen yet.
	SectionNone Section = iota
	Trivia
	Punctuation
	Operators
	Keywords
	Literals
	Identifiers
	Special
)

// Sections lists every real section in rendering order.
var Sections = [...]Section{
	Trivia,
	Punctuation,
	Operators,
	Keywords,
	Literals,
	Identifiers,
	Special,
}

func (s Section) String() string {
	switch s {
	case Trivia:
		return "Trivia"
	case Punctuation:
		return "Punctuation"
	case Operators:
		return "Operators"
	case Keywords:
		return "Keywords"
	case Literals:
		return "Literals"
	case Identifiers:
		return "Identifiers"
	case Special:
		return "Special"
	}
	return "None"
}

// ParseSection maps a section name back to its Section (case-insensitive).
func ParseSection(name string) (Section, bool) {
	for _, s := range Sections {
		if strings.EqualFold(s.String(), name) {
			return s, true
		}
	}
	return SectionNone, false
}

// sectionKeyword binds an upper-case header keyword to its section.
type sectionKeyword struct {
	keyword string
	section Section
}

// sectionKeywords is tested in order; the first keyword contained in a
// header phrase wins.
var sectionKeywords = [...]sectionKeyword{
	{"TRIVIA", Trivia},
	{"PUNCTUATION", Punctuation},
	{"OPERATORS", Operators},
	{"KEYWORDS", Keywords},
	{"LITERALS", Literals},
	{"IDENTIFIERS", Identifiers},
	{"SPECIAL", Special},
}

// SectionForHeader returns the section named by an upper-case header phrase.
// Matching is a case-sensitive substring test.
func SectionForHeader(header string) (Section, bool) {
	for _, sk := range sectionKeywords {
		if strings.Contains(header, sk.keyword) {
			return sk.section, true
		}
	}
	return SectionNone, false
}
