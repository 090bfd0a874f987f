package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// taxonomy scanner
	TaxInfo                  Code = 1000
	TaxVariantWithoutSection Code = 1001
	TaxEnumNotFound          Code = 1002
	TaxEnumUnterminated      Code = 1003
	TaxOrphanLiteral         Code = 1004

	// precedence scanner
	PrecInfo              Code = 2000
	PrecWildcardArm       Code = 2001
	PrecMissingInfixPair  Code = 2002
	PrecMissingPrefixBP   Code = 2003
	PrecBindingPowerRange Code = 2004
	PrecEmptyArm          Code = 2005
	PrecInfixNotFound     Code = 2006
	PrecPrefixNotFound    Code = 2007
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	TaxInfo:                  "Taxonomy information",
	TaxVariantWithoutSection: "Variant declared before any section header",
	TaxEnumNotFound:          "TokenKind enumeration not found",
	TaxEnumUnterminated:      "TokenKind enumeration not closed",
	TaxOrphanLiteral:         "Exact-text annotation without a following variant",
	PrecInfo:                 "Precedence information",
	PrecWildcardArm:          "Catch-all arm skipped",
	PrecMissingInfixPair:     "Infix arm without (left, right) binding powers",
	PrecMissingPrefixBP:      "Prefix arm without binding power",
	PrecBindingPowerRange:    "Binding power out of range",
	PrecEmptyArm:             "Arm without variant names",
	PrecInfixNotFound:        "Infix binding power routine not found",
	PrecPrefixNotFound:       "Prefix binding power routine not found",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("TAX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("PRC%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
