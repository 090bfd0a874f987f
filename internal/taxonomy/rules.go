package taxonomy

import (
	"regexp"
	"strings"
)

// KeywordPrefix marks variants whose literal belongs to the keyword set.
const KeywordPrefix = "Kw"

var (
	enumDeclRe    = regexp.MustCompile(`pub\s+enum\s+TokenKind`)
	headerRe      = regexp.MustCompile(`//\s*([A-Z_ ]+)`)
	exactTextRe   = regexp.MustCompile(`#\[token\("([^"]+)"`)
	variantLineRe = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9_]*)\s*(,|=)`)
)

// isEnumDecl reports whether line opens the TokenKind enumeration.
func isEnumDecl(line string) bool {
	return enumDeclRe.MatchString(line)
}

// isEnumEnd reports whether line closes the enumeration.
func isEnumEnd(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "}")
}

// headerPhrase extracts the upper-case phrase of a header comment.
func headerPhrase(line string) (string, bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// exactTextLiteral extracts <literal> from a token("<literal>") annotation.
func exactTextLiteral(line string) (string, bool) {
	m := exactTextRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// variantName extracts the identifier of a variant line ("Name," or "Name =").
func variantName(line string) (string, bool) {
	m := variantLineRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// isKeywordVariant reports whether name denotes a keyword variant.
func isKeywordVariant(name string) bool {
	return strings.HasPrefix(name, KeywordPrefix)
}
