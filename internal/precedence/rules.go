package precedence

import (
	"regexp"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

const (
	// InfixMarker opens the infix routine.
	InfixMarker = "fn infix_binding_power"
	// PrefixMarker opens the prefix routine and closes the infix one.
	PrefixMarker = "fn prefix_binding_power"

	armSeparator         = "=>"
	wildcardArm          = "_ =>"
	alternationSeparator = "|"
	qualifierSeparator   = "::"
)

var (
	infixPairRe   = regexp.MustCompile(`\((\d+),\s*(\d+)\)`)
	prefixPowerRe = regexp.MustCompile(`=>\s*(\d+)`)
)

// isArm reports whether line carries a match-arm separator.
func isArm(line string) bool {
	return strings.Contains(line, armSeparator)
}

// isWildcardArm reports whether line is a catch-all arm.
func isWildcardArm(line string) bool {
	return strings.Contains(line, wildcardArm)
}

// infixPair captures "(l, r)". ok is false when the pattern is absent;
// rangeErr is set when a number does not fit a binding power.
func infixPair(line string) (left, right uint16, ok bool, rangeErr error) {
	m := infixPairRe.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false, nil
	}
	left, err := parsePower(m[1])
	if err != nil {
		return 0, 0, false, err
	}
	right, err = parsePower(m[2])
	if err != nil {
		return 0, 0, false, err
	}
	return left, right, true, nil
}

// prefixPower captures the integer directly following the arm separator.
func prefixPower(line string) (power uint16, ok bool, rangeErr error) {
	m := prefixPowerRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false, nil
	}
	power, err := parsePower(m[1])
	if err != nil {
		return 0, false, err
	}
	return power, true, nil
}

func parsePower(digits string) (uint16, error) {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, err
	}
	return safecast.Conv[uint16](n)
}

// armNames splits the left-hand side of an arm into bare variant names.
func armNames(line string) []string {
	lhs, _, _ := strings.Cut(line, armSeparator)
	parts := strings.Split(lhs, alternationSeparator)
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		names = append(names, stripQualifier(p))
	}
	return names
}

// stripQualifier drops a leading path such as "Self::" or "TokenKind::".
func stripQualifier(name string) string {
	if i := strings.LastIndex(name, qualifierSeparator); i >= 0 {
		return name[i+len(qualifierSeparator):]
	}
	return name
}
