package precedence

import (
	"fmt"
	"strings"

	"docsync/internal/diag"
)

type scanState uint8

const (
	stateIdle scanState = iota
	stateInfix
	statePrefix
)

func (s scanState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateInfix:
		return "infix"
	case statePrefix:
		return "prefix"
	}
	return "unknown"
}

// Scanner accumulates precedence entries line by line.
type Scanner struct {
	state     scanState
	line      int
	reporter  diag.Reporter
	sawInfix  bool
	sawPrefix bool
	table     Table
}

// NewScanner returns a scanner in the idle state. reporter may be nil.
func NewScanner(reporter diag.Reporter) *Scanner {
	return &Scanner{reporter: reporter}
}

// Feed processes the next line of the file.
func (s *Scanner) Feed(line string) {
	s.line++
	if strings.Contains(line, InfixMarker) {
		s.state = stateInfix
		s.sawInfix = true
		return
	}
	if strings.Contains(line, PrefixMarker) {
		s.state = statePrefix
		s.sawPrefix = true
		return
	}
	switch s.state {
	case stateIdle:
	case stateInfix:
		s.feedInfix(line)
	case statePrefix:
		s.feedPrefix(line)
	}
}

// candidateArm applies the skip rules shared by both routines.
func (s *Scanner) candidateArm(line string) bool {
	if !isArm(line) {
		return false
	}
	if isWildcardArm(line) {
		s.report(diag.PrecWildcardArm, line, "catch-all arm skipped")
		return false
	}
	return true
}

func (s *Scanner) feedInfix(line string) {
	if !s.candidateArm(line) {
		return
	}
	left, right, ok, err := infixPair(line)
	if err != nil {
		s.report(diag.PrecBindingPowerRange, line, fmt.Sprintf("binding power out of range: %v", err))
		return
	}
	if !ok {
		s.report(diag.PrecMissingInfixPair, line, "no (left, right) binding power pair")
		return
	}
	names := armNames(line)
	if len(names) == 0 {
		s.report(diag.PrecEmptyArm, line, "arm has no variant names")
	}
	s.table.Infix = append(s.table.Infix, InfixEntry{Left: left, Right: right, Names: names, Line: s.line})
}

func (s *Scanner) feedPrefix(line string) {
	if !s.candidateArm(line) {
		return
	}
	power, ok, err := prefixPower(line)
	if err != nil {
		s.report(diag.PrecBindingPowerRange, line, fmt.Sprintf("binding power out of range: %v", err))
		return
	}
	if !ok {
		s.report(diag.PrecMissingPrefixBP, line, "no binding power after =>")
		return
	}
	names := armNames(line)
	if len(names) == 0 {
		s.report(diag.PrecEmptyArm, line, "arm has no variant names")
	}
	s.table.Prefix = append(s.table.Prefix, PrefixEntry{Power: power, Names: names, Line: s.line})
}

func (s *Scanner) report(code diag.Code, line, msg string) {
	diag.ReportInfo(s.reporter, code, s.line, strings.TrimSpace(line), msg)
}

// Table finalises the scan and returns entries in scan order.
func (s *Scanner) Table() Table {
	if !s.sawInfix {
		diag.ReportWarning(s.reporter, diag.PrecInfixNotFound, 0, "", "no "+InfixMarker+" routine found")
	}
	if !s.sawPrefix {
		diag.ReportWarning(s.reporter, diag.PrecPrefixNotFound, 0, "", "no "+PrefixMarker+" routine found")
	}
	return s.table
}

// Scan runs a full scan over text.
func Scan(text string, reporter diag.Reporter) Table {
	sc := NewScanner(reporter)
	for _, line := range strings.Split(text, "\n") {
		sc.Feed(strings.TrimSuffix(line, "\r"))
	}
	return sc.Table()
}
