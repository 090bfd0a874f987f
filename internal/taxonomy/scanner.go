package taxonomy

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"docsync/internal/diag"
)

type scanState uint8

const (
	stateOutside scanState = iota
	stateInside
	stateDone
)

func (s scanState) String() string {
	switch s {
	case stateOutside:
		return "outside"
	case stateInside:
		return "inside"
	case stateDone:
		return "done"
	}
	return "unknown"
}

// Scanner accumulates taxonomy facts line by line.
type Scanner struct {
	state    scanState
	line     int
	section  Section
	reporter diag.Reporter

	pending     string
	hasPending  bool
	pendingLine int

	stats    Stats
	keywords map[string]struct{}
}

// NewScanner returns a scanner in the outside state. reporter may be nil.
func NewScanner(reporter diag.Reporter) *Scanner {
	return &Scanner{
		state:    stateOutside,
		reporter: reporter,
		stats:    newStats(),
		keywords: make(map[string]struct{}),
	}
}

// Done reports whether the enumeration has been closed.
func (s *Scanner) Done() bool {
	return s.state == stateDone
}

// Feed processes the next line of the file.
func (s *Scanner) Feed(line string) {
	s.line++
	switch s.state {
	case stateOutside:
		if isEnumDecl(line) {
			s.state = stateInside
		}
	case stateInside:
		s.feedInside(line)
	case stateDone:
	}
}

func (s *Scanner) feedInside(line string) {
	if isEnumEnd(line) {
		s.state = stateDone
		return
	}

	if header, ok := headerPhrase(line); ok {
		if sec, ok := SectionForHeader(header); ok {
			s.section = sec
		}
	}

	if lit, ok := exactTextLiteral(line); ok {
		if s.hasPending {
			diag.ReportInfo(s.reporter, diag.TaxOrphanLiteral, s.pendingLine, s.pending,
				fmt.Sprintf("literal %q replaced before reaching a variant", s.pending))
		}
		s.pending = lit
		s.hasPending = true
		s.pendingLine = s.line
		return
	}

	if name, ok := variantName(line); ok {
		s.addVariant(name, line)
	}
}

func (s *Scanner) addVariant(name, line string) {
	v := Variant{Name: name, Section: s.section, Line: s.line}
	s.stats.Total++
	if s.section != SectionNone {
		s.stats.BySection[s.section]++
	} else {
		diag.ReportInfo(s.reporter, diag.TaxVariantWithoutSection, s.line, strings.TrimSpace(line),
			fmt.Sprintf("variant %s counted without a section", name))
	}
	if s.hasPending {
		v.Literal = s.pending
		v.HasLiteral = true
		s.stats.Literals[name] = s.pending
		if isKeywordVariant(name) {
			s.keywords[s.pending] = struct{}{}
		}
		s.pending = ""
		s.hasPending = false
	}
	s.stats.Variants = append(s.stats.Variants, v)
}

// Stats finalises the scan and returns the accumulated facts.
func (s *Scanner) Stats() Stats {
	switch s.state {
	case stateOutside:
		diag.ReportWarning(s.reporter, diag.TaxEnumNotFound, 0, "", "no TokenKind enumeration found")
	case stateInside:
		diag.ReportInfo(s.reporter, diag.TaxEnumUnterminated, s.line, "", "end of input inside TokenKind enumeration")
	}
	if s.hasPending {
		diag.ReportInfo(s.reporter, diag.TaxOrphanLiteral, s.pendingLine, s.pending,
			fmt.Sprintf("literal %q not attached to any variant", s.pending))
	}

	out := s.stats
	out.Keywords = make([]string, 0, len(s.keywords))
	for kw := range s.keywords {
		out.Keywords = append(out.Keywords, kw)
	}
	sort.Strings(out.Keywords)
	return out
}

// Scan runs a full scan over text.
func Scan(text string, reporter diag.Reporter) Stats {
	sc := NewScanner(reporter)
	for _, line := range splitLines(text) {
		sc.Feed(line)
		if sc.Done() {
			break
		}
	}
	return sc.Stats()
}

// ScanReader runs a full scan over r.
func ScanReader(r io.Reader, reporter diag.Reporter) (Stats, error) {
	sc := NewScanner(reporter)
	br := bufio.NewScanner(r)
	br.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for br.Scan() {
		sc.Feed(strings.TrimSuffix(br.Text(), "\r"))
		if sc.Done() {
			break
		}
	}
	if err := br.Err(); err != nil {
		return Stats{}, err
	}
	return sc.Stats(), nil
}

// splitLines splits on \n and \r\n without yielding a trailing empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
