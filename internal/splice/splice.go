// Package splice replaces marker-delimited regions of a text document.
//
// A region is bounded by two sentinel lines, each holding only its marker
// literal plus optional surrounding whitespace. Replacement text is
// re-indented with the start marker's indentation, and both marker lines are
// kept, so splicing the same replacement again yields identical output.
package splice

import (
	"strings"
)

// Region names one marker pair.
type Region struct {
	Start string
	End   string
}

var (
	// TokenStats is the token statistics region of the syntax diagram.
	TokenStats = Region{Start: "<<TOKEN_STATS>>", End: "<<TOKEN_STATS_END>>"}
	// PrecedenceTable is the precedence region of the syntax diagram.
	PrecedenceTable = Region{Start: "<<PRECEDENCE_TABLE>>", End: "<<PRECEDENCE_TABLE_END>>"}
)

// markerLine is a located marker: byte offsets of the line body and its indentation.
type markerLine struct {
	index  int // line number, 0-based
	start  int // offset of the first byte of the line
	end    int // offset just past the line body, before any line break
	indent string
}

// findMarker returns the first line consisting of marker with optional
// horizontal indentation and trailing whitespace.
func findMarker(text, marker string) (markerLine, bool) {
	offset := 0
	for i := 0; offset <= len(text); i++ {
		next := strings.IndexByte(text[offset:], '\n')
		end := len(text)
		if next >= 0 {
			end = offset + next
		}
		body := strings.TrimSuffix(text[offset:end], "\r")
		trimmed := strings.TrimLeft(body, " \t")
		if strings.TrimRight(trimmed, " \t\r\f\v") == marker {
			return markerLine{
				index:  i,
				start:  offset,
				end:    end,
				indent: body[:len(body)-len(trimmed)],
			}, true
		}
		if next < 0 {
			break
		}
		offset = end + 1
	}
	return markerLine{}, false
}

// Indent prefixes every line of text with indent. Blank lines become the
// indent alone.
func Indent(text, indent string) string {
	lines := splitLines(text)
	for i, l := range lines {
		if l == "" {
			lines[i] = indent
			continue
		}
		lines[i] = indent + l
	}
	return strings.Join(lines, "\n")
}

// Replace swaps the content between the region's markers for replacement.
// The result is: text through the start marker line, a newline, the
// re-indented replacement, a newline, then text from the end marker line on.
func Replace(text string, region Region, replacement string) (string, error) {
	start, ok := findMarker(text, region.Start)
	if !ok {
		return "", &Error{Kind: MissingMarker, Marker: region.Start, Start: true}
	}
	end, ok := findMarker(text, region.End)
	if !ok {
		return "", &Error{Kind: MissingMarker, Marker: region.End}
	}
	if end.index <= start.index {
		return "", &Error{Kind: MarkerOrder, Marker: region.Start}
	}

	var b strings.Builder
	b.Grow(len(text) + len(replacement))
	b.WriteString(text[:start.end])
	b.WriteByte('\n')
	b.WriteString(Indent(replacement, start.indent))
	b.WriteByte('\n')
	b.WriteString(text[end.start:])
	return b.String(), nil
}

// Block pairs a region with its replacement.
type Block struct {
	Region      Region
	Replacement string
}

// ReplaceAll applies blocks in order. Nothing is returned unless every block
// succeeds; doc names the document in error messages.
func ReplaceAll(text, doc string, blocks ...Block) (string, error) {
	out := text
	for _, blk := range blocks {
		var err error
		out, err = Replace(out, blk.Region, blk.Replacement)
		if err != nil {
			if se, ok := err.(*Error); ok {
				se.Doc = doc
			}
			return "", err
		}
	}
	return out, nil
}

// splitLines mirrors line splitting on \n and \r\n without a trailing empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
