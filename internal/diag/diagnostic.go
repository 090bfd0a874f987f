package diag

import "fmt"

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Line     int
	Text     string
}

// String renders the diagnostic as a single line:
// <line>: <SEV> <ID>: <message> | <text>
func (d Diagnostic) String() string {
	s := fmt.Sprintf("%d: %s %s: %s", d.Line, d.Severity, d.Code.ID(), d.Message)
	if d.Text != "" {
		s += " | " + d.Text
	}
	return s
}
