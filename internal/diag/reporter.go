package diag

// Reporter is the minimal sink the scanners emit into.
type Reporter interface {
	Report(code Code, sev Severity, line int, text, msg string)
}

// BagReporter collects reports into a Bag.
type BagReporter struct {
	Bag *Bag
}

func (r *BagReporter) Report(code Code, sev Severity, line int, text, msg string) {
	if r == nil || r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Line:     line,
		Text:     text,
	})
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, int, string, string) {}

// MultiReporter fans a report out to several sinks.
type MultiReporter []Reporter

func (m MultiReporter) Report(code Code, sev Severity, line int, text, msg string) {
	for _, r := range m {
		if r != nil {
			r.Report(code, sev, line, text, msg)
		}
	}
}

// ReportInfo is a shortcut for SevInfo reports on a possibly nil reporter.
func ReportInfo(r Reporter, code Code, line int, text, msg string) {
	if r == nil {
		return
	}
	r.Report(code, SevInfo, line, text, msg)
}

// ReportWarning is a shortcut for SevWarning reports on a possibly nil reporter.
func ReportWarning(r Reporter, code Code, line int, text, msg string) {
	if r == nil {
		return
	}
	r.Report(code, SevWarning, line, text, msg)
}
