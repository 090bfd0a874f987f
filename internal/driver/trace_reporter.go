package driver

import (
	"fmt"

	"docsync/internal/diag"
	"docsync/internal/trace"
)

// traceReporter mirrors tolerated skips as line-scope trace points.
type traceReporter struct {
	tracer trace.Tracer
	parent uint64
}

func (r traceReporter) Report(code diag.Code, sev diag.Severity, line int, text, msg string) {
	if r.tracer == nil || !r.tracer.Level().ShouldEmit(trace.ScopeLine) {
		return
	}
	trace.Point(r.tracer, trace.ScopeLine, code.ID(), fmt.Sprintf("line %d: %s", line, msg), r.parent)
}
