package observ

import (
	"strings"
	"testing"
)

func TestTimerRecordsPhasesInOrder(t *testing.T) {
	tm := NewTimer()
	done := tm.Track("read")
	done("2 files")
	idx := tm.Begin("scan")
	tm.End(idx, "")
	tm.End(99, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(report.Phases))
	}
	if report.Phases[0].Name != "read" || report.Phases[0].Note != "2 files" {
		t.Fatalf("first phase = %+v", report.Phases[0])
	}
	if report.Phases[1].Name != "scan" {
		t.Fatalf("second phase = %+v", report.Phases[1])
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Fatalf("total %v smaller than a phase", report.TotalMS)
	}

	sum := tm.Summary()
	if !strings.HasPrefix(sum, "timings:\n") || !strings.Contains(sum, "// 2 files") || !strings.Contains(sum, "total") {
		t.Fatalf("summary = %q", sum)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Track("read")("")
	if got := tm.Report(); len(got.Phases) != 0 {
		t.Fatalf("nil timer report = %+v", got)
	}
}
