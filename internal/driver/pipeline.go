// Package driver runs the syntax pipeline: read the token source and the
// diagram, scan, render, splice both regions in memory, then write.
package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"docsync/internal/config"
	"docsync/internal/diag"
	"docsync/internal/observ"
	"docsync/internal/precedence"
	"docsync/internal/report"
	"docsync/internal/splice"
	"docsync/internal/taxonomy"
	"docsync/internal/trace"
)

// Options configures one pipeline run.
type Options struct {
	Config *config.Config
	// Timer receives read/scan/render/splice/write phases; may be nil.
	Timer *observ.Timer
	// MaxDiagnostics bounds the tolerated-skip bag; 0 keeps everything.
	MaxDiagnostics int
}

// Outcome is everything a run produced.
type Outcome struct {
	Facts report.Facts
	Bag   *diag.Bag

	DiagramPath string
	ReportPath  string
	// Diagram and Report are the regenerated artifact bodies.
	Diagram string
	Report  string

	// Stale lists the artifacts whose bytes on disk differ from the
	// regenerated ones, diagram first. Paths are root-relative.
	Stale []string
	// Written lists the artifacts written by Syntax, in write order.
	Written []string
}

// UpToDate reports whether both artifacts already matched the source.
func (o *Outcome) UpToDate() bool { return len(o.Stale) == 0 }

func (o Options) validate() error {
	if o.Config == nil {
		return errors.New("driver: nil config")
	}
	return nil
}

// Extract reads the token source and runs both scanners over it.
func Extract(ctx context.Context, opts Options) (report.Facts, *diag.Bag, error) {
	if err := opts.validate(); err != nil {
		return report.Facts{}, nil, err
	}
	cfg := opts.Config
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	done := opts.Timer.Track("read")
	span := trace.Begin(tracer, trace.ScopePass, "read", parent)
	source, err := readSource(cfg.Resolve(cfg.Syntax.Tokens))
	span.WithExtra("bytes", strconv.Itoa(len(source))).End("")
	done(cfg.Syntax.Tokens)
	if err != nil {
		return report.Facts{}, nil, err
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	rep := diag.MultiReporter{
		&diag.BagReporter{Bag: bag},
		traceReporter{tracer: tracer, parent: parent},
	}

	done = opts.Timer.Track("scan")
	span = trace.Begin(tracer, trace.ScopePass, "scan-taxonomy", parent)
	stats := taxonomy.Scan(source, rep)
	span.WithExtra("variants", strconv.Itoa(stats.Total)).
		WithExtra("keywords", strconv.Itoa(len(stats.Keywords))).
		End("")

	span = trace.Begin(tracer, trace.ScopePass, "scan-precedence", parent)
	table := precedence.Scan(source, rep)
	span.WithExtra("infix", strconv.Itoa(len(table.Infix))).
		WithExtra("prefix", strconv.Itoa(len(table.Prefix))).
		End("")
	done(fmt.Sprintf("%d variants, %d infix, %d prefix", stats.Total, len(table.Infix), len(table.Prefix)))

	bag.Sort()
	return report.Facts{Stats: stats, Table: table, ReportPath: cfg.Syntax.Report}, bag, nil
}

// Render produces the spliced diagram and the Markdown report for facts.
// doc names the diagram in marker errors.
func Render(ctx context.Context, facts report.Facts, diagram, doc string) (string, string, error) {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	span := trace.Begin(tracer, trace.ScopePass, "splice", parent)
	spliced, err := splice.ReplaceAll(diagram, doc,
		splice.Block{Region: splice.TokenStats, Replacement: report.TokenStatsBlock(facts)},
		splice.Block{Region: splice.PrecedenceTable, Replacement: report.PrecedenceBlock(facts)},
	)
	if err != nil {
		span.End("failed")
		return "", "", err
	}
	span.End("")

	return spliced, report.Markdown(facts), nil
}

// Generate does every step short of writing. The returned outcome lists
// the artifacts that a write would change.
func Generate(ctx context.Context, opts Options) (*Outcome, error) {
	facts, bag, err := Extract(ctx, opts)
	if err != nil {
		return nil, err
	}
	cfg := opts.Config
	out := &Outcome{
		Facts:       facts,
		Bag:         bag,
		DiagramPath: cfg.Resolve(cfg.Syntax.Diagram),
		ReportPath:  cfg.Resolve(cfg.Syntax.Report),
	}

	done := opts.Timer.Track("read")
	current, err := readSource(out.DiagramPath)
	done(cfg.Syntax.Diagram)
	if err != nil {
		return nil, err
	}

	done = opts.Timer.Track("render")
	out.Diagram, out.Report, err = Render(ctx, facts, current, cfg.Syntax.Diagram)
	done("")
	if err != nil {
		return nil, err
	}

	if out.Diagram != current {
		out.Stale = append(out.Stale, cfg.Rel(out.DiagramPath))
	}
	onDisk, err := os.ReadFile(out.ReportPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		out.Stale = append(out.Stale, cfg.Rel(out.ReportPath))
	case err != nil:
		return nil, &SourceReadError{Path: out.ReportPath, Err: err}
	case !bytes.Equal(onDisk, []byte(out.Report)):
		out.Stale = append(out.Stale, cfg.Rel(out.ReportPath))
	}
	return out, nil
}

// Syntax regenerates and writes both artifacts. The diagram is written
// first, then the report; nothing is written unless both were produced.
func Syntax(ctx context.Context, opts Options) (*Outcome, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "syntax", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)

	out, err := Generate(ctx, opts)
	if err != nil {
		span.End("failed")
		return nil, err
	}

	done := opts.Timer.Track("write")
	wspan := trace.Begin(tracer, trace.ScopePass, "write", span.ID())
	err = writeArtifacts(out)
	wspan.WithExtra("files", strconv.Itoa(len(out.Written))).End("")
	done(fmt.Sprintf("%d files", len(out.Written)))
	if err != nil {
		span.End("failed")
		return out, err
	}

	span.WithExtra("stale", strconv.Itoa(len(out.Stale))).End("ok")
	return out, nil
}

// Check regenerates both artifacts in memory and reports the stale ones.
func Check(ctx context.Context, opts Options) (*Outcome, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "syntax-check", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)

	out, err := Generate(ctx, opts)
	if err != nil {
		span.End("failed")
		return nil, err
	}
	span.WithExtra("stale", strconv.Itoa(len(out.Stale))).End("ok")
	return out, nil
}

func writeArtifacts(out *Outcome) error {
	if err := os.WriteFile(out.DiagramPath, []byte(out.Diagram), 0o644); err != nil {
		return fmt.Errorf("write diagram: %w", err)
	}
	out.Written = append(out.Written, out.DiagramPath)

	if err := os.MkdirAll(filepath.Dir(out.ReportPath), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	if err := os.WriteFile(out.ReportPath, []byte(out.Report), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	out.Written = append(out.Written, out.ReportPath)
	return nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &SourceReadError{Path: path, Err: err}
	}
	return string(data), nil
}
