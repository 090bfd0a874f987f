// Package contract asserts literal snippets in a generated frontend artifact:
// every required snippet present, every forbidden snippet absent.
package contract

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"docsync/internal/config"
	"docsync/internal/trace"
)

// MissingFileError reports an absent artifact.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string { return "missing file: " + e.Path }

// Result holds violation names in declaration order.
type Result struct {
	Missing   []string // required snippets not found
	Forbidden []string // forbidden snippets found
}

// OK reports whether the artifact satisfies the contract.
func (r Result) OK() bool { return len(r.Missing) == 0 && len(r.Forbidden) == 0 }

// Evaluate checks text against the snippet lists.
func Evaluate(text string, required, forbidden []config.Snippet) Result {
	var r Result
	for _, s := range required {
		if !strings.Contains(text, s.Snippet) {
			r.Missing = append(r.Missing, s.Name)
		}
	}
	for _, s := range forbidden {
		if strings.Contains(text, s.Snippet) {
			r.Forbidden = append(r.Forbidden, s.Name)
		}
	}
	return r
}

// Check reads the configured artifact and evaluates it.
func Check(ctx context.Context, cfg *config.Config) (Result, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "contract", trace.CurrentSpan(ctx))

	path := cfg.Resolve(cfg.Contract.HTML)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		span.End("failed")
		return Result{}, &MissingFileError{Path: cfg.Contract.HTML}
	}
	if err != nil {
		span.End("failed")
		return Result{}, fmt.Errorf("read %s: %w", cfg.Contract.HTML, err)
	}

	r := Evaluate(string(data), cfg.Contract.Required, cfg.Contract.Forbidden)
	span.WithExtra("missing", strconv.Itoa(len(r.Missing))).
		WithExtra("forbidden", strconv.Itoa(len(r.Forbidden))).
		End("ok")
	return r, nil
}
