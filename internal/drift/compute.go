package drift

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"docsync/internal/trace"
)

// Options selects the files tracked by the manifest.
type Options struct {
	Root      string // repository root; manifest keys are relative to it
	Docs      string // directory searched recursively, relative to Root
	Extension string // e.g. ".puml"
	Manifest  string // manifest file path, relative to Root
	// Jobs bounds concurrent hashing; <=0 means GOMAXPROCS.
	Jobs int
}

func (o Options) resolve(rel string) string {
	p := filepath.FromSlash(rel)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.Root, p)
}

// ManifestPath is the absolute location of the manifest file.
func (o Options) ManifestPath() string { return o.resolve(o.Manifest) }

// List returns the tracked files as sorted root-relative slash paths.
// A missing docs directory yields an empty list.
func List(opts Options) ([]string, error) {
	dir := opts.resolve(opts.Docs)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), opts.Extension) {
			return nil
		}
		rel, err := filepath.Rel(opts.Root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", opts.Docs, err)
	}
	sort.Strings(files)
	return files, nil
}

// Digest returns the lowercase hex sha256 of the file at path.
func Digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Compute hashes every tracked file in parallel.
func Compute(ctx context.Context, opts Options) (Manifest, error) {
	files, err := List(opts)
	if err != nil {
		return nil, err
	}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "hash", trace.CurrentSpan(ctx))
	defer func() { span.WithExtra("files", strconv.Itoa(len(files))).End("") }()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	digests := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, rel := range files {
		i, rel := i, rel
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			d, err := Digest(opts.resolve(rel))
			if err != nil {
				return fmt.Errorf("hash %s: %w", rel, err)
			}
			digests[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := make(Manifest, len(files))
	for i, rel := range files {
		m[rel] = digests[i]
	}
	return m, nil
}

// Check compares the tracked files against the stored manifest.
func Check(ctx context.Context, opts Options) (Result, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "drift", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)

	current, err := Compute(ctx, opts)
	if err != nil {
		span.End("failed")
		return Result{}, err
	}
	stored, err := Load(opts.ManifestPath())
	if err != nil {
		span.End("failed")
		return Result{}, err
	}
	r := Compare(stored, current)
	span.WithExtra("missing", strconv.Itoa(len(r.Missing))).
		WithExtra("added", strconv.Itoa(len(r.Added))).
		WithExtra("changed", strconv.Itoa(len(r.Changed))).
		End("ok")
	return r, nil
}

// Update rewrites the manifest to match the tracked files.
func Update(ctx context.Context, opts Options) (Manifest, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "drift-update", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)

	current, err := Compute(ctx, opts)
	if err != nil {
		span.End("failed")
		return nil, err
	}
	if err := Write(opts.ManifestPath(), current); err != nil {
		span.End("failed")
		return nil, err
	}
	span.WithExtra("files", strconv.Itoa(len(current))).End("ok")
	return current, nil
}
