// Package drift detects diagram files that changed since the manifest was
// last refreshed. The manifest maps root-relative slash paths to the
// lowercase hex sha256 of each file's bytes.
package drift

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrManifestMissing is returned by Load when no manifest exists yet.
var ErrManifestMissing = errors.New("diagram manifest missing; run with --update to create it")

// Manifest maps a root-relative slash path to its content digest.
type Manifest map[string]string

// Paths returns the manifest keys in ascending order.
func (m Manifest) Paths() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode renders m as two-space indented JSON with sorted keys and a
// trailing newline.
func Encode(m Manifest) ([]byte, error) {
	if m == nil {
		m = Manifest{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads a manifest file. A missing file yields ErrManifestMissing.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrManifestMissing
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: invalid manifest: %w", path, err)
	}
	if m == nil {
		m = Manifest{}
	}
	return m, nil
}

// Write replaces the manifest file with m, creating parent directories.
func Write(path string, m Manifest) error {
	data, err := Encode(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Result lists the discrepancies between a stored and a current manifest.
// Each group is sorted.
type Result struct {
	Missing []string // stored but no longer on disk
	Added   []string // on disk but not stored
	Changed []string // present in both with different digests
}

// Clean reports whether the manifests matched.
func (r Result) Clean() bool {
	return len(r.Missing) == 0 && len(r.Added) == 0 && len(r.Changed) == 0
}

// Compare diffs stored against current.
func Compare(stored, current Manifest) Result {
	var r Result
	for _, p := range stored.Paths() {
		digest, ok := current[p]
		switch {
		case !ok:
			r.Missing = append(r.Missing, p)
		case digest != stored[p]:
			r.Changed = append(r.Changed, p)
		}
	}
	for _, p := range current.Paths() {
		if _, ok := stored[p]; !ok {
			r.Added = append(r.Added, p)
		}
	}
	return r
}
