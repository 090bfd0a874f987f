// Package config locates and loads docsync.toml / docsync.yaml.
//
// Every key is optional; anything left unset falls back to Default. Paths in
// the file are slash-separated and relative to the repository root, which is
// the directory holding the config file unless overridden.
package config

import (
	"path/filepath"
	"strings"
)

// Snippet is a named literal substring checked by the contract command.
type Snippet struct {
	Name    string `toml:"name" yaml:"name"`
	Snippet string `toml:"snippet" yaml:"snippet"`
}

type SyntaxConfig struct {
	Tokens  string `toml:"tokens" yaml:"tokens"`
	Diagram string `toml:"diagram" yaml:"diagram"`
	Report  string `toml:"report" yaml:"report"`
}

type DriftConfig struct {
	Docs      string `toml:"docs" yaml:"docs"`
	Extension string `toml:"extension" yaml:"extension"`
	Manifest  string `toml:"manifest" yaml:"manifest"`
}

type ContractConfig struct {
	HTML      string    `toml:"html" yaml:"html"`
	Required  []Snippet `toml:"required" yaml:"required"`
	Forbidden []Snippet `toml:"forbidden" yaml:"forbidden"`
}

type Config struct {
	Syntax   SyntaxConfig   `toml:"syntax" yaml:"syntax"`
	Drift    DriftConfig    `toml:"drift" yaml:"drift"`
	Contract ContractConfig `toml:"contract" yaml:"contract"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-" yaml:"-"`
	// Root is the directory relative paths resolve against.
	Root string `toml:"-" yaml:"-"`
}

// Resolve turns a config path into a filesystem path under Root.
func (c *Config) Resolve(rel string) string {
	p := filepath.FromSlash(rel)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// Rel returns a slash-separated path relative to Root, for display.
func (c *Config) Rel(path string) string {
	if r, err := filepath.Rel(c.Root, path); err == nil && !strings.HasPrefix(r, "..") {
		return filepath.ToSlash(r)
	}
	return filepath.ToSlash(path)
}

// fillDefaults copies defaults into every unset field.
func (c *Config) fillDefaults() {
	d := Default()
	setIfEmpty(&c.Syntax.Tokens, d.Syntax.Tokens)
	setIfEmpty(&c.Syntax.Diagram, d.Syntax.Diagram)
	setIfEmpty(&c.Syntax.Report, d.Syntax.Report)
	setIfEmpty(&c.Drift.Docs, d.Drift.Docs)
	setIfEmpty(&c.Drift.Extension, d.Drift.Extension)
	setIfEmpty(&c.Drift.Manifest, d.Drift.Manifest)
	setIfEmpty(&c.Contract.HTML, d.Contract.HTML)
	if c.Contract.Required == nil {
		c.Contract.Required = d.Contract.Required
	}
	if c.Contract.Forbidden == nil {
		c.Contract.Forbidden = d.Contract.Forbidden
	}
}

func setIfEmpty(dst *string, def string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = def
	}
}
