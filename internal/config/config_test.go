package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDiscoverWithoutFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, found, err := Discover(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if found {
		t.Fatalf("unexpected config found at %s", cfg.Path)
	}
	if cfg.Syntax.Tokens != Default().Syntax.Tokens {
		t.Fatalf("tokens = %q", cfg.Syntax.Tokens)
	}
	if got := cfg.Resolve("docs/a.puml"); got != filepath.Join(cfg.Root, "docs", "a.puml") {
		t.Fatalf("resolve = %q", got)
	}
}

func TestDiscoverWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docsync.toml"), `
[syntax]
tokens = "src/tokens.rs"

[drift]
extension = ".md"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg, found, err := Discover(nested)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if !found {
		t.Fatalf("config not found")
	}
	wantRoot, _ := filepath.Abs(root)
	if cfg.Root != wantRoot {
		t.Fatalf("root = %q, want %q", cfg.Root, wantRoot)
	}
	if cfg.Syntax.Tokens != "src/tokens.rs" {
		t.Fatalf("tokens = %q", cfg.Syntax.Tokens)
	}
	if cfg.Syntax.Diagram != Default().Syntax.Diagram {
		t.Fatalf("diagram default not applied: %q", cfg.Syntax.Diagram)
	}
	if cfg.Drift.Extension != ".md" {
		t.Fatalf("extension = %q", cfg.Drift.Extension)
	}
	if len(cfg.Contract.Required) != len(defaultRequired()) {
		t.Fatalf("required snippets = %d", len(cfg.Contract.Required))
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
contract:
  html: web/index.html
  required:
    - name: title
      snippet: "<title>"
  forbidden: []
`)
	cfg, err := Parse(data, FormatYAML, "docsync.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Contract.HTML != "web/index.html" {
		t.Fatalf("html = %q", cfg.Contract.HTML)
	}
	if len(cfg.Contract.Required) != 1 || cfg.Contract.Required[0].Snippet != "<title>" {
		t.Fatalf("required = %+v", cfg.Contract.Required)
	}
	if cfg.Contract.Forbidden == nil || len(cfg.Contract.Forbidden) != 0 {
		t.Fatalf("explicit empty forbidden list must be kept, got %+v", cfg.Contract.Forbidden)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[syntax]\ntoken = \"x\"\n"), FormatTOML, "docsync.toml")
	if err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Fatalf("err = %v", err)
	}
	_, err = Parse([]byte("syntax:\n  token: x\n"), FormatYAML, "docsync.yaml")
	if err == nil {
		t.Fatalf("expected yaml unknown field error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"extension", "[drift]\nextension = \"puml\"\n", "[drift].extension"},
		{"missing name", "[[contract.required]]\nsnippet = \"x\"\n", "missing name"},
		{"missing snippet", "[[contract.required]]\nname = \"x\"\n", "missing snippet"},
		{"duplicate", "[[contract.forbidden]]\nname = \"x\"\nsnippet = \"a\"\n[[contract.forbidden]]\nname = \"x\"\nsnippet = \"b\"\n", "duplicate name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml), FormatTOML, "docsync.toml")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	if f, err := DetectFormat("x/docsync.YML"); err != nil || f != FormatYAML {
		t.Fatalf("yml = %v, %v", f, err)
	}
	if _, err := DetectFormat("docsync.json"); err == nil {
		t.Fatalf("json must be rejected")
	}
}

func TestRel(t *testing.T) {
	cfg := Default()
	cfg.Root = filepath.FromSlash("/repo")
	if got := cfg.Rel(filepath.FromSlash("/repo/docs/x.md")); got != "docs/x.md" {
		t.Fatalf("rel = %q", got)
	}
}
