package contract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"docsync/internal/config"
)

func TestEvaluate(t *testing.T) {
	required := []config.Snippet{
		{Name: "file_tree", Snippet: `id="fileTree"`},
		{Name: "tabs", Snippet: `id="tabBar"`},
		{Name: "autosave", Snippet: "scheduleAutosave"},
	}
	forbidden := []config.Snippet{
		{Name: "cdn_monaco", Snippet: "cdn.jsdelivr.net/npm/monaco-editor"},
	}

	tests := []struct {
		name string
		text string
		want Result
	}{
		{
			name: "all present",
			text: `<div id="fileTree"></div><div id="tabBar"></div><script>scheduleAutosave()</script>`,
			want: Result{},
		},
		{
			name: "missing keeps declaration order",
			text: `<script>scheduleAutosave()</script>`,
			want: Result{Missing: []string{"file_tree", "tabs"}},
		},
		{
			name: "forbidden present",
			text: `id="fileTree" id="tabBar" scheduleAutosave https://cdn.jsdelivr.net/npm/monaco-editor`,
			want: Result{Forbidden: []string{"cdn_monaco"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.text, required, forbidden)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Evaluate = %+v, want %+v", got, tt.want)
			}
			if got.OK() != (len(tt.want.Missing) == 0 && len(tt.want.Forbidden) == 0) {
				t.Fatalf("OK() = %v", got.OK())
			}
		})
	}
}

func TestCheckMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.Root = t.TempDir()

	_, err := Check(context.Background(), cfg)
	var mfe *MissingFileError
	if !errors.As(err, &mfe) {
		t.Fatalf("err = %v, want MissingFileError", err)
	}
	if err.Error() != "missing file: crates/trust-runtime/src/web/ui/ide.html" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestCheckReadsConfiguredFile(t *testing.T) {
	cfg := config.Default()
	cfg.Root = t.TempDir()
	cfg.Contract.HTML = "ide.html"
	cfg.Contract.Required = []config.Snippet{{Name: "palette", Snippet: `id="commandPalette"`}}
	cfg.Contract.Forbidden = nil
	if err := os.WriteFile(filepath.Join(cfg.Root, "ide.html"), []byte(`<div id="commandPalette">`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	r, err := Check(context.Background(), cfg)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !r.OK() {
		t.Fatalf("result = %+v", r)
	}
}
