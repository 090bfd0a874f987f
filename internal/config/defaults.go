package config

// Default returns the built-in configuration: the fixed repository layout
// the tools were written for.
func Default() *Config {
	return &Config{
		Syntax: SyntaxConfig{
			Tokens:  "crates/trust-syntax/src/lexer/tokens.rs",
			Diagram: "docs/diagrams/syntax/syntax-pipeline.puml",
			Report:  "docs/diagrams/generated/syntax-stats.md",
		},
		Drift: DriftConfig{
			Docs:      "docs",
			Extension: ".puml",
			Manifest:  "docs/diagrams/manifest.json",
		},
		Contract: ContractConfig{
			HTML:      "crates/trust-runtime/src/web/ui/ide.html",
			Required:  defaultRequired(),
			Forbidden: defaultForbidden(),
		},
		Root: ".",
	}
}

func defaultRequired() []Snippet {
	return []Snippet{
		{"monaco_bundle_import", "/ide/assets/ide-monaco.20260215.js"},
		{"no_cdn_hint", "could not be loaded from /ide/assets"},
		{"monaco_completion_provider", "registerCompletionItemProvider(ST_LANGUAGE_ID"},
		{"monaco_hover_provider", "registerHoverProvider(ST_LANGUAGE_ID"},
		{"monaco_markers", "setModelMarkers(model, MONACO_MARKER_OWNER"},
		{"trigger_suggest", "editor.action.triggerSuggest"},
		{"file_tree", `id="fileTree"`},
		{"tabs", `id="tabBar"`},
		{"command_palette", `id="commandPalette"`},
		{"autosave", "scheduleAutosave"},
		{"offline_handler", `window.addEventListener("offline"`},
		{"online_handler", `window.addEventListener("online"`},
		{"health_endpoint", `"/api/ide/health"`},
		{"fs_audit_endpoint", "/api/ide/fs/audit"},
		{"diagnostics_endpoint", `"/api/ide/diagnostics"`},
		{"hover_endpoint", `"/api/ide/hover"`},
		{"completion_endpoint", `"/api/ide/completion"`},
		{"format_endpoint", `"/api/ide/format"`},
		{"symbols_endpoint", "/api/ide/symbols"},
		{"validate_endpoint", `"/api/ide/validate"`},
		{"frontend_telemetry_endpoint", `"/api/ide/frontend-telemetry"`},
		{"presence_endpoint", `"/api/ide/presence-model"`},
		{"multi_tab_presence_channel", "trust.ide.presence"},
		{"analysis_degraded_mode", "analysis degraded"},
		{"retry_action", "retryLastFailedAction"},
		{"format_command", "formatActiveDocument"},
		{"task_links_panel", `id="taskLinksPanel"`},
		{"validate_button", `id="validateBtn"`},
		{"skip_link", "Skip to IDE content"},
		{"dialog_a11y", `role="dialog" aria-modal="true"`},
		{"save_shortcut", "Ctrl/Cmd+S"},
	}
}

func defaultForbidden() []Snippet {
	return []Snippet{
		{"cdn_esm_sh", "esm.sh/"},
	}
}
