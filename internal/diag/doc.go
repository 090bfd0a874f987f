// Package diag defines the diagnostic model shared by the scanners.
//
// # Purpose
//
// The token taxonomy and precedence scanners are deliberately lenient: a line
// they cannot interpret is skipped, never fatal. Each skip is still reported
// as a Diagnostic so that callers can surface it (docsync syntax --explain)
// or, later, promote selected codes to warnings without touching the scan
// loops themselves.
//
// # Data model
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short.
//   - Line – 1-based line number in the scanned file (0 when unknown).
//   - Text – the offending source line, trimmed.
//
// Producers emit through a Reporter; BagReporter collects into a Bag, which
// supports deterministic sorting and capped storage.
//
// Package diag does not perform IO. Rendering lives with the CLI.
package diag
