// Package trace provides structured tracing for docsync commands.
//
// Enable it with the root flags:
//
//	docsync syntax --trace=- --trace-level=phase
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes each event immediately (file or stderr)
//   - RingTracer: keeps the last N events, dumped when a command fails
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// A level admits every scope at or above its granularity:
//
//   - LevelPhase: ScopeDriver (commands) and ScopePass (read, scan, render,
//     splice, write)
//   - LevelDetail and LevelDebug: additionally ScopeLine, one point event per
//     source line a scanner tolerated instead of interpreting
//
// Tracers travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "scan-taxonomy", parentID)
//	defer span.End("")
package trace
