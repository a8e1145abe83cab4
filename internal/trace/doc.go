// Package trace records what the front end is doing and for how long.
//
// Tracing is off by default. The CLI turns it on with
//
//	cee check --trace=- --trace-level=phase ./src
//
// Events are spans (begin/end pairs) and points. Every event has a Scope;
// the Level decides which scopes get through:
//
//   - ScopeDriver: a whole CLI command
//   - ScopePhase: tokenize, parse, check of one unit of work
//   - ScopeFile: per-file work inside a parallel run
//   - ScopeNode: individual declarations, only at LevelDebug
//
// Tracers travel in context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.BeginCtx(ctx, trace.ScopePhase, "parse")
//	defer span.End("")
package trace
