// Package diag defines the diagnostic model shared by the DSL front end.
//
// # Purpose
//
//   - Provide deterministic data structures that capture recoverable build
//     errors produced while assembling shader IR.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Function – the function definition being built when the error occurred,
//     empty at global scope. The DSL has no source text, so there are no
//     spans; the enclosing function is the only useful location anchor.
//
// # Emitting diagnostics
//
// Producers should emit through a diag.Reporter to decouple emission from
// storage. BagReporter aggregates diagnostics into a Bag, which the compiler
// consults at the end of a build session to decide whether the assembled IR
// is usable. Rendering lives in render.go and is only used by the default
// (fatal) error path and the CLI.
package diag
