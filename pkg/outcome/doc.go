// Package outcome defines a binary result type with a typed failure
// payload and the branch protocol used to propagate failures out of a
// function early.
//
// Highlights:
// - Ok/Err: construct Outcome[T, E]
// - Strict/Loose: wrap an outcome for identity-only propagation
// - Branch: strict early-return step, error types must match exactly
// - BranchWiden: default early-return step with a widening hook
// - Widen/ToError: standalone failure-payload conversions
//
// The default step applies a caller-supplied conversion to the failure
// payload on every propagation. That is convenient for upcasting
// concrete errors into broader ones, but inside a function whose error
// type is itself a type parameter there is no concrete target for the
// conversion to resolve to. Branch on a Strict value removes the
// degree of freedom: the payload passes through unchanged and the
// compiler checks the error types for exact equality.
package outcome
