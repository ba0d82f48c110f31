// Package flow contains single-value, synchronous combinators that
// operate on Outcome[T, E]. These functions form the core building
// blocks for error-aware pipelines without channels.
//
// Highlights:
// - Of/Fail: construct Outcome[T, E]
// - Validate/AndValidate/ValidateAll: checks producing failures on invalid input
// - Then: strict bind, the error type is pinned across the step
// - ThenWiden: default bind with an explicit widening hook
// - Map/MapErr: transform the value or the failure payload
// - Try: call a function (Out, error) and convert the error to a failure
// - Tee/TeeIf/BothTee: side-effect helpers
// - Finally: reduce to a concrete value via ok/err handlers
package flow
