// Package pipe provides channel-lifted helpers that wrap flow
// combinators for concurrent pipelines over Outcome[T, E].
//
// Common usage:
// - Run: execute an engine over an input channel with a fixed number of tracks
// - Validate/Then/Map/Try/Tee: lift flow operations over channels
// - Junction: compose stages with configurable parallelism
// - RunWith/JunctionWith: stages with custom cancellation handlers, see CancelRemainingOutcomes
// - CancelRemaining*/CancelProcessedOutcome: canned cancellation handlers
// - Buffer: unbounded FIFO between stages for uneven rates
// - Finally: map Outcome[In, E] to Out on completion
package pipe
