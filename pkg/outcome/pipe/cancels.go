package pipe

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
)

var ErrCancelled = errors.New("operation cancelled")

// CancelRemainingOutcomes drains the input channel after cancellation,
// reporting every remaining outcome as a failure. The producer must
// close the input channel for the drain to finish.
func CancelRemainingOutcomes[In, Out any](ctx context.Context,
	inputCh <-chan outcome.Outcome[In, error], outCh chan<- outcome.Outcome[Out, error]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		for range inputCh {
			outCh <- outcome.Err[Out](ErrCancelled)
		}
	}
}

func CancelRemainingOutcome[In, Out any](ctx context.Context, in outcome.Outcome[In, error],
	outCh chan<- outcome.Outcome[Out, error]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- outcome.Err[Out](ErrCancelled)
	}
}

// CancelProcessedOutcome lets an outcome that finished processing right
// before the cancellation through.
func CancelProcessedOutcome[In, Out any](ctx context.Context, in outcome.Outcome[In, error],
	processed outcome.Outcome[Out, error], outCh chan<- outcome.Outcome[Out, error]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- processed
	}
}
