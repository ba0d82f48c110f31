package core

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

type CancellationHandlers[In, Out, E any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan outcome.Outcome[In, E], outCh chan<- outcome.Outcome[Out, E])
	OnCancelUnprocessed func(ctx context.Context, unprocessed outcome.Outcome[In, E], outCh chan<- outcome.Outcome[Out, E])
	OnCancelProcessed   func(ctx context.Context, in outcome.Outcome[In, E], processed outcome.Outcome[Out, E], outCh chan<- outcome.Outcome[Out, E])
}

// Drive pulls outcomes from inputCh, runs them through the engine and
// delivers the results to outCh until the input is drained or the
// context is cancelled. One Drive call is one track; callers start as
// many tracks as they want over the same channels.
func Drive[In, Out, E any](ctx context.Context, inputCh <-chan outcome.Outcome[In, E], outCh chan<- outcome.Outcome[Out, E],
	engine func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E],
	handlers CancellationHandlers[In, Out, E],
	onDelivered func(ctx context.Context, out outcome.Outcome[Out, E]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onDelivered != nil {
						onDelivered(ctx, pr)
					}
				}
			}
		}
	}
}
