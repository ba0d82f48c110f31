package pipe

import (
	"context"

	"github.com/eapache/queue"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
)

// Buffer decouples producer and consumer rates with an unbounded FIFO
// between two stages. On cancellation the queued outcomes are still
// delivered to the consumer, unless process-remaining is disabled
// through the context (core.WithProcessOptions).
func Buffer[T, E any](ctx context.Context, input <-chan outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
	out := make(chan outcome.Outcome[T, E])

	go func() {
		defer close(out)

		q := queue.New()

		for input != nil || q.Length() > 0 {
			var sendCh chan<- outcome.Outcome[T, E]
			var next outcome.Outcome[T, E]

			if q.Length() > 0 {
				sendCh = out
				next = q.Peek().(outcome.Outcome[T, E])
			}

			select {
			case v, ok := <-input:
				if !ok {
					input = nil
					continue
				}
				q.Add(v)
			case sendCh <- next:
				q.Remove()
			case <-ctx.Done():
				if core.IsProcessRemainingEnabled(ctx, true) {
					flush[T, E](out, q)
				}
				return
			}
		}
	}()

	return out
}

// flush hands the queued outcomes to the consumer before the buffer
// shuts down.
func flush[T, E any](out chan<- outcome.Outcome[T, E], q *queue.Queue) {
	for q.Length() > 0 {
		out <- q.Peek().(outcome.Outcome[T, E])
		q.Remove()
	}
}
