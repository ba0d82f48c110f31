package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
	"github.com/ib-77/outcome/pkg/outcome/flow"
)

// stage lifts a synchronous step over a channel: the input outcome is
// processed in its own goroutine and the single result is delivered
// unless the context is cancelled first.
func stage[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	apply func(ctx context.Context, in outcome.Outcome[In, E]) outcome.Outcome[Out, E],
	onCancel func(ctx context.Context, in outcome.Outcome[In, E])) <-chan outcome.Outcome[Out, E] {

	ch := make(chan outcome.Outcome[Out, E])
	out := make(chan outcome.Outcome[Out, E])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- apply(ctx, input)
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else {
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

// Run executes an engine over the input channel on a fixed number of
// tracks. The track count can be overridden through the context, see
// core.WithTrackOptions.
func Run[T, E any](ctx context.Context, inputCh <-chan outcome.Outcome[T, E],
	engine func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E],
	tracks int) <-chan outcome.Outcome[T, E] {
	return Junction(ctx, inputCh, engine, tracks)
}

// Junction composes a stage with configurable parallelism, moving from
// Outcome[In, E] to Outcome[Out, E].
func Junction[In, Out, E any](ctx context.Context, inputCh <-chan outcome.Outcome[In, E],
	engine func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E],
	tracks int) <-chan outcome.Outcome[Out, E] {
	return JunctionWith(ctx, inputCh, engine, core.CancellationHandlers[In, Out, E]{}, nil, tracks)
}

// RunWith is Run with custom cancellation handlers and a delivery
// callback, for pipelines that must account for every outcome when the
// context is cancelled.
func RunWith[T, E any](ctx context.Context, inputCh <-chan outcome.Outcome[T, E],
	engine func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E],
	handlers core.CancellationHandlers[T, T, E],
	onDelivered func(ctx context.Context, out outcome.Outcome[T, E]), tracks int) <-chan outcome.Outcome[T, E] {
	return JunctionWith(ctx, inputCh, engine, handlers, onDelivered, tracks)
}

// JunctionWith is Junction with custom cancellation handlers and a
// delivery callback.
func JunctionWith[In, Out, E any](ctx context.Context, inputCh <-chan outcome.Outcome[In, E],
	engine func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E],
	handlers core.CancellationHandlers[In, Out, E],
	onDelivered func(ctx context.Context, out outcome.Outcome[Out, E]), tracks int) <-chan outcome.Outcome[Out, E] {

	out := make(chan outcome.Outcome[Out, E])
	wg := &sync.WaitGroup{}

	trackCount := core.GetTrackMaxCount(ctx, tracks)
	for i := 0; i < trackCount; i++ {
		wg.Add(1)
		go core.Drive(ctx, inputCh, out, engine, handlers, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Validate[T, E any](validate func(ctx context.Context, in T) (valid bool, e E)) func(ctx context.Context,
	input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
	return func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
		return stage(ctx, input, func(ctx context.Context, in outcome.Outcome[T, E]) outcome.Outcome[T, E] {
			return flow.AndValidate(ctx, in, validate)
		}, nil)
	}
}

// Then lifts a strict bind over the channel: the failure payload moves
// through the stage unchanged.
func Then[In, Out, E any](onOk func(ctx context.Context, v In) outcome.Outcome[Out, E]) func(ctx context.Context,
	input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
	return func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
		return stage(ctx, input, func(ctx context.Context, in outcome.Outcome[In, E]) outcome.Outcome[Out, E] {
			return flow.Then(ctx, in.Strict(), onOk)
		}, nil)
	}
}

func Map[In, Out, E any](onOk func(ctx context.Context, v In) Out) func(ctx context.Context,
	input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
	return func(ctx context.Context, input outcome.Outcome[In, E]) <-chan outcome.Outcome[Out, E] {
		return stage(ctx, input, func(ctx context.Context, in outcome.Outcome[In, E]) outcome.Outcome[Out, E] {
			return flow.Map(ctx, in, onOk)
		}, nil)
	}
}

func Try[In, Out any](onTry func(ctx context.Context, v In) (Out, error)) func(ctx context.Context,
	input outcome.Outcome[In, error]) <-chan outcome.Outcome[Out, error] {
	return func(ctx context.Context, input outcome.Outcome[In, error]) <-chan outcome.Outcome[Out, error] {
		return stage(ctx, input, func(ctx context.Context, in outcome.Outcome[In, error]) outcome.Outcome[Out, error] {
			return flow.Try(ctx, in, onTry)
		}, nil)
	}
}

func Tee[T, E any](sideEffect func(ctx context.Context, o outcome.Outcome[T, E])) func(ctx context.Context,
	input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
	return func(ctx context.Context, input outcome.Outcome[T, E]) <-chan outcome.Outcome[T, E] {
		return stage(ctx, input, func(ctx context.Context, in outcome.Outcome[T, E]) outcome.Outcome[T, E] {
			return flow.Tee(ctx, in, sideEffect)
		}, nil)
	}
}

type FinallyHandlers[In, Out, E any] struct {
	OnOk  func(ctx context.Context, v In) Out
	OnErr func(ctx context.Context, e E) Out
	// OnCancel receives failures recognized by the Canceled predicate;
	// when either is nil the failure goes to OnErr.
	OnCancel func(ctx context.Context, e E) Out
	Canceled func(e E) bool
}

// Finally maps every outcome on the channel to a final value.
func Finally[In, Out, E any](ctx context.Context, input <-chan outcome.Outcome[In, E],
	handlers FinallyHandlers[In, Out, E]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case in, ok := <-input:
				if !ok {
					return
				}

				select {
				case out <- finalize(ctx, in, handlers):
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func finalize[In, Out, E any](ctx context.Context, in outcome.Outcome[In, E],
	handlers FinallyHandlers[In, Out, E]) Out {

	if in.IsOk() {
		return handlers.OnOk(ctx, in.Value())
	}
	if handlers.Canceled != nil && handlers.OnCancel != nil && handlers.Canceled(in.Err()) {
		return handlers.OnCancel(ctx, in.Err())
	}
	return handlers.OnErr(ctx, in.Err())
}
