package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/flow"
)

// Chain wraps an Outcome with context to enable fluent chaining. The
// error type is fixed for the whole chain, so every step propagates
// failures with the strict identity conversion.
type Chain[T, E any] struct {
	ctx context.Context
	res outcome.Outcome[T, E]
}

func Start[T, E any](ctx context.Context, r outcome.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[E, T any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, outcome.Ok[E](v))
}

func (c Chain[T, E]) Outcome() outcome.Outcome[T, E] {
	return c.res
}

// Then composes functions that already return an Outcome[T, E]
func (c Chain[T, E]) Then(onOk func(ctx context.Context, v T) outcome.Outcome[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onOk(c.ctx, c.res.Value())}
}

func (c Chain[T, E]) RepeatUntil(onOk func(ctx context.Context, v T) outcome.Outcome[T, E],
	until func(ctx context.Context, v T) bool) Chain[T, E] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onOk)

		if c.res.IsErr() || until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onOk func(ctx context.Context, v T) outcome.Outcome[T, E],
	while func(ctx context.Context, v T) bool) Chain[T, E] {

	for c.res.IsOk() && while(c.ctx, c.res.Value()) {
		c = c.Then(onOk)
	}
	return c
}

// Or yields the first successful chain; with no success, the first failure.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And yields the first failed chain; with no failure, the last success.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onOk func(ctx context.Context, v T) T) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}

	return Chain[T, E]{ctx: c.ctx, res: outcome.Ok[E](onOk(c.ctx, c.res.Value()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onOk func(context.Context, T), onErr func(context.Context, E)) Chain[T, E] {

	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.ctx, c.res.Err())
		}
		return c
	}

	if onOk != nil {
		onOk(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to flow.Finally
func (c Chain[T, E]) Finally(
	onOk func(context.Context, T) T,
	onErr func(context.Context, E) T,
) T {
	return flow.Finally(c.ctx, c.res, onOk, onErr)
}

// Switch moves the chain to a new value type. Methods cannot introduce
// type parameters, so type-changing steps are free functions.
func Switch[In, Out, E any](c Chain[In, E], onOk func(ctx context.Context, v In) outcome.Outcome[Out, E]) Chain[Out, E] {
	return Chain[Out, E]{
		ctx: c.ctx,
		res: flow.Then(c.ctx, c.res.Strict(), onOk),
	}
}

// MapTo transforms the successful value to a new type
func MapTo[In, Out, E any](c Chain[In, E], onOk func(ctx context.Context, v In) Out) Chain[Out, E] {
	return Chain[Out, E]{
		ctx: c.ctx,
		res: flow.Map(c.ctx, c.res, onOk),
	}
}

// Try composes functions that return (Out, error) — like repo calls
func Try[In, Out any](c Chain[In, error], try func(ctx context.Context, v In) (Out, error)) Chain[Out, error] {
	return Chain[Out, error]{
		ctx: c.ctx,
		res: flow.Try(c.ctx, c.res, try),
	}
}

// WidenTo moves the chain to a broader error type via the conversion hook.
func WidenTo[T, E1, E2 any](c Chain[T, E1], conv func(E1) E2) Chain[T, E2] {
	return Chain[T, E2]{
		ctx: c.ctx,
		res: outcome.Widen(c.res, conv),
	}
}
