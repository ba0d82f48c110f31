package flow

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Of[E, T any](input T) outcome.Outcome[T, E] {
	return outcome.Ok[E](input)
}

func Fail[T, E any](e E) outcome.Outcome[T, E] {
	return outcome.Err[T](e)
}

func Validate[T, E any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, e E)) outcome.Outcome[T, E] {
	return AndValidate(ctx, Of[E](input), validate)
}

func AndValidate[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	validate func(ctx context.Context, in T) (valid bool, e E)) outcome.Outcome[T, E] {

	if input.IsOk() {

		if valid, e := validate(ctx, input.Value()); valid {
			return outcome.Ok[E](input.Value())
		} else {
			return outcome.Err[T](e)
		}
	}
	return input
}

// ValidateAll runs every check against the input, accumulating failure
// payloads with errors.Join. With breakOnErr the first failing check wins.
func ValidateAll[T any](
	ctx context.Context,
	input outcome.Outcome[T, error],
	breakOnErr bool, // exit on first error
	checks ...func(ctx context.Context, in outcome.Outcome[T, error]) outcome.Outcome[T, error]) outcome.Outcome[T, error] {

	if len(checks) == 0 || !outcome.IsNil(ctx.Err()) {
		return input
	}

	var joined error
	current := input

	for _, check := range checks {
		if !outcome.IsNil(ctx.Err()) {
			break
		}

		next := check(ctx, current)
		if next.IsErr() {
			if breakOnErr {
				return next
			}
			es := outcome.Flatten(joined)
			es = append(es, next.Err())
			joined = errors.Join(es...)
		} else {
			current = next
		}
	}

	if outcome.IsNil(joined) {
		return current
	}

	return outcome.Err[T](joined)
}

// Then is the strict bind: the failure payload of input propagates
// unchanged, so the continuation's error type must be exactly E.
func Then[In, Out, E any](ctx context.Context,
	input outcome.Strict[In, E],
	onOk func(ctx context.Context, v In) outcome.Outcome[Out, E]) outcome.Outcome[Out, E] {

	v, res, ok := outcome.Branch[Out](input)
	if !ok {
		return res
	}
	return onOk(ctx, v)
}

// ThenWiden is the default bind: the failure payload of input passes
// through widen before the step short-circuits.
func ThenWiden[In, Out, E1, E2 any](ctx context.Context,
	input outcome.Outcome[In, E1],
	widen func(E1) E2,
	onOk func(ctx context.Context, v In) outcome.Outcome[Out, E2]) outcome.Outcome[Out, E2] {

	v, res, ok := outcome.BranchWiden[Out](input, widen)
	if !ok {
		return res
	}
	return onOk(ctx, v)
}

func Map[In, Out, E any](ctx context.Context,
	input outcome.Outcome[In, E],
	onOk func(ctx context.Context, v In) Out) outcome.Outcome[Out, E] {

	v, res, ok := outcome.Branch[Out](input.Strict())
	if !ok {
		return res
	}
	return outcome.Ok[E](onOk(ctx, v))
}

func MapErr[T, E1, E2 any](ctx context.Context,
	input outcome.Outcome[T, E1],
	onErr func(ctx context.Context, e E1) E2) outcome.Outcome[T, E2] {

	return outcome.Widen(input, func(e E1) E2 {
		return onErr(ctx, e)
	})
}

func Tee[T, E any](ctx context.Context,
	input outcome.Outcome[T, E],
	onOk func(ctx context.Context, o outcome.Outcome[T, E])) outcome.Outcome[T, E] {

	if input.IsOk() {
		onOk(ctx, input)
	}

	return input
}

func TeeIf[T, E any](ctx context.Context,
	input outcome.Outcome[T, E],
	condition func(ctx context.Context, o outcome.Outcome[T, E]) bool,
	onOkAndCondition func(ctx context.Context, o outcome.Outcome[T, E])) outcome.Outcome[T, E] {

	if input.IsOk() {
		if condition(ctx, input) {
			onOkAndCondition(ctx, input)
		}
	}

	return input
}

func BothTee[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	onOk func(ctx context.Context, v T),
	onErr func(ctx context.Context, e E)) outcome.Outcome[T, E] {

	if input.IsOk() {
		onOk(ctx, input.Value())
	} else {
		onErr(ctx, input.Err())
	}

	return input
}

// Try lifts a conventional (Out, error) call into an outcome.
func Try[In, Out any](ctx context.Context, input outcome.Outcome[In, error],
	onTry func(ctx context.Context, v In) (Out, error)) outcome.Outcome[Out, error] {

	v, res, ok := outcome.Branch[Out](input.Strict())
	if !ok {
		return res
	}

	out, err := onTry(ctx, v)
	if err != nil {
		return outcome.Err[Out](err)
	}

	return outcome.Ok[error](out)
}

func FailOn[T, E any](ctx context.Context, input outcome.Outcome[T, E],
	check func(ctx context.Context, v T) (e E, failed bool)) outcome.Outcome[T, E] {
	if input.IsOk() {
		if e, failed := check(ctx, input.Value()); failed {
			return outcome.Err[T](e)
		}
		return input
	}
	return input
}

func Finally[In, Out, E any](ctx context.Context, input outcome.Outcome[In, E],
	onOk func(ctx context.Context, v In) Out,
	onErr func(ctx context.Context, e E) Out) Out {

	if input.IsOk() {
		return onOk(ctx, input.Value())
	}
	return onErr(ctx, input.Err())
}
