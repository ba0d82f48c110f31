package outcome

// Branch is the strict early-return step. Inside a function producing
// Outcome[Out, E], a strict value is consumed as:
//
//	v, res, ok := outcome.Branch[Out](sub.Strict())
//	if !ok {
//		return res
//	}
//
// On Ok the success payload is returned and evaluation continues; on
// Err the residual outcome carries the failure payload through
// unchanged (identity conversion, same id and creation time). The
// residual's error type is exactly E: using it where a different error
// type is declared does not compile, it is never coerced.
func Branch[Out, In, E any](s Strict[In, E]) (In, Outcome[Out, E], bool) {
	if s.o.isOk {
		return s.o.value, Outcome[Out, E]{}, true
	}
	var zero In
	return zero, errFrom[Out](s.o), false
}

// BranchWiden is the default early-return step: on Err the failure
// payload passes through the widen hook before it is re-raised in the
// enclosing error type. This is the step that becomes underdetermined
// when the enclosing error type is itself a type parameter; use Strict
// and Branch there instead.
func BranchWiden[Out, In, E1, E2 any](o Outcome[In, E1], widen func(E1) E2) (In, Outcome[Out, E2], bool) {
	if o.isOk {
		return o.value, Outcome[Out, E2]{}, true
	}
	var zero In
	return zero, Outcome[Out, E2]{
		err:       widen(o.err),
		isOk:      false,
		createdAt: o.createdAt,
		id:        o.id,
	}, false
}

// Widen converts only the failure payload, keeping the value type, id
// and creation time. On Ok the outcome is returned with the error type
// re-labelled and the payload untouched.
func Widen[T, E1, E2 any](o Outcome[T, E1], conv func(E1) E2) Outcome[T, E2] {
	out := Outcome[T, E2]{
		value:     o.value,
		isOk:      o.isOk,
		createdAt: o.createdAt,
		id:        o.id,
	}
	if !o.isOk {
		out.err = conv(o.err)
	}
	return out
}

// ToError widens a concrete error payload into the error interface,
// Go's native widening conversion.
func ToError[T any, E error](o Outcome[T, E]) Outcome[T, error] {
	return Widen(o, func(e E) error { return e })
}
