package outcome

// Strict is a transparent wrapper around a single Outcome[T, E]. It
// exists only to select the identity residual conversion when the
// wrapped value is branched on: propagating a failure out of a Strict
// value requires the enclosing outcome's error type to be exactly E,
// where branching a plain Outcome goes through a widening conversion.
//
// A Strict value is created only by wrapping an existing Outcome and
// holds it unchanged; Loose returns the identical value back.
type Strict[T, E any] struct {
	o Outcome[T, E]
}

// Strict wraps the outcome for identity-only propagation.
func (o Outcome[T, E]) Strict() Strict[T, E] {
	return Strict[T, E]{o: o}
}

// Loose strips the wrapper, returning the original outcome unchanged.
func (s Strict[T, E]) Loose() Outcome[T, E] {
	return s.o
}
