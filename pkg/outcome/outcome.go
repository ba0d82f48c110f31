package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is a binary result: either Ok carrying a value of type T, or
// Err carrying a failure payload of type E. The error type is a full
// type parameter rather than the error interface, so error propagation
// can be checked for exact type equality (see Strict and Branch).
type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isOk      bool
}

func Ok[E, T any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       e,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// errFrom re-types a failed outcome to a new value type, carrying the
// payload, id and creation time over unchanged.
func errFrom[Out, In, E any](from Outcome[In, E]) Outcome[Out, E] {
	return Outcome[Out, E]{
		err:       from.err,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T, E]) Value() T {
	return o.value
}

func (o Outcome[T, E]) Err() E {
	return o.err
}

func (o Outcome[T, E]) IsOk() bool {
	return o.isOk
}

func (o Outcome[T, E]) IsErr() bool {
	return !o.isOk
}

func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}
