package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErr defines an interface for types that carry a value or a typed failure
type WithErr[T, E any] interface {
	ValueProvider[T]
	// Err returns the failure payload if the operation failed
	Err() E
	// IsOk returns true if the operation was successful
	IsOk() bool
}
