package await

import "context"

type Awaiter[T any] interface {
	// Await blocks until the underlying event fires or ctx is done.
	Await(ctx context.Context) (waited bool)

	// Value returns the last awaited value, if the awaiter carries one.
	Value() (T, bool)
}
