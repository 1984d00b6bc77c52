package await

import "context"

func FromChan[T any](ch chan T) Awaiter[T] {
	return &recvAwaiter[T]{ch: ch}
}

type recvAwaiter[T any] struct {
	ch  chan T
	val T
	ok  bool
}

func (a *recvAwaiter[T]) Await(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case a.val, a.ok = <-a.ch:
		return a.ok
	}
}

func (a *recvAwaiter[T]) Value() (T, bool) {
	return a.val, a.ok
}
