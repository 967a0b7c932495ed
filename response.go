package venture

import (
	"context"
	"sync"
)

// Response is the in-flight computation of one issued request. A Response is
// single-shot: once Await has returned, the value is spent and must not be
// awaited again. Abandoning a Response before it completes cancels it.
type Response[T any] interface {
	// Await blocks until the result is available or ctx is done.
	Await(ctx context.Context) (T, error)
}

// ResponseFunc adapts a function to the Response contract. The function runs
// on the awaiting goroutine and must honor ctx.
type ResponseFunc[T any] func(ctx context.Context) (T, error)

func (f ResponseFunc[T]) Await(ctx context.Context) (T, error) { return f(ctx) }

// Resolved returns a Response that is already complete.
func Resolved[T any](value T, err error) Response[T] {
	return ResponseFunc[T](func(context.Context) (T, error) {
		return value, err
	})
}

// Future is a Response completed from another goroutine. The zero value is
// not usable; construct with NewFuture.
type Future[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Complete resolves the future. Later calls are ignored.
func (f *Future[T]) Complete(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
