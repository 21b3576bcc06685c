// Package async runs a unit of work on its own goroutine and hands the caller a
// Future through which the value or the error is observed.
package async

import (
	"context"
	"fmt"

	"catalog/pkg/serrors"
)

// Future is the pending result of a function started with Go. It completes
// exactly once, with either a value or an error.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go starts fn on a new goroutine. A panic in fn completes the future with an
// ErrInternal error instead of crashing the process.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if p := recover(); p != nil {
				f.err = serrors.With(serrors.ErrInternal, "panic: %v", p)
			}
		}()

		f.val, f.err = fn(ctx)
	}()

	return f
}

// Done is closed once the future has completed.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await blocks until the future completes or ctx is done. Giving up on ctx
// does not stop the underlying work.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T

		return zero, fmt.Errorf("could not await result: %w", ctx.Err())
	}
}
