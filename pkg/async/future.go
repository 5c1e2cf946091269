package async

import (
	"context"
	"errors"
	"time"
)

// Future is the result of an asynchronous computation.
type Future[U any] struct {
	val  U
	err  error
	done chan struct{}
}

// Async runs fn(ctx, param) in its own goroutine.
// If ctx is already canceled, fn is not called and the future fails with ctx.Err().
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.val, f.err = fn(ctx, param)
	}()

	return f
}

// Await blocks until the computation finishes.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.val, f.err
}

// AwaitWithTimeout is Await bounded by timeout. On timeout it returns
// ErrTimeout; the computation keeps running.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.val, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAll waits for every future and returns their values in order.
// Unlike a fail-fast wait, every future is awaited; all errors are joined.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	vals := make([]U, len(futures))
	var errs []error
	for i, f := range futures {
		v, err := f.Await()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vals[i] = v
	}
	return vals, errors.Join(errs...)
}
