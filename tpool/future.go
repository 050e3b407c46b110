package tpool

import (
	"context"
	"time"
)

// Future is the consumer side of a one-shot result handle. The producer side
// is held by the wrapped task inside the pool; it writes exactly once, when
// the task finishes. Reads are repeatable: every call after completion
// returns the same value and error.
//
// Type parameters:
//   - R: The result type produced by the task
type Future[R any] struct {
	done  chan struct{}
	value R
	err   error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// complete writes the result and releases all readers. Called exactly once,
// by the single worker that executed the task.
func (f *Future[R]) complete(value R, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// Get blocks until the task has run and returns its result.
// If the task returned an error or panicked, that error is returned.
//
// Get never times out; on a pool with zero workers, or when the task
// deadlocks, Get hangs. Use GetWithTimeout or GetWithContext to bound the
// wait.
func (f *Future[R]) Get() (R, error) {
	<-f.done
	return f.value, f.err
}

// GetWithContext blocks until the result is available or ctx is done.
// A ctx error does not consume the future; a later Get still returns the
// task's result once it completes.
func (f *Future[R]) GetWithContext(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// GetWithTimeout blocks for at most timeout. On expiry it returns
// context.DeadlineExceeded, leaving the future readable.
func (f *Future[R]) GetWithTimeout(timeout time.Duration) (R, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return f.GetWithContext(ctx)
}

// IsReady reports whether the result has been written, without blocking.
func (f *Future[R]) IsReady() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed when the task has completed,
// for use in select statements.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}
