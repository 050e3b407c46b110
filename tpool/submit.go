package tpool

// Submit hands a task to the pool and returns the consumer side of its
// result handle. The task is wrapped so that its return value, error, or
// recovered panic is written to the Future exactly once; the wrapper then
// enters the FIFO queue and one waiting worker is woken. Submit itself
// never blocks.
//
// Submit is safe to call from any number of goroutines, including from
// inside tasks already running on the pool. Note the reentrancy hazard:
// if every worker is blocked on the Future of a task it submitted, the
// pool deadlocks.
//
// Returns ErrNilTask for a nil task and ErrPoolClosed once shutdown has
// begun; a rejected task is never queued and its future is never created.
//
// Example:
//
//	future, err := tpool.Submit(pool, func() (string, error) {
//	    return fetchPage(url)
//	})
//	if err != nil {
//	    return err
//	}
//	body, err := future.Get()
func Submit[R any](p *Pool, task func() (R, error)) (*Future[R], error) {
	if task == nil {
		return nil, ErrNilTask
	}
	if p.closed.Load() {
		return nil, ErrPoolClosed
	}

	future := newFuture[R]()
	wrapped := func() {
		value, err := invoke(task)
		if err != nil {
			p.failed.Add(1)
		} else {
			p.completed.Add(1)
		}
		future.complete(value, err)
	}

	// The queue re-checks the stopping flag under its own lock, closing the
	// race between the check above and a concurrent Shutdown.
	if !p.queue.push(wrapped) {
		return nil, ErrPoolClosed
	}

	p.submitted.Add(1)
	return future, nil
}
