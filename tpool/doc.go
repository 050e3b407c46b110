// Package tpool provides a small, fixed-size worker pool where each
// submitted task is a self-contained closure whose result is delivered
// through a Future.
//
// A Pool owns a fixed set of workers, started at construction, and a single
// FIFO task queue. Submitting a task never blocks; reading its Future blocks
// until the task has run.
//
// # Basic Usage
//
//	pool := tpool.New(tpool.WithWorkerCount(4))
//	defer pool.Close()
//
//	future, err := tpool.Submit(pool, func() (int, error) {
//	    return 6 * 7, nil
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	value, err := future.Get()
//
// Submit is a package-level generic function rather than a method because Go
// methods cannot introduce type parameters; each task may produce a
// different result type on the same pool.
//
// # Queue Disciplines
//
// The pool offers two queue implementations with identical observable
// semantics, selected at construction:
//
//   - QueueInline (default): one mutex and condition variable guard the
//     pending-task list directly.
//   - QueueDelegated: pending tasks live in a reusable BlockingQueue with
//     its own lock; the pool keeps a second, outer synchronization layer to
//     arbitrate between "a task appeared" and "we are stopping".
//
// Both are unbounded and FIFO. With a single worker, tasks complete in
// submission order; with more workers, completion order is unspecified.
//
// # Shutdown
//
//	err := pool.Shutdown(5 * time.Second) // 0 = wait forever
//
// Shutdown sets the stopping flag, wakes every worker, and waits for them to
// exit. Tasks already queued still run to completion before workers exit;
// submissions arriving after shutdown are rejected with ErrPoolClosed.
// Calling Shutdown twice returns ErrPoolClosed; Close is the idempotent
// io.Closer form suitable for defer.
//
// # Error Handling
//
// A task that returns an error, or panics, completes its own Future with
// that error and nothing else: the worker survives, sibling tasks are
// unaffected, and the pool stays live. Panics are converted to errors
// carrying the stack trace.
//
// # Metrics
//
// Pool.Stats returns a snapshot of submission counters, and NewCollector
// adapts a pool to a prometheus.Collector for scraping.
//
// # Hazards
//
// Two documented ways to block forever, neither detectable by the pool:
//
//   - WithWorkerCount(0) yields a pool that accepts submissions but never
//     runs them; any Future read hangs. Use GetWithTimeout or
//     GetWithContext if this is a concern.
//   - Submitting from inside a task and waiting on the result can deadlock
//     when every worker is itself blocked on a submitted task's Future.
//
// The package is designed to be small and idiomatic for Go 1.18+ (generics).
package tpool
