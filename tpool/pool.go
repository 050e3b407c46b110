package tpool

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var (
	// ErrPoolClosed is returned by Submit after shutdown has begun, and by
	// Shutdown when it has already been called.
	ErrPoolClosed = errors.New("pool is closed")

	// ErrNilTask is returned by Submit when the task is nil.
	ErrNilTask = errors.New("task must not be nil")

	// ErrShutdownTimeout is returned by Shutdown when workers did not
	// finish within the given timeout.
	ErrShutdownTimeout = errors.New("error in shutting down: timeout reached")
)

// Pool is a fixed-size worker pool. All workers are started by New and live
// until Shutdown; the worker count never changes.
//
// A Pool must not be copied after creation.
type Pool struct {
	queue       taskQueue
	workerCount int
	rateLimiter *rate.Limiter

	ctx    context.Context
	cancel context.CancelFunc

	closed atomic.Bool
	done   chan struct{} // closed when all workers have exited

	submitted atomic.Uint64
	completed atomic.Uint64
	failed    atomic.Uint64
}

// New creates a pool and immediately starts its workers.
//
// Default configuration:
//   - workerCount: runtime.GOMAXPROCS(0)
//   - queue discipline: QueueInline
//   - no rate limiting
//
// Unlike thread creation in other runtimes, starting a goroutine cannot
// fail, so New has no error return and never leaves a partially started
// pool behind.
//
// Example:
//
//	pool := tpool.New(
//	    tpool.WithWorkerCount(8),
//	    tpool.WithQueueDiscipline(tpool.QueueDelegated),
//	)
//	defer pool.Close()
func New(opts ...Option) *Pool {
	cfg := createConfig(opts...)

	var queue taskQueue
	switch cfg.discipline {
	case QueueDelegated:
		queue = newDelegatedQueue()
	default:
		queue = newInlineQueue()
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		queue:       queue,
		workerCount: cfg.workerCount,
		rateLimiter: cfg.rateLimiter,
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}

	var g errgroup.Group
	for i := 0; i < cfg.workerCount; i++ {
		g.Go(p.worker)
	}

	go func() {
		_ = g.Wait()
		close(p.done)
	}()

	return p
}

// Workers returns the fixed worker count. O(1), no locking; the count never
// changes after construction.
func (p *Pool) Workers() int {
	return p.workerCount
}

// Shutdown stops the pool: it sets the stopping flag, wakes all waiting
// workers, and blocks until every worker has exited. Tasks queued before
// the call still run to completion; their futures resolve before Shutdown
// returns.
//
// timeout bounds the wait (0 or negative = wait forever); on expiry
// ErrShutdownTimeout is returned and workers keep draining in the
// background. A second Shutdown returns ErrPoolClosed.
//
// Example:
//
//	if err := pool.Shutdown(5 * time.Second); err != nil {
//	    log.Printf("shutdown: %v", err)
//	}
func (p *Pool) Shutdown(timeout time.Duration) error {
	if !p.closed.CompareAndSwap(false, true) {
		return ErrPoolClosed
	}

	p.queue.stop()

	// Cancel the pool context only once the drain is finished, so queued
	// tasks are not released from the rate limiter early. This also covers
	// a drain that outlives the timeout below.
	go func() {
		<-p.done
		p.cancel()
	}()

	return waitUntil(p.done, timeout)
}

// Close shuts the pool down, waiting for all queued tasks to finish.
// It implements io.Closer and is safe to call after an explicit Shutdown,
// making it suitable for defer.
func (p *Pool) Close() error {
	err := p.Shutdown(0)
	if errors.Is(err, ErrPoolClosed) {
		return nil
	}
	return err
}
