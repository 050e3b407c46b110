package tpool

import (
	"runtime"

	"golang.org/x/time/rate"
)

// QueueDiscipline selects which task-queue implementation a pool uses.
// Both disciplines provide the same FIFO ordering and drain-on-shutdown
// guarantees; see the package documentation for the distinction.
type QueueDiscipline int

const (
	// QueueInline stores pending tasks behind one mutex and condition
	// variable owned by the queue itself. This is the default.
	QueueInline QueueDiscipline = iota

	// QueueDelegated stores pending tasks in a BlockingQueue with its own
	// internal lock, composed with pool-level stop arbitration.
	QueueDelegated
)

// Option is a functional option for configuring the pool.
type Option func(*poolConfig)

type poolConfig struct {
	workerCount int
	discipline  QueueDiscipline
	rateLimiter *rate.Limiter
}

// WithWorkerCount sets the number of workers, fixed for the pool's lifetime.
// If not specified, defaults to runtime.GOMAXPROCS(0). Negative values are
// ignored.
//
// Zero is legal but hazardous: the pool accepts submissions yet never runs
// them, so every Future read blocks forever. The pool cannot detect this;
// it is a caller contract violation, not an error.
func WithWorkerCount(count int) Option {
	return func(cfg *poolConfig) {
		if count >= 0 {
			cfg.workerCount = count
		}
	}
}

// WithQueueDiscipline selects the task-queue implementation.
// If not specified, defaults to QueueInline.
func WithQueueDiscipline(d QueueDiscipline) Option {
	return func(cfg *poolConfig) {
		cfg.discipline = d
	}
}

// WithRateLimit sets a rate limiter for controlling task throughput.
// tasksPerSecond specifies the maximum number of tasks to start per second,
// burst the maximum started in a burst. Useful when tasks call external
// services. If not specified, no rate limiting is applied.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *poolConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

func createConfig(opts ...Option) *poolConfig {
	cfg := &poolConfig{
		workerCount: runtime.GOMAXPROCS(0),
		discipline:  QueueInline,
	}

	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
