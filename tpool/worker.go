package tpool

import (
	"fmt"
	"runtime"
)

// worker is the loop run by each pool goroutine. It alternates between
// waiting on the queue and running one task per iteration, and exits only
// when the queue reports stopping-and-drained. Task failures never escape
// the wrapped task, so a worker survives any number of failing tasks.
func (p *Pool) worker() error {
	for {
		t, ok := p.queue.pop()
		if !ok {
			return nil
		}

		if p.rateLimiter != nil {
			// The pool context is cancelled only after the queue has
			// drained; a Wait error just means the task runs unthrottled.
			_ = p.rateLimiter.Wait(p.ctx)
		}

		t()
	}
}

// invoke executes a task body with panic recovery. A panic is converted to
// an error carrying the stack trace so one misbehaving task cannot crash
// the worker that runs it.
func invoke[R any](task func() (R, error)) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("task panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()

	return task()
}
