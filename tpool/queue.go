package tpool

import "sync"

// taskFunc is a fully wrapped unit of work: the task body plus its future's
// producer side, erased to a zero-argument call. Ownership moves from the
// submitter into a queue slot, then to the single worker that pops it.
type taskFunc func()

// taskQueue is the pending-task container shared by the submission path and
// every worker. Both disciplines implement it with identical observable
// FIFO semantics.
type taskQueue interface {
	// push appends t and wakes one waiting worker. Returns false, without
	// queuing, once stop has been called.
	push(t taskFunc) bool

	// pop blocks until a task is available or the queue is stopping.
	// Returns false only when stopping AND drained; remaining tasks are
	// handed out first, so queued work always runs to completion.
	pop() (taskFunc, bool)

	// size reports the number of pending tasks.
	size() int

	// stop sets the stopping flag and wakes every waiting worker.
	stop()
}

// inlineQueue guards the pending-task list with a single mutex and condition
// variable of its own. The lock is released before the popped task executes,
// so a long-running task never blocks other workers from dequeuing.
type inlineQueue struct {
	mu       sync.Mutex
	ready    sync.Cond
	tasks    []taskFunc
	stopping bool
}

func newInlineQueue() *inlineQueue {
	q := &inlineQueue{}
	q.ready.L = &q.mu
	return q
}

func (q *inlineQueue) push(t taskFunc) bool {
	q.mu.Lock()
	if q.stopping {
		q.mu.Unlock()
		return false
	}
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()

	q.ready.Signal()
	return true
}

func (q *inlineQueue) pop() (taskFunc, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.tasks) == 0 && !q.stopping {
		q.ready.Wait()
	}

	if len(q.tasks) == 0 {
		return nil, false
	}

	t := q.tasks[0]
	q.tasks[0] = nil
	q.tasks = q.tasks[1:]
	if len(q.tasks) == 0 {
		q.tasks = nil
	}
	return t, true
}

func (q *inlineQueue) size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *inlineQueue) stop() {
	q.mu.Lock()
	q.stopping = true
	q.mu.Unlock()

	q.ready.Broadcast()
}

// delegatedQueue stores pending tasks in a BlockingQueue that carries its
// own lock, and layers a second mutex/condition-variable pair on top to let
// workers choose between "a task appeared" and "we are stopping". The outer
// lock is always taken before the inner one, so there is no ordering cycle.
//
// Externally indistinguishable from inlineQueue; the difference is purely
// lock ownership (a reusable container vs. inlined synchronization).
type delegatedQueue struct {
	mu       sync.Mutex
	ready    sync.Cond
	stopping bool
	inner    *BlockingQueue[taskFunc]
}

func newDelegatedQueue() *delegatedQueue {
	q := &delegatedQueue{inner: NewBlockingQueue[taskFunc]()}
	q.ready.L = &q.mu
	return q
}

func (q *delegatedQueue) push(t taskFunc) bool {
	q.mu.Lock()
	if q.stopping {
		q.mu.Unlock()
		return false
	}
	q.inner.Push(t)
	q.mu.Unlock()

	q.ready.Signal()
	return true
}

func (q *delegatedQueue) pop() (taskFunc, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		for q.inner.Len() == 0 && !q.stopping {
			q.ready.Wait()
		}
		// Pops happen only under the outer lock, so TryPop can miss only
		// when the queue really is empty.
		if t, ok := q.inner.TryPop(); ok {
			return t, true
		}
		if q.stopping {
			return nil, false
		}
	}
}

func (q *delegatedQueue) size() int {
	return q.inner.Len()
}

func (q *delegatedQueue) stop() {
	q.mu.Lock()
	q.stopping = true
	q.mu.Unlock()

	q.ready.Broadcast()
}
