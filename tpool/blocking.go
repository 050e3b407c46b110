package tpool

import "sync"

// BlockingQueue is a minimal lock-based FIFO queue that is safe for any
// number of concurrent pushers and poppers. It is the container behind the
// QueueDelegated discipline, exported because it is useful on its own.
//
// The queue is unbounded: Push never blocks.
//
// Type parameters:
//   - T: The element type
type BlockingQueue[T any] struct {
	mu    sync.Mutex
	ready sync.Cond
	items []T
}

// NewBlockingQueue creates an empty queue.
func NewBlockingQueue[T any]() *BlockingQueue[T] {
	q := &BlockingQueue[T]{}
	q.ready.L = &q.mu
	return q
}

// Push appends v and wakes one goroutine blocked in Pop.
func (q *BlockingQueue[T]) Push(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()

	q.ready.Signal()
}

// Pop removes and returns the front element, blocking until one exists.
// There is no way to interrupt a Pop; callers that need a stop signal
// should arbitrate it themselves and consume via TryPop, the way the pool's
// delegated queue discipline does.
func (q *BlockingQueue[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		q.ready.Wait()
	}
	return q.popFront()
}

// TryPop removes and returns the front element without blocking.
// The second return value is false if the queue was empty.
func (q *BlockingQueue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.popFront(), true
}

// Len returns the number of queued elements.
func (q *BlockingQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// popFront assumes q.mu is held and len(q.items) > 0.
func (q *BlockingQueue[T]) popFront() T {
	var zero T
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return v
}
