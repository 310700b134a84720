// Package dispatch provides the single-threaded FIFO task queue that the
// print document affines its callbacks to. Queue is pumped explicitly by
// its owner; Loop runs a Queue on a dedicated goroutine for hosts without
// their own event loop.
package dispatch

import (
	"errors"
	"sync"
)

// ErrStopped is returned when work is enqueued after the queue stopped
// accepting it.
var ErrStopped = errors.New("dispatch: queue stopped")

// Queue is a FIFO of zero-argument units of work. Enqueue may be called
// from any goroutine; RunNext and RunPending must only be called from the
// goroutine that owns the queue. Order of execution is the order of
// enqueue.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	stopped bool
	wake    chan struct{}
}

func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Enqueue accepts a unit of work to run later on the owning goroutine.
func (q *Queue) Enqueue(task func()) error {
	if task == nil {
		return errors.New("dispatch: task must not be nil")
	}
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return ErrStopped
	}
	q.pending = append(q.pending, task)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return nil
}

// RunNext runs the oldest pending task, if any, and reports whether one
// ran. Tasks run to completion; a task enqueuing more work does not
// recurse.
func (q *Queue) RunNext() bool {
	q.mu.Lock()
	if len(q.pending) == 0 {
		q.mu.Unlock()
		return false
	}
	task := q.pending[0]
	q.pending = q.pending[1:]
	q.mu.Unlock()

	task()
	return true
}

// RunPending drains every task that was pending on entry plus any work
// those tasks enqueue, returning the number of tasks run.
func (q *Queue) RunPending() int {
	n := 0
	for q.RunNext() {
		n++
	}
	return n
}

// Len returns the number of tasks waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Stop rejects further Enqueue calls. Already-queued tasks still run when
// pumped; queued work is never cancelled.
func (q *Queue) Stop() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}
