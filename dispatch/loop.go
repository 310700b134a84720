package dispatch

import "sync"

// Loop owns a Queue and pumps it on a dedicated goroutine, giving hosts
// without an event loop of their own a UI-affined dispatcher. All tasks
// run on the loop goroutine in enqueue order.
type Loop struct {
	queue *Queue

	stopOnce sync.Once
	done     chan struct{}
}

// NewLoop starts a loop. The caller must eventually call Stop.
func NewLoop() *Loop {
	l := &Loop{
		queue: NewQueue(),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

// Enqueue submits work to the loop goroutine.
func (l *Loop) Enqueue(task func()) error {
	return l.queue.Enqueue(task)
}

// Stop stops accepting work, drains what is already queued, and waits for
// the loop goroutine to exit.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { l.queue.Stop() })
	<-l.done
}

// RunSync runs task on the loop goroutine and waits for it to finish.
// Must not be called from the loop goroutine itself; the wait would
// never end.
func (l *Loop) RunSync(task func()) error {
	done := make(chan struct{})
	if err := l.queue.Enqueue(func() {
		defer close(done)
		task()
	}); err != nil {
		return err
	}
	<-done
	return nil
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		if l.queue.RunNext() {
			continue
		}
		l.queue.mu.Lock()
		stopped := l.queue.stopped
		empty := len(l.queue.pending) == 0
		l.queue.mu.Unlock()
		if stopped && empty {
			return
		}
		if empty {
			<-l.queue.wake
		}
	}
}
