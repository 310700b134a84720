package events

import "sync"

// Deferral lets an event handler extend the logical lifetime of an event
// past its synchronous return. Completion is reported to the external
// pipeline through the owning CompletionTracker; the document's own
// sequencing does not block on it.
type Deferral struct {
	once    sync.Once
	tracker *CompletionTracker
}

// Complete signals that the deferred work has finished. Complete is
// idempotent and safe to call from any goroutine.
func (d *Deferral) Complete() {
	d.once.Do(func() { d.tracker.release() })
}

// CompletionTracker tracks the logical completion of one event: the
// synchronous handler return plus every deferral taken against it.
type CompletionTracker struct {
	mu          sync.Mutex
	outstanding int
	settled     bool
	done        chan struct{}
}

// NewCompletionTracker returns a tracker holding one implicit reference
// for the synchronous portion of the event.
func NewCompletionTracker() *CompletionTracker {
	return &CompletionTracker{outstanding: 1, done: make(chan struct{})}
}

// Defer takes a new deferral against the event.
func (t *CompletionTracker) Defer() *Deferral {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.outstanding++
	return &Deferral{tracker: t}
}

// SettleSync releases the implicit synchronous reference; called by the
// document once the handlers have returned.
func (t *CompletionTracker) SettleSync() { t.release() }

// Done is closed once the handlers have returned and every deferral has
// completed.
func (t *CompletionTracker) Done() <-chan struct{} { return t.done }

// Completed reports whether the event has logically completed.
func (t *CompletionTracker) Completed() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *CompletionTracker) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.settled {
		return
	}
	t.outstanding--
	if t.outstanding == 0 {
		t.settled = true
		close(t.done)
	}
}
