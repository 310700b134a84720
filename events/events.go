// Package events provides the token-keyed multicast registry and the
// deferral handle used by the print document's subscribable events.
package events

import "errors"

// Token identifies a single registration on a Source. Tokens are opaque;
// the zero value never matches a live registration.
type Token int64

// ErrNilHandler is returned when a nil handler is registered.
var ErrNilHandler = errors.New("events: handler must not be nil")

// Handler receives a raised event.
type Handler[S, A any] func(sender S, args A)

// Source is an insertion-ordered multicast event source with
// remove-by-token semantics. It is not safe for concurrent use; the
// document only touches it from its dispatcher's goroutine.
type Source[S, A any] struct {
	next    Token
	entries []entry[S, A]
}

type entry[S, A any] struct {
	token   Token
	handler Handler[S, A]
}

// Add registers a handler and returns a token for later removal.
func (s *Source[S, A]) Add(h Handler[S, A]) (Token, error) {
	if h == nil {
		return 0, ErrNilHandler
	}
	s.next++
	s.entries = append(s.entries, entry[S, A]{token: s.next, handler: h})
	return s.next, nil
}

// Remove deletes the registration for token. Removing an unknown or
// already-removed token is a no-op.
func (s *Source[S, A]) Remove(token Token) {
	for i, e := range s.entries {
		if e.token == token {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Raise invokes the registered handlers in insertion order. Handlers
// removed between enqueue and drain are skipped; Raise looks the set up
// at fire time.
func (s *Source[S, A]) Raise(sender S, args A) {
	// Snapshot so a handler adding/removing registrations mid-raise
	// cannot perturb this fan-out.
	snapshot := make([]entry[S, A], len(s.entries))
	copy(snapshot, s.entries)
	for _, e := range snapshot {
		if s.lookup(e.token) == nil {
			continue
		}
		e.handler(sender, args)
	}
}

// Len returns the number of live registrations.
func (s *Source[S, A]) Len() int { return len(s.entries) }

func (s *Source[S, A]) lookup(token Token) Handler[S, A] {
	for _, e := range s.entries {
		if e.token == token {
			return e.handler
		}
	}
	return nil
}
