package events

import (
	"errors"
	"testing"
)

func TestAddNilHandlerFails(t *testing.T) {
	var src Source[int, string]
	if _, err := src.Add(nil); !errors.Is(err, ErrNilHandler) {
		t.Fatalf("Add(nil) = %v, want ErrNilHandler", err)
	}
}

func TestRaiseInvokesHandlersInInsertionOrder(t *testing.T) {
	var src Source[int, string]
	var order []int

	for i := 0; i < 3; i++ {
		i := i
		if _, err := src.Add(func(sender int, args string) {
			if sender != 7 || args != "hello" {
				t.Fatalf("handler got (%d, %q)", sender, args)
			}
			order = append(order, i)
		}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	src.Raise(7, "hello")
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("fan-out order = %v", order)
	}
}

func TestRemovedHandlerIsNotCalled(t *testing.T) {
	var src Source[int, int]
	calls := 0
	token, err := src.Add(func(int, int) { calls++ })
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	src.Remove(token)
	src.Raise(0, 0)
	if calls != 0 {
		t.Fatalf("removed handler was called %d times", calls)
	}
	if src.Len() != 0 {
		t.Fatalf("Len = %d after removal", src.Len())
	}

	// Removing again is a no-op.
	src.Remove(token)
}

func TestRemoveDuringRaiseSuppressesLaterHandler(t *testing.T) {
	var src Source[int, int]
	var second Token
	firstCalls, secondCalls := 0, 0

	if _, err := src.Add(func(int, int) {
		firstCalls++
		src.Remove(second)
	}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	var err error
	second, err = src.Add(func(int, int) { secondCalls++ })
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	src.Raise(0, 0)
	if firstCalls != 1 || secondCalls != 0 {
		t.Fatalf("calls = (%d, %d), want (1, 0)", firstCalls, secondCalls)
	}
}

func TestDeferralExtendsCompletion(t *testing.T) {
	tracker := NewCompletionTracker()
	d := tracker.Defer()

	tracker.SettleSync()
	if tracker.Completed() {
		t.Fatalf("completed before deferral finished")
	}

	d.Complete()
	if !tracker.Completed() {
		t.Fatalf("not completed after deferral finished")
	}

	select {
	case <-tracker.Done():
	default:
		t.Fatalf("Done channel not closed")
	}

	// Idempotent.
	d.Complete()
}

func TestCompletionWithoutDeferral(t *testing.T) {
	tracker := NewCompletionTracker()
	if tracker.Completed() {
		t.Fatalf("completed before handlers returned")
	}
	tracker.SettleSync()
	if !tracker.Completed() {
		t.Fatalf("not completed after handlers returned")
	}
}
