package printing

import (
	"errors"
	"testing"
)

func TestNewPreviewPageNumberMustBeAtLeastOne(t *testing.T) {
	args := newPrintTaskOptionsChangedEventArgs(anyPageNumber, &mockPrintTaskOptions{})

	if err := args.SetNewPreviewPageNumber(0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("SetNewPreviewPageNumber(0) = %v, want ErrInvalidArgument", err)
	}
	for _, page := range []uint32{1, 10} {
		if err := args.SetNewPreviewPageNumber(page); err != nil {
			t.Fatalf("SetNewPreviewPageNumber(%d) = %v", page, err)
		}
		if got := args.NewPreviewPageNumber(); got != page {
			t.Fatalf("NewPreviewPageNumber = %d, want %d", got, page)
		}
	}
}

func TestOptionsChangedArgsCarryConstructionValues(t *testing.T) {
	options := &mockPrintTaskOptions{}
	args := newPrintTaskOptionsChangedEventArgs(anyPageNumber, options)

	if got := args.CurrentPreviewPageNumber(); got != anyPageNumber {
		t.Fatalf("CurrentPreviewPageNumber = %d, want %d", got, anyPageNumber)
	}
	if got := args.NewPreviewPageNumber(); got != 1 {
		t.Fatalf("NewPreviewPageNumber = %d, want default 1", got)
	}
	if args.PrintTaskOptions() != options {
		t.Fatalf("PrintTaskOptions is not the constructed options")
	}
}

func TestOptionsChangedDeferralGatesCompletion(t *testing.T) {
	args := newPrintTaskOptionsChangedEventArgs(anyPageNumber, &mockPrintTaskOptions{})

	d := args.GetDeferral()
	args.tracker.SettleSync()

	select {
	case <-args.Done():
		t.Fatalf("completed while a deferral is outstanding")
	default:
	}

	d.Complete()
	select {
	case <-args.Done():
	default:
		t.Fatalf("not completed after deferral finished")
	}
}

func TestPreviewArgsCarryConstructionValues(t *testing.T) {
	options := &mockPrintTaskOptions{}
	session := newDrawingSession(&stubDeviceContext{}, anyDpi, nil)
	args := newPreviewEventArgs(anyPageNumber, options, session)

	if got := args.PageNumber(); got != anyPageNumber {
		t.Fatalf("PageNumber = %d, want %d", got, anyPageNumber)
	}
	if args.PrintTaskOptions() != options {
		t.Fatalf("PrintTaskOptions is not the constructed options")
	}
	if args.DrawingSession() != session {
		t.Fatalf("DrawingSession is not the constructed session")
	}
	if args.GetDeferral() == nil {
		t.Fatalf("no deferral")
	}
}
