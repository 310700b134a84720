package printing

import (
	"fmt"

	"github.com/wudi/printkit/events"
	"github.com/wudi/printkit/platform"
)

// PrintTaskOptionsChangedEventArgs is delivered for each pagination
// round. The handler may steer which page the preview shows next by
// setting the new preview page number; the document commits that value
// once the round's handlers have returned.
type PrintTaskOptionsChangedEventArgs struct {
	currentPage uint32
	newPage     uint32
	options     platform.PrintTaskOptions
	tracker     *events.CompletionTracker
}

func newPrintTaskOptionsChangedEventArgs(currentPage uint32, options platform.PrintTaskOptions) *PrintTaskOptionsChangedEventArgs {
	return &PrintTaskOptionsChangedEventArgs{
		currentPage: currentPage,
		newPage:     1,
		options:     options,
		tracker:     events.NewCompletionTracker(),
	}
}

// CurrentPreviewPageNumber returns the page the preview was showing when
// pagination was requested; 1 when no page was displayed yet.
func (a *PrintTaskOptionsChangedEventArgs) CurrentPreviewPageNumber() uint32 {
	return a.currentPage
}

// NewPreviewPageNumber returns the page the preview should show after
// this round. Defaults to 1.
func (a *PrintTaskOptionsChangedEventArgs) NewPreviewPageNumber() uint32 {
	return a.newPage
}

// SetNewPreviewPageNumber sets the page the preview should show next.
// Page numbers start at 1.
func (a *PrintTaskOptionsChangedEventArgs) SetNewPreviewPageNumber(page uint32) error {
	if page < 1 {
		return fmt.Errorf("%w: new preview page number must be >= 1, got %d", ErrInvalidArgument, page)
	}
	a.newPage = page
	return nil
}

// PrintTaskOptions returns the options for the current print task.
func (a *PrintTaskOptionsChangedEventArgs) PrintTaskOptions() platform.PrintTaskOptions {
	return a.options
}

// GetDeferral extends the logical lifetime of the event past the
// handler's return.
func (a *PrintTaskOptionsChangedEventArgs) GetDeferral() *events.Deferral {
	return a.tracker.Defer()
}

// Done is closed when the handlers have returned and every deferral has
// completed.
func (a *PrintTaskOptionsChangedEventArgs) Done() <-chan struct{} {
	return a.tracker.Done()
}
