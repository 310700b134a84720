package printing

import (
	"github.com/wudi/printkit/events"
	"github.com/wudi/printkit/platform"
)

// PreviewEventArgs is delivered when the pipeline requests a preview
// page. The drawing session is already bound to a render target sized
// and DPI-matched to the requested page; after the handlers return the
// finished surface is submitted to the preview target.
type PreviewEventArgs struct {
	pageNumber uint32
	options    platform.PrintTaskOptions
	session    *DrawingSession
	tracker    *events.CompletionTracker
}

func newPreviewEventArgs(pageNumber uint32, options platform.PrintTaskOptions, session *DrawingSession) *PreviewEventArgs {
	return &PreviewEventArgs{
		pageNumber: pageNumber,
		options:    options,
		session:    session,
		tracker:    events.NewCompletionTracker(),
	}
}

// PageNumber returns the page being previewed.
func (a *PreviewEventArgs) PageNumber() uint32 { return a.pageNumber }

// PrintTaskOptions returns the options for the current print task.
func (a *PreviewEventArgs) PrintTaskOptions() platform.PrintTaskOptions {
	return a.options
}

// DrawingSession returns the session bound to this page's render target.
func (a *PreviewEventArgs) DrawingSession() *DrawingSession { return a.session }

// GetDeferral extends the logical lifetime of the event past the
// handler's return.
func (a *PreviewEventArgs) GetDeferral() *events.Deferral {
	return a.tracker.Defer()
}

// Done is closed when the handlers have returned and every deferral has
// completed.
func (a *PreviewEventArgs) Done() <-chan struct{} { return a.tracker.Done() }
