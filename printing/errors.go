package printing

import "errors"

// Error taxonomy. Argument and ordering failures are synchronous and
// local to the call that caused them; nothing in this package retries.
var (
	// ErrInvalidArgument covers nil required collaborators and handler
	// registrations, page numbers below one, and non-positive DPI or
	// display sizes.
	ErrInvalidArgument = errors.New("printing: invalid argument")

	// ErrNoDispatcher is returned from document construction when the
	// adapter cannot supply a dispatcher for the calling goroutine. The
	// document must be created where its callbacks can run.
	ErrNoDispatcher = errors.New("printing: print document must be created on a goroutine with a dispatcher")

	// ErrPageCountBeforePreview is returned by SetPageCount and
	// SetIntermediatePageCount before previewing has started.
	ErrPageCountBeforePreview = errors.New("printing: page count cannot be set before previewing starts")

	// ErrDpiFrozen is returned by PrintEventArgs.SetDpi once the first
	// drawing session has been created.
	ErrDpiFrozen = errors.New("printing: DPI cannot be changed after CreateDrawingSession is called")

	// ErrDrawingSessionOpen is returned by CreateDrawingSession while a
	// previously returned session is still open.
	ErrDrawingSessionOpen = errors.New("printing: cannot create a drawing session until the previous one is closed")

	// ErrSessionClosed is returned when a closed drawing session is
	// closed again.
	ErrSessionClosed = errors.New("printing: drawing session already closed")
)
