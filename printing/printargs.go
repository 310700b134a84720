package printing

import (
	"fmt"

	"github.com/wudi/printkit/events"
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/platform"
)

// PrintEventArgs is delivered once per print job. The handler draws each
// page through CreateDrawingSession; closed sessions are submitted to a
// print control that is created lazily on the first session and closed
// exactly once when the job finishes, whether or not any page was drawn.
type PrintEventArgs struct {
	device  platform.Device
	target  platform.PackageTarget
	options platform.PrintTaskOptions
	log     observability.Logger

	dpi       float32
	dpiFrozen bool

	printControl  platform.PrintControl
	controlClosed bool

	openList    platform.CommandList
	currentPage uint32

	tracker *events.CompletionTracker
}

func newPrintEventArgs(device platform.Device, target platform.PackageTarget, options platform.PrintTaskOptions, initialDpi float32, log observability.Logger) *PrintEventArgs {
	return &PrintEventArgs{
		device:      device,
		target:      target,
		options:     options,
		log:         log,
		dpi:         initialDpi,
		currentPage: 1,
		tracker:     events.NewCompletionTracker(),
	}
}

// PrintTaskOptions returns the options for the print job.
func (a *PrintEventArgs) PrintTaskOptions() platform.PrintTaskOptions {
	return a.options
}

// Dpi returns the DPI pages are rendered at. The initial value comes
// from page 1's description.
func (a *PrintEventArgs) Dpi() float32 { return a.dpi }

// SetDpi changes the rendering DPI. The DPI is frozen once the first
// drawing session has been created.
func (a *PrintEventArgs) SetDpi(dpi float32) error {
	if dpi <= 0 {
		return fmt.Errorf("%w: dpi must be positive, got %v", ErrInvalidArgument, dpi)
	}
	if a.dpiFrozen {
		return ErrDpiFrozen
	}
	a.dpi = dpi
	return nil
}

// GetDeferral extends the logical lifetime of the event past the
// handler's return.
func (a *PrintEventArgs) GetDeferral() *events.Deferral {
	return a.tracker.Defer()
}

// Done is closed when the handlers have returned and every deferral has
// completed.
func (a *PrintEventArgs) Done() <-chan struct{} { return a.tracker.Done() }

// CreateDrawingSession starts drawing the next page. Only one session
// may be open at a time; closing a session submits its command list to
// the print control together with the page's physical size.
func (a *PrintEventArgs) CreateDrawingSession() (*DrawingSession, error) {
	if a.openList != nil {
		return nil, ErrDrawingSessionOpen
	}
	if err := a.ensurePrintControl(); err != nil {
		return nil, err
	}
	a.dpiFrozen = true

	list, err := a.device.CreateCommandList()
	if err != nil {
		return nil, fmt.Errorf("printing: create command list: %w", err)
	}
	ctx, err := a.device.CreateDeviceContext()
	if err != nil {
		return nil, fmt.Errorf("printing: create device context: %w", err)
	}
	ctx.SetTarget(list)
	ctx.SetDpi(a.dpi)

	a.openList = list
	page := a.currentPage
	a.log.Debug("print drawing session created",
		observability.Uint32("page", page),
		observability.Float32("dpi", a.dpi))

	return newDrawingSession(ctx, a.dpi, func() error {
		return a.sessionClosed(list, page)
	}), nil
}

func (a *PrintEventArgs) ensurePrintControl() error {
	if a.printControl != nil {
		return nil
	}
	control, err := a.device.CreatePrintControl(a.target, a.dpi)
	if err != nil {
		return fmt.Errorf("printing: create print control: %w", err)
	}
	a.printControl = control
	return nil
}

func (a *PrintEventArgs) sessionClosed(list platform.CommandList, page uint32) error {
	a.openList = nil

	if err := list.Close(); err != nil {
		return fmt.Errorf("printing: close command list: %w", err)
	}
	desc, err := a.options.PageDescription(page)
	if err != nil {
		return fmt.Errorf("printing: page %d description: %w", page, err)
	}
	if err := a.printControl.AddPage(list, desc.Size, nil, nil, nil); err != nil {
		return fmt.Errorf("printing: add page %d: %w", page, err)
	}
	a.currentPage++
	a.log.Debug("print page submitted", observability.Uint32("page", page))
	return nil
}

// endPrinting closes the print control exactly once, creating it first
// if no drawing session ever did. Runs after the Print handlers return,
// including when a handler panics.
func (a *PrintEventArgs) endPrinting() error {
	if a.controlClosed {
		return nil
	}
	if err := a.ensurePrintControl(); err != nil {
		return err
	}
	a.controlClosed = true
	if err := a.printControl.Close(); err != nil {
		return fmt.Errorf("printing: close print control: %w", err)
	}
	a.log.Debug("print control closed",
		observability.Uint32("pages", a.currentPage-1))
	return nil
}
