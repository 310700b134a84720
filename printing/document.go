// Package printing implements the print-document object model: a
// Document that the platform print pipeline drives through pagination,
// preview and print requests, and that in turn raises deferred,
// dispatcher-affined events for the application to draw into.
package printing

import (
	"context"
	"fmt"

	"github.com/wudi/printkit/events"
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/platform"
)

// Handler signatures for the document's three events.
type (
	PrintTaskOptionsChangedHandler = events.Handler[*Document, *PrintTaskOptionsChangedEventArgs]
	PreviewHandler                 = events.Handler[*Document, *PreviewEventArgs]
	PrintHandler                   = events.Handler[*Document, *PrintEventArgs]
)

// Document coordinates one print or preview job. The print pipeline
// calls GetPreviewPageCollection, Paginate, MakePage and MakeDocument;
// the document enqueues the resulting work onto its dispatcher and
// raises PrintTaskOptionsChanged, Preview and Print there, strictly in
// request order.
//
// Apart from Enqueue on the dispatcher, a Document is not safe for
// concurrent use: the pipeline calls in and the callbacks run on the
// dispatcher's goroutine.
type Document struct {
	adapter    Adapter
	device     platform.Device
	dispatcher platform.Dispatcher
	log        observability.Logger
	tracer     observability.Tracer

	optionsChanged events.Source[*Document, *PrintTaskOptionsChangedEventArgs]
	previewEvent   events.Source[*Document, *PreviewEventArgs]
	printEvent     events.Source[*Document, *PrintEventArgs]

	preview *previewState
}

// previewState is created lazily on the first GetPreviewPageCollection
// call and tracks the pipeline's preview side of the job.
type previewState struct {
	target  platform.PreviewTarget
	options platform.PrintTaskOptions
	// newPageNumber is the committed result of the last pagination
	// round; MakePage resolves the application-defined sentinel to it.
	newPageNumber uint32
}

// NewDocument creates a document on the adapter's shared device. It
// fails with ErrNoDispatcher when the calling goroutine has no
// dispatcher; the document's callbacks have nowhere to run otherwise.
func NewDocument(adapter Adapter) (*Document, error) {
	if adapter == nil {
		return nil, fmt.Errorf("%w: nil adapter", ErrInvalidArgument)
	}
	device, err := adapter.SharedDevice()
	if err != nil {
		return nil, fmt.Errorf("printing: shared device: %w", err)
	}
	return NewDocumentWithDevice(adapter, device)
}

// NewDocumentWithDevice creates a document on an explicit device.
func NewDocumentWithDevice(adapter Adapter, device platform.Device) (*Document, error) {
	if adapter == nil {
		return nil, fmt.Errorf("%w: nil adapter", ErrInvalidArgument)
	}
	if device == nil {
		return nil, fmt.Errorf("%w: nil device", ErrInvalidArgument)
	}
	dispatcher, err := adapter.Dispatcher()
	if err != nil || dispatcher == nil {
		return nil, ErrNoDispatcher
	}
	log := adapter.Logger()
	if log == nil {
		log = observability.NopLogger{}
	}
	tracer := observability.NopTracer()
	if t, ok := adapter.(interface{ Tracer() observability.Tracer }); ok {
		if tt := t.Tracer(); tt != nil {
			tracer = tt
		}
	}
	return &Document{
		adapter:    adapter,
		device:     device,
		dispatcher: dispatcher,
		log:        log.With(observability.String("component", "printing")),
		tracer:     tracer,
	}, nil
}

// Device returns the device the document renders with.
func (d *Document) Device() platform.Device { return d.device }

// AddPrintTaskOptionsChanged registers a pagination handler.
func (d *Document) AddPrintTaskOptionsChanged(h PrintTaskOptionsChangedHandler) (events.Token, error) {
	return addHandler(&d.optionsChanged, h)
}

// RemovePrintTaskOptionsChanged unregisters a pagination handler. Work
// already queued still runs, but the removed handler is not invoked.
func (d *Document) RemovePrintTaskOptionsChanged(token events.Token) {
	d.optionsChanged.Remove(token)
}

// AddPreview registers a preview handler.
func (d *Document) AddPreview(h PreviewHandler) (events.Token, error) {
	return addHandler(&d.previewEvent, h)
}

// RemovePreview unregisters a preview handler.
func (d *Document) RemovePreview(token events.Token) {
	d.previewEvent.Remove(token)
}

// AddPrint registers a print handler.
func (d *Document) AddPrint(h PrintHandler) (events.Token, error) {
	return addHandler(&d.printEvent, h)
}

// RemovePrint unregisters a print handler.
func (d *Document) RemovePrint(token events.Token) {
	d.printEvent.Remove(token)
}

func addHandler[A any](src *events.Source[*Document, A], h events.Handler[*Document, A]) (events.Token, error) {
	token, err := src.Add(h)
	if err != nil {
		return 0, fmt.Errorf("%w: nil handler", ErrInvalidArgument)
	}
	return token, nil
}

// GetPreviewPageCollection binds the document to the job's preview
// target and returns the page collection the pipeline paginates
// through.
func (d *Document) GetPreviewPageCollection(target platform.PackageTarget) (*PageCollection, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil package target", ErrInvalidArgument)
	}
	raw, err := target.GetPackageTarget(platform.TargetPreviewSurface)
	if err != nil {
		return nil, fmt.Errorf("printing: get preview package target: %w", err)
	}
	previewTarget, ok := raw.(platform.PreviewTarget)
	if !ok {
		return nil, fmt.Errorf("%w: package target produced %T, not a preview target", ErrInvalidArgument, raw)
	}
	d.preview = &previewState{target: previewTarget, newPageNumber: 1}
	d.log.Debug("preview target bound")
	return &PageCollection{doc: d}, nil
}

// InvalidatePreview asks the preview target to redraw. Before previewing
// has started it is a no-op.
func (d *Document) InvalidatePreview() error {
	if d.preview == nil {
		return nil
	}
	return d.preview.target.InvalidatePreview()
}

// SetPageCount reports the job's final page count to the preview target.
// Fails with ErrPageCountBeforePreview before previewing has started.
func (d *Document) SetPageCount(count uint32) error {
	return d.setPageCount(platform.PageCountFinal, count)
}

// SetIntermediatePageCount reports a provisional page count while
// pagination is still running.
func (d *Document) SetIntermediatePageCount(count uint32) error {
	return d.setPageCount(platform.PageCountIntermediate, count)
}

func (d *Document) setPageCount(kind platform.PageCountKind, count uint32) error {
	if d.preview == nil {
		return ErrPageCountBeforePreview
	}
	return d.preview.target.SetJobPageCount(kind, count)
}

// MakeDocument starts the print path: it queues a task that raises the
// Print event and, once the handlers return, closes the print control
// exactly once. MakeDocument itself returns as soon as the work is
// queued.
func (d *Document) MakeDocument(options platform.PrintTaskOptions, target platform.PackageTarget) error {
	if options == nil {
		return fmt.Errorf("%w: nil print task options", ErrInvalidArgument)
	}
	if target == nil {
		return fmt.Errorf("%w: nil package target", ErrInvalidArgument)
	}
	return d.enqueue("printing.MakeDocument", func() error {
		desc, err := options.PageDescription(1)
		if err != nil {
			return fmt.Errorf("printing: page 1 description: %w", err)
		}
		args := newPrintEventArgs(d.device, target, options, desc.DpiX, d.log)

		// The control must be closed even when a handler fails.
		defer func() {
			if err := args.endPrinting(); err != nil {
				d.log.Error("end printing", observability.Error("err", err))
			}
			args.tracker.SettleSync()
		}()

		d.raisePrint(args)
		return nil
	})
}

func (d *Document) raisePrint(args *PrintEventArgs) {
	defer d.recoverHandlerPanic("Print")
	d.printEvent.Raise(d, args)
}

// enqueue submits one unit of work to the dispatcher. The work's error,
// if any, terminates that unit only; subsequent queued work is
// unaffected.
func (d *Document) enqueue(op string, task func() error) error {
	return d.dispatcher.Enqueue(func() {
		_, span := d.tracer.StartSpan(context.Background(), op)
		defer span.Finish()
		if err := task(); err != nil {
			span.SetError(err)
			d.log.Error("queued task failed",
				observability.String("op", op),
				observability.Error("err", err))
		}
	})
}

func (d *Document) recoverHandlerPanic(event string) {
	if r := recover(); r != nil {
		d.log.Error("event handler panicked",
			observability.String("event", event),
			observability.String("panic", fmt.Sprint(r)))
	}
}
