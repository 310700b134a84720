package printing

import (
	"fmt"

	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/platform"
)

// PageCollection is the handle the print pipeline paginates a preview
// through. Paginate and MakePage only queue work; the callbacks run once
// the document's dispatcher is pumped.
type PageCollection struct {
	doc *Document
}

// Paginate records the job's current task options and queues a
// PrintTaskOptionsChanged round. The pipeline passes
// platform.PageApplicationDefined for currentPage when no page is
// displayed yet; that is reported to handlers as page 1.
func (c *PageCollection) Paginate(currentPage uint32, options platform.PrintTaskOptions) error {
	if options == nil {
		return fmt.Errorf("%w: nil print task options", ErrInvalidArgument)
	}
	if currentPage == platform.PageApplicationDefined {
		currentPage = 1
	}
	d := c.doc
	return d.enqueue("printing.Paginate", func() error {
		d.preview.options = options
		args := newPrintTaskOptionsChangedEventArgs(currentPage, options)

		func() {
			defer d.recoverHandlerPanic("PrintTaskOptionsChanged")
			d.optionsChanged.Raise(d, args)
		}()
		args.tracker.SettleSync()

		// Commit the handler's choice for the next preview page even if
		// no handler ran; the default is page 1.
		d.preview.newPageNumber = args.NewPreviewPageNumber()
		d.log.Debug("pagination round complete",
			observability.Uint32("current_page", currentPage),
			observability.Uint32("new_page", d.preview.newPageNumber))
		return nil
	})
}

// MakePage queues rendering of one preview page at the given display
// size. platform.PageApplicationDefined resolves to the page committed
// by the last pagination round. The render target is allocated at the
// page's physical size with its DPI scaled so the rendered surface
// matches the display size in pixels.
func (c *PageCollection) MakePage(pageNumber uint32, displayWidth, displayHeight float32) error {
	if displayWidth <= 0 || displayHeight <= 0 {
		return fmt.Errorf("%w: display size must be positive, got %vx%v", ErrInvalidArgument, displayWidth, displayHeight)
	}
	d := c.doc
	return d.enqueue("printing.MakePage", func() error {
		page := pageNumber
		if page == platform.PageApplicationDefined {
			page = d.preview.newPageNumber
		}
		if d.preview.options == nil {
			return fmt.Errorf("printing: MakePage before any Paginate round")
		}
		desc, err := d.preview.options.PageDescription(page)
		if err != nil {
			return fmt.Errorf("printing: page %d description: %w", page, err)
		}
		if desc.Size.IsEmpty() {
			return fmt.Errorf("printing: page %d has empty size", page)
		}

		// Keep the target at the page's physical size and scale the DPI
		// instead, so the rendered surface has the display's pixel
		// dimensions while content keeps its device-independent scale.
		dpi := d.adapter.LogicalDpi() * (displayWidth / desc.Size.Width)

		target, err := d.device.CreateRenderTarget(
			desc.Size.Width, desc.Size.Height, dpi,
			platform.PixelFormatBGRA8Unorm, platform.AlphaModePremultiplied)
		if err != nil {
			return fmt.Errorf("printing: create render target: %w", err)
		}
		ctx, err := d.device.CreateDeviceContext()
		if err != nil {
			return fmt.Errorf("printing: create device context: %w", err)
		}
		ctx.SetTarget(target)
		ctx.SetDpi(dpi)

		session := newDrawingSession(ctx, dpi, nil)
		args := newPreviewEventArgs(page, d.preview.options, session)

		func() {
			defer d.recoverHandlerPanic("Preview")
			d.previewEvent.Raise(d, args)
		}()
		args.tracker.SettleSync()

		if !session.Closed() {
			if err := session.Close(); err != nil {
				return fmt.Errorf("printing: close preview session: %w", err)
			}
		}
		surface, err := target.Surface()
		if err != nil {
			return fmt.Errorf("printing: extract preview surface: %w", err)
		}
		if err := d.preview.target.DrawPage(page, surface, dpi, dpi); err != nil {
			return fmt.Errorf("printing: draw preview page %d: %w", page, err)
		}
		d.log.Debug("preview page drawn",
			observability.Uint32("page", page),
			observability.Float32("dpi", dpi))
		return nil
	})
}
