package software

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/wudi/printkit/geometry"
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/platform"
)

// PageSink receives finished print pages. Page numbers start at 1.
type PageSink interface {
	WritePage(pageNumber int, img image.Image) error
}

// PrintControl rasterizes submitted command lists into page images and
// forwards them to a sink. It accumulates the job and must be closed
// exactly once when the job finishes.
type PrintControl struct {
	dpi    float32
	sink   PageSink
	log    observability.Logger
	pages  int
	closed bool
}

func (c *PrintControl) AddPage(list platform.CommandList, pageSize geometry.Size, ticket io.Reader, tag1, tag2 any) error {
	if c.closed {
		return errors.New("software: print control already closed")
	}
	cl, ok := list.(*CommandList)
	if !ok {
		return fmt.Errorf("software: command list is %T, not a software command list", list)
	}
	if !cl.Closed() {
		return errors.New("software: command list must be closed before AddPage")
	}
	if pageSize.IsEmpty() {
		return fmt.Errorf("software: page size %+v must be positive", pageSize)
	}

	c.pages++
	page := newBitmap(pageSize, c.dpi)
	cl.replay(newRasterCanvas(page))

	c.log.Debug("page rasterized",
		observability.Int("page", c.pages),
		observability.Int("ops", cl.Len()))

	if c.sink == nil {
		return nil
	}
	if err := c.sink.WritePage(c.pages, page.Image()); err != nil {
		return fmt.Errorf("software: write page %d: %w", c.pages, err)
	}
	return nil
}

// Close seals the job. Closing twice is an error.
func (c *PrintControl) Close() error {
	if c.closed {
		return errors.New("software: print control already closed")
	}
	c.closed = true
	c.log.Debug("print control closed", observability.Int("pages", c.pages))
	return nil
}

// Pages returns the number of pages added so far.
func (c *PrintControl) Pages() int { return c.pages }
