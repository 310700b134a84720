package software

import (
	"fmt"
	"image"
	"image/color"

	"github.com/wudi/printkit/geometry"
)

// Context is a software device context. Drawing is immediate when the
// target is a Bitmap and recorded when the target is a CommandList.
// Drawing errors are sticky and surface from Flush, matching how a
// deferred GPU context reports failures at end of batch.
type Context struct {
	target any
	dpi    float32
	err    error
}

func (c *Context) SetTarget(target any) { c.target = target }

func (c *Context) Target() any { return c.target }

func (c *Context) SetDpi(dpi float32) { c.dpi = dpi }

// Flush reports the first drawing error since the last Flush.
func (c *Context) Flush() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Context) Clear(col color.Color) {
	c.apply(clearOp{color: col})
}

func (c *Context) FillRectangle(r geometry.Rect, col color.Color) {
	c.apply(fillRectangleOp{rect: r, color: col})
}

func (c *Context) DrawLine(p0, p1 geometry.Point, col color.Color, strokeWidth float32) {
	c.apply(drawLineOp{p0: p0, p1: p1, color: col, strokeWidth: strokeWidth})
}

func (c *Context) DrawImage(img image.Image, dst geometry.Rect) error {
	c.apply(drawImageOp{img: img, dst: dst})
	return c.err
}

func (c *Context) apply(o op) {
	switch target := c.target.(type) {
	case *Bitmap:
		o.draw(newRasterCanvas(target))
	case *CommandList:
		if err := target.record(o); err != nil && c.err == nil {
			c.err = err
		}
	default:
		if c.err == nil {
			c.err = fmt.Errorf("software: context has no drawable target (%T)", c.target)
		}
	}
}
