package software

import (
	"errors"
	"image"
	"image/color"

	"github.com/wudi/printkit/geometry"
)

// op is one recorded drawing operation in DIP space.
type op interface {
	draw(c *rasterCanvas)
}

type clearOp struct{ color color.Color }

func (o clearOp) draw(c *rasterCanvas) { c.clear(o.color) }

type fillRectangleOp struct {
	rect  geometry.Rect
	color color.Color
}

func (o fillRectangleOp) draw(c *rasterCanvas) { c.fillRectangle(o.rect, o.color) }

type drawLineOp struct {
	p0, p1      geometry.Point
	color       color.Color
	strokeWidth float32
}

func (o drawLineOp) draw(c *rasterCanvas) { c.drawLine(o.p0, o.p1, o.color, o.strokeWidth) }

type drawImageOp struct {
	img image.Image
	dst geometry.Rect
}

func (o drawImageOp) draw(c *rasterCanvas) { _ = c.drawImage(o.img, o.dst) }

// CommandList records drawing operations while a session targets it and
// replays them when the print control rasterizes the page. Closed lists
// are immutable.
type CommandList struct {
	ops    []op
	closed bool
}

// Close seals the list. Closing twice is an error.
func (l *CommandList) Close() error {
	if l.closed {
		return errors.New("software: command list already closed")
	}
	l.closed = true
	return nil
}

// Closed reports whether the list has been sealed.
func (l *CommandList) Closed() bool { return l.closed }

// Len returns the number of recorded operations.
func (l *CommandList) Len() int { return len(l.ops) }

func (l *CommandList) record(o op) error {
	if l.closed {
		return errors.New("software: cannot record into a closed command list")
	}
	l.ops = append(l.ops, o)
	return nil
}

func (l *CommandList) replay(c *rasterCanvas) {
	for _, o := range l.ops {
		o.draw(c)
	}
}
