package software

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/wudi/printkit/geometry"
)

// rasterCanvas draws DIP-space operations onto a bitmap, scaling by the
// bitmap's DPI.
type rasterCanvas struct {
	dst   *image.RGBA
	scale float32 // pixels per DIP
}

func newRasterCanvas(b *Bitmap) *rasterCanvas {
	return &rasterCanvas{dst: b.img, scale: b.dpi / geometry.DefaultDpi}
}

func (c *rasterCanvas) pixelRect(r geometry.Rect) image.Rectangle {
	x0 := int(math.Floor(float64(r.X * c.scale)))
	y0 := int(math.Floor(float64(r.Y * c.scale)))
	x1 := int(math.Ceil(float64((r.X + r.Width) * c.scale)))
	y1 := int(math.Ceil(float64((r.Y + r.Height) * c.scale)))
	return image.Rect(x0, y0, x1, y1).Intersect(c.dst.Bounds())
}

func (c *rasterCanvas) clear(col color.Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *rasterCanvas) fillRectangle(r geometry.Rect, col color.Color) {
	draw.Draw(c.dst, c.pixelRect(r), image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *rasterCanvas) drawLine(p0, p1 geometry.Point, col color.Color, strokeWidth float32) {
	if strokeWidth <= 0 {
		strokeWidth = 1
	}
	x0, y0 := p0.X*c.scale, p0.Y*c.scale
	x1, y1 := p1.X*c.scale, p1.Y*c.scale
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Half-width normal for the stroke quad.
	half := strokeWidth * c.scale / 2
	nx, ny := -dy/length*half, dx/length*half

	bounds := c.dst.Bounds()
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.MoveTo(x0+nx, y0+ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x0-nx, y0-ny)
	r.ClosePath()
	r.Draw(c.dst, bounds, image.NewUniform(col), image.Point{})
}

func (c *rasterCanvas) drawImage(src image.Image, dst geometry.Rect) error {
	draw.CatmullRom.Scale(c.dst, c.pixelRect(dst), src, src.Bounds(), draw.Over, nil)
	return nil
}
