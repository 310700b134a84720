// Package software backs the platform interfaces with an in-memory
// raster stack: render targets are premultiplied-alpha RGBA images,
// command lists record drawing operations for later replay, and the
// print control rasterizes finished pages into a page sink. It stands in
// for the GPU stack in tests, tools and headless hosts.
package software

import (
	"fmt"
	"image"

	"github.com/wudi/printkit/geometry"
	"github.com/wudi/printkit/platform"
)

// Bitmap is a render target and, once drawn, the surface submitted to
// preview targets. Pixels are premultiplied-alpha RGBA.
type Bitmap struct {
	img  *image.RGBA
	dips geometry.Size
	dpi  float32
}

func newBitmap(size geometry.Size, dpi float32) *Bitmap {
	w, h := geometry.PixelSize(size, dpi)
	return &Bitmap{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		dips: size,
		dpi:  dpi,
	}
}

// Surface returns the bitmap itself; the software stack's surfaces are
// the bitmaps that were drawn into.
func (b *Bitmap) Surface() (platform.Surface, error) { return b, nil }

// PixelSize returns the bitmap's dimensions in pixels.
func (b *Bitmap) PixelSize() (int, int) {
	bounds := b.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// SizeDips returns the bitmap's size in DIPs.
func (b *Bitmap) SizeDips() geometry.Size { return b.dips }

// Dpi returns the bitmap's DPI.
func (b *Bitmap) Dpi() float32 { return b.dpi }

// Image exposes the backing pixels.
func (b *Bitmap) Image() *image.RGBA { return b.img }

// SurfaceImage extracts the backing image from a surface produced by
// this package.
func SurfaceImage(s platform.Surface) (*image.RGBA, error) {
	b, ok := s.(*Bitmap)
	if !ok {
		return nil, fmt.Errorf("software: surface is %T, not a software bitmap", s)
	}
	return b.img, nil
}
