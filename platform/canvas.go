package platform

import (
	"image"
	"image/color"

	"github.com/wudi/printkit/geometry"
)

// Canvas is implemented by device contexts that support basic raster
// drawing. Coordinates are in DIPs; the context maps them to pixels at
// its current DPI. The document model never draws itself; Canvas
// exists for the application's event handlers.
type Canvas interface {
	Clear(c color.Color)
	FillRectangle(r geometry.Rect, c color.Color)
	DrawLine(p0, p1 geometry.Point, c color.Color, strokeWidth float32)
	DrawImage(img image.Image, dst geometry.Rect) error
}
