package geometry

import (
	"errors"
	"math"
)

// Size is a width/height pair in device-independent pixels (DIPs).
type Size struct{ Width, Height float32 }

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool { return s.Width <= 0 || s.Height <= 0 }

// Point is a 2D coordinate in DIPs.
type Point struct{ X, Y float32 }

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Contains reports whether the point (x, y) lies within the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// PixelSize converts a DIP size to integer pixels at the given DPI,
// rounding to the nearest pixel with a minimum of 1.
func PixelSize(s Size, dpi float32) (w, h int) {
	w = dipsToPixels(s.Width, dpi)
	h = dipsToPixels(s.Height, dpi)
	return w, h
}

func dipsToPixels(dips, dpi float32) int {
	px := int(math.Round(float64(dips) * float64(dpi) / DefaultDpi))
	if px < 1 {
		px = 1
	}
	return px
}

// DefaultDpi is the identity scale: at 96 DPI one DIP is one pixel.
const DefaultDpi = 96.0

// Matrix is a 2D affine transform in row-major [a b c d tx ty] order.
type Matrix [6]float32

func Identity() Matrix { return Matrix{1, 0, 0, 1, 0, 0} }

func Translate(tx, ty float32) Matrix { return Matrix{1, 0, 0, 1, tx, ty} }

func Scale(sx, sy float32) Matrix { return Matrix{sx, 0, 0, sy, 0, 0} }

func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[2],
		m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2],
		m[2]*o[1] + m[3]*o[3],
		m[4]*o[0] + m[5]*o[2] + o[4],
		m[4]*o[1] + m[5]*o[3] + o[5],
	}
}

func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func (m Matrix) Inverse() (Matrix, error) {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(float64(det)) < 1e-10 {
		return Matrix{}, errors.New("matrix singular")
	}
	return Matrix{
		m[3] / det, -m[1] / det,
		-m[2] / det, m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}, nil
}
