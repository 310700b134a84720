package software

import (
	"fmt"
	"image"

	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/platform"
)

// PreviewSink implements platform.PreviewTarget over the software
// stack: drawn surfaces are unwrapped to images and handed to OnPage.
type PreviewSink struct {
	// OnPage receives each drawn preview page. Nil pages are counted
	// but discarded.
	OnPage func(pageNumber uint32, img *image.RGBA, dpiX, dpiY float32) error

	Log observability.Logger

	drawn         int
	invalidations int
	pageCount     uint32
	pageCountKind platform.PageCountKind
}

func (s *PreviewSink) DrawPage(pageNumber uint32, surface platform.Surface, dpiX, dpiY float32) error {
	img, err := SurfaceImage(surface)
	if err != nil {
		return err
	}
	s.drawn++
	s.logger().Debug("preview page received",
		observability.Uint32("page", pageNumber),
		observability.Float32("dpi", dpiX))
	if s.OnPage == nil {
		return nil
	}
	return s.OnPage(pageNumber, img, dpiX, dpiY)
}

func (s *PreviewSink) InvalidatePreview() error {
	s.invalidations++
	return nil
}

func (s *PreviewSink) SetJobPageCount(kind platform.PageCountKind, count uint32) error {
	s.pageCountKind = kind
	s.pageCount = count
	return nil
}

// PagesDrawn returns how many preview pages have been submitted.
func (s *PreviewSink) PagesDrawn() int { return s.drawn }

// PageCount returns the most recently reported job page count.
func (s *PreviewSink) PageCount() (platform.PageCountKind, uint32) {
	return s.pageCountKind, s.pageCount
}

func (s *PreviewSink) logger() observability.Logger {
	if s.Log == nil {
		return observability.NopLogger{}
	}
	return s.Log
}

// Package is a platform.PackageTarget producing a preview sink, plus an
// optional PageSink for the print path. It plays the role the print
// pipeline's package target plays in production.
type Package struct {
	Preview platform.PreviewTarget
	Pages   PageSink
}

func (p *Package) GetPackageTarget(id platform.TargetID) (any, error) {
	switch id {
	case platform.TargetPreviewSurface:
		if p.Preview == nil {
			return nil, fmt.Errorf("software: package has no preview target")
		}
		return p.Preview, nil
	default:
		return nil, fmt.Errorf("software: unknown package target id %d", id)
	}
}

// WritePage forwards print pages to the configured page sink, letting a
// Package serve both the preview and print paths.
func (p *Package) WritePage(pageNumber int, img image.Image) error {
	if p.Pages == nil {
		return nil
	}
	return p.Pages.WritePage(pageNumber, img)
}
