// Package platform declares the collaborator interfaces the print
// document consumes: the rendering device, the UI-affined dispatcher, and
// the print pipeline's task options, preview target, package target and
// print control. Production hosts back these with the real graphics and
// print stack; package software provides a raster-backed implementation
// and tests substitute mocks.
package platform

import (
	"io"

	"github.com/wudi/printkit/geometry"
)

// PageApplicationDefined is the sentinel page number the print pipeline
// passes when no page is currently displayed.
const PageApplicationDefined = ^uint32(0)

// PixelFormat selects the pixel layout of a render target.
type PixelFormat int

const (
	// PixelFormatBGRA8Unorm is 8-bit-per-channel BGRA, the only format
	// the preview pipeline consumes.
	PixelFormatBGRA8Unorm PixelFormat = iota
)

// AlphaMode selects how a render target's alpha channel is interpreted.
type AlphaMode int

const (
	AlphaModePremultiplied AlphaMode = iota
	AlphaModeIgnore
)

// PageCountKind distinguishes a final page count from an intermediate
// one reported while pagination is still running.
type PageCountKind int

const (
	PageCountFinal PageCountKind = iota
	PageCountIntermediate
)

// TargetID selects which package target a PackageTarget should produce.
type TargetID int

const (
	// TargetPreviewSurface identifies the surface-based preview target.
	TargetPreviewSurface TargetID = iota
)

// PageDescription describes one page of the print job: physical size,
// the region the device can image, and the device DPI.
type PageDescription struct {
	Size          geometry.Size
	ImageableRect geometry.Rect
	DpiX, DpiY    float32
}

// Dispatcher runs units of work later, on its owning goroutine, in FIFO
// order. Enqueue may be called from any goroutine.
type Dispatcher interface {
	Enqueue(task func()) error
}

// Surface is a finished pixel surface handed to the preview target. Its
// concrete type is an implementation contract between the device and the
// targets the device renders for.
type Surface interface {
	PixelSize() (width, height int)
}

// CommandList records drawing commands for later replay. It is closed
// once, when the drawing session that targets it ends, and is immutable
// afterwards.
type CommandList interface {
	Close() error
}

// DeviceContext receives drawing commands from a drawing session and
// directs them at a target set by the session machinery.
type DeviceContext interface {
	SetTarget(target any)
	Target() any
	SetDpi(dpi float32)
	Flush() error
}

// RenderTarget is a device-created bitmap that drawing can be directed
// at and whose finished pixels can be extracted as a Surface.
type RenderTarget interface {
	Surface() (Surface, error)
	SizeDips() geometry.Size
	Dpi() float32
}

// Device creates the rendering resources the print document needs. It
// mirrors the drawing stack's resource-creation surface and is the main
// seam for tests.
type Device interface {
	CreateRenderTarget(width, height float32, dpi float32, format PixelFormat, alpha AlphaMode) (RenderTarget, error)
	CreateDeviceContext() (DeviceContext, error)
	CreateCommandList() (CommandList, error)
	CreatePrintControl(target PackageTarget, dpi float32) (PrintControl, error)
}

// PrintTaskOptions exposes the print pipeline's per-page settings.
type PrintTaskOptions interface {
	PageDescription(pageNumber uint32) (PageDescription, error)
}

// PreviewTarget is the platform object preview pages are submitted to.
type PreviewTarget interface {
	DrawPage(pageNumber uint32, surface Surface, dpiX, dpiY float32) error
	InvalidatePreview() error
	SetJobPageCount(kind PageCountKind, count uint32) error
}

// PackageTarget hands out the concrete target objects for a print job.
// For TargetPreviewSurface the returned value implements PreviewTarget.
type PackageTarget interface {
	GetPackageTarget(id TargetID) (any, error)
}

// PrintControl accumulates rendered pages and flushes them to the print
// package when closed. AddPage takes the page's physical size and
// placeholder slots for a print ticket and diagnostic tags, which this
// document model always leaves nil.
type PrintControl interface {
	AddPage(list CommandList, pageSize geometry.Size, ticket io.Reader, tag1, tag2 any) error
	Close() error
}
