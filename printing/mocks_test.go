package printing

// Test doubles mirroring the collaborators the print pipeline and the
// drawing stack supply in production.

import (
	"errors"
	"io"

	"github.com/wudi/printkit/dispatch"
	"github.com/wudi/printkit/geometry"
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/platform"
)

const (
	anyPageNumber = uint32(123)
	anyWidth      = float32(12)
	anyHeight     = float32(34)
	anyDpi        = float32(120)
)

type testAdapter struct {
	queue  *dispatch.Queue
	shared *mockDevice
	dpi    float32
}

func newTestAdapter() *testAdapter {
	return &testAdapter{
		queue:  dispatch.NewQueue(),
		shared: newMockDevice(),
		dpi:    anyDpi,
	}
}

func (a *testAdapter) SharedDevice() (platform.Device, error) { return a.shared, nil }

func (a *testAdapter) Dispatcher() (platform.Dispatcher, error) {
	if a.queue == nil {
		return nil, nil
	}
	return a.queue, nil
}

func (a *testAdapter) LogicalDpi() float32 { return a.dpi }

func (a *testAdapter) Logger() observability.Logger { return observability.NopLogger{} }

// runNext pumps exactly one queued task, like the UI thread running one
// dispatched action.
func (a *testAdapter) runNext() bool { return a.queue.RunNext() }

type renderTargetCall struct {
	Width, Height float32
	Dpi           float32
	Format        platform.PixelFormat
	Alpha         platform.AlphaMode
}

type printControlCall struct {
	Target platform.PackageTarget
	Dpi    float32
}

type mockDevice struct {
	renderTargetCalls []renderTargetCall
	printControlCalls []printControlCall
	commandLists      []*mockCommandList
	lastRenderTarget  *stubRenderTarget

	createPrintControl func(target platform.PackageTarget, dpi float32) (platform.PrintControl, error)
}

func newMockDevice() *mockDevice { return &mockDevice{} }

func (d *mockDevice) CreateRenderTarget(width, height, dpi float32, format platform.PixelFormat, alpha platform.AlphaMode) (platform.RenderTarget, error) {
	d.renderTargetCalls = append(d.renderTargetCalls, renderTargetCall{width, height, dpi, format, alpha})
	rt := newStubRenderTarget(geometry.Size{Width: width, Height: height}, dpi)
	d.lastRenderTarget = rt
	return rt, nil
}

func (d *mockDevice) CreateDeviceContext() (platform.DeviceContext, error) {
	return &stubDeviceContext{}, nil
}

func (d *mockDevice) CreateCommandList() (platform.CommandList, error) {
	cl := &mockCommandList{}
	d.commandLists = append(d.commandLists, cl)
	return cl, nil
}

func (d *mockDevice) CreatePrintControl(target platform.PackageTarget, dpi float32) (platform.PrintControl, error) {
	d.printControlCalls = append(d.printControlCalls, printControlCall{target, dpi})
	if d.createPrintControl != nil {
		return d.createPrintControl(target, dpi)
	}
	return &mockPrintControl{}, nil
}

type stubSurface struct {
	owner *stubRenderTarget
}

func (s *stubSurface) PixelSize() (int, int) {
	return geometry.PixelSize(s.owner.size, s.owner.dpi)
}

type stubRenderTarget struct {
	size    geometry.Size
	dpi     float32
	surface *stubSurface
}

func newStubRenderTarget(size geometry.Size, dpi float32) *stubRenderTarget {
	rt := &stubRenderTarget{size: size, dpi: dpi}
	rt.surface = &stubSurface{owner: rt}
	return rt
}

func (rt *stubRenderTarget) Surface() (platform.Surface, error) { return rt.surface, nil }
func (rt *stubRenderTarget) SizeDips() geometry.Size            { return rt.size }
func (rt *stubRenderTarget) Dpi() float32                       { return rt.dpi }

type stubDeviceContext struct {
	target  any
	dpi     float32
	flushes int
}

func (c *stubDeviceContext) SetTarget(target any) { c.target = target }
func (c *stubDeviceContext) Target() any          { return c.target }
func (c *stubDeviceContext) SetDpi(dpi float32)   { c.dpi = dpi }
func (c *stubDeviceContext) Flush() error {
	c.flushes++
	return nil
}

type mockCommandList struct {
	closes int
}

func (l *mockCommandList) Close() error {
	l.closes++
	if l.closes > 1 {
		return errors.New("command list closed twice")
	}
	return nil
}

type mockPrintTaskOptions struct {
	pageDescription func(page uint32) (platform.PageDescription, error)
	calls           []uint32
}

func (o *mockPrintTaskOptions) PageDescription(page uint32) (platform.PageDescription, error) {
	o.calls = append(o.calls, page)
	if o.pageDescription != nil {
		return o.pageDescription(page)
	}
	return platform.PageDescription{
		Size:          geometry.Size{Width: anyWidth, Height: anyHeight},
		ImageableRect: geometry.Rect{Width: anyWidth, Height: anyHeight},
		DpiX:          anyDpi,
		DpiY:          anyDpi,
	}, nil
}

func pageDescriptionFor(size geometry.Size, dpi float32) platform.PageDescription {
	return platform.PageDescription{
		Size:          size,
		ImageableRect: geometry.Rect{Width: size.Width, Height: size.Height},
		DpiX:          dpi,
		DpiY:          dpi,
	}
}

type drawPageCall struct {
	Page       uint32
	Surface    platform.Surface
	DpiX, DpiY float32
}

type jobPageCountCall struct {
	Kind  platform.PageCountKind
	Count uint32
}

type mockPreviewTarget struct {
	drawPageCalls  []drawPageCall
	invalidations  int
	pageCountCalls []jobPageCountCall
}

func (t *mockPreviewTarget) DrawPage(page uint32, surface platform.Surface, dpiX, dpiY float32) error {
	t.drawPageCalls = append(t.drawPageCalls, drawPageCall{page, surface, dpiX, dpiY})
	return nil
}

func (t *mockPreviewTarget) InvalidatePreview() error {
	t.invalidations++
	return nil
}

func (t *mockPreviewTarget) SetJobPageCount(kind platform.PageCountKind, count uint32) error {
	t.pageCountCalls = append(t.pageCountCalls, jobPageCountCall{kind, count})
	return nil
}

type mockPackageTarget struct {
	preview      *mockPreviewTarget
	requestedIDs []platform.TargetID
}

func newMockPackageTarget() *mockPackageTarget {
	return &mockPackageTarget{preview: &mockPreviewTarget{}}
}

func (t *mockPackageTarget) GetPackageTarget(id platform.TargetID) (any, error) {
	t.requestedIDs = append(t.requestedIDs, id)
	return t.preview, nil
}

type addPageCall struct {
	List     platform.CommandList
	PageSize geometry.Size
	Ticket   io.Reader
	Tag1     any
	Tag2     any
}

type mockPrintControl struct {
	addPageCalls []addPageCall
	closes       int
}

func (c *mockPrintControl) AddPage(list platform.CommandList, pageSize geometry.Size, ticket io.Reader, tag1, tag2 any) error {
	c.addPageCalls = append(c.addPageCalls, addPageCall{list, pageSize, ticket, tag1, tag2})
	return nil
}

func (c *mockPrintControl) Close() error {
	c.closes++
	if c.closes > 1 {
		return errors.New("print control closed twice")
	}
	return nil
}
