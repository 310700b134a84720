package software

import (
	"image"
	"image/color"
	"testing"

	"github.com/wudi/printkit/dispatch"
	"github.com/wudi/printkit/geometry"
	"github.com/wudi/printkit/platform"
	"github.com/wudi/printkit/printing"
)

// fixedOptions is a stand-in for the pipeline's task options: every
// page has the same physical size and DPI.
type fixedOptions struct {
	size geometry.Size
	dpi  float32
}

func (o fixedOptions) PageDescription(uint32) (platform.PageDescription, error) {
	return platform.PageDescription{
		Size:          o.size,
		ImageableRect: geometry.Rect{Width: o.size.Width, Height: o.size.Height},
		DpiX:          o.dpi,
		DpiY:          o.dpi,
	}, nil
}

// Drives a whole preview-then-print pass through the real document
// controller on the software stack.
func TestDocumentOnSoftwareStack(t *testing.T) {
	queue := dispatch.NewQueue()
	sink := &captureSink{}
	device := NewDevice(DeviceConfig{})
	adapter := &Adapter{Device: device, Dispatch: queue, LogicalDPI: 96}

	doc, err := printing.NewDocument(adapter)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}

	options := fixedOptions{size: geometry.Size{Width: 100, Height: 100}, dpi: 96}

	var previews []*image.RGBA
	preview := &PreviewSink{
		OnPage: func(_ uint32, img *image.RGBA, _, _ float32) error {
			previews = append(previews, img)
			return nil
		},
	}
	// The package target carries both paths: the preview sink and the
	// print-page sink.
	pkg := &Package{Preview: preview, Pages: sink}

	doc.AddPrintTaskOptionsChanged(func(d *printing.Document, args *printing.PrintTaskOptionsChangedEventArgs) {
		if err := d.SetPageCount(2); err != nil {
			t.Fatalf("SetPageCount: %v", err)
		}
	})
	doc.AddPreview(func(_ *printing.Document, args *printing.PreviewEventArgs) {
		canvas, ok := args.DrawingSession().Canvas()
		if !ok {
			t.Fatalf("software session has no canvas")
		}
		canvas.Clear(color.White)
		canvas.FillRectangle(geometry.Rect{X: 10, Y: 10, Width: 30, Height: 30}, color.RGBA{R: 255, A: 255})
	})
	doc.AddPrint(func(_ *printing.Document, args *printing.PrintEventArgs) {
		for page := 0; page < 2; page++ {
			ds, err := args.CreateDrawingSession()
			if err != nil {
				t.Fatalf("CreateDrawingSession: %v", err)
			}
			canvas, _ := ds.Canvas()
			canvas.Clear(color.White)
			canvas.DrawLine(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 100, Y: 100}, color.Black, 2)
			if err := ds.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}
		}
	})

	// Preview pass: the pipeline paginates, then asks for page 1 at
	// half size.
	collection, err := doc.GetPreviewPageCollection(pkg)
	if err != nil {
		t.Fatalf("GetPreviewPageCollection: %v", err)
	}
	if err := collection.Paginate(platform.PageApplicationDefined, options); err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if err := collection.MakePage(platform.PageApplicationDefined, 50, 50); err != nil {
		t.Fatalf("MakePage: %v", err)
	}
	queue.RunPending()

	if kind, count := preview.PageCount(); kind != platform.PageCountFinal || count != 2 {
		t.Fatalf("page count = (%v, %d), want (final, 2)", kind, count)
	}
	if len(previews) != 1 {
		t.Fatalf("preview pages = %d, want 1", len(previews))
	}
	// 100 DIP page at 96 * (50/100) DPI is a 50px surface.
	if b := previews[0].Bounds(); b.Dx() != 50 || b.Dy() != 50 {
		t.Fatalf("preview pixel size = %v", b)
	}
	// The 10..40 DIP red square lands at 5..20px.
	if got := previews[0].RGBAAt(10, 10); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("preview pixel = %+v, want red", got)
	}

	// Print pass.
	if err := doc.MakeDocument(options, pkg); err != nil {
		t.Fatalf("MakeDocument: %v", err)
	}
	queue.RunPending()

	if len(sink.pages) != 2 {
		t.Fatalf("printed pages = %d, want 2", len(sink.pages))
	}
	for i, p := range sink.pages {
		if p.number != i+1 {
			t.Fatalf("page numbers = %+v", sink.pages)
		}
		img := p.img.(*image.RGBA)
		if got := img.RGBAAt(50, 50); got.A == 0 {
			t.Fatalf("page %d: diagonal not drawn", p.number)
		}
	}
}
