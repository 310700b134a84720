// Command previewdemo drives a print document through a fake print
// pipeline on the software stack: it paginates, renders preview pages,
// then prints the document, writing every surface as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/wudi/printkit/dispatch"
	"github.com/wudi/printkit/geometry"
	"github.com/wudi/printkit/platform"
	"github.com/wudi/printkit/printing"
	"github.com/wudi/printkit/software"
)

type options struct {
	outDir     string
	pages      int
	pageWidth  float64
	pageHeight float64
	dpi        float64
}

func main() {
	var opts options
	flag.StringVar(&opts.outDir, "out", "out", "directory PNG pages are written to")
	flag.IntVar(&opts.pages, "pages", 3, "number of pages in the document")
	flag.Float64Var(&opts.pageWidth, "width", 816, "page width in DIPs")
	flag.Float64Var(&opts.pageHeight, "height", 1056, "page height in DIPs")
	flag.Float64Var(&opts.dpi, "dpi", 96, "print DPI")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "previewdemo: %v\n", err)
		os.Exit(1)
	}
}

// demoOptions plays the print pipeline's task options.
type demoOptions struct {
	size geometry.Size
	dpi  float32
}

func (o demoOptions) PageDescription(uint32) (platform.PageDescription, error) {
	return platform.PageDescription{
		Size:          o.size,
		ImageableRect: geometry.Rect{Width: o.size.Width, Height: o.size.Height},
		DpiX:          o.dpi,
		DpiY:          o.dpi,
	}, nil
}

func run(opts options) error {
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}

	queue := dispatch.NewQueue()
	device := software.NewDevice(software.DeviceConfig{})
	adapter := &software.Adapter{Device: device, Dispatch: queue, LogicalDPI: 96}

	doc, err := printing.NewDocument(adapter)
	if err != nil {
		return err
	}

	pageCount := uint32(opts.pages)
	taskOptions := demoOptions{
		size: geometry.Size{Width: float32(opts.pageWidth), Height: float32(opts.pageHeight)},
		dpi:  float32(opts.dpi),
	}

	previewSink := &software.PreviewSink{
		OnPage: func(page uint32, img *image.RGBA, dpiX, _ float32) error {
			fmt.Printf("preview page %d: %dx%d px at %.1f dpi\n",
				page, img.Bounds().Dx(), img.Bounds().Dy(), dpiX)
			sink := &software.DirSink{Dir: opts.outDir, Prefix: "preview"}
			return sink.WritePage(int(page), img)
		},
	}
	pkg := &software.Package{
		Preview: previewSink,
		Pages:   &software.DirSink{Dir: opts.outDir, Prefix: "page"},
	}

	doc.AddPrintTaskOptionsChanged(func(d *printing.Document, args *printing.PrintTaskOptionsChangedEventArgs) {
		d.SetPageCount(pageCount)
	})
	doc.AddPreview(func(_ *printing.Document, args *printing.PreviewEventArgs) {
		drawPage(args.DrawingSession(), args.PageNumber(), taskOptions.size)
	})
	doc.AddPrint(func(_ *printing.Document, args *printing.PrintEventArgs) {
		for page := uint32(1); page <= pageCount; page++ {
			ds, err := args.CreateDrawingSession()
			if err != nil {
				fmt.Fprintf(os.Stderr, "previewdemo: page %d: %v\n", page, err)
				return
			}
			drawPage(ds, page, taskOptions.size)
			if err := ds.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "previewdemo: close page %d: %v\n", page, err)
				return
			}
		}
	})

	// Preview pass, the way the preview window drives the document:
	// paginate once, then request each page at half display size.
	collection, err := doc.GetPreviewPageCollection(pkg)
	if err != nil {
		return err
	}
	if err := collection.Paginate(platform.PageApplicationDefined, taskOptions); err != nil {
		return err
	}
	for page := uint32(1); page <= pageCount; page++ {
		if err := collection.MakePage(page, taskOptions.size.Width/2, taskOptions.size.Height/2); err != nil {
			return err
		}
	}
	queue.RunPending()

	// Print pass.
	if err := doc.MakeDocument(taskOptions, pkg); err != nil {
		return err
	}
	queue.RunPending()

	fmt.Printf("wrote %d preview and %d print pages to %s\n",
		previewSink.PagesDrawn(), int(pageCount), opts.outDir)
	return nil
}

// drawPage renders simple page content: margins, a header bar and a
// page-number mark.
func drawPage(ds *printing.DrawingSession, page uint32, size geometry.Size) {
	canvas, ok := ds.Canvas()
	if !ok {
		return
	}
	canvas.Clear(color.White)

	margin := float32(48)
	header := color.RGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xff}
	canvas.FillRectangle(geometry.Rect{X: margin, Y: margin, Width: size.Width - 2*margin, Height: 24}, header)

	rule := color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	for i := 0; i < 12; i++ {
		y := margin + 60 + float32(i)*28
		canvas.DrawLine(geometry.Point{X: margin, Y: y}, geometry.Point{X: size.Width - margin, Y: y}, rule, 1)
	}

	// Page-number tick marks in the footer.
	mark := color.RGBA{A: 0xff}
	for i := uint32(0); i < page; i++ {
		x := margin + float32(i)*12
		canvas.FillRectangle(geometry.Rect{X: x, Y: size.Height - margin, Width: 6, Height: 6}, mark)
	}
}
