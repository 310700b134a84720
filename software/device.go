package software

import (
	"fmt"

	"github.com/wudi/printkit/geometry"
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/platform"
)

// DeviceConfig configures a software device.
type DeviceConfig struct {
	// Sink receives rasterized print pages. When the package target
	// passed to CreatePrintControl implements PageSink it takes
	// precedence. A nil sink discards pages.
	Sink PageSink

	Log observability.Logger
}

// Device implements platform.Device on the software raster stack.
type Device struct {
	sink PageSink
	log  observability.Logger
}

func NewDevice(cfg DeviceConfig) *Device {
	log := cfg.Log
	if log == nil {
		log = observability.NopLogger{}
	}
	return &Device{sink: cfg.Sink, log: log}
}

func (d *Device) CreateRenderTarget(width, height, dpi float32, format platform.PixelFormat, alpha platform.AlphaMode) (platform.RenderTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("software: render target size %vx%v must be positive", width, height)
	}
	if dpi <= 0 {
		return nil, fmt.Errorf("software: render target dpi %v must be positive", dpi)
	}
	if format != platform.PixelFormatBGRA8Unorm {
		return nil, fmt.Errorf("software: unsupported pixel format %d", format)
	}
	if alpha != platform.AlphaModePremultiplied {
		return nil, fmt.Errorf("software: unsupported alpha mode %d", alpha)
	}
	return newBitmap(geometry.Size{Width: width, Height: height}, dpi), nil
}

func (d *Device) CreateDeviceContext() (platform.DeviceContext, error) {
	return &Context{dpi: geometry.DefaultDpi}, nil
}

func (d *Device) CreateCommandList() (platform.CommandList, error) {
	return &CommandList{}, nil
}

func (d *Device) CreatePrintControl(target platform.PackageTarget, dpi float32) (platform.PrintControl, error) {
	if target == nil {
		return nil, fmt.Errorf("software: nil package target")
	}
	if dpi <= 0 {
		return nil, fmt.Errorf("software: print control dpi %v must be positive", dpi)
	}
	sink := d.sink
	if s, ok := target.(PageSink); ok {
		sink = s
	}
	return &PrintControl{dpi: dpi, sink: sink, log: d.log}, nil
}
