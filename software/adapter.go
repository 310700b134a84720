package software

import (
	"errors"

	"github.com/wudi/printkit/geometry"
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/platform"
)

// Adapter wires the software stack into a print document: a software
// device, a caller-supplied dispatcher (typically a dispatch.Loop or a
// pumped dispatch.Queue), and a logical DPI for preview scaling.
type Adapter struct {
	Device     *Device
	Dispatch   platform.Dispatcher
	LogicalDPI float32
	Log        observability.Logger
}

func (a *Adapter) SharedDevice() (platform.Device, error) {
	if a.Device == nil {
		return nil, errors.New("software: adapter has no device")
	}
	return a.Device, nil
}

func (a *Adapter) Dispatcher() (platform.Dispatcher, error) {
	return a.Dispatch, nil
}

func (a *Adapter) LogicalDpi() float32 {
	if a.LogicalDPI <= 0 {
		return geometry.DefaultDpi
	}
	return a.LogicalDPI
}

func (a *Adapter) Logger() observability.Logger {
	if a.Log == nil {
		return observability.NopLogger{}
	}
	return a.Log
}
