package printing

import (
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/platform"
)

// Adapter supplies the ambient platform state a print document is bound
// to at construction: the shared rendering device, the dispatcher for
// the calling goroutine, and the display's logical DPI. It is the seam
// that lets the controller run against mocks in tests and against the
// software backend or a real platform in production.
type Adapter interface {
	// SharedDevice returns the device used when the document is created
	// without an explicit one.
	SharedDevice() (platform.Device, error)

	// Dispatcher returns the UI-affined dispatcher for the calling
	// goroutine, or nil if the goroutine has none.
	Dispatcher() (platform.Dispatcher, error)

	// LogicalDpi returns the DPI previews are scaled against.
	LogicalDpi() float32

	// Logger returns the logger lifecycle events are reported to.
	Logger() observability.Logger
}
