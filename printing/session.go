package printing

import (
	"fmt"

	"github.com/wudi/printkit/platform"
)

// DrawingSession binds a device context to a single drawing target for
// the duration of one page. Preview sessions target a render bitmap;
// print sessions target a command list. Closing the session flushes the
// context and hands the finished target to whoever owns it.
type DrawingSession struct {
	ctx     platform.DeviceContext
	dpi     float32
	closed  bool
	onClose func() error
}

func newDrawingSession(ctx platform.DeviceContext, dpi float32, onClose func() error) *DrawingSession {
	return &DrawingSession{ctx: ctx, dpi: dpi, onClose: onClose}
}

// Context returns the device context the session draws through.
func (s *DrawingSession) Context() platform.DeviceContext { return s.ctx }

// Canvas returns the context's drawing surface, if the device context
// supports raster drawing.
func (s *DrawingSession) Canvas() (platform.Canvas, bool) {
	c, ok := s.ctx.(platform.Canvas)
	return c, ok
}

// Dpi returns the DPI the session renders at.
func (s *DrawingSession) Dpi() float32 { return s.dpi }

// Closed reports whether Close has run.
func (s *DrawingSession) Closed() bool { return s.closed }

// Close ends the session. The session cannot be reused afterwards;
// closing twice fails with ErrSessionClosed.
func (s *DrawingSession) Close() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true
	if err := s.ctx.Flush(); err != nil {
		return fmt.Errorf("printing: flush drawing session: %w", err)
	}
	if s.onClose != nil {
		return s.onClose()
	}
	return nil
}
