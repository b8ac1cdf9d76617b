// Package clipboard copies text to the system clipboard and keeps a short
// lived "copied" acknowledgement.
package clipboard

import (
	"errors"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/keylock/internal/logger"
)

// AckWindow is how long [Helper.Copied] stays true after a successful copy.
const AckWindow = 2000 * time.Millisecond

// ErrUnsupported is returned when no clipboard mechanism is available.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// Timer is a stoppable pending callback.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemWriter writes to the OS clipboard through atotto/clipboard.
type SystemWriter struct{}

func (SystemWriter) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns a [Clock] backed by time.AfterFunc.
func SystemClock() Clock {
	return systemClock{}
}

// Helper is owned by one view. Copy sets the acknowledgement, a repeated
// Copy inside the window restarts it, and a failed Copy changes nothing.
type Helper struct {
	writer Writer
	clock  Clock
	logger *logger.Logger

	mu         sync.Mutex
	copied     bool
	generation uint64
	timer      Timer
	onChange   func(copied bool)
	closed     bool
}

func NewHelper(writer Writer, clock Clock, logger *logger.Logger) *Helper {
	return &Helper{writer: writer, clock: clock, logger: logger}
}

// NewSystemHelper creates a Helper for the OS clipboard and the wall clock.
func NewSystemHelper(logger *logger.Logger) *Helper {
	return NewHelper(SystemWriter{}, SystemClock(), logger)
}

// SetOnChange registers f to be called, outside the lock, whenever the
// acknowledgement flips.
func (h *Helper) SetOnChange(f func(copied bool)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onChange = f
}

// Copied reports whether the acknowledgement is currently shown.
func (h *Helper) Copied() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.copied
}

// Copy writes text to the clipboard. On failure the error is logged and
// returned and the acknowledgement is left as it was.
func (h *Helper) Copy(text string) error {
	if err := h.writer.WriteAll(text); err != nil {
		h.logger.Warn().Err(err).Str("func", "Helper.Copy").Msg("copy to clipboard failed")
		return err
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}

	if h.timer != nil {
		h.timer.Stop()
	}
	h.generation++
	generation := h.generation
	changed := !h.copied
	h.copied = true
	h.timer = h.clock.AfterFunc(AckWindow, func() { h.expire(generation) })
	notify := h.onChange
	h.mu.Unlock()

	if changed && notify != nil {
		notify(true)
	}
	return nil
}

func (h *Helper) expire(generation uint64) {
	h.mu.Lock()
	if generation != h.generation || !h.copied {
		h.mu.Unlock()
		return
	}
	h.copied = false
	h.timer = nil
	notify := h.onChange
	closed := h.closed
	h.mu.Unlock()

	if notify != nil && !closed {
		notify(false)
	}
}

// Close stops a pending timer. The helper stays usable for Copied but no
// longer reports changes.
func (h *Helper) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	h.copied = false
	h.generation++
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
}
