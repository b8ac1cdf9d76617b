package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keylock/internal/clipboard"
	"github.com/MKhiriev/keylock/internal/logger"
)

type fakeWriter struct {
	err   error
	texts []string
}

func (w *fakeWriter) WriteAll(text string) error {
	if w.err != nil {
		return w.err
	}
	w.texts = append(w.texts, text)
	return nil
}

// stepClock копит таймеры и запускает их только по fire
type stepClock struct {
	mu     sync.Mutex
	timers []*stepTimer
}

type stepTimer struct {
	f       func()
	stopped bool
}

func (t *stepTimer) Stop() bool {
	active := !t.stopped
	t.stopped = true
	return active
}

func (c *stepClock) AfterFunc(_ time.Duration, f func()) clipboard.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &stepTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *stepClock) fire() {
	c.mu.Lock()
	timers := c.timers
	c.timers = nil
	c.mu.Unlock()

	for _, t := range timers {
		if !t.stopped {
			t.stopped = true
			t.f()
		}
	}
}

func testClipboard(writer *fakeWriter, clock *stepClock) clipboardFactory {
	return func() *clipboard.Helper {
		return clipboard.NewHelper(writer, clock, logger.Nop())
	}
}

// collectMsgs выполняет команду и раскрывает tea.Batch.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)
