package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keylock/internal/app"
	"github.com/MKhiriev/keylock/internal/clipboard"
	"github.com/MKhiriev/keylock/internal/controller"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/internal/service"
	"github.com/MKhiriev/keylock/models"
)

// ackRefreshDelay re-renders a page just after the clipboard acknowledgement
// has expired.
const ackRefreshDelay = clipboard.AckWindow + 50*time.Millisecond

type clipboardFactory func() *clipboard.Helper

const (
	focusSecret = iota
	focusExpiry
	focusViews
	focusCount
)

// ShareModel is the creation form: the secret text, the expiry in minutes
// and the view limit. The form state itself lives in a
// [controller.SubmissionController]; the model only renders it and runs its
// exchanges as commands.
//
// Every time the page is opened a fresh controller and clipboard helper are
// created and the previous ones are closed.
type ShareModel struct {
	ctx          context.Context
	share        service.ClientShareService
	newClipboard clipboardFactory
	logger       *logger.Logger

	ctrl *controller.SubmissionController
	clip *clipboard.Helper

	secret  textarea.Model
	expiry  textinput.Model
	views   textinput.Model
	focus   int
	spinner spinner.Model
	copyErr string
}

func NewShareModel(ctx context.Context, share service.ClientShareService, newClipboard clipboardFactory, logger *logger.Logger) *ShareModel {
	secret := textarea.New()
	secret.Placeholder = "secret text"
	secret.ShowLineNumbers = false
	secret.SetWidth(50)
	secret.SetHeight(5)

	expiry := textinput.New()
	expiry.Placeholder = "10"
	expiry.CharLimit = 9
	expiry.Width = 10

	views := textinput.New()
	views.Placeholder = "3"
	views.CharLimit = 9
	views.Width = 10

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &ShareModel{
		ctx:          ctx,
		share:        share,
		newClipboard: newClipboard,
		logger:       logger,
		secret:       secret,
		expiry:       expiry,
		views:        views,
		spinner:      s,
	}
	m.reset()
	return m
}

// Init implements [tea.Model]. It is called every time the page is opened
// and starts from an empty form.
func (m *ShareModel) Init() tea.Cmd {
	m.reset()
	return textarea.Blink
}

func (m *ShareModel) reset() {
	m.close()
	m.ctrl = controller.NewSubmissionController(m.share)
	m.clip = m.newClipboard()
	m.copyErr = ""
	m.clearInputs()
}

func (m *ShareModel) clearInputs() {
	m.secret.Reset()
	m.expiry.Reset()
	m.views.Reset()
	m.setFocus(focusSecret)
}

func (m *ShareModel) resetClipboard() {
	m.clip.Close()
	m.clip = m.newClipboard()
	m.copyErr = ""
}

func (m *ShareModel) close() {
	if m.ctrl != nil {
		m.ctrl.Close()
	}
	if m.clip != nil {
		m.clip.Close()
	}
}

// Update implements [tea.Model]. Handled messages:
//   - shareDoneMsg   resolves the submission on the controller that started it.
//   - spinner ticks  animate the loading indicator.
//   - ctrl+s         submits the form.
//   - c              copies the link while it is shown.
//   - esc            dismisses the link or error, or leaves an idle form.
//
// All other key events are forwarded to the focused input.
func (m *ShareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shareDoneMsg:
		msg.ctrl.Resolve(msg.outcome)
		return m, nil
	case spinner.TickMsg:
		if _, loading := m.ctrl.State().(controller.Loading); !loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case copyExpiredMsg:
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m *ShareModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch state := m.ctrl.State().(type) {
	case controller.Loading:
		if key.Matches(msg, keys.esc) {
			m.close()
			return m, navigate(pageMenu, nil)
		}
		return m, nil

	case controller.Success:
		switch {
		case key.Matches(msg, keys.copy):
			return m, m.copy(state.Result.URL)
		case key.Matches(msg, keys.submit):
			// the form still holds the last input; share it again
			m.resetClipboard()
			return m, m.submit()
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
			m.ctrl.Dismiss()
			m.resetClipboard()
			m.clearInputs()
		}
		return m, nil

	case controller.Failed:
		switch {
		case key.Matches(msg, keys.submit):
			return m, m.submit()
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
			m.ctrl.Dismiss()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.close()
		return m, navigate(pageMenu, nil)
	case key.Matches(msg, keys.submit):
		return m, m.submit()
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus - 1 + focusCount) % focusCount)
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m *ShareModel) submit() tea.Cmd {
	exchange, err := m.ctrl.Submit(models.ShareInput{
		Secret:    m.secret.Value(),
		ExpiryRaw: m.expiry.Value(),
		ViewsRaw:  m.views.Value(),
	})
	if err != nil {
		if !errors.Is(err, service.ErrMissingInput) {
			m.logger.Debug().Err(err).Str("func", "ShareModel.submit").Msg("submission rejected")
		}
		return nil
	}

	ctx, ctrl := m.ctx, m.ctrl
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return shareDoneMsg{ctrl: ctrl, outcome: exchange(ctx)}
	})
}

func (m *ShareModel) copy(text string) tea.Cmd {
	if err := m.clip.Copy(text); err != nil {
		m.copyErr = err.Error()
		return nil
	}

	m.copyErr = ""
	return tea.Tick(ackRefreshDelay, func(time.Time) tea.Msg { return copyExpiredMsg{} })
}

func (m *ShareModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, idle := m.ctrl.State().(controller.Idle); !idle {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSecret:
		m.secret, cmd = m.secret.Update(msg)
	case focusExpiry:
		m.expiry, cmd = m.expiry.Update(msg)
	case focusViews:
		m.views, cmd = m.views.Update(msg)
	}
	return m, cmd
}

func (m *ShareModel) setFocus(focus int) {
	m.focus = focus
	m.secret.Blur()
	m.expiry.Blur()
	m.views.Blur()

	switch focus {
	case focusSecret:
		m.secret.Focus()
	case focusExpiry:
		m.expiry.Focus()
	case focusViews:
		m.views.Focus()
	}
}

// View implements [tea.Model].
func (m *ShareModel) View() string {
	switch state := m.ctrl.State().(type) {
	case controller.Success:
		return renderPage("SHARE A SECRET", m.linkOverlay(state.Result), "c: copy link │ ctrl+s: share again │ esc: new secret")
	case controller.Failed:
		body := m.formView() + "\n\n" + errorStyle.Render("Error: "+state.Message)
		return renderPage("SHARE A SECRET", body, "ctrl+s: retry │ esc: dismiss")
	case controller.Loading:
		body := m.formView() + "\n\n" + m.spinner.View() + " Creating link..."
		return renderPage("SHARE A SECRET", body, "esc: cancel")
	case controller.Idle:
		body := m.formView()
		if state.Notice != "" {
			body += "\n\n" + noticeStyle.Render(state.Notice)
		}
		return renderPage("SHARE A SECRET", body, "ctrl+s: create link │ tab: next field │ esc: back")
	}

	return renderPage("SHARE A SECRET", "", "")
}

func (m *ShareModel) formView() string {
	var b strings.Builder
	b.WriteString("Secret:\n")
	b.WriteString(m.secret.View())
	b.WriteString("\n\n")
	b.WriteString("Expires in (minutes) │ [")
	b.WriteString(m.expiry.View())
	b.WriteString("]\n")
	b.WriteString("Max views            │ [")
	b.WriteString(m.views.View())
	b.WriteString("]")
	return b.String()
}

func (m *ShareModel) linkOverlay(result models.ShareResult) string {
	var b strings.Builder
	b.WriteString(okStyle.Render("Your one-time link is ready"))
	b.WriteString("\n\n")
	b.WriteString(result.URL)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Expires: %s (%s)\n", formatTime(result.ExpiresAt), pluralize(result.ExpireMinutes, "minute", "minutes")))
	b.WriteString(fmt.Sprintf("Views:   %d", result.MaxViews))

	if m.clip.Copied() {
		b.WriteString("\n\n")
		b.WriteString(okStyle.Render(app.MsgCopied))
	} else if m.copyErr != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.copyErr))
	}

	return overlayBoxStyle.Render(b.String())
}
