package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keylock/internal/app"
	"github.com/MKhiriev/keylock/internal/clipboard"
	"github.com/MKhiriev/keylock/internal/controller"
	"github.com/MKhiriev/keylock/internal/service"
)

// SecretModel shows one redeemed secret. Each [openSecretMsg] gets its own
// [controller.RedemptionController], so a reference is fetched at most once
// per opening. Leaving the page closes the controller and forgets the
// secret.
type SecretModel struct {
	ctx          context.Context
	redeem       service.ClientRedeemService
	newClipboard clipboardFactory

	ctrl    *controller.RedemptionController
	clip    *clipboard.Helper
	spinner spinner.Model
	copyErr string
}

func NewSecretModel(ctx context.Context, redeem service.ClientRedeemService, newClipboard clipboardFactory) *SecretModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &SecretModel{
		ctx:          ctx,
		redeem:       redeem,
		newClipboard: newClipboard,
		spinner:      s,
	}
}

func (m *SecretModel) Init() tea.Cmd {
	return nil
}

func (m *SecretModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openSecretMsg:
		return m, m.open(msg.reference)
	case redeemDoneMsg:
		msg.ctrl.Resolve(msg.outcome)
		return m, nil
	case spinner.TickMsg:
		if m.ctrl == nil {
			return m, nil
		}
		if _, loading := m.ctrl.State().(controller.RedeemLoading); !loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
			m.close()
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.copy):
			return m, m.copy()
		}
	}

	return m, nil
}

func (m *SecretModel) open(reference string) tea.Cmd {
	m.close()
	m.ctrl = controller.NewRedemptionController(m.redeem, reference)
	m.clip = m.newClipboard()
	m.copyErr = ""

	exchange := m.ctrl.Start()
	if exchange == nil {
		return nil
	}

	ctx, ctrl := m.ctx, m.ctrl
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return redeemDoneMsg{ctrl: ctrl, outcome: exchange(ctx)}
	})
}

func (m *SecretModel) copy() tea.Cmd {
	if m.ctrl == nil {
		return nil
	}
	found, ok := m.ctrl.State().(controller.Found)
	if !ok {
		return nil
	}

	if err := m.clip.Copy(found.Secret.Content); err != nil {
		m.copyErr = err.Error()
		return nil
	}

	m.copyErr = ""
	return tea.Tick(ackRefreshDelay, func(time.Time) tea.Msg { return copyExpiredMsg{} })
}

func (m *SecretModel) close() {
	if m.ctrl != nil {
		m.ctrl.Close()
	}
	if m.clip != nil {
		m.clip.Close()
	}
}

func (m *SecretModel) View() string {
	if m.ctrl == nil {
		return renderPage("SECRET", "", "esc: back")
	}

	switch state := m.ctrl.State().(type) {
	case controller.RedeemLoading:
		body := m.spinner.View() + " Fetching secret " + valueOrDash(state.Reference) + "..."
		return renderPage("SECRET", body, "esc: back")
	case controller.NotFound:
		return renderPage("SECRET", errorStyle.Render(state.Message), "esc: back")
	case controller.Found:
		var b strings.Builder
		b.WriteString(state.Secret.Content)
		if state.Secret.RemainingViews != nil {
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("Remaining: " + pluralize(*state.Secret.RemainingViews, "view", "views")))
		}
		if m.clip.Copied() {
			b.WriteString("\n\n")
			b.WriteString(okStyle.Render(app.MsgCopied))
		} else if m.copyErr != "" {
			b.WriteString("\n\n")
			b.WriteString(errorStyle.Render(m.copyErr))
		}
		return renderPage("SECRET", overlayBoxStyle.Render(b.String()), "c: copy │ esc: close")
	}

	return renderPage("SECRET", "", "esc: back")
}
