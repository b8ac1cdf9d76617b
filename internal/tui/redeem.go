package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keylock/internal/service"
)

// RedeemModel asks for a link or a bare reference and hands it over to the
// secret page.
type RedeemModel struct {
	input textinput.Model
}

func NewRedeemModel() *RedeemModel {
	input := textinput.New()
	input.Placeholder = "https://.../secret/<reference> or <reference>"
	input.CharLimit = 2048
	input.Width = 60

	return &RedeemModel{input: input}
}

// Init implements [tea.Model]. The prompt starts empty every time the page
// is opened.
func (m *RedeemModel) Init() tea.Cmd {
	m.input.Reset()
	m.input.Focus()
	return textinput.Blink
}

func (m *RedeemModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(keyMsg, keys.enter):
			reference := service.ParseReference(m.input.Value())
			return m, navigate(pageSecret, openSecretMsg{reference: reference})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *RedeemModel) View() string {
	var b strings.Builder
	b.WriteString("Link or reference\n")
	b.WriteString("[")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")
	b.WriteString(helpStyle.Render("The secret can be viewed a limited number of times. Opening it uses one view."))

	return renderPage("OPEN A SECRET LINK", b.String(), "enter: open │ esc: back")
}
