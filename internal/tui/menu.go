package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title string
	page  string
}

// MenuModel is the start page. Selecting an item opens its page; the last
// item quits the program.
type MenuModel struct {
	items []menuItem
	idx   int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Share a secret", page: pageShare},
			{title: "Open a secret link", page: pageRedeem},
			{title: "My links", page: pageHistory},
			{title: "Quit"},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, m.selectItem(m.idx)
	case key.Matches(keyMsg, keys.esc):
		return m, tea.Quit
	case keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1:
		// items can also be picked by their number
		n := int(keyMsg.Runes[0] - '1')
		if n >= 0 && n < len(m.items) {
			m.idx = n
			return m, m.selectItem(n)
		}
	}

	return m, nil
}

func (m *MenuModel) selectItem(i int) tea.Cmd {
	item := m.items[i]
	if item.page == "" {
		return tea.Quit
	}
	return navigate(item.page, nil)
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2 // "<marker> <id>"

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	return renderPage("KEYLOCK", strings.TrimRight(b.String(), "\n"), "enter/1-4: select │ ↑/↓: navigate │ v: version")
}
