package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/internal/service"
	"github.com/MKhiriev/keylock/models"
)

// HistoryModel lists the links created from this machine, newest first. Only
// their lifetime is known locally; the links themselves are not kept.
type HistoryModel struct {
	ctx     context.Context
	history service.ClientHistoryService
	logger  *logger.Logger
	now     func() time.Time

	entries []models.ShareHistoryEntry
	idx     int
	loading bool
	errMsg  string
}

func NewHistoryModel(ctx context.Context, history service.ClientHistoryService, logger *logger.Logger) *HistoryModel {
	return &HistoryModel{
		ctx:     ctx,
		history: history,
		logger:  logger,
		now:     time.Now,
	}
}

// Init implements [tea.Model]. Every opening reloads the list.
func (m *HistoryModel) Init() tea.Cmd {
	return m.load()
}

func (m *HistoryModel) load() tea.Cmd {
	m.loading = true
	m.errMsg = ""

	ctx, history := m.ctx, m.history
	return func() tea.Msg {
		entries, err := history.List(ctx)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Str("func", "HistoryModel.Update").Msg("failed to load history")
			m.errMsg = "could not read the link history"
			m.entries = nil
			return m, nil
		}
		m.entries = msg.entries
		if m.idx >= len(m.entries) {
			m.idx = max(len(m.entries)-1, 0)
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.entries)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			return m, m.load()
		}
	}

	return m, nil
}

func (m *HistoryModel) View() string {
	const hotKeys = "↑/↓: navigate │ r: refresh │ esc: back"

	if m.loading {
		return renderPage("MY LINKS", "Loading...", hotKeys)
	}
	if m.errMsg != "" {
		return renderPage("MY LINKS", errorStyle.Render("Error: "+m.errMsg), hotKeys)
	}
	if len(m.entries) == 0 {
		return renderPage("MY LINKS", "No links yet", hotKeys)
	}

	now := m.now()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-16s │ %-16s │ %-8s │ %-5s │ %s\n", "Created", "Expires", "Lifetime", "Views", "Status"))
	b.WriteString("  ─────────────────┼──────────────────┼──────────┼───────┼─────────\n")
	for i, entry := range m.entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		status := "active"
		if entry.Expired(now) {
			status = "expired"
		}

		b.WriteString(fmt.Sprintf("%s %-16s │ %-16s │ %-8s │ %-5d │ %s\n",
			cursor, formatTime(entry.CreatedAt), formatTime(entry.ExpiresAt),
			fmt.Sprintf("%d min", entry.ExpireMinutes), entry.MaxViews, status))
	}

	return renderPage("MY LINKS", strings.TrimRight(b.String(), "\n"), hotKeys)
}
