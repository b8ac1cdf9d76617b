package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keylock/models"
)

// RootModel routes messages between pages. It owns the keys that work
// everywhere (ctrl+c, and v for the about window on the menu), switches pages
// on [NavigateTo] and hands every other message to the page on screen.
type RootModel struct {
	pages   map[string]tea.Model
	page    string
	current tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		page:      startPage,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleGlobalKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.open(msg)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.page] = updated
	return r, cmd
}

// handleGlobalKey reports whether msg was consumed before reaching the page.
// While the about window is shown every key except ctrl+c, v and esc is
// swallowed.
func (r *RootModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return true, tea.Quit
	case key.Matches(msg, keys.about) && r.page == pageMenu:
		r.showBuildInfo = !r.showBuildInfo
		return true, nil
	case key.Matches(msg, keys.esc) && r.showBuildInfo:
		r.showBuildInfo = false
		return true, nil
	}

	return r.showBuildInfo, nil
}

// open switches to nav.Page. Without a payload the page starts over through
// Init; with one, the payload is delivered as the page's first message.
func (r RootModel) open(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.page = nav.Page
	r.current = next

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("KEYLOCK", "", "")
	}
	return r.current.View()
}

// closer is implemented by pages that hold a controller or a clipboard
// helper.
type closer interface {
	close()
}

// closePages detaches every page from its pending work.
func (r RootModel) closePages() {
	for _, page := range r.pages {
		if c, ok := page.(closer); ok {
			c.close()
		}
	}
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
