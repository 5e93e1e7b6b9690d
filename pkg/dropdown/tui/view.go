package tui

import (
	"strings"

	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
)

// View renders the background, the menu bars and any open panels.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var body string
	if m.scroller != nil {
		size := m.scroller.ContentSize()
		m.scroller.SetContent(m.canvas(size.Width, size.Height))
		body = m.scroller.View()
	} else {
		body = m.screen.Compose(m.canvas(m.width, m.height))
	}

	if m.showHelp {
		helpView := m.help.View(m.keys)
		lines := strings.Count(helpView, "\n") + 1
		body = dropdown.Overlay(body, helpView, 0, max(0, m.height-lines))
	}
	return body
}

// HelpView renders the short help line for hosts that show it themselves.
func (m Model) HelpView() string {
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func (m Model) canvas(width, height int) string {
	var base string
	if m.background != nil {
		base = dropdown.FitCanvas(m.background(width, height), width, height)
	} else {
		base = dropdown.Canvas(width, height)
	}
	for _, menu := range m.menus {
		f := menu.Frame()
		base = dropdown.Overlay(base, menu.View(), f.X, f.Y)
	}
	return base
}
