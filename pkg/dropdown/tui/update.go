package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
)

// Update handles bubbletea messages. Menu events raised while handling msg are returned as
// messages in the order they happened.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case frameMsg:
		if m.animator != nil {
			_, cmd = m.animator.Update(msg)
		}
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}
	return m, m.collect(cmd)
}

func (m Model) collect(cmd tea.Cmd) tea.Cmd {
	var animation tea.Cmd
	if m.animator != nil {
		animation = m.animator.Cmd()
	}
	return tea.Batch(cmd, animation, m.events.drain())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	if len(m.menus) == 0 {
		return nil
	}
	menu := m.menus[m.active]

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil
	case key.Matches(msg, m.keys.NextMenu):
		m.switchMenu(1)
		return nil
	case key.Matches(msg, m.keys.PrevMenu):
		m.switchMenu(-1)
		return nil
	case key.Matches(msg, m.keys.Jump):
		if c := int(msg.String()[0] - '1'); c < menu.NumberOfComponents() {
			menu.Tap(c)
		}
		return nil
	}

	if action := m.keys.action(msg); action != dropdown.KeyNone && menu.HandleKey(action) {
		return nil
	}
	if m.scroller != nil {
		return m.scroller.Update(msg)
	}
	return nil
}

// switchMenu closes the active menu and moves keyboard input to a neighbour, scrolling it
// into view.
func (m *Model) switchMenu(delta int) {
	n := len(m.menus)
	if n < 2 {
		return
	}
	m.menus[m.active].CloseAllComponents(true)
	m.active = ((m.active+delta)%n + n) % n

	if m.scroller == nil {
		return
	}
	frame := m.menus[m.active].Frame()
	bounds := m.scroller.Bounds()
	switch {
	case frame.MinY() < bounds.MinY():
		m.scroller.SetContentOffset(dropdown.Point{Y: frame.MinY()})
	case frame.MaxY() > bounds.MaxY():
		m.scroller.SetContentOffset(dropdown.Point{Y: frame.MaxY() - bounds.Height})
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := dropdown.Point{X: msg.X, Y: msg.Y}
	if m.scroller != nil {
		p.Y += m.scroller.ContentOffset().Y
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		delta := 1
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		for i := len(m.menus) - 1; i >= 0; i-- {
			if m.menus[i].HandleWheel(p, delta) {
				return nil
			}
		}
		if m.scroller != nil {
			return m.scroller.Update(msg)
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		// Open panels sit above every bar.
		for i := len(m.menus) - 1; i >= 0; i-- {
			if m.menus[i].Surface().Attached() && m.menus[i].HandleClick(p) {
				m.active = i
				return nil
			}
		}
		for i, menu := range m.menus {
			if menu.HandleClick(p) {
				m.active = i
				return nil
			}
		}
	}
	return nil
}
