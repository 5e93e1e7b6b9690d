package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
)

// RowSelectedMsg reports a row tap in one of the hosted menus.
type RowSelectedMsg struct {
	Menu  int
	Index dropdown.IndexPath
}

// ComponentOpenedMsg reports that a component finished opening.
type ComponentOpenedMsg struct {
	Menu      int
	Component int
}

// ComponentClosedMsg reports that a component closed.
type ComponentClosedMsg struct {
	Menu      int
	Component int
}

// eventQueue collects menu events raised during an Update so they can be replayed as
// messages, in order, once the Update returns.
type eventQueue struct {
	msgs []tea.Msg
}

func (q *eventQueue) observe(menu int) func(dropdown.Event) {
	return func(e dropdown.Event) {
		switch e.Kind {
		case dropdown.EventOpened:
			q.msgs = append(q.msgs, ComponentOpenedMsg{Menu: menu, Component: e.Component})
		case dropdown.EventClosed:
			q.msgs = append(q.msgs, ComponentClosedMsg{Menu: menu, Component: e.Component})
		case dropdown.EventRowSelected:
			q.msgs = append(q.msgs, RowSelectedMsg{
				Menu:  menu,
				Index: dropdown.IndexPath{Component: e.Component, Row: e.Row},
			})
		}
	}
}

// drain returns a command that delivers the queued messages in order.
func (q *eventQueue) drain() tea.Cmd {
	if len(q.msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(q.msgs))
	for i, msg := range q.msgs {
		cmds[i] = func() tea.Msg { return msg }
	}
	q.msgs = nil
	return tea.Sequence(cmds...)
}
