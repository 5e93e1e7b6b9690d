package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
)

// KeyMap holds the bindings understood by Model. It implements help.KeyMap.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Select   key.Binding
	Close    key.Binding
	NextMenu key.Binding
	PrevMenu key.Binding
	Jump     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/shift+tab", "previous"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "open/select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		NextMenu: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next menu"),
		),
		PrevMenu: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "previous menu"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "open component"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Select, k.Close, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Jump},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Select, k.Close, k.NextMenu, k.PrevMenu},
		{k.Help, k.Quit},
	}
}

// action maps a key press to a menu command.
func (k KeyMap) action(msg tea.KeyMsg) dropdown.KeyAction {
	switch {
	case key.Matches(msg, k.Next):
		return dropdown.KeyNextComponent
	case key.Matches(msg, k.Prev):
		return dropdown.KeyPrevComponent
	case key.Matches(msg, k.Up):
		return dropdown.KeyRowUp
	case key.Matches(msg, k.Down):
		return dropdown.KeyRowDown
	case key.Matches(msg, k.PageUp):
		return dropdown.KeyPageUp
	case key.Matches(msg, k.PageDown):
		return dropdown.KeyPageDown
	case key.Matches(msg, k.Select):
		return dropdown.KeyActivate
	case key.Matches(msg, k.Close):
		return dropdown.KeyClose
	}
	return dropdown.KeyNone
}
