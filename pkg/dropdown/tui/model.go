package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
)

// LayoutFunc positions the hosted menus for a host area of the given size. In scrolling
// hosts the frames are in content coordinates.
type LayoutFunc func(width, height int, menus []*dropdown.Menu)

// BackgroundFunc renders what the menus sit on, width x height cells.
type BackgroundFunc func(width, height int) string

// StackLayout puts the menus on consecutive lines, full width.
func StackLayout(width, _ int, menus []*dropdown.Menu) {
	for i, m := range menus {
		m.SetFrame(dropdown.R(0, i, width, 1))
	}
}

// Option configures a Model.
type Option func(*Model)

// WithLayout replaces StackLayout.
func WithLayout(fn LayoutFunc) Option {
	return func(m *Model) { m.layout = fn }
}

// WithBackground sets the content drawn behind the menus.
func WithBackground(fn BackgroundFunc) Option {
	return func(m *Model) { m.background = fn }
}

// WithScrolling hosts the menus in a scrollable viewport whose content is height lines
// tall.
func WithScrolling(contentHeight int) Option {
	return func(m *Model) {
		m.scroller = NewViewportContainer(0, 0)
		m.scroller.SetContentHeight(contentHeight)
	}
}

// WithKeyMap replaces DefaultKeyMap.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithoutAnimation completes every transition immediately.
func WithoutAnimation() Option {
	return func(m *Model) { m.animator = nil }
}

// Model hosts dropdown menus in a bubbletea program. It forwards keyboard and mouse input,
// plays transitions, and turns menu events into RowSelectedMsg, ComponentOpenedMsg and
// ComponentClosedMsg.
type Model struct {
	menus  []*dropdown.Menu
	active int

	screen   *dropdown.Screen
	scroller *ViewportContainer
	animator *SpringAnimator
	events   *eventQueue

	layout     LayoutFunc
	background BackgroundFunc
	keys       KeyMap
	help       help.Model
	showHelp   bool

	width, height int
}

// New hosts menus. Each menu is attached to the model's container and wired to its
// animator; menus must already have their data source.
func New(menus []*dropdown.Menu, opts ...Option) Model {
	m := Model{
		menus:    menus,
		screen:   dropdown.NewScreen(0, 0),
		animator: NewSpringAnimator(defaultFPS),
		events:   &eventQueue{},
		layout:   StackLayout,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	for i, menu := range menus {
		if m.animator != nil {
			menu.SetAnimator(m.animator)
		} else {
			menu.SetAnimator(nil)
		}
		menu.Observe(m.events.observe(i))
		menu.Attach(m.container())
	}
	return m
}

func (m Model) container() dropdown.Container {
	if m.scroller != nil {
		return m.scroller
	}
	return m.screen
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Menus returns the hosted menus.
func (m Model) Menus() []*dropdown.Menu { return m.menus }

// Active is the menu receiving keyboard input.
func (m Model) Active() int { return m.active }

// Scroller returns the viewport container, or nil when the model is not scrolling.
func (m Model) Scroller() *ViewportContainer { return m.scroller }

// Animator returns the spring animator, or nil when animation is disabled.
func (m Model) Animator() *SpringAnimator { return m.animator }

// KeyMap returns the active bindings.
func (m Model) KeyMap() KeyMap { return m.keys }

// Size returns the host area.
func (m Model) Size() (width, height int) { return m.width, m.height }

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	if m.scroller != nil {
		m.scroller.SetSize(width, height)
		m.layout(width, m.scroller.ContentSize().Height, m.menus)
		return
	}
	m.screen.SetSize(width, height)
	m.layout(width, height, m.menus)
}
