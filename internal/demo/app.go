package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/dropmenu/internal/logger"
	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown/tui"
)

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	pickStyle   = lipgloss.NewStyle().Bold(true)
)

// Binding pairs a menu with the source feeding it.
type Binding struct {
	Menu   *dropdown.Menu
	Source *Source
}

// NewBinding builds a menu over catalog.
func NewBinding(catalog Catalog, opts dropdown.Options, log *logger.Logger) Binding {
	src := NewSource(catalog, opts.AllowsMultipleSelection)
	menu := dropdown.New(dropdown.WithOptions(opts), dropdown.WithLogger(log.Zerolog()))
	menu.SetDataSource(src)
	menu.SetDelegate(src)
	return Binding{Menu: menu, Source: src}
}

// App is the interactive demo: one or more menus with a status line listing the picked
// rows. Pressing / while a component is open filters its rows.
type App struct {
	ui       tui.Model
	bindings []Binding
	log      *logger.Logger

	filter    textinput.Model
	filtering bool
	filterAt  filterTarget

	status        string
	width, height int
}

type filterTarget struct {
	menu, component int
}

// NewApp hosts bindings in a tui.Model configured with opts.
func NewApp(log *logger.Logger, bindings []Binding, opts ...tui.Option) App {
	menus := make([]*dropdown.Menu, len(bindings))
	for i, b := range bindings {
		menus[i] = b.Menu
	}

	fi := textinput.New()
	fi.Prompt = "/"
	fi.Placeholder = "filter rows"
	fi.CharLimit = 64
	fi.Width = 30

	a := App{
		ui:       tui.New(menus, opts...),
		bindings: bindings,
		log:      log,
		filter:   fi,
	}
	for i, b := range bindings {
		for c := range b.Menu.NumberOfComponents() {
			a.syncSelection(i, c)
		}
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd { return a.ui.Init() }

// UI returns the hosted menu model.
func (a App) UI() tui.Model { return a.ui }

// Filtering reports whether the filter input has focus.
func (a App) Filtering() bool { return a.filtering }

// Status returns the last status message.
func (a App) Status() string { return a.status }

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.filter.Width = max(10, msg.Width/3)
		return a.forward(tea.WindowSizeMsg{Width: msg.Width, Height: max(0, msg.Height-1)})
	case tea.KeyMsg:
		if a.filtering {
			return a.updateFilter(msg)
		}
		if msg.String() == "/" {
			if cmd, ok := a.startFilter(); ok {
				return a, cmd
			}
		}
	case tui.RowSelectedMsg:
		a.togglePick(msg.Menu, msg.Index)
		return a, nil
	case tui.ComponentOpenedMsg:
		a.status = "opened " + a.componentTitle(msg.Menu, msg.Component)
		return a, nil
	case tui.ComponentClosedMsg:
		if a.filterAt == (filterTarget{msg.Menu, msg.Component}) {
			a.stopFilter(true)
		}
		a.status = ""
		return a, nil
	}
	return a.forward(msg)
}

func (a App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.ui, cmd = a.ui.Update(msg)
	return a, cmd
}

func (a *App) startFilter() (tea.Cmd, bool) {
	i := a.ui.Active()
	if i >= len(a.bindings) {
		return nil, false
	}
	c, open := a.bindings[i].Menu.SelectedComponent()
	if !open {
		return nil, false
	}
	a.filtering = true
	a.filterAt = filterTarget{i, c}
	a.filter.SetValue(a.bindings[i].Source.Query(c))
	a.filter.CursorEnd()
	return a.filter.Focus(), true
}

func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.stopFilter(true)
		return a, nil
	case tea.KeyEnter:
		a.stopFilter(false)
		return a, nil
	}

	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	b := a.bindings[a.filterAt.menu]
	if a.filter.Value() != b.Source.Query(a.filterAt.component) {
		a.applyQuery(a.filterAt.menu, a.filterAt.component, a.filter.Value())
	}
	return a, cmd
}

// stopFilter blurs the input. With reset, the component shows all rows again.
func (a *App) stopFilter(reset bool) {
	a.filtering = false
	a.filter.Blur()
	if reset {
		a.filter.Reset()
		a.applyQuery(a.filterAt.menu, a.filterAt.component, "")
		a.filterAt = filterTarget{}
	}
}

func (a *App) applyQuery(i, c int, query string) {
	if i >= len(a.bindings) || c >= a.bindings[i].Menu.NumberOfComponents() {
		return
	}
	b := a.bindings[i]
	if b.Source.Query(c) == strings.TrimSpace(query) {
		return
	}
	b.Source.SetQuery(c, query)
	b.Menu.ReloadComponent(c)
	a.syncSelection(i, c)
	a.log.WithFields(map[string]any{
		"menu":      i,
		"component": c,
		"query":     query,
		"rows":      b.Menu.NumberOfRows(c),
	}).Debug("filter applied")
}

func (a *App) togglePick(i int, ip dropdown.IndexPath) {
	b := a.bindings[i]
	row := b.Source.SourceRow(ip.Component, ip.Row)
	if row == dropdown.NoRow {
		return
	}
	picked := b.Source.Toggle(ip.Component, row)
	a.syncSelection(i, ip.Component)

	title := b.Source.Catalog().Rows(ip.Component)[row].Title
	verb := "unpicked"
	if picked {
		verb = "picked"
	}
	a.status = fmt.Sprintf("%s %s", verb, title)
	a.log.WithFields(map[string]any{
		"menu":      i,
		"component": ip.Component,
		"row":       row,
		"picked":    picked,
	}).Debug("row toggled")
}

// syncSelection makes the menu's selected rows mirror the picks of the displayed rows.
func (a *App) syncSelection(i, c int) {
	b := a.bindings[i]
	var want dropdown.IndexSet
	picked := b.Source.Picked(c)
	for r := range b.Menu.NumberOfRows(c) {
		if picked.Contains(b.Source.SourceRow(c, r)) {
			want.Insert(r)
		}
	}

	for _, r := range b.Menu.SelectedRows(c).Slice() {
		if !want.Contains(r) {
			b.Menu.Deselect(dropdown.IndexPath{Component: c, Row: r})
		}
	}
	have := b.Menu.SelectedRows(c)
	for _, r := range want.Slice() {
		if !have.Contains(r) {
			b.Menu.Select(dropdown.IndexPath{Component: c, Row: r})
		}
	}
}

func (a App) componentTitle(i, c int) string {
	if i >= len(a.bindings) || c >= a.bindings[i].Source.Catalog().Len() {
		return ""
	}
	return a.bindings[i].Source.Catalog().Component(c).Title
}

// Picks summarises the picked rows of menu i, one "title: rows" pair per component.
func (a App) Picks(i int) string {
	if i >= len(a.bindings) {
		return ""
	}
	src := a.bindings[i].Source
	var parts []string
	for c := range src.Catalog().Len() {
		set := src.Picked(c)
		if set.IsEmpty() {
			continue
		}
		rows := src.Catalog().Rows(c)
		titles := make([]string, 0, set.Len())
		for _, r := range set.Slice() {
			titles = append(titles, rows[r].Title)
		}
		parts = append(parts, src.Catalog().Component(c).Title+": "+pickStyle.Render(strings.Join(titles, ", ")))
	}
	return strings.Join(parts, "  ")
}

// View implements tea.Model.
func (a App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	return a.ui.View() + "\n" + a.statusLine()
}

func (a App) statusLine() string {
	var line string
	switch {
	case a.filtering:
		line = a.filter.View()
	case a.status != "":
		line = statusStyle.Render(a.status) + "  " + a.Picks(a.ui.Active())
	default:
		line = a.Picks(a.ui.Active())
		if line == "" {
			line = a.ui.HelpView()
		}
	}
	return dropdown.FitCanvas(line, a.width, 1)
}
