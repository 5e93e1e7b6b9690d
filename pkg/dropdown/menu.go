package dropdown

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// noComponent marks the closed state.
const noComponent = -1

// Menu is the header bar. It owns one Segment per component, the separators between
// them, and the single Surface used to show rows. All methods must be called from the
// goroutine that drives the host's event loop.
type Menu struct {
	dataSource DataSource
	delegate   any
	opts       Options
	log        zerolog.Logger

	frame     Rect
	container Container
	animator  Animator

	rows       []int
	selections []IndexSet
	segments   []*Segment
	separators []Rect

	selected     int
	focus        int
	focusVisible bool

	surface    *Surface
	transition *transitioner

	observers    []observer
	nextObserver int
}

// New creates a menu with DefaultOptions adjusted by opts.
func New(opts ...Option) *Menu {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := &Menu{
		opts:     o,
		log:      o.Logger,
		selected: noComponent,
	}
	m.surface = newSurface(m)
	m.transition = &transitioner{menu: m, surface: m.surface}
	return m
}

// SetDataSource attaches the data source. Call Reload to pick up its data.
func (m *Menu) SetDataSource(ds DataSource) { m.dataSource = ds }

// DataSource returns the attached data source, or nil.
func (m *Menu) DataSource() DataSource { return m.dataSource }

// SetDelegate attaches the delegate. d may implement any of the capability interfaces.
func (m *Menu) SetDelegate(d any) {
	m.delegate = d
	m.updateSegments()
	m.layout()
}

// Delegate returns the attached delegate, or nil.
func (m *Menu) Delegate() any { return m.delegate }

// SetAnimator installs the runtime that plays transitions. Without one, every transition
// completes immediately.
func (m *Menu) SetAnimator(a Animator) { m.animator = a }

// Options returns a copy of the current options.
func (m *Menu) Options() Options { return m.opts }

// SetOptions replaces the options and redraws the segments.
func (m *Menu) SetOptions(o Options) {
	m.opts = o
	m.log = o.Logger
	m.updateSegments()
	m.layout()
}

// Frame is the bar's rectangle in container coordinates.
func (m *Menu) Frame() Rect { return m.frame }

// SetFrame moves or resizes the bar and lays the segments out again. An open panel follows
// the new segment positions.
func (m *Menu) SetFrame(r Rect) {
	m.frame = r
	m.layout()
	m.transition.relayout()
}

// Container returns the container panels are presented in.
func (m *Menu) Container() Container { return m.container }

// Attach sets the container panels are presented in and reloads the menu.
func (m *Menu) Attach(c Container) {
	m.container = c
	m.Reload()
}

// Detach closes any open component without animation and forgets the container. A switch
// in flight is abandoned, so the component it was about to open is never reported.
func (m *Menu) Detach() {
	m.transition.settle(false)
	if m.selected != noComponent {
		m.cleanupSelected()
		m.dismiss(false, nil)
	}
	m.container = nil
}

// Surface returns the panel shared by all components.
func (m *Menu) Surface() *Surface { return m.surface }

// Segments returns the segments in component order.
func (m *Menu) Segments() []*Segment { return slices.Clone(m.segments) }

// Separators returns the separator rectangles, relative to the bar's origin.
func (m *Menu) Separators() []Rect { return slices.Clone(m.separators) }

// Reload queries the data source from scratch. Row counts are replaced and every selection
// is cleared. Without a data source it does nothing. A switch in flight still opens its
// target once the dismiss ends, provided the component survived the reload.
func (m *Menu) Reload() {
	if m.dataSource == nil {
		return
	}

	n := max(0, m.dataSource.NumberOfComponents(m))
	m.rows = make([]int, n)
	m.selections = make([]IndexSet, n)
	for i := range n {
		m.rows[i] = max(0, m.dataSource.NumberOfRows(m, i))
	}

	for len(m.segments) < n {
		m.segments = append(m.segments, newSegment(len(m.segments)))
	}
	clear(m.segments[n:])
	m.segments = m.segments[:n]

	if m.selected >= n {
		m.closeImmediately()
	}
	m.focus = min(m.focus, max(0, n-1))

	m.updateSegments()
	m.layout()
	m.surface.Refresh()

	m.log.Debug().Int("components", n).Msg("menu reloaded")
}

// ReloadComponent re-reads the row count of one component and redraws its segment. Its
// selections are kept, except rows that no longer exist.
func (m *Menu) ReloadComponent(component int) {
	if !m.validComponent("Menu.ReloadComponent", component) {
		return
	}
	if m.dataSource == nil {
		return
	}

	m.rows[component] = max(0, m.dataSource.NumberOfRows(m, component))
	m.selections[component].RemoveFrom(m.rows[component])
	m.updateSegment(component)

	if component == m.selected {
		m.surface.Refresh()
	}
}

// NumberOfComponents is the cached component count.
func (m *Menu) NumberOfComponents() int { return len(m.rows) }

// NumberOfRows is the cached row count of a component.
func (m *Menu) NumberOfRows(component int) int {
	if !m.validComponent("Menu.NumberOfRows", component) {
		return 0
	}
	return m.rows[component]
}

// Select marks a row as selected. Unless multiple selection is allowed, other selections
// in the component are cleared first. It returns the rows whose appearance changed; if the
// component is open, exactly those rows are redrawn.
func (m *Menu) Select(ip IndexPath) IndexSet {
	if !m.validIndexPath("Menu.Select", ip) {
		return IndexSet{}
	}

	var changed IndexSet
	if !m.opts.AllowsMultipleSelection {
		changed = m.selections[ip.Component].Clone()
		m.selections[ip.Component].RemoveAll()
	}
	m.selections[ip.Component].Insert(ip.Row)
	changed.Insert(ip.Row)

	if ip.Component == m.selected {
		m.surface.RefreshRows(changed)
	}
	return changed
}

// Deselect clears the selection of a row.
func (m *Menu) Deselect(ip IndexPath) {
	if !m.validIndexPath("Menu.Deselect", ip) {
		return
	}
	m.selections[ip.Component].Remove(ip.Row)
	if ip.Component == m.selected {
		m.surface.RefreshRows(NewIndexSet(ip.Row))
	}
}

// SelectedRows returns a copy of the selected rows of a component.
func (m *Menu) SelectedRows(component int) IndexSet {
	if !m.validComponent("Menu.SelectedRows", component) {
		return IndexSet{}
	}
	return m.selections[component].Clone()
}

// VisibleCustomView returns the delegate view of a row, if the row belongs to the open
// component and is on screen.
func (m *Menu) VisibleCustomView(ip IndexPath) View {
	if m.selected == noComponent || ip.Component != m.selected {
		return nil
	}
	return m.surface.customView(ip.Row)
}

func (m *Menu) updateSegments() {
	for i := range m.segments {
		m.updateSegment(i)
	}
}

func (m *Menu) updateSegment(component int) {
	seg := m.segments[component]
	seg.enabled = m.isEnabled(component)
	if v := m.componentView(component); v != nil {
		seg.view = v
	}
	if seg.view == nil {
		seg.title, seg.selectedTitle = m.componentTitles(component)
	}
}

func (m *Menu) layout() {
	if len(m.segments) == 0 {
		m.separators = nil
		return
	}
	if m.frame.Width <= 0 {
		for _, seg := range m.segments {
			seg.frame = Rect{}
		}
		m.separators = nil
		return
	}

	widths := m.componentWidths()
	total, _ := customWidths(widths)
	m.precondition(total <= m.frame.Width, "Menu.layout",
		"total width for components (%d) must not be greater than bar width (%d)", total, m.frame.Width)

	rects := LayoutSegments(m.frame.Width, max(1, m.frame.Height), widths)
	for i, seg := range m.segments {
		seg.frame = rects[i]
	}
	m.separators = separatorRects(rects)
}

// markSelected shows component as the open segment, or clears every segment for
// noComponent.
func (m *Menu) markSelected(component int) {
	for i, seg := range m.segments {
		seg.selected = i == component
	}
}

// View renders the bar.
func (m *Menu) View() string {
	h := max(1, m.frame.Height)
	if len(m.segments) == 0 || m.frame.Width <= 0 {
		return FitCanvas("", m.frame.Width, h)
	}

	parts := make([]string, 0, len(m.segments))
	last := len(m.segments) - 1
	for i, seg := range m.segments {
		w := seg.frame.Width
		if w <= 0 {
			continue
		}
		if i < last {
			w--
		}
		block := seg.render(m.opts, w, h)
		if m.focusVisible && i == m.focus && !seg.selected {
			block = lipgloss.NewStyle().Underline(true).Render(block)
		}
		if i < last {
			block = lipgloss.JoinHorizontal(lipgloss.Top, block, m.separatorBlock(h))
		}
		parts = append(parts, block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Menu) separatorBlock(height int) string {
	line := strings.TrimSuffix(strings.Repeat("│\n", height), "\n")
	if c := m.opts.ComponentSeparatorColor; c != nil {
		return lipgloss.NewStyle().Foreground(c).Render(line)
	}
	return line
}
