package dropdown

import (
	"github.com/charmbracelet/lipgloss"
)

// View is anything that can draw itself into a width x height block of cells.
type View interface {
	Render(width, height int) string
}

// ViewFunc adapts a function to View.
type ViewFunc func(width, height int) string

// Render calls f.
func (f ViewFunc) Render(width, height int) string { return f(width, height) }

// DataSource supplies the shape of a menu. It is queried on every reload and must be cheap
// and free of side effects.
type DataSource interface {
	NumberOfComponents(m *Menu) int
	NumberOfRows(m *Menu, component int) int
}

// The interfaces below are optional delegate capabilities. A delegate implements any subset
// of them; the menu type-asserts per call and falls back to a documented default.

// ComponentWidthProvider overrides the width of a segment. Values <= 0 keep the default
// equal share.
type ComponentWidthProvider interface {
	ComponentWidth(m *Menu, component int) int
}

// FullRowWidthProvider decides whether the panel spans the whole bar (the default) or just
// the segment that opened it.
type FullRowWidthProvider interface {
	UsesFullRowWidth(m *Menu, component int) bool
}

// MaxRowsProvider caps the number of rows shown at once. Values <= 0 mean unbounded.
type MaxRowsProvider interface {
	MaxRows(m *Menu, component int) int
}

// RowHeightProvider sets the row height of a component. Values <= 0 keep DefaultRowHeight.
type RowHeightProvider interface {
	RowHeight(m *Menu, component int) int
}

// ComponentTitleProvider supplies the plain title of a segment.
type ComponentTitleProvider interface {
	ComponentTitle(m *Menu, component int) string
}

// SelectedComponentTitleProvider supplies the title shown while the segment is open.
type SelectedComponentTitleProvider interface {
	SelectedComponentTitle(m *Menu, component int) string
}

// RichComponentTitleProvider supplies a pre-styled title. It wins over the plain title.
type RichComponentTitleProvider interface {
	RichComponentTitle(m *Menu, component int) string
}

// RichSelectedComponentTitleProvider supplies a pre-styled title for the open state.
type RichSelectedComponentTitleProvider interface {
	RichSelectedComponentTitle(m *Menu, component int) string
}

// ComponentViewProvider replaces a segment's title with a custom view.
type ComponentViewProvider interface {
	ComponentView(m *Menu, component int) View
}

// RowTitleProvider supplies the plain title of a row.
type RowTitleProvider interface {
	RowTitle(m *Menu, ip IndexPath) string
}

// RichRowTitleProvider supplies a pre-styled row title. It wins over the plain title.
type RichRowTitleProvider interface {
	RichRowTitle(m *Menu, ip IndexPath) string
}

// RowViewProvider supplies a custom view for a row. reusing is the view previously bound
// to the recycled cell, or nil; returning it again avoids rebuilding state.
type RowViewProvider interface {
	RowView(m *Menu, ip IndexPath, reusing View) View
}

// RowAccessoryProvider supplies a view drawn at the trailing edge of a row.
type RowAccessoryProvider interface {
	RowAccessory(m *Menu, ip IndexPath) View
}

// RowBackgroundProvider colours a row. A nil colour leaves the row transparent.
type RowBackgroundProvider interface {
	RowBackground(m *Menu, ip IndexPath) lipgloss.TerminalColor
}

// HighlightColorProvider colours the highlighted row of a component.
type HighlightColorProvider interface {
	HighlightColor(m *Menu, component int) lipgloss.TerminalColor
}

// ComponentEnabler disables segments. Components are enabled by default.
type ComponentEnabler interface {
	ComponentEnabled(m *Menu, component int) bool
}

// RowSelectionHandler is told when the user activates a row.
type RowSelectionHandler interface {
	DidSelectRow(m *Menu, ip IndexPath)
}

// OpenHandler is told after a component opens.
type OpenHandler interface {
	DidOpen(m *Menu, component int)
}

// CloseHandler is told after a component closes.
type CloseHandler interface {
	DidClose(m *Menu, component int)
}
