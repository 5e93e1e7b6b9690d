package dropdown

import (
	"github.com/charmbracelet/lipgloss"
)

// Delegate lookups. Each applies the documented default when the delegate lacks the
// capability.

func (m *Menu) componentWidths() []int {
	widths := make([]int, len(m.segments))
	if d, ok := m.delegate.(ComponentWidthProvider); ok {
		for i := range widths {
			widths[i] = d.ComponentWidth(m, i)
		}
	}
	return widths
}

func (m *Menu) usesFullRowWidth(component int) bool {
	if d, ok := m.delegate.(FullRowWidthProvider); ok {
		return d.UsesFullRowWidth(m, component)
	}
	return true
}

func (m *Menu) maxRows(component int) int {
	if d, ok := m.delegate.(MaxRowsProvider); ok {
		return max(0, d.MaxRows(m, component))
	}
	return 0
}

func (m *Menu) rowHeight(component int) int {
	if d, ok := m.delegate.(RowHeightProvider); ok {
		if h := d.RowHeight(m, component); h > 0 {
			return h
		}
	}
	return DefaultRowHeight
}

func (m *Menu) isEnabled(component int) bool {
	if d, ok := m.delegate.(ComponentEnabler); ok {
		return d.ComponentEnabled(m, component)
	}
	return true
}

func (m *Menu) highlightColor(component int) lipgloss.TerminalColor {
	if d, ok := m.delegate.(HighlightColorProvider); ok {
		return d.HighlightColor(m, component)
	}
	return nil
}

// componentTitles resolves the plain and selected titles, rich variants first. The selected
// title is only looked up when there is a regular title.
func (m *Menu) componentTitles(component int) (title, selected string) {
	if d, ok := m.delegate.(RichComponentTitleProvider); ok {
		title = d.RichComponentTitle(m, component)
	}
	if title == "" {
		if d, ok := m.delegate.(ComponentTitleProvider); ok {
			title = d.ComponentTitle(m, component)
		}
	}
	if title == "" {
		return "", ""
	}
	if d, ok := m.delegate.(RichSelectedComponentTitleProvider); ok {
		selected = d.RichSelectedComponentTitle(m, component)
	}
	if selected == "" {
		if d, ok := m.delegate.(SelectedComponentTitleProvider); ok {
			selected = d.SelectedComponentTitle(m, component)
		}
	}
	return title, selected
}

func (m *Menu) componentView(component int) View {
	if d, ok := m.delegate.(ComponentViewProvider); ok {
		return d.ComponentView(m, component)
	}
	return nil
}

func (m *Menu) rowTitle(ip IndexPath) string {
	if d, ok := m.delegate.(RichRowTitleProvider); ok {
		if t := d.RichRowTitle(m, ip); t != "" {
			return t
		}
	}
	if d, ok := m.delegate.(RowTitleProvider); ok {
		return d.RowTitle(m, ip)
	}
	return ""
}

func (m *Menu) rowView(ip IndexPath, reusing View) View {
	if d, ok := m.delegate.(RowViewProvider); ok {
		return d.RowView(m, ip, reusing)
	}
	return nil
}

func (m *Menu) rowAccessory(ip IndexPath) View {
	if d, ok := m.delegate.(RowAccessoryProvider); ok {
		return d.RowAccessory(m, ip)
	}
	return nil
}

func (m *Menu) rowBackground(ip IndexPath) lipgloss.TerminalColor {
	if d, ok := m.delegate.(RowBackgroundProvider); ok {
		return d.RowBackground(m, ip)
	}
	return nil
}
