package demo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
)

var (
	matchStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	detailStyle = lipgloss.NewStyle().Faint(true)
	checkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#34C759"))
)

const checkMark = "✓"

// Source is the data source and delegate of a demo menu. It can narrow a component's rows
// with a fuzzy query and remembers which rows were picked, in catalog row numbers.
type Source struct {
	catalog Catalog
	multi   bool

	queries map[int]string
	matches map[int][]fuzzy.Match
	picked  map[int]dropdown.IndexSet
}

// NewSource serves catalog. With multi, several rows per component can be picked.
func NewSource(catalog Catalog, multi bool) *Source {
	s := &Source{
		catalog: catalog,
		multi:   multi,
		queries: make(map[int]string),
		matches: make(map[int][]fuzzy.Match),
		picked:  make(map[int]dropdown.IndexSet),
	}
	for c := range catalog.Len() {
		for row, e := range catalog.Rows(c) {
			if e.Selected {
				s.Toggle(c, row)
			}
		}
	}
	return s
}

// Catalog returns the wrapped catalog.
func (s *Source) Catalog() Catalog { return s.catalog }

// entryTitles adapts catalog rows to fuzzy.Source.
type entryTitles []Entry

func (e entryTitles) String(i int) string { return e[i].Title }
func (e entryTitles) Len() int            { return len(e) }

// SetQuery filters the rows of component c. An empty query shows every row again. The menu
// must reload the component afterwards.
func (s *Source) SetQuery(c int, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		delete(s.queries, c)
		delete(s.matches, c)
		return
	}
	s.queries[c] = query
	s.matches[c] = fuzzy.FindFrom(query, entryTitles(s.catalog.Rows(c)))
}

// Query returns the active query of component c.
func (s *Source) Query(c int) string { return s.queries[c] }

// Filtered reports whether component c is narrowed by a query.
func (s *Source) Filtered(c int) bool {
	_, ok := s.matches[c]
	return ok
}

// SourceRow maps a displayed row to its catalog row, or dropdown.NoRow.
func (s *Source) SourceRow(c, row int) int {
	if ms, ok := s.matches[c]; ok {
		if row < 0 || row >= len(ms) {
			return dropdown.NoRow
		}
		return ms[row].Index
	}
	if row < 0 || row >= len(s.catalog.Rows(c)) {
		return dropdown.NoRow
	}
	return row
}

// Entry returns the catalog row behind a displayed row.
func (s *Source) Entry(ip dropdown.IndexPath) (Entry, bool) {
	row := s.SourceRow(ip.Component, ip.Row)
	if row == dropdown.NoRow {
		return Entry{}, false
	}
	return s.catalog.Rows(ip.Component)[row], true
}

// Toggle picks or unpicks catalog row of component c and reports the new state. Without
// multiple selection, picking a row unpicks the others.
func (s *Source) Toggle(c, row int) bool {
	set := s.picked[c]
	defer func() { s.picked[c] = set }()

	if set.Contains(row) {
		set.Remove(row)
		return false
	}
	if !s.multi {
		set.RemoveAll()
	}
	set.Insert(row)
	return true
}

// Picked returns the picked catalog rows of component c.
func (s *Source) Picked(c int) dropdown.IndexSet {
	return s.picked[c].Clone()
}

func (s *Source) NumberOfComponents(*dropdown.Menu) int { return s.catalog.Len() }

func (s *Source) NumberOfRows(_ *dropdown.Menu, c int) int {
	if ms, ok := s.matches[c]; ok {
		return len(ms)
	}
	return len(s.catalog.Rows(c))
}

func (s *Source) ComponentTitle(_ *dropdown.Menu, c int) string {
	info := s.catalog.Component(c)
	if q := s.queries[c]; q != "" {
		return info.Title + " /" + q
	}
	return info.Title
}

func (s *Source) SelectedComponentTitle(_ *dropdown.Menu, c int) string {
	return s.catalog.Component(c).SelectedTitle
}

func (s *Source) ComponentWidth(_ *dropdown.Menu, c int) int {
	return s.catalog.Component(c).Width
}

func (s *Source) UsesFullRowWidth(_ *dropdown.Menu, c int) bool {
	return s.catalog.Component(c).FullRow
}

func (s *Source) MaxRows(_ *dropdown.Menu, c int) int {
	return s.catalog.Component(c).MaxRows
}

func (s *Source) RowHeight(_ *dropdown.Menu, c int) int {
	return s.catalog.Component(c).RowHeight
}

func (s *Source) ComponentEnabled(_ *dropdown.Menu, c int) bool {
	return s.catalog.Component(c).Enabled
}

func (s *Source) HighlightColor(_ *dropdown.Menu, c int) lipgloss.TerminalColor {
	return s.catalog.Component(c).Highlight
}

func (s *Source) RowTitle(_ *dropdown.Menu, ip dropdown.IndexPath) string {
	e, _ := s.Entry(ip)
	return e.Title
}

// RichRowTitle marks the characters matched by the query.
func (s *Source) RichRowTitle(_ *dropdown.Menu, ip dropdown.IndexPath) string {
	ms, ok := s.matches[ip.Component]
	if !ok || ip.Row < 0 || ip.Row >= len(ms) {
		return ""
	}
	return highlightMatch(ms[ip.Row])
}

func highlightMatch(m fuzzy.Match) string {
	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		matched[i] = true
	}
	var b strings.Builder
	for i, r := range m.Str {
		if matched[i] {
			b.WriteString(matchStyle.Render(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Source) RowAccessory(_ *dropdown.Menu, ip dropdown.IndexPath) dropdown.View {
	e, ok := s.Entry(ip)
	if !ok {
		return nil
	}
	picked := s.picked[ip.Component].Contains(s.SourceRow(ip.Component, ip.Row))
	if e.Detail == "" && !picked {
		return nil
	}
	return dropdown.ViewFunc(func(width, _ int) string {
		var parts []string
		if e.Detail != "" {
			parts = append(parts, detailStyle.Render(e.Detail))
		}
		if picked {
			parts = append(parts, checkStyle.Render(checkMark))
		}
		return strings.Join(parts, " ")
	})
}

func (s *Source) RowBackground(_ *dropdown.Menu, ip dropdown.IndexPath) lipgloss.TerminalColor {
	e, _ := s.Entry(ip)
	return e.Background
}
