package demo

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/dropmenu/internal/config"
	"github.com/alexisbeaulieu97/dropmenu/pkg/dropdown"
)

type sliceCatalog struct {
	infos []ComponentInfo
	rows  [][]Entry
}

func (s sliceCatalog) Len() int                      { return len(s.infos) }
func (s sliceCatalog) Component(c int) ComponentInfo { return s.infos[c] }
func (s sliceCatalog) Rows(c int) []Entry            { return s.rows[c] }

func colorCatalog() sliceCatalog {
	return sliceCatalog{
		infos: []ComponentInfo{
			{Title: "Colors", SelectedTitle: "Pick a color", Enabled: true, FullRow: true},
			{Title: "Shapes", Width: 12, Enabled: true},
		},
		rows: [][]Entry{
			{
				{Title: "Red", Detail: "#f00"},
				{Title: "Green", Selected: true},
				{Title: "Blue"},
				{Title: "Grey"},
			},
			{{Title: "Circle"}, {Title: "Square"}},
		},
	}
}

func TestSourcePreselectsRows(t *testing.T) {
	t.Parallel()

	src := NewSource(colorCatalog(), false)
	require.Equal(t, []int{1}, src.Picked(0).Slice())
	require.True(t, src.Picked(1).IsEmpty())
	require.Equal(t, 4, src.NumberOfRows(nil, 0))
	require.Equal(t, 2, src.NumberOfComponents(nil))
}

func TestSourceToggle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		multi bool
		rows  []int
		want  []int
	}{
		{name: "single selection replaces", rows: []int{0, 2}, want: []int{2}},
		{name: "single selection toggles off", rows: []int{1}, want: nil},
		{name: "multiple selection accumulates", multi: true, rows: []int{0, 3}, want: []int{0, 1, 3}},
		{name: "multiple selection toggles off", multi: true, rows: []int{1, 0}, want: []int{0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := NewSource(colorCatalog(), tc.multi)
			for _, r := range tc.rows {
				src.Toggle(0, r)
			}
			require.Equal(t, tc.want, src.Picked(0).Slice())
		})
	}
}

func TestSourceQuery(t *testing.T) {
	t.Parallel()

	src := NewSource(colorCatalog(), false)
	src.SetQuery(0, "  gr ")

	require.Equal(t, "gr", src.Query(0))
	require.True(t, src.Filtered(0))
	require.False(t, src.Filtered(1))
	require.Equal(t, 2, src.NumberOfRows(nil, 0))
	require.Equal(t, "Colors /gr", src.ComponentTitle(nil, 0))

	var titles []string
	for r := range src.NumberOfRows(nil, 0) {
		ip := dropdown.IndexPath{Component: 0, Row: r}
		titles = append(titles, src.RowTitle(nil, ip))
		require.Equal(t, src.RowTitle(nil, ip), ansi.Strip(src.RichRowTitle(nil, ip)))
	}
	slices.Sort(titles)
	require.Equal(t, []string{"Green", "Grey"}, titles)
	require.Equal(t, dropdown.NoRow, src.SourceRow(0, 2))

	src.SetQuery(0, "")
	require.False(t, src.Filtered(0))
	require.Equal(t, 4, src.NumberOfRows(nil, 0))
	require.Equal(t, "", src.RichRowTitle(nil, dropdown.IndexPath{Component: 0, Row: 0}))
	require.Equal(t, 3, src.SourceRow(0, 3))
	require.Equal(t, dropdown.NoRow, src.SourceRow(0, 4))
}

func TestSourceRowAccessory(t *testing.T) {
	t.Parallel()

	src := NewSource(colorCatalog(), false)

	red := src.RowAccessory(nil, dropdown.IndexPath{Component: 0, Row: 0})
	require.NotNil(t, red)
	require.Equal(t, "#f00", ansi.Strip(red.Render(10, 1)))

	green := src.RowAccessory(nil, dropdown.IndexPath{Component: 0, Row: 1})
	require.NotNil(t, green)
	require.True(t, strings.Contains(green.Render(10, 1), checkMark))

	require.Nil(t, src.RowAccessory(nil, dropdown.IndexPath{Component: 0, Row: 2}))
}

func TestSourceComponentProperties(t *testing.T) {
	t.Parallel()

	src := NewSource(colorCatalog(), false)
	require.Equal(t, "Pick a color", src.SelectedComponentTitle(nil, 0))
	require.Equal(t, 12, src.ComponentWidth(nil, 1))
	require.True(t, src.UsesFullRowWidth(nil, 0))
	require.False(t, src.UsesFullRowWidth(nil, 1))
	require.True(t, src.ComponentEnabled(nil, 1))
	require.Nil(t, src.HighlightColor(nil, 0))
}

func TestDocumentCatalog(t *testing.T) {
	t.Parallel()

	doc, err := config.Parse("inline", []byte(`version: "1.0"
name: Sample
components:
  - title: Colors
    highlight: "#FF9500"
    max_rows: 3
    rows:
      - title: Red
        accessory: warm
        background: "#330000"
      - title: Blue
        selected: true
  - title: Sizes
    enabled: false
    full_row: false
    rows:
      - title: Small
`))
	require.NoError(t, err)

	cat := NewDocumentCatalog(doc)
	require.Equal(t, 2, cat.Len())

	colors := cat.Component(0)
	require.Equal(t, "Colors", colors.Title)
	require.Equal(t, 3, colors.MaxRows)
	require.True(t, colors.Enabled)
	require.True(t, colors.FullRow)
	require.NotNil(t, colors.Highlight)

	sizes := cat.Component(1)
	require.False(t, sizes.Enabled)
	require.False(t, sizes.FullRow)
	require.Nil(t, sizes.Highlight)

	rows := cat.Rows(0)
	require.Len(t, rows, 2)
	require.Equal(t, "warm", rows[0].Detail)
	require.NotNil(t, rows[0].Background)
	require.True(t, rows[1].Selected)
	require.Nil(t, rows[1].Background)
}
