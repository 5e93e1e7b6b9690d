package dropdown

import (
	"fmt"
	"slices"
)

// fakeSource is a data source and delegate backed by plain slices.
type fakeSource struct {
	rows     []int
	widths   []int
	maxRows  map[int]int
	disabled map[int]bool
	fullRow  map[int]bool
	titles   []string
	views    map[IndexPath]View

	calls []string
}

func newFakeSource(rows ...int) *fakeSource {
	return &fakeSource{rows: rows}
}

func (f *fakeSource) NumberOfComponents(*Menu) int { return len(f.rows) }

func (f *fakeSource) NumberOfRows(_ *Menu, component int) int { return f.rows[component] }

func (f *fakeSource) ComponentWidth(_ *Menu, component int) int {
	if component < len(f.widths) {
		return f.widths[component]
	}
	return 0
}

func (f *fakeSource) UsesFullRowWidth(_ *Menu, component int) bool {
	if v, ok := f.fullRow[component]; ok {
		return v
	}
	return true
}

func (f *fakeSource) MaxRows(_ *Menu, component int) int { return f.maxRows[component] }

func (f *fakeSource) ComponentEnabled(_ *Menu, component int) bool { return !f.disabled[component] }

func (f *fakeSource) ComponentTitle(_ *Menu, component int) string {
	if component < len(f.titles) {
		return f.titles[component]
	}
	return fmt.Sprintf("C%d", component)
}

func (f *fakeSource) RowTitle(_ *Menu, ip IndexPath) string {
	return fmt.Sprintf("row %d.%d", ip.Component, ip.Row)
}

func (f *fakeSource) RowView(_ *Menu, ip IndexPath, _ View) View {
	return f.views[ip]
}

func (f *fakeSource) DidOpen(_ *Menu, component int) {
	f.calls = append(f.calls, fmt.Sprintf("didOpen(%d)", component))
}

func (f *fakeSource) DidClose(_ *Menu, component int) {
	f.calls = append(f.calls, fmt.Sprintf("didClose(%d)", component))
}

func (f *fakeSource) DidSelectRow(_ *Menu, ip IndexPath) {
	f.calls = append(f.calls, fmt.Sprintf("didSelect(%s)", ip))
}

func (f *fakeSource) reset() { f.calls = nil }

func newTestMenu(src *fakeSource, opts ...Option) *Menu {
	m := New(opts...)
	m.SetDataSource(src)
	m.SetDelegate(src)
	m.SetFrame(R(0, 0, 60, 1))
	m.Reload()
	return m
}

// fakeScroller is a ScrollContainer whose visible window is height lines tall.
type fakeScroller struct {
	width, height int
	size          Size
	offset        Point
	inset         Insets
	surfaces      []*Surface
}

func (s *fakeScroller) Bounds() Rect {
	return Rect{X: s.offset.X, Y: s.offset.Y, Width: s.width, Height: s.height}
}

func (s *fakeScroller) AddSurface(sf *Surface) { s.surfaces = append(s.surfaces, sf) }

func (s *fakeScroller) RemoveSurface(sf *Surface) {
	s.surfaces = slices.DeleteFunc(s.surfaces, func(x *Surface) bool { return x == sf })
}

func (s *fakeScroller) ContentSize() Size        { return s.size }
func (s *fakeScroller) ContentOffset() Point     { return s.offset }
func (s *fakeScroller) SetContentOffset(p Point) { s.offset = p }
func (s *fakeScroller) ContentInset() Insets     { return s.inset }
func (s *fakeScroller) SetContentInset(i Insets) { s.inset = i }

// manualAnimator keeps transitions until the test finishes them.
type manualAnimator struct {
	pending []*Transition
}

func (a *manualAnimator) Animate(t *Transition) { a.pending = append(a.pending, t) }

func (a *manualAnimator) finish() {
	for len(a.pending) > 0 {
		t := a.pending[0]
		a.pending = a.pending[1:]
		t.Complete()
	}
}
