package dropdown

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HitResult classifies a point tested against a Surface.
type HitResult int

const (
	// HitOutside means the point is not on the surface.
	HitOutside HitResult = iota
	// HitBackground means the dimmed area around the panel.
	HitBackground
	// HitPanel means the panel itself but not a row, such as a separator or the border.
	HitPanel
	// HitRow means a row; the row index accompanies the result.
	HitRow
)

// Surface is the floating panel listing the rows of the open component. Each Menu owns
// exactly one Surface and reconfigures it for every presentation.
type Surface struct {
	menu *Menu

	frame       Rect
	left, right int
	above       bool

	component int
	rowCount  int
	maxRows   int
	rowHeight int
	highlight lipgloss.TerminalColor
	available int

	cursor int
	anchor int
	top    int

	pool  *cellPool
	cells map[int]*rowCell

	alpha    float64
	reveal   float64
	attached bool

	stats surfaceStats
}

// surfaceStats counts data reloads.
type surfaceStats struct {
	fullReloads    int
	partialReloads int
	lastPartial    IndexSet
}

func newSurface(m *Menu) *Surface {
	s := &Surface{
		menu:      m,
		component: noComponent,
		rowHeight: DefaultRowHeight,
		cursor:    NoRow,
		anchor:    NoRow,
		pool:      newCellPool(),
		cells:     make(map[int]*rowCell),
		alpha:     1,
		reveal:    1,
	}
	s.pool.register(rowCellIdentifier, func() any { return &rowCell{row: NoRow} })
	return s
}

// Frame is the area covered by the surface, in container coordinates.
func (s *Surface) Frame() Rect { return s.frame }

// Component is the component the surface was last configured for.
func (s *Surface) Component() int { return s.component }

// Attached reports whether the surface is currently inserted in a container.
func (s *Surface) Attached() bool { return s.attached }

// Above reports whether the panel opens upward.
func (s *Surface) Above() bool { return s.above }

// RowCount is the number of rows of the configured component.
func (s *Surface) RowCount() int { return s.rowCount }

// RowHeight is the height of each row in lines.
func (s *Surface) RowHeight() int { return s.rowHeight }

// Cursor is the highlighted row, or NoRow.
func (s *Surface) Cursor() int { return s.cursor }

// Alpha is the current opacity, 0 while fully hidden and 1 when fully shown.
func (s *Surface) Alpha() float64 { return s.alpha }

// VisibleRows returns the half-open range of rows on screen.
func (s *Surface) VisibleRows() (first, last int) {
	return s.top, min(s.rowCount, s.top+s.visibleRowCount())
}

func (s *Surface) configure(component, rowHeight int, highlight lipgloss.TerminalColor) {
	s.component = component
	s.rowHeight = max(1, rowHeight)
	s.highlight = highlight
}

// Refresh re-reads the row count and row cap of the open component and rebinds every
// visible row.
func (s *Surface) Refresh() {
	s.rowCount = s.menu.openRowCount()
	s.maxRows = s.menu.openMaxRows()
	s.clampScroll()
	s.recycleAll()
	s.bindVisible()
	s.stats.fullReloads++
}

// RefreshRows rebinds only the listed rows. Rows that are not visible are skipped; they
// are bound when scrolled into view.
func (s *Surface) RefreshRows(rows IndexSet) {
	s.stats.partialReloads++
	s.stats.lastPartial = rows.Clone()
	for _, row := range rows.Slice() {
		if c, ok := s.cells[row]; ok {
			s.bind(c, row)
		}
	}
}

// ContentHeight is the panel height: the visible rows plus separators, border and spacer.
func (s *Surface) ContentHeight() int {
	return s.rowsHeight() + s.decorationHeight()
}

func (s *Surface) rowsHeight() int {
	limit := math.MaxInt
	if s.maxRows > 0 {
		limit = s.maxRows
	}
	limit = min(limit, max(0, s.available-s.decorationHeight())/s.rowHeight)
	return min(max(s.rowCount, 0), limit) * s.rowHeight
}

func (s *Surface) decorationHeight() int {
	o := s.menu.opts
	h := 0
	if o.Spacer != nil {
		h += max(0, o.SpacerHeight)
	}
	if o.ShowsBorder {
		return h + 2
	}
	if o.ShowsTopRowSeparator {
		h++
	}
	if o.ShowsBottomRowSeparator {
		h++
	}
	return h
}

// rowsOffset is the number of panel lines above the first row.
func (s *Surface) rowsOffset() int {
	o := s.menu.opts
	offset := 0
	if !s.above && o.Spacer != nil {
		offset += max(0, o.SpacerHeight)
	}
	if o.ShowsBorder || o.ShowsTopRowSeparator {
		offset++
	}
	return offset
}

func (s *Surface) visibleRowCount() int {
	return s.rowsHeight() / s.rowHeight
}

// PanelFrame is the rectangle of the panel itself, in container coordinates.
func (s *Surface) PanelFrame() Rect {
	h := s.ContentHeight()
	y := s.frame.Y
	if s.above {
		y = s.frame.MaxY() - h
	}
	return Rect{
		X:      s.frame.X + s.left,
		Y:      y,
		Width:  max(0, s.frame.Width-s.left-s.right),
		Height: h,
	}
}

func (s *Surface) place(p placement) {
	s.frame = p.frame
	s.left = p.left
	s.right = p.right
	s.above = p.above
	s.clampScroll()
	s.bindVisible()
}

func (s *Surface) willAppear() {
	s.top = 0
	s.cursor = NoRow
	s.anchor = NoRow
}

func (s *Surface) didAppear() {}

func (s *Surface) willDisappear() {
	s.menu.surfaceWillDisappear()
}

func (s *Surface) didDisappear() {
	s.recycleAll()
}

// Dismiss removes the surface without animation, as when the host tears the overlay down
// itself. The menu is told so it can reset its open state.
func (s *Surface) Dismiss() {
	s.menu.transition.dismiss(false, nil)
}

func (s *Surface) clampScroll() {
	maxTop := max(0, s.rowCount-s.visibleRowCount())
	s.top = min(max(0, s.top), maxTop)
	if s.cursor >= s.rowCount {
		s.cursor = NoRow
	}
	if s.anchor >= s.rowCount {
		s.anchor = NoRow
	}
}

// MoveCursor moves the highlight by delta rows, scrolling to keep it visible. It reports
// whether there was a row to move to.
func (s *Surface) MoveCursor(delta int) bool {
	if s.rowCount == 0 {
		return false
	}
	switch {
	case s.cursor != NoRow:
		s.cursor = min(max(0, s.cursor+delta), s.rowCount-1)
	case s.anchor != NoRow:
		s.cursor = s.anchor
	case delta >= 0:
		s.cursor = s.top
	default:
		s.cursor = min(s.rowCount-1, s.top+max(1, s.visibleRowCount())-1)
	}

	visible := max(1, s.visibleRowCount())
	if s.cursor < s.top {
		s.top = s.cursor
	} else if s.cursor >= s.top+visible {
		s.top = s.cursor - visible + 1
	}
	s.bindVisible()
	return true
}

// Scroll moves the visible window by delta rows.
func (s *Surface) Scroll(delta int) {
	s.top += delta
	s.clampScroll()
	s.bindVisible()
}

// ActivateCursor taps the highlighted row, if any.
func (s *Surface) ActivateCursor() bool {
	if s.cursor == NoRow {
		return false
	}
	s.TapRow(s.cursor)
	return true
}

// TapRow handles a tap on a row. The row's highlight is cleared and the selection is
// forwarded to the menu. NoRow closes every component instead.
func (s *Surface) TapRow(row int) {
	if row == NoRow {
		s.menu.TapOutside()
		return
	}
	if row < 0 || row >= s.rowCount {
		return
	}
	s.anchor = row
	s.cursor = NoRow
	s.menu.didSelectRow(row)
}

// HitTest locates p, given in container coordinates.
func (s *Surface) HitTest(p Point) (HitResult, int) {
	if !s.attached || !s.frame.Contains(p) {
		return HitOutside, NoRow
	}
	panel := s.PanelFrame()
	if !panel.Contains(p) {
		return HitBackground, NoRow
	}
	if s.menu.opts.ShowsBorder && (p.X == panel.MinX() || p.X == panel.MaxX()-1) {
		return HitPanel, NoRow
	}
	y := p.Y - panel.Y - s.rowsOffset()
	if y < 0 || y >= s.rowsHeight() {
		return HitPanel, NoRow
	}
	row := s.top + y/s.rowHeight
	if row >= s.rowCount {
		return HitPanel, NoRow
	}
	return HitRow, row
}

// customView returns the delegate view bound to row if the row is on screen.
func (s *Surface) customView(row int) View {
	if c, ok := s.cells[row]; ok {
		return c.custom
	}
	return nil
}

func (s *Surface) dequeueCell() *rowCell {
	v := s.pool.dequeue(rowCellIdentifier)
	c, ok := v.(*rowCell)
	if !ok {
		internalFailure("Surface.dequeueCell", "cell pool produced %T for %q", v, rowCellIdentifier)
	}
	return c
}

func (s *Surface) recycle(row int, c *rowCell) {
	delete(s.cells, row)
	c.prepareForReuse()
	s.pool.enqueue(rowCellIdentifier, c)
}

func (s *Surface) recycleAll() {
	for row, c := range s.cells {
		s.recycle(row, c)
	}
}

func (s *Surface) bindVisible() {
	first, last := s.VisibleRows()
	for row, c := range s.cells {
		if row < first || row >= last {
			s.recycle(row, c)
		}
	}
	for row := first; row < last; row++ {
		if _, ok := s.cells[row]; ok {
			continue
		}
		c := s.dequeueCell()
		s.bind(c, row)
		s.cells[row] = c
	}
}

func (s *Surface) bind(c *rowCell, row int) {
	ip := IndexPath{Component: s.component, Row: row}
	c.row = row
	c.custom = s.menu.rowView(ip, c.custom)
	c.title = ""
	if c.custom == nil {
		c.title = s.menu.rowTitle(ip)
	}
	c.accessory = s.menu.rowAccessory(ip)
	c.background = s.menu.rowBackground(ip)
}

// Render draws the whole panel, ignoring the transition state.
func (s *Surface) Render() string {
	panel := s.PanelFrame()
	if panel.Width <= 0 || panel.Height <= 0 {
		return ""
	}
	o := s.menu.opts

	inner := panel.Width
	if o.ShowsBorder {
		inner = max(0, panel.Width-2)
	}

	var lines []string
	if !o.ShowsBorder && o.ShowsTopRowSeparator {
		lines = append(lines, s.separator(inner))
	}
	lines = append(lines, s.renderRows(inner)...)
	if !o.ShowsBorder && o.ShowsBottomRowSeparator {
		lines = append(lines, s.separator(inner))
	}
	if o.ShowsBorder {
		lines = s.frameWithBorder(lines, inner)
	}

	if spacer := s.renderSpacer(panel.Width); spacer != "" {
		if s.above {
			lines = append(lines, spacer)
		} else {
			lines = append([]string{spacer}, lines...)
		}
	}
	return strings.Join(lines, "\n")
}

func (s *Surface) renderRows(width int) []string {
	first, last := s.VisibleRows()
	var lines []string
	for row := first; row < last; row++ {
		c, ok := s.cells[row]
		if !ok {
			c = s.dequeueCell()
			s.bind(c, row)
			s.cells[row] = c
		}
		lines = append(lines, strings.Split(s.renderCell(c, width), "\n")...)
	}
	return lines
}

func (s *Surface) renderCell(c *rowCell, width int) string {
	rh := s.rowHeight
	o := s.menu.opts

	bg := o.DropdownBackground
	if c.background != nil {
		bg = c.background
	}
	if c.row == s.cursor {
		bg = s.highlightColor(c.background)
	}

	accessory := ""
	accessoryWidth := 0
	if c.accessory != nil && width > 2 {
		limit := width / 2
		accessory = c.accessory.Render(limit, rh)
		if lipgloss.Width(accessory) > limit {
			accessory = clipBlock(accessory, 0, limit)
		}
		accessoryWidth = lipgloss.Width(accessory)
	}

	contentWidth := max(0, width-2-accessoryWidth)
	var content string
	if c.custom != nil {
		content = c.custom.Render(contentWidth, rh)
	} else {
		content = fitText(c.title, contentWidth, rh, LineBreakTruncateTail)
	}
	content = lipgloss.Place(contentWidth, rh, o.RowAlignment.Position(), lipgloss.Center, content)

	row := lipgloss.JoinHorizontal(lipgloss.Center, " ", content, accessory, " ")
	style := rowStyle.Width(width).MaxWidth(width).Height(rh).MaxHeight(rh)
	if bg != nil {
		style = style.Background(bg)
	}
	return style.Render(row)
}

func (s *Surface) highlightColor(background lipgloss.TerminalColor) lipgloss.TerminalColor {
	if s.highlight != nil {
		return s.highlight
	}
	if background != nil {
		return shade(background, 0.15)
	}
	return defaultHighlightColor
}

func (s *Surface) separator(width int) string {
	line := strings.Repeat("─", max(0, width))
	if c := s.menu.opts.RowSeparatorColor; c != nil {
		return lipgloss.NewStyle().Foreground(c).Render(line)
	}
	return line
}

// corners resolves the rounded-corner mask. Automatic masks round the side facing away
// from the bar.
func (s *Surface) corners() Corners {
	if c := s.menu.opts.RoundedCorners; c != CornersAuto {
		return c
	}
	if s.above {
		return CornersTop
	}
	return CornersBottom
}

func (s *Surface) frameWithBorder(body []string, inner int) []string {
	o := s.menu.opts
	mask := s.corners()
	rounded := o.CornerRadius > 0
	pick := func(corner Corners, square, round string) string {
		if rounded && mask.Has(corner) {
			return round
		}
		return square
	}

	style := lipgloss.NewStyle()
	if o.RowSeparatorColor != nil {
		style = style.Foreground(o.RowSeparatorColor)
	}
	horizontal := strings.Repeat("─", inner)
	side := style.Render("│")

	lines := make([]string, 0, len(body)+2)
	lines = append(lines, style.Render(pick(CornerTopLeft, "┌", "╭")+horizontal+pick(CornerTopRight, "┐", "╮")))
	for _, line := range body {
		lines = append(lines, side+line+side)
	}
	lines = append(lines, style.Render(pick(CornerBottomLeft, "└", "╰")+horizontal+pick(CornerBottomRight, "┘", "╯")))
	return lines
}

func (s *Surface) renderSpacer(width int) string {
	o := s.menu.opts
	if o.Spacer == nil || o.SpacerHeight <= 0 {
		return ""
	}
	h := o.SpacerHeight
	lines := strings.Split(o.Spacer.Render(width, h), "\n")

	dy := o.SpacerOffset.Y
	if s.above {
		dy = -dy
	}
	switch {
	case dy > 0:
		lines = append(make([]string, dy), lines...)
	case dy < 0:
		lines = lines[min(len(lines), -dy):]
	}
	for i, line := range lines {
		switch dx := o.SpacerOffset.X; {
		case dx > 0:
			lines[i] = strings.Repeat(" ", dx) + line
		case dx < 0:
			lines[i] = ansi.TruncateLeft(line, -dx, "")
		}
	}
	return FitCanvas(strings.Join(lines, "\n"), width, h)
}

// revealed returns the part of the panel shown at the current reveal progress together with
// the container rectangle it occupies. A panel below the bar slides out from under it, so
// its bottom lines show first; a panel above shows its top lines first.
func (s *Surface) revealed() (string, Rect) {
	panel := s.PanelFrame()
	rendered := s.Render()
	if rendered == "" {
		return "", Rect{}
	}
	lines := strings.Split(rendered, "\n")
	h := len(lines)
	v := min(h, max(0, int(math.Ceil(s.reveal*float64(h)))))
	if v == 0 {
		return "", Rect{}
	}
	area := Rect{X: panel.X, Width: panel.Width, Height: v}
	if s.above {
		area.Y = panel.Y + h - v
		lines = lines[:v]
	} else {
		area.Y = panel.Y
		lines = lines[h-v:]
	}
	return strings.Join(lines, "\n"), area
}

// Composite draws the surface over canvas, which depicts the container area view.
func (s *Surface) Composite(canvas string, view Rect) string {
	if !s.attached {
		return canvas
	}
	region := s.frame.Intersect(view)
	if region.IsEmpty() {
		return canvas
	}

	o := s.menu.opts
	if dim := DimColor(o.BackgroundDimmingOpacity * s.alpha); dim != nil {
		canvas = DimRegion(canvas, region.Offset(-view.X, -view.Y), dim)
	}

	block, area := s.revealed()
	if area.IsEmpty() {
		return canvas
	}
	if o.DropsShadow {
		canvas = s.drawShadow(canvas, area, region, view)
	}
	if s.alpha < 0.5 {
		block = fade(block)
	}

	visible := area.Intersect(region)
	if visible.IsEmpty() {
		return canvas
	}
	lines := strings.Split(block, "\n")
	lines = lines[visible.Y-area.Y : visible.MaxY()-area.Y]
	clipped := clipBlock(strings.Join(lines, "\n"), visible.X-area.X, visible.MaxX()-area.X)
	return Overlay(canvas, clipped, visible.X-view.X, visible.Y-view.Y)
}

// drawShadow shades the strip along the far edge of the panel and the column to its right.
func (s *Surface) drawShadow(canvas string, area, region, view Rect) string {
	style := lipgloss.NewStyle().Foreground(defaultShadowColor)
	side := Rect{X: area.MaxX(), Y: area.Y + 1, Width: 1, Height: area.Height}
	edge := Rect{X: area.X + 1, Y: area.MaxY(), Width: area.Width, Height: 1}
	if s.above {
		side.Y = area.Y - 1
		edge.Y = area.Y - 1
	}
	for _, r := range []Rect{edge, side} {
		r = r.Intersect(region)
		if r.IsEmpty() {
			continue
		}
		line := style.Render(strings.Repeat("░", r.Width))
		block := strings.TrimSuffix(strings.Repeat(line+"\n", r.Height), "\n")
		canvas = Overlay(canvas, block, r.X-view.X, r.Y-view.Y)
	}
	return canvas
}

func fade(block string) string {
	faint := lipgloss.NewStyle().Faint(true)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = faint.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}
