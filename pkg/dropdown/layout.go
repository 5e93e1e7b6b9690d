package dropdown

// LayoutSegments splits a bar of the given width into len(custom) segments. custom holds
// per-segment width overrides; entries <= 0 (or missing) share the remaining width equally.
// The last segment always absorbs whatever is left so that the segments tile the bar
// exactly. Callers must ensure the positive overrides do not exceed width.
func LayoutSegments(width, height int, custom []int) []Rect {
	n := len(custom)
	if n == 0 {
		return nil
	}

	totalCustom, customCount := customWidths(custom)

	defaultWidth := width / n
	if customCount > 0 && customCount < n {
		defaultWidth = (width - totalCustom) / (n - customCount)
	}

	rects := make([]Rect, n)
	dx := 0
	for i := range n {
		w := custom[i]
		switch {
		case i == n-1:
			w = max(0, width-dx)
		case w <= 0:
			w = max(0, defaultWidth)
		}
		rects[i] = Rect{X: dx, Y: 0, Width: w, Height: height}
		dx += w
	}
	return rects
}

func customWidths(custom []int) (total, count int) {
	for _, w := range custom {
		if w > 0 {
			total += w
			count++
		}
	}
	return total, count
}

// separatorRects places one-cell separators on the last column of every segment but the
// final one.
func separatorRects(segments []Rect) []Rect {
	if len(segments) < 2 {
		return nil
	}
	seps := make([]Rect, 0, len(segments)-1)
	for _, seg := range segments[:len(segments)-1] {
		seps = append(seps, Rect{X: seg.MaxX() - 1, Y: seg.Y, Width: 1, Height: seg.Height})
	}
	return seps
}
