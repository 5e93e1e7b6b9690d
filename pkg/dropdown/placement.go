package dropdown

// placementInput gathers everything needed to position the panel for one component. All
// rectangles are in container coordinates.
type placementInput struct {
	bar      Rect
	first    Rect
	last     Rect
	segment  Rect
	bounds   Rect
	fullRow  bool
	above    bool
	scroller ScrollContainer

	useFullScreenWidth bool
	insetLeft          int
	insetRight         int
	adjustsInset       bool
}

// placement is where the surface goes and how the scroll container must change.
type placement struct {
	// frame covers the dimmed area the panel is shown in.
	frame Rect
	// left and right inset the panel horizontally within frame.
	left, right int
	above       bool

	// overflow is how far the panel extends past the scroll content, including the bottom
	// space. Only positive values enlarge the inset.
	overflow int
	// targetOffset is the content offset that reveals the panel.
	targetOffset int
	scrolls      bool
}

// horizontalSpan returns the left and right edges of the panel in container coordinates.
func horizontalSpan(in placementInput) (int, int) {
	switch {
	case in.fullRow && in.useFullScreenWidth:
		return in.bounds.MinX() + in.insetLeft, in.bounds.MaxX() - in.insetRight
	case in.fullRow:
		return in.first.MinX(), in.last.MaxX()
	default:
		return in.segment.MinX(), in.segment.MaxX()
	}
}

// availableRowSpace is the height the panel may use before its rows are capped. It is the
// visible distance between the bar and the container edge in the opening direction. Scroll
// containers can bring the panel into view, so there the whole visible height counts.
func availableRowSpace(in placementInput) int {
	if in.scroller != nil {
		return max(0, in.bounds.Height-in.bar.Height)
	}
	if in.above {
		return max(0, in.bar.MinY()-in.bounds.MinY())
	}
	return max(0, in.bounds.MaxY()-in.bar.MaxY())
}

// computePlacement positions a panel of contentHeight lines.
func computePlacement(in placementInput, contentHeight int) placement {
	topOffset := in.bar.MaxY()
	// Bottom edge of the surface, measured in the container's coordinate space.
	bottom := in.bounds.MaxY()

	p := placement{above: in.above}

	if in.scroller != nil {
		size := in.scroller.ContentSize()
		offset := in.scroller.ContentOffset()
		inset := in.scroller.ContentInset()

		contentMaxY := topOffset + contentHeight + scrollBottomSpace
		p.overflow = contentMaxY - size.Height - inset.Bottom
		p.scrolls = true

		if in.above {
			bottom = in.bar.MinY()
			contentY := in.bar.MinY() - contentHeight
			topOffset = min(contentY, offset.Y)
			p.targetOffset = topOffset
		} else {
			p.targetOffset = contentMaxY - in.bounds.Height
			bottom = max(in.bounds.Height-inset.Top, size.Height+inset.Bottom)
			if in.adjustsInset {
				bottom = max(bottom, contentMaxY)
			}
		}
	} else if in.above {
		topOffset = in.bounds.MinY()
		bottom = in.bar.MinY()
	}

	p.frame = Rect{
		X:      in.bounds.MinX(),
		Y:      topOffset,
		Width:  in.bounds.Width,
		Height: max(0, bottom-topOffset),
	}

	left, right := horizontalSpan(in)
	p.left = left - p.frame.MinX()
	p.right = p.frame.MaxX() - right
	return p
}
