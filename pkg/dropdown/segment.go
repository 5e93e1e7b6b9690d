package dropdown

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Segment is one pressable header cell. It represents a single component and tracks its
// selected and enabled state.
type Segment struct {
	component     int
	frame         Rect
	title         string
	selectedTitle string
	view          View
	enabled       bool
	selected      bool
}

func newSegment(component int) *Segment {
	return &Segment{component: component, enabled: true}
}

// Component returns the component index the segment represents.
func (s *Segment) Component() int { return s.component }

// Frame is the segment's rectangle relative to the menu's origin.
func (s *Segment) Frame() Rect { return s.frame }

// Selected reports whether the segment's component is open.
func (s *Segment) Selected() bool { return s.selected }

// Enabled reports whether taps on the segment open its component.
func (s *Segment) Enabled() bool { return s.enabled }

// Title returns the text currently displayed, honouring the selected title.
func (s *Segment) Title() string {
	if s.selected && s.selectedTitle != "" {
		return s.selectedTitle
	}
	return s.title
}

// CustomView returns the delegate view shown instead of a title, if any.
func (s *Segment) CustomView() View { return s.view }

// indicatorGlyph is the disclosure glyph for the segment's state. Flipped segments point
// up when closed.
func (s *Segment) indicatorGlyph(opts Options) string {
	if opts.DisclosureIndicator.IsZero() {
		return ""
	}
	angle := 0.0
	if s.selected {
		angle = opts.DisclosureRotation
	}
	if opts.ShowsContentAbove {
		angle += math.Pi
	}
	return opts.DisclosureIndicator.Glyph(angle)
}

// render draws the segment into a width x height block.
func (s *Segment) render(opts Options, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var content string
	if s.view != nil {
		content = s.view.Render(width, height)
	} else {
		glyph := s.indicatorGlyph(opts)
		textWidth := width
		if glyph != "" && width > 2 {
			textWidth = width - 1 - ansi.StringWidth(glyph)
		} else {
			glyph = ""
		}
		content = fitText(s.Title(), textWidth, height, opts.ComponentLineBreak)
		if glyph != "" {
			content = joinIndicator(content, glyph)
		}
	}

	block := lipgloss.Place(width, height, opts.ComponentAlignment.Position(), lipgloss.Center, content)

	style := segmentStyle
	switch {
	case !s.enabled:
		style = disabledSegmentStyle
	case s.selected:
		style = selectedSegmentStyle
		if opts.SelectedComponentBackground != nil {
			style = style.Background(opts.SelectedComponentBackground)
		}
	}
	return style.Render(block)
}

// joinIndicator appends the glyph to the first line of the title.
func joinIndicator(content, glyph string) string {
	lines := strings.Split(content, "\n")
	if lines[0] == "" {
		lines[0] = glyph
	} else {
		lines[0] += " " + glyph
	}
	return strings.Join(lines, "\n")
}

// fitText shortens s to at most width cells and height lines according to mode.
func fitText(s string, width, height int, mode LineBreakMode) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	if mode.Wraps() {
		var wrapped string
		if mode == LineBreakWordWrap {
			wrapped = ansi.Wrap(s, width, "")
		} else {
			wrapped = ansi.Hardwrap(s, width, true)
		}
		lines := strings.Split(wrapped, "\n")
		if len(lines) > height {
			lines = lines[:height]
		}
		return strings.Join(lines, "\n")
	}

	// Single-line modes only ever show the first line.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	sw := ansi.StringWidth(s)
	if sw <= width {
		return s
	}

	const ellipsis = "…"
	switch mode {
	case LineBreakClip:
		return ansi.Truncate(s, width, "")
	case LineBreakTruncateHead:
		return ansi.TruncateLeft(s, sw-width+1, ellipsis)
	case LineBreakTruncateTail:
		return ansi.Truncate(s, width, ellipsis)
	default:
		if width == 1 {
			return ellipsis
		}
		keep := width - 1
		head := (keep + 1) / 2
		tail := keep - head
		return ansi.Truncate(s, head, "") + ellipsis + ansi.TruncateLeft(s, sw-tail, "")
	}
}
