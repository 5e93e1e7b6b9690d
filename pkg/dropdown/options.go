package dropdown

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const (
	// DefaultRowHeight is the row height in lines when the delegate does not supply one.
	DefaultRowHeight = 1
	// DefaultAnimationDuration is the duration of present and dismiss transitions.
	DefaultAnimationDuration = 250 * time.Millisecond
	// DefaultCornerRadius rounds the masked corners of the panel border.
	DefaultCornerRadius = 1
	// DefaultDimmingOpacity darkens the container area around an open panel.
	DefaultDimmingOpacity = 0.2

	// scrollBottomSpace is kept free below the panel when a scroll container is enlarged.
	scrollBottomSpace = 1
)

// LineBreakMode controls how segment titles that do not fit are shortened.
type LineBreakMode int

const (
	LineBreakWordWrap LineBreakMode = iota
	LineBreakCharWrap
	LineBreakClip
	LineBreakTruncateHead
	LineBreakTruncateTail
	LineBreakTruncateMiddle
)

// Wraps reports whether the mode spreads text over several lines.
func (m LineBreakMode) Wraps() bool {
	return m == LineBreakWordWrap || m == LineBreakCharWrap
}

// TextAlignment positions text horizontally.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// Position converts the alignment to a lipgloss.Position.
func (a TextAlignment) Position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Corners is a bitmask of panel corners.
type Corners uint8

const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	// CornersAuto rounds the corners facing away from the bar.
	CornersAuto Corners = 0
	CornersTop          = CornerTopLeft | CornerTopRight
	CornersBottom       = CornerBottomLeft | CornerBottomRight
	CornersAll          = CornersTop | CornersBottom
)

// Has reports whether every corner in c2 is set in c.
func (c Corners) Has(c2 Corners) bool { return c&c2 == c2 }

// Indicator holds the disclosure glyph for each direction it can point to.
type Indicator struct {
	Down, Left, Up, Right string
}

// DefaultIndicator is a small triangle.
var DefaultIndicator = Indicator{Down: "▾", Left: "◂", Up: "▴", Right: "▸"}

// IsZero reports whether no glyph is configured.
func (i Indicator) IsZero() bool { return i == Indicator{} }

// Glyph returns the glyph rotated clockwise by angle radians from pointing down. Angles snap
// to the nearest quarter turn.
func (i Indicator) Glyph(angle float64) string {
	quarter := int(math.Round(angle/(math.Pi/2))) % 4
	if quarter < 0 {
		quarter += 4
	}
	switch quarter {
	case 1:
		return i.Left
	case 2:
		return i.Up
	case 3:
		return i.Right
	default:
		return i.Down
	}
}

// Options holds the behaviour and style flags of a Menu.
type Options struct {
	// AdjustsContentOffset scrolls a scroll container so that a freshly opened panel is
	// visible.
	AdjustsContentOffset bool
	// AdjustsContentInset enlarges a scroll container's bottom inset while a panel would
	// otherwise extend past its content.
	AdjustsContentInset bool

	DropsShadow             bool
	ShowsTopRowSeparator    bool
	ShowsBottomRowSeparator bool
	ShowsBorder             bool
	// ShowsContentAbove opens panels upward from the bar's top edge.
	ShowsContentAbove bool

	// BackgroundDimmingOpacity dims the container around the panel. Negative values lighten
	// instead of darken.
	BackgroundDimmingOpacity float64

	ComponentSeparatorColor     lipgloss.TerminalColor
	RowSeparatorColor           lipgloss.TerminalColor
	SelectedComponentBackground lipgloss.TerminalColor
	DropdownBackground          lipgloss.TerminalColor

	// Spacer is drawn between the bar and the rows, SpacerHeight lines tall, shifted by
	// SpacerOffset.
	Spacer       View
	SpacerHeight int
	SpacerOffset Point

	DisclosureIndicator Indicator
	// DisclosureRotation is applied to the indicator while its component is open.
	DisclosureRotation float64

	ComponentLineBreak LineBreakMode
	ComponentAlignment TextAlignment
	RowAlignment       TextAlignment

	CornerRadius   int
	RoundedCorners Corners

	// UseFullScreenWidth stretches full-row-width panels across the container, inset by
	// FullScreenInsetLeft and FullScreenInsetRight.
	UseFullScreenWidth   bool
	FullScreenInsetLeft  int
	FullScreenInsetRight int

	AllowsMultipleSelection bool

	AnimationDuration time.Duration

	Logger zerolog.Logger
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		AdjustsContentOffset:     false,
		AdjustsContentInset:      true,
		DropsShadow:              true,
		ShowsTopRowSeparator:     true,
		ShowsBottomRowSeparator:  true,
		BackgroundDimmingOpacity: DefaultDimmingOpacity,
		RowSeparatorColor:        defaultSeparatorColor,
		ComponentSeparatorColor:  defaultSeparatorColor,
		DropdownBackground:       defaultDropdownBackground,
		DisclosureIndicator:      DefaultIndicator,
		DisclosureRotation:       math.Pi,
		ComponentLineBreak:       LineBreakTruncateMiddle,
		ComponentAlignment:       AlignCenter,
		RowAlignment:             AlignLeft,
		CornerRadius:             DefaultCornerRadius,
		RoundedCorners:           CornersAuto,
		AnimationDuration:        DefaultAnimationDuration,
		Logger:                   zerolog.Nop(),
	}
}

// Option mutates Options during construction.
type Option func(*Options)

// WithOptions replaces the whole option set.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// WithLogger routes the menu's debug logging to log.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// WithMultipleSelection enables multi-row selection per component.
func WithMultipleSelection(enabled bool) Option {
	return func(o *Options) { o.AllowsMultipleSelection = enabled }
}

// WithContentAbove opens panels upward.
func WithContentAbove(enabled bool) Option {
	return func(o *Options) { o.ShowsContentAbove = enabled }
}

// WithFullScreenWidth stretches panels across the container with the given insets.
func WithFullScreenWidth(left, right int) Option {
	return func(o *Options) {
		o.UseFullScreenWidth = true
		o.FullScreenInsetLeft = left
		o.FullScreenInsetRight = right
	}
}

// WithAnimationDuration sets the transition duration.
func WithAnimationDuration(d time.Duration) Option {
	return func(o *Options) { o.AnimationDuration = d }
}
