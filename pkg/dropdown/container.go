package dropdown

import "slices"

// Container hosts a Surface while a component is open. Bounds is the visible area in the
// container's own coordinate space; the menu's frame must be expressed in the same space.
type Container interface {
	Bounds() Rect
	AddSurface(s *Surface)
	RemoveSurface(s *Surface)
}

// ScrollContainer is a Container whose content can be larger than its bounds. Bounds
// reports the visible window in content coordinates, so its origin equals ContentOffset.
type ScrollContainer interface {
	Container
	ContentSize() Size
	ContentOffset() Point
	SetContentOffset(p Point)
	ContentInset() Insets
	SetContentInset(i Insets)
}

// Screen is a fixed, non-scrolling container such as the terminal window.
type Screen struct {
	bounds   Rect
	surfaces []*Surface
}

// NewScreen creates a screen of the given size.
func NewScreen(width, height int) *Screen {
	return &Screen{bounds: Rect{Width: width, Height: height}}
}

// Bounds is the whole screen, with its origin at 0,0.
func (s *Screen) Bounds() Rect { return s.bounds }

// SetSize resizes the screen, typically on a terminal resize.
func (s *Screen) SetSize(width, height int) {
	s.bounds.Width = width
	s.bounds.Height = height
}

// AddSurface hosts sf above the surfaces already shown. Adding it twice has no effect.
func (s *Screen) AddSurface(sf *Surface) {
	if !slices.Contains(s.surfaces, sf) {
		s.surfaces = append(s.surfaces, sf)
	}
}

// RemoveSurface stops hosting sf.
func (s *Screen) RemoveSurface(sf *Surface) {
	s.surfaces = slices.DeleteFunc(s.surfaces, func(x *Surface) bool { return x == sf })
}

// Surfaces lists the surfaces currently hosted, in insertion order.
func (s *Screen) Surfaces() []*Surface {
	return slices.Clone(s.surfaces)
}

// Compose draws every hosted surface over canvas, which must depict Bounds.
func (s *Screen) Compose(canvas string) string {
	return ComposeSurfaces(canvas, s.bounds, s.surfaces)
}

// ComposeSurfaces draws surfaces over a canvas that depicts the area view.
func ComposeSurfaces(canvas string, view Rect, surfaces []*Surface) string {
	for _, sf := range surfaces {
		canvas = sf.Composite(canvas, view)
	}
	return canvas
}
