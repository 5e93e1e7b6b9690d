package dropdown

// Point is a cell position. X grows to the right and Y grows downward.
type Point struct {
	X, Y int
}

// Size is a width and height in cells.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// R is shorthand for building a Rect.
func R(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) MinX() int { return r.X }
func (r Rect) MaxX() int { return r.X + r.Width }
func (r Rect) MinY() int { return r.Y }
func (r Rect) MaxY() int { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersect returns the overlapping area of r and o, or an empty Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.MaxX(), o.MaxX())
	y1 := min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Insets are edge distances, used for scroll container content insets.
type Insets struct {
	Top, Left, Bottom, Right int
}
