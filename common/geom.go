package common

// Point is a position or velocity in canvas pixels.
type Point struct {
	X, Y int16
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	Position      Point
	Width, Height int16
}

// NewRect creates a rect from a corner and a size.
func NewRect(position Point, width, height int16) Rect {
	return Rect{Position: position, Width: width, Height: height}
}

// NewRectXY creates a rect from raw coordinates.
func NewRectXY(x, y, width, height int16) Rect {
	return NewRect(Point{X: x, Y: y}, width, height)
}

func (r Rect) X() int16 { return r.Position.X }
func (r Rect) Y() int16 { return r.Position.Y }

// SetX moves the rect so its left edge sits at x.
func (r *Rect) SetX(x int16) {
	r.Position.X = x
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int16 {
	return r.X() + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int16 {
	return r.Y() + r.Height
}

// Intersects reports whether the two rects share any area. Rects that only
// touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X() < other.Right() &&
		other.X() < r.Right() &&
		r.Y() < other.Bottom() &&
		other.Y() < r.Bottom()
}
