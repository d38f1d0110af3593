package geometry

// Rect represents a rectangle with position and dimensions, used for
// view-space frames.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectAt creates a Rect from an origin point and a size.
func RectAt(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// MaxX returns the X coordinate of the right edge.
func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

// MaxY returns the Y coordinate of the bottom edge.
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// Contains returns true if the point (x, y) is inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// Union returns the smallest Rect covering both r and other. An empty rect
// (zero width and height) does not contribute to the union.
func (r Rect) Union(other Rect) Rect {
	if r.Width == 0 && r.Height == 0 {
		return other
	}
	if other.Width == 0 && other.Height == 0 {
		return r
	}
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.MaxX(), other.MaxX()) - x,
		Height: max(r.MaxY(), other.MaxY()) - y,
	}
}

// Inset returns a new Rect shrunk by the given insets on each edge.
func (r Rect) Inset(e EdgeInsets) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  max(0, r.Width-e.Horizontal()),
		Height: max(0, r.Height-e.Vertical()),
	}
}
