// geometry.go re-exports geometry types from internal/geometry.
// Any changes to internal/geometry types must be mirrored here.
package layout

import "github.com/seanwallawalla-forks/blockly-ios/internal/geometry"

// Point represents an (X, Y) coordinate in node-local, absolute, or view
// space.
type Point = geometry.Point

// Size represents a width/height pair.
type Size = geometry.Size

// EdgeInsets represents spacing on four sides of a node's content.
type EdgeInsets = geometry.EdgeInsets

// Rect represents a rectangle with position and dimensions.
type Rect = geometry.Rect

// NewSize returns a Size, panicking if either dimension is negative.
func NewSize(width, height float64) Size {
	return geometry.NewSize(width, height)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geometry.NewRect(x, y, width, height)
}

// RectAt creates a Rect from an origin point and a size.
func RectAt(origin Point, size Size) Rect {
	return geometry.RectAt(origin, size)
}

// InsetAll creates EdgeInsets with the same value on all sides.
func InsetAll(n float64) EdgeInsets {
	return geometry.InsetAll(n)
}

// InsetSymmetric creates EdgeInsets with vertical (top/bottom) and
// horizontal (left/right) values.
func InsetSymmetric(v, h float64) EdgeInsets {
	return geometry.InsetSymmetric(v, h)
}

// TotalSize derives the space a node reserves in its parent's arrangement:
// content size grown by insets on each axis.
func TotalSize(content Size, insets EdgeInsets) Size {
	return geometry.TotalSize(content, insets)
}
