package geometry

// EdgeInsets represents spacing applied around a node's content on four
// sides.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

// InsetAll creates EdgeInsets with the same value on all sides.
func InsetAll(n float64) EdgeInsets {
	return EdgeInsets{Top: n, Left: n, Bottom: n, Right: n}
}

// InsetSymmetric creates EdgeInsets with vertical (top/bottom) and
// horizontal (left/right) values.
func InsetSymmetric(v, h float64) EdgeInsets {
	return EdgeInsets{Top: v, Left: h, Bottom: v, Right: h}
}

// Horizontal returns the sum of the left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of the top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Origin returns the offset of the content origin from the outer edge,
// i.e. (left, top).
func (e EdgeInsets) Origin() Point {
	return Point{X: e.Left, Y: e.Top}
}

// TotalSize derives the space a node reserves in its parent's arrangement:
// the content size grown by the insets on each axis. This is the single
// derivation rule for a node's total size; callers must never store a total
// size computed any other way.
func TotalSize(content Size, insets EdgeInsets) Size {
	return Size{
		Width:  content.Width + insets.Horizontal(),
		Height: content.Height + insets.Vertical(),
	}
}
