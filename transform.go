package layout

import "fmt"

// ViewTransform maps a node's absolute position and content size in
// workspace space to a rectangle in view space. The workspace root supplies
// one transform for the whole tree; pan/zoom state lives behind this
// boundary, outside the layout core.
type ViewTransform interface {
	ViewFrame(absolute Point, content Size) Rect
}

// ViewTransformFunc adapts a plain function to the ViewTransform interface.
type ViewTransformFunc func(absolute Point, content Size) Rect

// ViewFrame calls fn.
func (fn ViewTransformFunc) ViewFrame(absolute Point, content Size) Rect {
	return fn(absolute, content)
}

// IdentityTransform returns a transform that maps workspace space straight
// to view space with no scaling.
func IdentityTransform() ViewTransform {
	return ViewTransformFunc(func(absolute Point, content Size) Rect {
		return RectAt(absolute, content)
	})
}

// ScaleTransform returns a transform applying a uniform workspace-to-view
// scale factor. The factor must be positive.
func ScaleTransform(scale float64) ViewTransform {
	if scale <= 0 {
		panic(fmt.Sprintf("layout: non-positive view scale %g", scale))
	}
	return ViewTransformFunc(func(absolute Point, content Size) Rect {
		return NewRect(
			absolute.X*scale,
			absolute.Y*scale,
			content.Width*scale,
			content.Height*scale,
		)
	})
}
