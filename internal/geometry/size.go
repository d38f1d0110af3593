package geometry

import "fmt"

// Size represents a width/height pair. Valid sizes are non-negative on both
// axes; constructing a negative size is a programming error.
type Size struct {
	Width, Height float64
}

// NewSize returns a Size, panicking if either dimension is negative.
// Negative dimensions indicate a bug in an arrangement hook and are never a
// recoverable runtime condition.
func NewSize(width, height float64) Size {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("layout: negative size %gx%g", width, height))
	}
	return Size{Width: width, Height: height}
}

// Union returns the smallest Size covering both s and other.
func (s Size) Union(other Size) Size {
	u := s
	if other.Width > u.Width {
		u.Width = other.Width
	}
	if other.Height > u.Height {
		u.Height = other.Height
	}
	return u
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}
