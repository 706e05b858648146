package geom

// Size is a signed width/height pair. Negative components are allowed so a
// Size can act as a displacement.
type Size struct {
	Width, Height int
}

// S is shorthand for Size{Width: w, Height: h}.
func S(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Area returns |Width * Height|.
func (s Size) Area() int {
	return abs(s.Width * s.Height)
}

// Scaled multiplies both components by k.
func (s Size) Scaled(k int) Size {
	return Size{Width: s.Width * k, Height: s.Height * k}
}
