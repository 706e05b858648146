package geom

// Rect is an axis-aligned region. Size may be negative on either axis, in
// which case Origin is not the top-left corner; use Normalized to fix that.
type Rect struct {
	Origin Coordinate
	Size   Size
}

// R is shorthand for Rect{Origin: C(x, y), Size: S(w, h)}.
func R(x, y, w, h int) Rect {
	return Rect{Origin: Coordinate{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Area returns the absolute covered area.
func (r Rect) Area() int {
	return r.Size.Area()
}

// IsDegenerate reports whether the rect has zero width or zero height.
func (r Rect) IsDegenerate() bool {
	return r.Size.Width == 0 || r.Size.Height == 0
}

// Normalized returns the same region with non-negative width and height.
// A negative dimension moves the origin back by that amount and is negated.
func (r Rect) Normalized() Rect {
	if r.Size.Width < 0 {
		r.Origin.X += r.Size.Width
		r.Size.Width = -r.Size.Width
	}
	if r.Size.Height < 0 {
		r.Origin.Y += r.Size.Height
		r.Size.Height = -r.Size.Height
	}
	return r
}

// Expanded grows the rect by n cells on every side and normalizes the result.
// A negative n shrinks it.
func (r Rect) Expanded(n int) Rect {
	return Rect{
		Origin: r.Origin.Sub(Coordinate{X: n, Y: n}),
		Size:   Size{Width: r.Size.Width + 2*n, Height: r.Size.Height + 2*n},
	}.Normalized()
}

// Contains reports whether c lies inside the normalized rect (half-open).
func (r Rect) Contains(c Coordinate) bool {
	n := r.Normalized()
	return c.X >= n.Origin.X && c.X < n.Origin.X+n.Size.Width &&
		c.Y >= n.Origin.Y && c.Y < n.Origin.Y+n.Size.Height
}

// OuterRing returns the boundary cells of the normalized rect, each exactly once.
//
// The ring is emitted as four corner-to-corner sides: top heading E, right
// heading S, bottom heading W, left heading N. Each side stops one short of the
// next corner, so every corner appears once. A one-cell-thick rect returns its
// cells from the origin outwards; a degenerate rect returns nil.
func (r Rect) OuterRing() []Coordinate {
	n := r.Normalized()
	if n.IsDegenerate() {
		return nil
	}
	w, h := n.Size.Width, n.Size.Height
	switch {
	case h == 1:
		return NewLine(n.Origin, East, w).Coordinates()
	case w == 1:
		return NewLine(n.Origin, South, h).Coordinates()
	}

	topLeft := n.Origin
	topRight := topLeft.Add(Coordinate{X: w - 1})
	bottomRight := topRight.Add(Coordinate{Y: h - 1})
	bottomLeft := topLeft.Add(Coordinate{Y: h - 1})
	sides := []Line{
		NewLine(topLeft, East, w-1),
		NewLine(topRight, South, h-1),
		NewLine(bottomRight, West, w-1),
		NewLine(bottomLeft, North, h-1),
	}

	ring := make([]Coordinate, 0, 2*(w-1)+2*(h-1))
	for _, side := range sides {
		ring = append(ring, side.Coordinates()...)
	}
	return ring
}
