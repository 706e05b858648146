package geom

import "sort"

// CoordinateSet is an unordered set of coordinates.
type CoordinateSet map[Coordinate]struct{}

// NewCoordinateSet returns a set holding cs.
func NewCoordinateSet(cs ...Coordinate) CoordinateSet {
	set := make(CoordinateSet, len(cs))
	for _, c := range cs {
		set[c] = struct{}{}
	}
	return set
}

// Add inserts c.
func (s CoordinateSet) Add(c Coordinate) {
	s[c] = struct{}{}
}

// Has reports membership of c.
func (s CoordinateSet) Has(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of members.
func (s CoordinateSet) Len() int {
	return len(s)
}

// Sorted returns the members in row-major order.
func (s CoordinateSet) Sorted() []Coordinate {
	out := make([]Coordinate, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Bounds returns the smallest normalized Rect covering every member.
// ok is false for an empty set.
func (s CoordinateSet) Bounds() (r Rect, ok bool) {
	first := true
	var lo, hi Coordinate
	for c := range s {
		if first {
			lo, hi, first = c, c, false
			continue
		}
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	if first {
		return Rect{}, false
	}
	return Rect{Origin: lo, Size: Size{Width: hi.X - lo.X + 1, Height: hi.Y - lo.Y + 1}}, true
}
