package grid

import "github.com/katalvlaran/gridkit/geom"

// Values reads the cells along l, dropping points that fall outside the grid.
// The result may therefore be shorter than l.Length.
func (g *Grid[T]) Values(l geom.Line) []T {
	out := make([]T, 0, max(l.Length, 0))
	for _, c := range l.Coordinates() {
		if v, ok := g.Value(c); ok {
			out = append(out, v)
		}
	}
	return out
}

// LineToEdge extends from start towards d up to the last in-bounds cell.
// The line includes start. ok is false when start is out of bounds or d is not
// a valid heading.
func (g *Grid[T]) LineToEdge(start geom.Coordinate, d geom.Direction) (geom.Line, bool) {
	if !d.Valid() || !g.IsValid(start) {
		return geom.Line{}, false
	}
	length := 1
	for g.IsValid(start.Step(d, length)) {
		length++
	}
	return geom.NewLine(start, d, length), true
}

// Count returns how many cells on the line from start to the edge match.
func (g *Grid[T]) Count(start geom.Coordinate, d geom.Direction, match func(T) bool) int {
	l, ok := g.LineToEdge(start, d)
	if !ok {
		return 0
	}
	n := 0
	for _, v := range g.Values(l) {
		if match(v) {
			n++
		}
	}
	return n
}

// RaySample returns exactly count values read from start towards d, or nil
// when any part of that ray would leave the grid or d is not a valid heading.
func (g *Grid[T]) RaySample(start geom.Coordinate, d geom.Direction, count int) []T {
	if !d.Valid() {
		return nil
	}
	l := geom.NewLine(start, d, count)
	if !g.IsValidLine(l) {
		return nil
	}
	return g.Values(l)
}
