package grid

import "github.com/katalvlaran/gridkit/geom"

// FindAll returns every coordinate whose value satisfies match, in row-major
// order (Y ascending, then X ascending).
// Complexity: O(W×H).
func (g *Grid[T]) FindAll(match func(T) bool) []geom.Coordinate {
	var out []geom.Coordinate
	for c, v := range g.All() {
		if match(v) {
			out = append(out, c)
		}
	}
	return out
}

// RaySearch walks from start towards d while cells keep matching and returns
// the last matching coordinate (start itself if its next step fails).
// ok is false when start is out of bounds or does not match, or d is not a
// valid heading.
// Complexity: O(distance walked).
func (g *Grid[T]) RaySearch(start geom.Coordinate, d geom.Direction, match func(T) bool) (geom.Coordinate, bool) {
	if !d.Valid() {
		return geom.Coordinate{}, false
	}
	v, ok := g.Value(start)
	if !ok || !match(v) {
		return geom.Coordinate{}, false
	}
	step := d.Offset()
	at := start
	for {
		next := at.Add(step)
		v, ok := g.Value(next)
		if !ok || !match(v) {
			return at, true
		}
		at = next
	}
}

// LinearSearch finds the maximal contiguous run of matching cells through
// start along one axis. Horizontal runs are returned heading East from their
// west end, vertical runs heading South from their north end.
// ok is false when start is out of bounds or does not match, and also when the
// run is a single cell: a line needs two distinct endpoints.
func (g *Grid[T]) LinearSearch(start geom.Coordinate, st SearchType, match func(T) bool) (geom.Line, bool) {
	back, forward := geom.West, geom.East
	if st == Vertical {
		back, forward = geom.North, geom.South
	}
	from, ok := g.RaySearch(start, back, match)
	if !ok {
		return geom.Line{}, false
	}
	to, ok := g.RaySearch(start, forward, match)
	if !ok {
		return geom.Line{}, false
	}
	return geom.LineBetween(from, to)
}

// FloodSearch returns every coordinate reachable from start through matching
// cells, moving orthogonally or, with allowDiagonalMatches, in all eight
// directions. The result is empty when start is out of bounds or does not match.
//
// The walk is an iterative BFS over a dense visited slice, so region size is
// bounded by memory rather than by call-stack depth.
// Complexity: O(W×H×d) time, O(W×H) memory.
func (g *Grid[T]) FloodSearch(start geom.Coordinate, allowDiagonalMatches bool, match func(T) bool) geom.CoordinateSet {
	region := geom.NewCoordinateSet()
	if v, ok := g.Value(start); !ok || !match(v) {
		return region
	}

	dirs := geom.Cardinals()
	if allowDiagonalMatches {
		dirs = geom.All()
	}
	seen := make([]bool, g.width*g.height)
	seen[g.index(start)] = true
	queue := []geom.Coordinate{start}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		region.Add(u)
		for _, d := range dirs {
			next := u.Add(d.Offset())
			if !g.IsValid(next) {
				continue
			}
			i := g.index(next)
			if seen[i] {
				continue
			}
			seen[i] = true
			if match(g.cells[next.Y][next.X]) {
				queue = append(queue, next)
			}
		}
	}
	return region
}

// index maps an in-bounds coordinate to its row-major offset y*W + x.
func (g *Grid[T]) index(c geom.Coordinate) int {
	return c.Y*g.width + c.X
}
