package gridgraph

import (
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// Components finds all contiguous regions of cells satisfying match,
// according to conn. Regions are returned in row-major order of their first
// (top-left-most in scan order) cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Components[T comparable](g *grid.Grid[T], match func(T) bool, conn Connectivity) []geom.CoordinateSet {
	seen := make([]bool, g.Width()*g.Height())
	var comps []geom.CoordinateSet

	for c, v := range g.All() {
		if seen[index(g, c)] || !match(v) {
			continue
		}
		comp := g.FloodSearch(c, conn.diagonals(), match)
		for member := range comp {
			seen[index(g, member)] = true
		}
		comps = append(comps, comp)
	}
	return comps
}

// Component returns comps[i], or ErrComponentIndex when i is out of range.
func Component(comps []geom.CoordinateSet, i int) (geom.CoordinateSet, error) {
	if i < 0 || i >= len(comps) {
		return nil, ErrComponentIndex
	}
	return comps[i], nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
func index[T comparable](g *grid.Grid[T], c geom.Coordinate) int {
	return c.Y*g.Width() + c.X
}
