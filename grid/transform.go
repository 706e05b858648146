package grid

import "github.com/katalvlaran/gridkit/geom"

// Transform builds a new W×H array by applying fn to every cell in row-major
// order. The grid is not modified.
func Transform[T comparable, U any](g *Grid[T], fn func(geom.Coordinate, T) U) [][]U {
	out := make([][]U, g.height)
	for y, row := range g.cells {
		out[y] = make([]U, g.width)
		for x, v := range row {
			out[y][x] = fn(geom.Coordinate{X: x, Y: y}, v)
		}
	}
	return out
}

// Map is Transform followed by New. It cannot fail: the shape is preserved.
func Map[T, U comparable](g *Grid[T], fn func(geom.Coordinate, T) U) *Grid[U] {
	return &Grid[U]{width: g.width, height: g.height, cells: Transform(g, fn)}
}

// Outset returns a (W+2)×(H+2) array with the grid centred and a one-cell
// border of fill around it.
func (g *Grid[T]) Outset(fill T) [][]T {
	out := make([][]T, g.height+2)
	for y := range out {
		row := make([]T, g.width+2)
		for x := range row {
			row[x] = fill
		}
		if y > 0 && y <= g.height {
			copy(row[1:], g.cells[y-1])
		}
		out[y] = row
	}
	return out
}

// Perimeter returns the edge cells clockwise from (0,0): the top row heading
// East, the right column heading South, the bottom row heading West and the
// left column heading North, each corner exactly once.
// A single-row or single-column grid yields its cells once, from (0,0).
// This intentionally differs from concatenating the four raw per-side ranges,
// which would repeat or omit cells on grids one cell thick.
func (g *Grid[T]) Perimeter() []geom.Coordinate {
	return g.Bounds().OuterRing()
}
