package grid

import (
	"iter"

	"github.com/katalvlaran/gridkit/geom"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or its first row is empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T comparable](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]T, h)
	for y := range cells {
		cells[y] = make([]T, w)
		copy(cells[y], values[y])
	}
	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// Must is like New but panics on malformed input.
// Use it for literals and inputs already known to be rectangular.
func Must[T comparable](values [][]T) *Grid[T] {
	g, err := New(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Size returns the grid dimensions.
func (g *Grid[T]) Size() geom.Size {
	return geom.Size{Width: g.width, Height: g.height}
}

// Bounds returns the rect covering every valid coordinate.
func (g *Grid[T]) Bounds() geom.Rect {
	return geom.Rect{Size: g.Size()}
}

// IsValid reports whether c lies in [0,W) × [0,H).
// Complexity: O(1).
func (g *Grid[T]) IsValid(c geom.Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsValidLine reports whether both ends of a non-empty line are in bounds.
// Because the grid is a convex rectangle, every point in between is too.
func (g *Grid[T]) IsValidLine(l geom.Line) bool {
	return !l.Empty() && g.IsValid(l.Start) && g.IsValid(l.End())
}

// Value returns the value at c; ok is false when c is out of bounds.
func (g *Grid[T]) Value(c geom.Coordinate) (v T, ok bool) {
	if !g.IsValid(c) {
		return v, false
	}
	return g.cells[c.Y][c.X], true
}

// Row returns a copy of row y.
func (g *Grid[T]) Row(y int) ([]T, bool) {
	if y < 0 || y >= g.height {
		return nil, false
	}
	out := make([]T, g.width)
	copy(out, g.cells[y])
	return out, true
}

// Column returns a copy of column x, top to bottom.
func (g *Grid[T]) Column(x int) ([]T, bool) {
	if x < 0 || x >= g.width {
		return nil, false
	}
	out := make([]T, g.height)
	for y := range out {
		out[y] = g.cells[y][x]
	}
	return out, true
}

// Rows returns a deep copy of the backing data.
func (g *Grid[T]) Rows() [][]T {
	return Transform(g, func(_ geom.Coordinate, v T) T { return v })
}

// All iterates every cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[geom.Coordinate, T] {
	return func(yield func(geom.Coordinate, T) bool) {
		for y, row := range g.cells {
			for x, v := range row {
				if !yield(geom.Coordinate{X: x, Y: y}, v) {
					return
				}
			}
		}
	}
}

// Neighbors returns the in-bounds cells around c. With allowDiagonals all eight
// directions are tried in canonical order; otherwise only N, E, S, W.
// Out-of-bounds neighbours are silently skipped.
func (g *Grid[T]) Neighbors(c geom.Coordinate, allowDiagonals bool) []Neighbor[T] {
	dirs := geom.Cardinals()
	if allowDiagonals {
		dirs = geom.All()
	}
	out := make([]Neighbor[T], 0, len(dirs))
	for _, d := range dirs {
		at := c.Add(d.Offset())
		if v, ok := g.Value(at); ok {
			out = append(out, Neighbor[T]{Value: v, Coordinate: at, Direction: d})
		}
	}
	return out
}

// Moving returns from shifted distance steps towards d, if still in bounds.
// ok is false for an invalid heading.
func (g *Grid[T]) Moving(d geom.Direction, from geom.Coordinate, distance int) (geom.Coordinate, bool) {
	if !d.Valid() {
		return geom.Coordinate{}, false
	}
	to := from.Step(d, distance)
	if !g.IsValid(to) {
		return geom.Coordinate{}, false
	}
	return to, true
}
