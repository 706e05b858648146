package grid

import "github.com/katalvlaran/gridkit/geom"

// Grid is an immutable W×H array of values. Rows are indexed by Y (0 = first
// row) and columns by X; cells[y][x] holds the value at (x,y).
// A Grid is safe for concurrent reads; no method mutates it.
type Grid[T comparable] struct {
	width, height int
	cells         [][]T
}

// Neighbor is a cell found next to a reference coordinate.
type Neighbor[T comparable] struct {
	Value      T
	Coordinate geom.Coordinate
	// Direction points from the reference coordinate to this cell.
	Direction geom.Direction
}

// SearchType selects the axis scanned by LinearSearch.
type SearchType int

const (
	// Horizontal scans West and East along a row.
	Horizontal SearchType = iota
	// Vertical scans North and South along a column.
	Vertical
)

// Equal returns a predicate matching values equal to v.
func Equal[T comparable](v T) func(T) bool {
	return func(x T) bool { return x == v }
}
