// Package gridkit is a toolkit for grid-based puzzles: it turns raw puzzle
// text into typed 2D data and answers geometric questions about it.
//
// What is in the box?
//
//	geom/      — Coordinate, Direction, Size, Line, Rect and CoordinateSet value types
//	grid/      — Grid[T], an immutable 2D array with bounds-safe neighbour, ray,
//	             line, flood and perimeter queries
//	gridgraph/ — connected regions of a grid and export to gonum graphs
//	parse/     — delimited text → []T, [][]T, character grids and records
//	render/    — PNG rendering of a grid with highlighted regions
//	cmd/gridtool — CLI over all of the above
//
// Quick ASCII example:
//
//	#####
//	#..##     grid.Must(parse.Runes(text)).FloodSearch(geom.C(1, 1), false, grid.Equal('.'))
//	#.#.#     → {(1,1) (2,1) (1,2)}
//	#####
//
// Every out-of-bounds access or impossible geometry query answers with a
// comma-ok false rather than an error or a panic; only malformed input to
// grid.New is an error.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
