// Package grid provides Grid, an immutable rectangular 2D array of comparable
// values with bounds-safe queries for puzzle solving.
//
// What:
//
//   - Grid[T] wraps a non-empty, rectangular [][]T, deep-copied on construction.
//   - Value, IsValid and Moving never panic on out-of-range coordinates; absence
//     is reported through a comma-ok boolean.
//   - Neighbors enumerates the 4 or 8 in-bounds cells around a coordinate in the
//     canonical geom.Direction order.
//   - FindAll, RaySearch, LinearSearch and FloodSearch locate cells matching a
//     predicate; LineToEdge, Count, Values and RaySample read along lines.
//   - Transform, Outset and Perimeter derive new data without touching the grid.
//
// Why:
//
//   - Puzzle inputs are parsed once and then queried thousands of times; keeping
//     every bounds check inside the grid removes index arithmetic from solvers.
//   - A read-only grid can be shared between goroutines without locking.
//
// Complexity:
//
//   - New:          O(W×H) time and memory (deep copy).
//   - Value, IsValid, Neighbors, Moving: O(1).
//   - FindAll, Transform, Outset: O(W×H).
//   - RaySearch, LinearSearch, LineToEdge, Count: O(max(W,H)).
//   - FloodSearch:  O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or an empty first row.
//   - ErrNonRectangular: rows have differing lengths.
//
// Every other failure (out of bounds, no match) is an expected outcome and is
// returned as ok == false or an empty result, never as an error.
package grid
