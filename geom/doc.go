// Package geom provides the integer plane geometry used by grid-based puzzles:
// coordinates, compass directions, sizes, straight lines and rectangles.
//
// What:
//
//   - Coordinate: an (X, Y) lattice point with arithmetic, adjacency tests and
//     direction inference between two points.
//   - Direction: the eight compass headings with unit offsets, opposites and a
//     fixed iteration order (N, NE, NW, S, SE, SW, E, W).
//   - Size: a signed width/height pair used as a displacement and for area.
//   - Line: a horizontal, vertical or 45° diagonal run of coordinates.
//   - Rect: an axis-aligned region given by origin and (possibly negative) size.
//   - CoordinateSet: a set of coordinates with row-major ordered export.
//
// Conventions:
//
//   - Y grows downwards: North is (0,-1), South is (0,1).
//   - Every type is a small immutable value; methods return new values.
//   - Coordinates are not bound to any grid; validity is always grid-relative.
//   - Impossible geometry (two points that share no ray, a zero-length line)
//     is reported with a comma-ok boolean, never with a sentinel coordinate.
//
// Complexity:
//
//   - All Coordinate, Direction, Size and Rect operations: O(1).
//   - Line.Coordinates: O(L); Line.Intersects: O(L1 + L2).
//   - Rect.OuterRing: O(W + H).
package geom
