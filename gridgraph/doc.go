// Package gridgraph treats a grid.Grid as a graph of matching cells, enabling
// region ("island") analysis and export to gonum graph algorithms.
//
// What:
//
//   - Components finds every maximal connected region of cells satisfying a
//     predicate, under 4- or 8-connectivity.
//   - ToGraph exports the matching cells as a *simple.UndirectedGraph whose node
//     IDs are row-major cell indices, so gonum's topo, path and network
//     packages can run on puzzle inputs.
//
// Why:
//
//   - Puzzle maps: count islands, lakes or garden plots.
//   - Interop: hand a grid to a general graph library without re-deriving
//     adjacency by hand.
//
// Complexity:
//
//   - Components: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ToGraph:    O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
