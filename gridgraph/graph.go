package gridgraph

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// ToGraph converts the matching cells of g into an undirected gonum graph.
// Each matching cell at (x,y) becomes node NodeID(g, (x,y)); edges join
// matching cells that are neighbours under conn.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func ToGraph[T comparable](g *grid.Grid[T], match func(T) bool, conn Connectivity) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for c, v := range g.All() {
		if match(v) {
			ug.AddNode(simple.Node(NodeID(g, c)))
		}
	}
	for c, v := range g.All() {
		if !match(v) {
			continue
		}
		u := simple.Node(NodeID(g, c))
		for _, n := range g.Neighbors(c, conn.diagonals()) {
			if !match(n.Value) {
				continue
			}
			w := simple.Node(NodeID(g, n.Coordinate))
			if ug.HasEdgeBetween(u.ID(), w.ID()) {
				continue
			}
			ug.SetEdge(ug.NewEdge(u, w))
		}
	}
	return ug
}

// NodeID returns the row-major node ID used by ToGraph for c.
func NodeID[T comparable](g *grid.Grid[T], c geom.Coordinate) int64 {
	return int64(index(g, c))
}

// CoordinateOf converts a node ID produced by ToGraph back to (x,y).
func CoordinateOf[T comparable](g *grid.Grid[T], id int64) geom.Coordinate {
	w := int64(g.Width())
	return geom.Coordinate{X: int(id % w), Y: int(id / w)}
}
