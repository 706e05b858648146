package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

// randomGrid returns a deterministic n×n grid with values in [0,4].
func randomGrid(n int) *grid.Grid[int] {
	rng := rand.New(rand.NewSource(42))
	rows := make([][]int, n)
	for y := range rows {
		rows[y] = make([]int, n)
		for x := range rows[y] {
			rows[y][x] = rng.Intn(5)
		}
	}
	return grid.Must(rows)
}

// BenchmarkComponents measures performance of Components
// on a randomly generated 1000×1000 grid with values in [0,4].
// Complexity: O(W×H×d)
func BenchmarkComponents(b *testing.B) {
	g := randomGrid(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.Components(g, land, gridgraph.Conn4)
	}
}

// BenchmarkToGraph measures the gonum export of a 200×200 random grid.
func BenchmarkToGraph(b *testing.B) {
	g := randomGrid(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.ToGraph(g, land, gridgraph.Conn8)
	}
}
