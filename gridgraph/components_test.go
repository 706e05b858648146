// File: gridgraph/components_test.go
package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

func land(v int) bool { return v >= 1 }

// TestComponents_Simple4 tests Components on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestComponents_Simple4(t *testing.T) {
	g := grid.Must([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})

	comps := gridgraph.Components(g, land, gridgraph.Conn4)
	require.Len(t, comps, 2)

	sizes := []int{comps[0].Len(), comps[1].Len()}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
	assert.True(t, comps[0].Has(geom.C(1, 0)), "first component starts at the first land cell")
}

// TestComponents_Diagonal8 uses a 5×5 "X" pattern to catch touching-corner
// islands: with Conn8 all 9 ones form a single island, with Conn4 none touch.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestComponents_Diagonal8(t *testing.T) {
	g := grid.Must([][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})

	comps := gridgraph.Components(g, land, gridgraph.Conn8)
	require.Len(t, comps, 1)
	assert.Equal(t, 9, comps[0].Len())

	assert.Len(t, gridgraph.Components(g, land, gridgraph.Conn4), 9)
}

// TestComponents_EmptyAndAllWater tests edge cases:
//   - completely water grid → zero components
//   - single‐cell land grid → one component of size 1
func TestComponents_EmptyAndAllWater(t *testing.T) {
	water := grid.Must([][]int{{0, 0}, {0, 0}})
	assert.Empty(t, gridgraph.Components(water, land, gridgraph.Conn4))

	single := grid.Must([][]int{{0, 1}})
	comps := gridgraph.Components(single, land, gridgraph.Conn4)
	require.Len(t, comps, 1)
	assert.Equal(t, []geom.Coordinate{geom.C(1, 0)}, comps[0].Sorted())
}

func TestComponent_Index(t *testing.T) {
	g := grid.Must([][]rune{[]rune("a.a")})
	comps := gridgraph.Components(g, grid.Equal('a'), gridgraph.Conn4)
	require.Len(t, comps, 2)

	c, err := gridgraph.Component(comps, 1)
	require.NoError(t, err)
	assert.True(t, c.Has(geom.C(2, 0)))

	_, err = gridgraph.Component(comps, 2)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, err = gridgraph.Component(comps, -1)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}
