package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

// runes builds a rune grid from newline-separated rows.
func runes(t testing.TB, text string) *grid.Grid[rune] {
	t.Helper()
	var rows [][]rune
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		rows = append(rows, []rune(strings.TrimSpace(line)))
	}
	g, err := grid.New(rows)
	require.NoError(t, err)
	return g
}

const walls = `
..##.
#.###
..#..
`

func TestGrid_FindAll(t *testing.T) {
	g := digits(t)
	even := g.FindAll(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []geom.Coordinate{geom.C(1, 0), geom.C(0, 1), geom.C(2, 1), geom.C(1, 2)}, even)
	assert.Empty(t, g.FindAll(grid.Equal(10)))
}

func TestGrid_RaySearch(t *testing.T) {
	g := digits(t)
	upToNine := func(v int) bool { return v <= 9 }

	at, ok := g.RaySearch(geom.C(1, 1), geom.East, upToNine)
	require.True(t, ok)
	assert.Equal(t, geom.C(2, 1), at)

	at, ok = g.RaySearch(geom.C(2, 2), geom.NorthWest, upToNine)
	require.True(t, ok)
	assert.Equal(t, geom.C(0, 0), at)

	// Stops before the first non-matching cell.
	at, ok = g.RaySearch(geom.C(0, 0), geom.South, func(v int) bool { return v < 7 })
	require.True(t, ok)
	assert.Equal(t, geom.C(0, 1), at)

	_, ok = g.RaySearch(geom.C(1, 1), geom.East, grid.Equal(1))
	assert.False(t, ok, "non-matching start")
	_, ok = g.RaySearch(geom.C(-1, 1), geom.East, upToNine)
	assert.False(t, ok, "out-of-bounds start")
	_, ok = g.RaySearch(geom.C(0, 0), geom.Direction(8), upToNine)
	assert.False(t, ok, "invalid direction")
}

func TestGrid_LinearSearch(t *testing.T) {
	g := runes(t, walls)
	wall := grid.Equal('#')

	l, ok := g.LinearSearch(geom.C(3, 1), grid.Horizontal, wall)
	require.True(t, ok)
	assert.Equal(t, geom.NewLine(geom.C(2, 1), geom.East, 3), l)

	l, ok = g.LinearSearch(geom.C(2, 1), grid.Vertical, wall)
	require.True(t, ok)
	assert.Equal(t, geom.NewLine(geom.C(2, 0), geom.South, 3), l)
	assert.Equal(t, geom.C(2, 2), l.End())

	// A single matching cell is not a line.
	_, ok = g.LinearSearch(geom.C(0, 1), grid.Horizontal, wall)
	assert.False(t, ok)
	_, ok = grid.Must([][]int{{0, 1, 0}}).LinearSearch(geom.C(1, 0), grid.Horizontal, grid.Equal(1))
	assert.False(t, ok)

	_, ok = g.LinearSearch(geom.C(1, 1), grid.Vertical, wall)
	assert.False(t, ok)
}

func TestGrid_FloodSearch(t *testing.T) {
	g := runes(t, walls)
	wall := grid.Equal('#')

	region := g.FloodSearch(geom.C(2, 1), false, wall)
	assert.Equal(t, []geom.Coordinate{
		geom.C(2, 0), geom.C(3, 0),
		geom.C(2, 1), geom.C(3, 1), geom.C(4, 1),
		geom.C(2, 2),
	}, region.Sorted())

	assert.Equal(t, 1, g.FloodSearch(geom.C(0, 1), false, wall).Len())
	assert.Empty(t, g.FloodSearch(geom.C(1, 1), false, wall))
	assert.Empty(t, g.FloodSearch(geom.C(9, 9), false, wall))
}

func TestGrid_FloodSearchDiagonal(t *testing.T) {
	g := runes(t, "#.\n.#")
	wall := grid.Equal('#')
	assert.Equal(t, 1, g.FloodSearch(geom.C(0, 0), false, wall).Len())
	assert.Equal(t, 2, g.FloodSearch(geom.C(0, 0), true, wall).Len())
}

func TestGrid_FloodSearchAllMatching(t *testing.T) {
	g := grid.Must(make2D(40, 25, 0))
	all := func(int) bool { return true }
	region := g.FloodSearch(geom.C(17, 3), false, all)
	assert.Equal(t, 40*25, region.Len())
	for c := range g.All() {
		assert.True(t, region.Has(c))
	}
}

func TestGrid_FloodSearchLargeRegion(t *testing.T) {
	// A single serpentine corridor of roughly 126k cells.
	const n = 501
	rows := make2D(n, n, '#')
	for y := 0; y < n; y += 2 {
		for x := range rows[y] {
			rows[y][x] = '.'
		}
		gap := n - 1
		if (y/2)%2 == 1 {
			gap = 0
		}
		if y+1 < n {
			rows[y+1][gap] = '.'
		}
	}
	g := grid.Must(rows)
	region := g.FloodSearch(geom.C(0, 0), false, grid.Equal('.'))
	assert.Equal(t, len(g.FindAll(grid.Equal('.'))), region.Len())
}

func make2D[T any](w, h int, fill T) [][]T {
	rows := make([][]T, h)
	for y := range rows {
		rows[y] = make([]T, w)
		for x := range rows[y] {
			rows[y][x] = fill
		}
	}
	return rows
}
