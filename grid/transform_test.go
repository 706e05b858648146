package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
)

func TestTransform(t *testing.T) {
	g := digits(t)
	got := grid.Transform(g, func(c geom.Coordinate, v int) string {
		return c.String()
	})
	assert.Equal(t, "(2,1)", got[1][2])
	assert.Len(t, got, 3)
	assert.Len(t, got[0], 3)

	sums := grid.Transform(g, func(c geom.Coordinate, v int) int { return v + c.X })
	assert.Equal(t, [][]int{{1, 3, 5}, {4, 6, 8}, {7, 9, 11}}, sums)

	v, _ := g.Value(geom.C(1, 0))
	assert.Equal(t, 2, v, "source grid must be untouched")
}

func TestMap(t *testing.T) {
	g := digits(t)
	big := grid.Map(g, func(_ geom.Coordinate, v int) bool { return v > 4 })
	assert.Equal(t, g.Size(), big.Size())
	assert.Equal(t, []geom.Coordinate{
		geom.C(1, 1), geom.C(2, 1), geom.C(0, 2), geom.C(1, 2), geom.C(2, 2),
	}, big.FindAll(grid.Equal(true)))
}

func TestGrid_Outset(t *testing.T) {
	g := grid.Must([][]int{{1, 2}, {3, 4}})
	assert.Equal(t, [][]int{
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 3, 4, 0},
		{0, 0, 0, 0},
	}, g.Outset(0))
}

func TestGrid_Perimeter(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		want []geom.Coordinate
	}{
		{
			"Square",
			[][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			[]geom.Coordinate{
				geom.C(0, 0), geom.C(1, 0), geom.C(2, 0), geom.C(2, 1),
				geom.C(2, 2), geom.C(1, 2), geom.C(0, 2), geom.C(0, 1),
			},
		},
		{
			"Wide",
			[][]int{{1, 2, 3}, {4, 5, 6}},
			[]geom.Coordinate{
				geom.C(0, 0), geom.C(1, 0), geom.C(2, 0),
				geom.C(2, 1), geom.C(1, 1), geom.C(0, 1),
			},
		},
		{"SingleCell", [][]int{{1}}, []geom.Coordinate{geom.C(0, 0)}},
		{"SingleRow", [][]int{{1, 2, 3}}, []geom.Coordinate{geom.C(0, 0), geom.C(1, 0), geom.C(2, 0)}},
		{"SingleColumn", [][]int{{1}, {2}}, []geom.Coordinate{geom.C(0, 0), geom.C(0, 1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, grid.Must(tc.rows).Perimeter())
		})
	}
}
