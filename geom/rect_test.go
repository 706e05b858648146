package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridkit/geom"
)

func TestRect_Normalized(t *testing.T) {
	cases := []struct {
		name string
		in   geom.Rect
		want geom.Rect
	}{
		{"AlreadyNormal", geom.R(1, 2, 3, 4), geom.R(1, 2, 3, 4)},
		{"NegativeWidth", geom.R(5, 0, -3, 2), geom.R(2, 0, 3, 2)},
		{"NegativeHeight", geom.R(0, 5, 2, -5), geom.R(0, 0, 2, 5)},
		{"BothNegative", geom.R(4, 4, -2, -3), geom.R(2, 1, 2, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalized()
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.in.Area(), got.Area())
			assert.GreaterOrEqual(t, got.Size.Width, 0)
			assert.GreaterOrEqual(t, got.Size.Height, 0)
		})
	}
}

func TestRect_DegenerateAndExpanded(t *testing.T) {
	assert.True(t, geom.R(0, 0, 0, 3).IsDegenerate())
	assert.True(t, geom.R(0, 0, 3, 0).IsDegenerate())
	assert.False(t, geom.R(0, 0, 1, 1).IsDegenerate())

	assert.Equal(t, geom.R(-1, -1, 4, 5), geom.R(0, 0, 2, 3).Expanded(1))
	assert.Equal(t, geom.R(1, 1, 1, 1), geom.R(0, 0, 3, 3).Expanded(-1))
	// A negative size is normalized after growing.
	assert.Equal(t, geom.R(1, -1, 1, 4), geom.R(3, 0, -3, 2).Expanded(1))
}

func TestRect_Contains(t *testing.T) {
	r := geom.R(3, 3, -2, 2)
	assert.True(t, r.Contains(geom.C(1, 3)))
	assert.True(t, r.Contains(geom.C(2, 4)))
	assert.False(t, r.Contains(geom.C(3, 3)))
	assert.False(t, r.Contains(geom.C(1, 5)))
}

func TestRect_OuterRing(t *testing.T) {
	ring := geom.R(0, 0, 3, 3).OuterRing()
	want := []geom.Coordinate{
		geom.C(0, 0), geom.C(1, 0),
		geom.C(2, 0), geom.C(2, 1),
		geom.C(2, 2), geom.C(1, 2),
		geom.C(0, 2), geom.C(0, 1),
	}
	assert.Equal(t, want, ring)

	ring = geom.R(1, 1, 4, 2).OuterRing()
	assert.Len(t, ring, 2*3+2*1)
	assert.Len(t, geom.NewCoordinateSet(ring...), len(ring), "corners must not repeat")
}

func TestRect_OuterRingEdgeCases(t *testing.T) {
	assert.Equal(t, []geom.Coordinate{geom.C(0, 0)}, geom.R(0, 0, 1, 1).OuterRing())
	assert.Empty(t, geom.R(0, 0, 0, 4).OuterRing())
	assert.Equal(t,
		[]geom.Coordinate{geom.C(2, 0), geom.C(2, 1), geom.C(2, 2)},
		geom.R(2, 0, 1, 3).OuterRing())
	assert.Equal(t,
		[]geom.Coordinate{geom.C(0, 5), geom.C(1, 5)},
		geom.R(2, 5, -2, 1).OuterRing())
}
