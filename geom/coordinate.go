package geom

import "fmt"

// Coordinate is an integer lattice point. X indexes columns, Y indexes rows.
// The zero value is the origin (0,0).
type Coordinate struct {
	X, Y int
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the component-wise sum c + o.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference c - o.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Offset displaces c by s, treating the size as a vector.
func (c Coordinate) Offset(s Size) Coordinate {
	return Coordinate{X: c.X + s.Width, Y: c.Y + s.Height}
}

// Scaled multiplies both components by k.
func (c Coordinate) Scaled(k int) Coordinate {
	return Coordinate{X: c.X * k, Y: c.Y * k}
}

// Step returns c moved n steps towards d.
func (c Coordinate) Step(d Direction, n int) Coordinate {
	return c.Add(d.Offset().Scaled(n))
}

// ManhattanDistance returns |dx| + |dy| between c and o.
func (c Coordinate) ManhattanDistance(o Coordinate) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// IsAdjacentTo reports whether o touches c. A point is never adjacent to itself.
// With allowDiagonal, the eight surrounding cells count; otherwise only the four
// orthogonal ones (Manhattan distance exactly 1).
func (c Coordinate) IsAdjacentTo(o Coordinate, allowDiagonal bool) bool {
	if c == o {
		return false
	}
	dx, dy := abs(c.X-o.X), abs(c.Y-o.Y)
	if allowDiagonal {
		return dx <= 1 && dy <= 1
	}
	return dx+dy == 1
}

// IsHorizontallyAdjacentTo reports whether o is in the same row, one column away.
func (c Coordinate) IsHorizontallyAdjacentTo(o Coordinate) bool {
	return c.Y == o.Y && abs(c.X-o.X) == 1
}

// IsVerticallyAdjacentTo reports whether o is in the same column, one row away.
func (c Coordinate) IsVerticallyAdjacentTo(o Coordinate) bool {
	return c.X == o.X && abs(c.Y-o.Y) == 1
}

// DirectionTo returns the heading from c towards o when o lies on one of the
// eight rays leaving c. ok is false when c == o or when o is off every ray.
func (c Coordinate) DirectionTo(o Coordinate) (d Direction, ok bool) {
	dx, dy := o.X-c.X, o.Y-c.Y
	switch {
	case dx == 0 && dy == 0:
		return 0, false
	case dx == 0 && dy < 0:
		return North, true
	case dx == 0:
		return South, true
	case dy == 0 && dx > 0:
		return East, true
	case dy == 0:
		return West, true
	case abs(dx) != abs(dy):
		return 0, false
	case dx > 0 && dy < 0:
		return NorthEast, true
	case dx < 0 && dy < 0:
		return NorthWest, true
	case dx > 0:
		return SouthEast, true
	default:
		return SouthWest, true
	}
}

// Less orders coordinates row-major: by Y, then by X.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// String renders c as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
