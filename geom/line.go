package geom

// Line is a straight run of Length lattice points starting at Start and
// stepping by Direction.Offset(). Lines are never validated against a grid.
//
// A Line with Length < 1 is empty: it has no coordinates and intersects nothing.
type Line struct {
	Start     Coordinate
	Direction Direction
	Length    int
}

// NewLine builds a line from its start, heading and number of points.
func NewLine(start Coordinate, d Direction, length int) Line {
	return Line{Start: start, Direction: d, Length: length}
}

// LineBetween builds the line running from start to end inclusive.
// ok is false unless the two points are distinct and share a row, a column or
// an exact 45° diagonal.
func LineBetween(start, end Coordinate) (l Line, ok bool) {
	d, ok := start.DirectionTo(end)
	if !ok {
		return Line{}, false
	}
	length := max(abs(end.X-start.X), abs(end.Y-start.Y)) + 1
	return Line{Start: start, Direction: d, Length: length}, true
}

// Empty reports whether the line holds no coordinates.
func (l Line) Empty() bool {
	return l.Length < 1
}

// End returns the last point: Start + offset*(Length-1).
// For an empty line End is Start.
func (l Line) End() Coordinate {
	if l.Empty() {
		return l.Start
	}
	return l.Start.Step(l.Direction, l.Length-1)
}

// Coordinates returns every point from Start to End inclusive, in order.
func (l Line) Coordinates() []Coordinate {
	if l.Empty() {
		return nil
	}
	out := make([]Coordinate, l.Length)
	step := l.Direction.Offset()
	at := l.Start
	for i := range out {
		out[i] = at
		at = at.Add(step)
	}
	return out
}

// Contains reports whether c is one of the line's points.
func (l Line) Contains(c Coordinate) bool {
	if l.Empty() {
		return false
	}
	if c == l.Start {
		return true
	}
	d, ok := l.Start.DirectionTo(c)
	if !ok || d != l.Direction {
		return false
	}
	return max(abs(c.X-l.Start.X), abs(c.Y-l.Start.Y)) < l.Length
}

// Intersects reports whether the two lines share at least one lattice point.
//
// This is a point-set test, not a geometric one: two diagonals that cross
// between lattice points, e.g. (0,0)→(1,1) and (1,0)→(0,1), do not intersect.
func (l Line) Intersects(other Line) bool {
	short, long := l, other
	if short.Length > long.Length {
		short, long = long, short
	}
	if short.Empty() {
		return false
	}
	seen := NewCoordinateSet(short.Coordinates()...)
	for _, c := range long.Coordinates() {
		if seen.Has(c) {
			return true
		}
	}
	return false
}
