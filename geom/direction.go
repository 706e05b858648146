package geom

// Direction is one of the eight compass headings.
//
// The numeric value doubles as the canonical iteration and comparison order:
// N, NE, NW, S, SE, SW, E, W. It is neither clockwise nor alphabetical, but it
// is stable and every ordered output in this module depends on it.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	NorthWest
	South
	SouthEast
	SouthWest
	East
	West
)

// directionCount is the number of valid Direction values.
const directionCount = 8

var directionOffsets = [directionCount]Coordinate{
	North:     {X: 0, Y: -1},
	NorthEast: {X: 1, Y: -1},
	NorthWest: {X: -1, Y: -1},
	South:     {X: 0, Y: 1},
	SouthEast: {X: 1, Y: 1},
	SouthWest: {X: -1, Y: 1},
	East:      {X: 1, Y: 0},
	West:      {X: -1, Y: 0},
}

var directionOpposites = [directionCount]Direction{
	North:     South,
	NorthEast: SouthWest,
	NorthWest: SouthEast,
	South:     North,
	SouthEast: NorthWest,
	SouthWest: NorthEast,
	East:      West,
	West:      East,
}

var directionNames = [directionCount]string{
	North:     "N",
	NorthEast: "NE",
	NorthWest: "NW",
	South:     "S",
	SouthEast: "SE",
	SouthWest: "SW",
	East:      "E",
	West:      "W",
}

// All returns the eight directions in canonical order.
// The returned slice is fresh; callers may modify it.
func All() []Direction {
	return []Direction{North, NorthEast, NorthWest, South, SouthEast, SouthWest, East, West}
}

// Cardinals returns the four orthogonal directions in the order N, E, S, W.
func Cardinals() []Direction {
	return []Direction{North, East, South, West}
}

// Valid reports whether d is one of the eight defined headings.
func (d Direction) Valid() bool {
	return d < directionCount
}

// Offset returns the unit step for d. Components are in {-1, 0, 1}.
// An invalid direction yields the zero offset.
func (d Direction) Offset() Coordinate {
	if !d.Valid() {
		return Coordinate{}
	}
	return directionOffsets[d]
}

// Opposite returns the heading pointing the other way.
// Opposite is an involution: d.Opposite().Opposite() == d.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return directionOpposites[d]
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool {
	o := d.Offset()
	return o.X != 0 && o.Y != 0
}

// Less orders directions by the canonical sort order.
func (d Direction) Less(other Direction) bool {
	return d < other
}

// String returns the compass abbreviation (N, NE, ...).
func (d Direction) String() string {
	if !d.Valid() {
		return "?"
	}
	return directionNames[d]
}
