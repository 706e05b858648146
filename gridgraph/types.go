package gridgraph

import "errors"

// ErrComponentIndex indicates a requested component index is out of range.
var ErrComponentIndex = errors.New("gridgraph: component index out of range")

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, NW, S, SE, SW, E, W.
	Conn8
)

// diagonals reports whether c admits diagonal steps.
func (c Connectivity) diagonals() bool {
	return c == Conn8
}
