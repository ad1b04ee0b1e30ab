// Package grid provides fundamental types for rectangular puzzle grids.
// It contains no external dependencies to keep the engine logic pure and
// testable.
package grid

import "fmt"

// State is the commitment of a single cell.
type State uint8

const (
	Unknown State = iota
	Sea
	Land
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Sea:
		return "sea"
	case Land:
		return "land"
	default:
		return "invalid"
	}
}

// Coord identifies one cell by row and column, both zero-based.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(r%d, c%d)", c.Row, c.Col)
}

// Manhattan returns the L1 distance to other.
func (c Coord) Manhattan(other Coord) int {
	return Abs(c.Row-other.Row) + Abs(c.Col-other.Col)
}

// Less orders coordinates row-major, for deterministic iteration.
func (c Coord) Less(other Coord) bool {
	return c.Row < other.Row || (c.Row == other.Row && c.Col < other.Col)
}

// Neighbors4 returns the orthogonal neighbors of c, unclipped.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{c.Row - 1, c.Col},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
	}
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
