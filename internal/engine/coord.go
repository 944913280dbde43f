package engine

import (
	"fmt"

	"github.com/dkotenko/glowmatch/internal/core"
)

// Coord is a grid position. Row increases downward, Col to the right
// (screen coordinates), matching how the board is rendered.
type Coord struct {
	Row int
	Col int
}

// RC is a convenience constructor for Coord.
func RC(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Adjacent reports whether two coordinates are 4-neighbors.
func (c Coord) Adjacent(other Coord) bool {
	return core.Abs(c.Row-other.Row)+core.Abs(c.Col-other.Col) == 1
}
