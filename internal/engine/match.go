package engine

// Orientation describes which axis a run lies along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Match is one maximal same-color run of length >= the configured
// minimum, along a single row or column. Cells are ordered
// left-to-right for horizontal runs and top-to-bottom for vertical
// ones. Matches are transient: the detector produces them, the engine
// consumes them, nothing stores them.
type Match struct {
	Color       Color
	Orientation Orientation
	Cells       []Coord
}

// Len returns the run length.
func (m Match) Len() int {
	return len(m.Cells)
}

// Contains reports whether the run covers the given coordinate.
func (m Match) Contains(c Coord) bool {
	for _, cell := range m.Cells {
		if cell == c {
			return true
		}
	}
	return false
}
