package engine

import (
	"sort"

	"github.com/dkotenko/glowmatch/internal/core"
)

// Grid owns the rows x cols board of tokens. Cells are stored in
// row-major order. Empty slots exist only transiently between
// ApplyMatches and the refill that follows a Collapse; whenever the
// engine is idle every slot holds exactly one token and no run of
// MinRun or more is present.
type Grid struct {
	Rows int
	Cols int

	cells []Token
}

// NewGrid creates an empty grid. Use a Generator to fill it.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]Token, rows*cols),
	}
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// InBounds reports whether the coordinate lies on the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At returns the token at the given coordinate. Out-of-bounds
// coordinates read as empty.
func (g *Grid) At(c Coord) Token {
	if !g.InBounds(c) {
		return Token{}
	}
	return g.cells[g.index(c)]
}

// set stores a token and keeps its position fields in sync.
func (g *Grid) set(c Coord, t Token) {
	t.Row = c.Row
	t.Col = c.Col
	g.cells[g.index(c)] = t
}

// clear empties the slot at the given coordinate.
func (g *Grid) clear(c Coord) {
	g.cells[g.index(c)] = Token{Row: c.Row, Col: c.Col}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Token, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Rows: g.Rows, Cols: g.Cols, cells: cells}
}

// swapRaw exchanges two cells' content without validation. Used by the
// move analyzer for hypothetical swaps and by Swap after validation.
func (g *Grid) swapRaw(a, b Coord) {
	ta, tb := g.At(a), g.At(b)
	g.set(a, tb)
	g.set(b, ta)
}

// Swap exchanges the content of two adjacent cells and reports whether
// the post-swap board contains a match touching either cell, checked
// with the anchored query. The swap is a pure data mutation: it never
// resolves cascades and never reverts itself. An *InvalidSwapError is
// returned for out-of-bounds or non-adjacent coordinates, in which
// case the grid is unchanged.
func (g *Grid) Swap(a, b Coord, minRun int) (bool, error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false, &InvalidSwapError{A: a, B: b, Reason: "out of bounds"}
	}
	if !a.Adjacent(b) {
		return false, &InvalidSwapError{A: a, B: b, Reason: "not adjacent"}
	}
	if g.At(a).Empty() || g.At(b).Empty() {
		return false, &InvalidSwapError{A: a, B: b, Reason: "empty cell"}
	}
	g.swapRaw(a, b)
	matched := len(FindMatchAt(g, a, minRun)) > 0 || len(FindMatchAt(g, b, minRun)) > 0
	return matched, nil
}

// ApplyMatches marks and removes all matched tokens and returns the
// set of now-empty coordinates. Clearing a special bulb triggers its
// blast: a line-clear bulb takes its stored axis' full row or column
// with it, an area-clear bulb takes the 3x3 area around itself.
// Triggered specials chain transitively.
func (g *Grid) ApplyMatches(matches []Match) map[Coord]bool {
	pending := make([]Coord, 0)
	for _, m := range matches {
		pending = append(pending, m.Cells...)
	}

	cleared := make(map[Coord]bool)
	for len(pending) > 0 {
		c := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if cleared[c] || !g.InBounds(c) {
			continue
		}
		t := g.At(c)
		if t.Empty() {
			continue
		}
		cleared[c] = true

		switch t.Kind {
		case KindLineClear:
			pending = append(pending, g.lineCells(c, t.Axis)...)
		case KindAreaClear:
			pending = append(pending, g.areaCells(c)...)
		}
	}

	for c := range cleared {
		t := g.At(c)
		t.State = StateMatched
		g.set(c, t)
	}
	for c := range cleared {
		g.clear(c)
	}
	return cleared
}

// lineCells returns every occupied cell in the row or column through c.
func (g *Grid) lineCells(c Coord, axis Orientation) []Coord {
	cells := make([]Coord, 0, g.Rows+g.Cols)
	if axis == Horizontal {
		for col := 0; col < g.Cols; col++ {
			cells = append(cells, RC(c.Row, col))
		}
	} else {
		for row := 0; row < g.Rows; row++ {
			cells = append(cells, RC(row, c.Col))
		}
	}
	return cells
}

// areaCells returns the 3x3 neighborhood around c, clipped to the board.
func (g *Grid) areaCells(c Coord) []Coord {
	blast := core.NewRect(c.Col-1, c.Row-1, 3, 3)
	cells := make([]Coord, 0, 9)
	for row := blast.Y; row < blast.Bottom(); row++ {
		for col := blast.X; col < blast.Right(); col++ {
			if g.InBounds(RC(row, col)) {
				cells = append(cells, RC(row, col))
			}
		}
	}
	return cells
}

// Place stores a token at the given coordinate, overwriting whatever
// is there. Used by the engine to drop promoted special bulbs onto
// freshly cleared anchor cells.
func (g *Grid) Place(c Coord, t Token) {
	if g.InBounds(c) {
		g.set(c, t)
	}
}

// Collapse moves every column's surviving tokens downward to fill the
// gaps left by a clear, preserving their relative order. Moved tokens
// are flagged StateFalling. It returns how many cells must be spawned
// at the top of each column and the list of individual falls.
func (g *Grid) Collapse() (map[int]int, []Fall) {
	spawn := make(map[int]int)
	var falls []Fall

	for col := 0; col < g.Cols; col++ {
		write := g.Rows - 1
		for row := g.Rows - 1; row >= 0; row-- {
			t := g.At(RC(row, col))
			if t.Empty() {
				continue
			}
			if write != row {
				t.State = StateFalling
				g.set(RC(write, col), t)
				g.clear(RC(row, col))
				falls = append(falls, Fall{From: RC(row, col), To: RC(write, col)})
			}
			write--
		}
		if write >= 0 {
			spawn[col] = write + 1
		}
	}
	return spawn, falls
}

// IsSettled reports whether the board contains no match at all. This
// is the definition of the idle state and must hold after every fill,
// reshuffle and completed cascade.
func (g *Grid) IsSettled(minRun int) bool {
	return len(FindMatches(g, minRun)) == 0
}

// EmptyCoords returns all empty slots in row-major order. Outside a
// cascade step the result is empty.
func (g *Grid) EmptyCoords() []Coord {
	var coords []Coord
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.At(RC(row, col)).Empty() {
				coords = append(coords, RC(row, col))
			}
		}
	}
	return coords
}

// settle resets every token's transient state to StateSettled.
func (g *Grid) settle() {
	for i := range g.cells {
		g.cells[i].State = StateSettled
	}
}

// sortedCoords returns the coordinate set in row-major order, for
// deterministic event payloads.
func sortedCoords(set map[Coord]bool) []Coord {
	coords := make([]Coord, 0, len(set))
	for c := range set {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}
