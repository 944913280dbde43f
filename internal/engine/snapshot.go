package engine

// Snapshot is a read-only copy of the board and engine state, taken
// for rendering and determinism tests. Mutating a snapshot never
// affects the engine.
type Snapshot struct {
	Rows   int
	Cols   int
	State  EngineState
	Tokens []Token // Row-major copy
}

// Snapshot returns the current board snapshot.
func (e *Engine) Snapshot() Snapshot {
	tokens := make([]Token, len(e.grid.cells))
	copy(tokens, e.grid.cells)
	return Snapshot{
		Rows:   e.grid.Rows,
		Cols:   e.grid.Cols,
		State:  e.state,
		Tokens: tokens,
	}
}

// At returns the token at (row, col). Out-of-bounds reads are empty.
func (s Snapshot) At(row, col int) Token {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return Token{}
	}
	return s.Tokens[row*s.Cols+col]
}
