package engine

// Event is emitted by the engine while processing a swap request.
// RequestSwap returns the ordered log of everything that happened so
// the consumer can replay it at its own pace; the grid itself is
// always fully settled by the time the log is returned.
type Event interface {
	engineEvent()
}

// InvalidMoveEvent reports that a well-formed swap produced no match
// and was reverted. This is a normal outcome, not an error.
type InvalidMoveEvent struct {
	A, B Coord
}

func (InvalidMoveEvent) engineEvent() {}

// MatchResolvedEvent reports one detect-and-clear step. Chain is the
// cascade depth, starting at 1 for the swap-triggered clear.
type MatchResolvedEvent struct {
	Matches    []Match
	ScoreDelta int
	Chain      int
}

func (MatchResolvedEvent) engineEvent() {}

// Fall records one token's downward move during a collapse.
type Fall struct {
	From Coord
	To   Coord
}

// CascadeStepEvent reports the gravity-and-refill step that follows a
// clear: which cells were vacated, how surviving tokens fell, and
// where fresh tokens spawned.
type CascadeStepEvent struct {
	Cleared []Coord
	Falls   []Fall
	Spawned []Coord
	Chain   int
}

func (CascadeStepEvent) engineEvent() {}

// BoardStuckEvent reports that after settling no single adjacent swap
// can produce a match. The engine stays in StateNoMoves until the
// consumer calls Reshuffle.
type BoardStuckEvent struct{}

func (BoardStuckEvent) engineEvent() {}
