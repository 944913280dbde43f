package engine

import (
	"fmt"
	"math/rand"
)

// EngineState is the externally observable state of the engine.
// StateIdle and StateNoMoves are rest states; StateSwapping and
// StateResolving only exist inside one RequestSwap call.
type EngineState uint8

const (
	StateIdle EngineState = iota
	StateSwapping
	StateResolving
	StateNoMoves
)

// String returns a human-readable state name.
func (s EngineState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwapping:
		return "swapping"
	case StateResolving:
		return "resolving"
	case StateNoMoves:
		return "no_moves"
	default:
		return "unknown"
	}
}

// Engine owns a grid and turns swap requests into deterministic
// detect-clear-cascade-refill cycles. It is single-threaded: one
// instance, one caller, one swap-to-settle cycle at a time. All
// processing is synchronous; animation pacing belongs to the consumer,
// which replays the returned event log at its own speed.
type Engine struct {
	cfg   Config
	grid  *Grid
	gen   *Generator
	state EngineState
}

// New creates an engine with a freshly generated board. The seed makes
// the whole session reproducible.
func New(cfg Config, seed int64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	gen := NewGenerator(rng, cfg.Palette, cfg.MinRun)
	grid := NewGrid(cfg.Rows, cfg.Cols)
	gen.Fill(grid)
	if !grid.IsSettled(cfg.MinRun) {
		return nil, fmt.Errorf("engine: generated board violates no-run invariant")
	}

	e := &Engine{cfg: cfg, grid: grid, gen: gen, state: StateIdle}
	if !HasAnyValidMove(grid, cfg.MinRun) {
		if err := e.Reshuffle(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the current engine state.
func (e *Engine) State() EngineState {
	return e.state
}

// Hint returns a pair of adjacent cells whose swap produces a match.
func (e *Engine) Hint() (Coord, Coord, bool) {
	return FindHint(e.grid, e.cfg.MinRun)
}

// RequestSwap processes one swap request to completion and returns the
// ordered event log. A request while not idle is dropped with
// ErrEngineBusy; malformed coordinates are rejected with
// *InvalidSwapError and leave the grid untouched. A well-formed swap
// that produces no match is reverted and reported as an
// InvalidMoveEvent, which is a normal outcome rather than an error.
func (e *Engine) RequestSwap(a, b Coord) ([]Event, error) {
	if e.state != StateIdle {
		return nil, ErrEngineBusy
	}
	if !e.grid.InBounds(a) || !e.grid.InBounds(b) {
		return nil, &InvalidSwapError{A: a, B: b, Reason: "out of bounds"}
	}
	if !a.Adjacent(b) {
		return nil, &InvalidSwapError{A: a, B: b, Reason: "not adjacent"}
	}

	e.state = StateSwapping
	matched, err := e.grid.Swap(a, b, e.cfg.MinRun)
	if err != nil {
		e.state = StateIdle
		return nil, err
	}
	if !matched {
		e.grid.swapRaw(a, b)
		e.state = StateIdle
		return []Event{InvalidMoveEvent{A: a, B: b}}, nil
	}

	e.state = StateResolving
	events := e.resolve(a, b)

	if HasAnyValidMove(e.grid, e.cfg.MinRun) {
		e.state = StateIdle
	} else {
		e.state = StateNoMoves
		events = append(events, BoardStuckEvent{})
	}
	return events, nil
}

// resolve runs the detect-clear-collapse-refill loop until the board
// settles. Cascades are bounded by board size: every cycle removes at
// least MinRun tokens and the refill policy never spawns an instant
// match, so chains always terminate.
func (e *Engine) resolve(a, b Coord) []Event {
	var events []Event

	for chain := 1; ; chain++ {
		matches := FindMatches(e.grid, e.cfg.MinRun)
		if len(matches) == 0 {
			break
		}

		promotions := e.promote(matches, a, b)
		cleared := e.grid.ApplyMatches(matches)

		score := 0
		for _, m := range matches {
			score += e.cfg.matchScore(m.Len(), chain)
		}
		events = append(events, MatchResolvedEvent{
			Matches:    matches,
			ScoreDelta: score,
			Chain:      chain,
		})

		for c, t := range promotions {
			e.grid.Place(c, t)
			delete(cleared, c)
		}

		spawnCounts, falls := e.grid.Collapse()
		var spawned []Coord
		for col := 0; col < e.grid.Cols; col++ {
			if spawnCounts[col] > 0 {
				spawned = append(spawned, e.gen.RefillColumn(e.grid, col)...)
			}
		}

		events = append(events, CascadeStepEvent{
			Cleared: sortedCoords(cleared),
			Falls:   falls,
			Spawned: spawned,
			Chain:   chain,
		})
	}

	e.grid.settle()
	return events
}

// promote decides which matches leave a special bulb behind. A match
// of exactly MinRun clears plain; longer runs leave a line-clear or
// area-clear bulb (or a wildcard when enabled) at the anchor cell. The
// anchor is the swapped cell the match covers, or the run's middle
// cell for cascade-formed matches.
func (e *Engine) promote(matches []Match, a, b Coord) map[Coord]Token {
	promotions := make(map[Coord]Token)
	for _, m := range matches {
		kind := e.kindForLen(m.Len())
		if kind == KindRegular {
			continue
		}
		anchor := m.Cells[len(m.Cells)/2]
		switch {
		case m.Contains(a):
			anchor = a
		case m.Contains(b):
			anchor = b
		}
		promotions[anchor] = Token{
			Color: m.Color,
			Kind:  kind,
			Axis:  m.Orientation,
			State: StateSpawned,
		}
	}
	return promotions
}

// kindForLen maps a run length onto the promotion ladder.
func (e *Engine) kindForLen(length int) Kind {
	switch {
	case e.cfg.WildcardRun > 0 && length >= e.cfg.WildcardRun:
		return KindWildcard
	case length >= e.cfg.AreaClearRun:
		return KindAreaClear
	case length >= e.cfg.LineClearRun:
		return KindLineClear
	default:
		return KindRegular
	}
}

// Reshuffle regenerates the board until it is settled and has at least
// one valid move, then returns the engine to idle. Callable from the
// idle and no-moves states.
func (e *Engine) Reshuffle() error {
	if e.state == StateSwapping || e.state == StateResolving {
		return ErrEngineBusy
	}
	for attempt := 0; attempt < 64; attempt++ {
		e.gen.Reshuffle(e.grid)
		if e.grid.IsSettled(e.cfg.MinRun) && HasAnyValidMove(e.grid, e.cfg.MinRun) {
			e.state = StateIdle
			return nil
		}
	}
	return fmt.Errorf("engine: could not generate a board with a valid move")
}
