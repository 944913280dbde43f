package bulbs

import "github.com/dkotenko/glowmatch/internal/engine"

// PhaseType names the coarse game phase for determinism testing.
type PhaseType string

const (
	PhasePlaying     PhaseType = "playing"
	PhaseAnimating   PhaseType = "animating"
	PhaseGameOver    PhaseType = "game_over"
	PhasePaused      PhaseType = "paused"
	PhasePausedSmall PhaseType = "paused_small_window"
)

// Snapshot captures the observable game state for determinism testing
// and replay.
type Snapshot struct {
	Tick           uint64
	Mode           string
	Score          int
	Moves          int
	MaxChain       int
	MovesLeft      int
	TicksLeft      int
	ReshufflesUsed int
	CursorRow      int
	CursorCol      int
	HasSelected    bool
	EngineState    engine.EngineState
	Phase          PhaseType
	Board          engine.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.paused:
		phase = PhasePaused
	case g.gameOver:
		phase = PhaseGameOver
	case g.anim.active():
		phase = PhaseAnimating
	}

	s := Snapshot{
		Tick:           g.tick,
		Mode:           string(g.mode),
		Score:          g.score,
		Moves:          g.moves,
		MaxChain:       g.maxChain,
		MovesLeft:      g.movesLeft,
		TicksLeft:      g.ticksLeft,
		ReshufflesUsed: g.reshufflesUsed,
		CursorRow:      g.cursor.Row,
		CursorCol:      g.cursor.Col,
		HasSelected:    g.hasSelected,
		Phase:          phase,
	}
	if g.engineOK {
		s.EngineState = g.eng.State()
		s.Board = g.eng.Snapshot()
	}
	return s
}
