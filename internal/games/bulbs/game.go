// Package bulbs implements the Glow Match puzzle: swap adjacent colored
// bulbs to line up runs, watch them burst and cascade. The heavy
// lifting lives in the engine package; this layer owns the cursor,
// pacing, win/lose rules and drawing.
package bulbs

import (
	"github.com/dkotenko/glowmatch/internal/core"
	"github.com/dkotenko/glowmatch/internal/engine"
	"github.com/dkotenko/glowmatch/internal/registry"
)

// ModeID selects the rule set layered over the shared engine.
type ModeID string

const (
	ModeClassic ModeID = "bulbs"
	ModeMoves   ModeID = "bulbs_moves"
	ModeTimed   ModeID = "bulbs_timed"
)

const (
	defaultMoveLimit  = 30  // Moves mode: successful swaps allowed
	defaultTimeLimit  = 120 // Timed mode: seconds on the clock
	classicReshuffles = 3   // Classic mode: free reshuffles before game over
	hintVisibleTicks  = 120 // ~2s at 60fps
)

// Rules are the mode knobs the CLI and config layer can override
// before Reset. Zero fields keep their defaults.
type Rules struct {
	MoveLimit  int
	TimeLimit  int // seconds
	Reshuffles int
}

// Game implements registry.Mode for all three bulb modes.
type Game struct {
	mode ModeID
	tick uint64

	eng      *engine.Engine
	engCfg   engine.Config
	rules    Rules
	engineOK bool // false when engine construction failed

	cursor      engine.Coord
	selected    engine.Coord
	hasSelected bool

	score     int
	moves     int // successful swaps made
	maxChain  int
	movesLeft int // moves mode only
	ticksLeft int // timed mode only
	tickRate  int

	reshufflesUsed int

	hintA, hintB engine.Coord
	hintTicks    int // remaining ticks the hint stays lit

	anim animator

	screenW int
	screenH int

	gameOver     bool
	endReason    string
	paused       bool
	tooSmall     bool
	inputHandled bool // one cursor action per tick
}

// Package-level overrides set by the CLI before the platform calls
// Reset. Mirrors how start parameters reach other registry modes.
var (
	pendingEngineConfig *engine.Config
	pendingRules        *Rules
)

// SetEngineConfig overrides the board parameters for subsequent resets.
func SetEngineConfig(cfg engine.Config) {
	pendingEngineConfig = &cfg
}

// SetRules overrides the mode rules for subsequent resets.
func SetRules(r Rules) {
	pendingRules = &r
}

// New creates a classic endless game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewMoves creates a move-limited game.
func NewMoves() *Game {
	return &Game{mode: ModeMoves}
}

// NewTimed creates a time-limited game.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Mode {
		return New()
	})
	registry.Register(string(ModeMoves), func() registry.Mode {
		return NewMoves()
	})
	registry.Register(string(ModeTimed), func() registry.Mode {
		return NewTimed()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeMoves:
		return "Glow Match (Moves)"
	case ModeTimed:
		return "Glow Match (Timed)"
	default:
		return "Glow Match"
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engCfg = engine.DefaultConfig()
	if pendingEngineConfig != nil {
		g.engCfg = *pendingEngineConfig
	}
	g.rules = Rules{
		MoveLimit:  defaultMoveLimit,
		TimeLimit:  defaultTimeLimit,
		Reshuffles: classicReshuffles,
	}
	if pendingRules != nil {
		if pendingRules.MoveLimit > 0 {
			g.rules.MoveLimit = pendingRules.MoveLimit
		}
		if pendingRules.TimeLimit > 0 {
			g.rules.TimeLimit = pendingRules.TimeLimit
		}
		if pendingRules.Reshuffles > 0 {
			g.rules.Reshuffles = pendingRules.Reshuffles
		}
	}

	g.tick = 0
	g.score = 0
	g.moves = 0
	g.maxChain = 0
	g.reshufflesUsed = 0
	g.cursor = engine.RC(0, 0)
	g.hasSelected = false
	g.hintTicks = 0
	g.anim = animator{}
	g.gameOver = false
	g.endReason = ""
	g.paused = false
	g.inputHandled = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	g.movesLeft = g.rules.MoveLimit
	g.ticksLeft = g.rules.TimeLimit * g.tickRate

	eng, err := engine.New(g.engCfg, cfg.Seed)
	if err != nil {
		// A bad config from the CLI surfaces as an immediate game over
		// rather than a panic inside the render loop.
		g.engineOK = false
		g.gameOver = true
		g.endReason = "bad_config"
		return
	}
	g.eng = eng
	g.engineOK = true

	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the board plus HUD.
func (g *Game) checkScreenSize() {
	minW := g.engCfg.Cols*cellWidth + 2
	minH := g.engCfg.Rows + hudHeight + 2
	if minW < 30 {
		minW = 30
	}
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.inputHandled = false

	if g.tooSmall || !g.engineOK {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		// Restart is handled by the platform via Reset.
		return core.StepResult{State: g.State()}
	}

	if g.hintTicks > 0 {
		g.hintTicks--
	}

	// Burst/fall playback blocks input but the clock keeps running.
	if g.anim.active() {
		g.anim.step()
		g.tickClock()
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.tickClock()

	return core.StepResult{State: g.State()}
}

// tickClock advances the timed-mode countdown.
func (g *Game) tickClock() {
	if g.mode != ModeTimed || g.gameOver {
		return
	}
	g.ticksLeft--
	if g.ticksLeft <= 0 {
		g.ticksLeft = 0
		g.gameOver = true
		g.endReason = "time_up"
	}
}

// handleInput processes one cursor or swap action.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	case in.Has(core.ActionSelect):
		g.handleSelect()
	case in.Has(core.ActionCancel):
		g.hasSelected = false
	case in.Has(core.ActionHint):
		g.showHint()
	case in.Has(core.ActionShuffle):
		g.requestReshuffle(true)
	}
}

// moveCursor moves the cursor, clamped to the board.
func (g *Game) moveCursor(dr, dc int) {
	if g.inputHandled {
		return
	}
	g.inputHandled = true

	next := g.cursor.Add(dr, dc)
	next.Row = core.Clamp(next.Row, 0, g.engCfg.Rows-1)
	next.Col = core.Clamp(next.Col, 0, g.engCfg.Cols-1)
	g.cursor = next
}

// handleSelect toggles selection or attempts the swap.
func (g *Game) handleSelect() {
	if g.inputHandled {
		return
	}
	g.inputHandled = true

	if !g.hasSelected {
		g.selected = g.cursor
		g.hasSelected = true
		return
	}
	if g.selected == g.cursor {
		g.hasSelected = false
		return
	}
	if !g.selected.Adjacent(g.cursor) {
		// Re-anchor on the cursor instead of rejecting.
		g.selected = g.cursor
		return
	}

	a, b := g.selected, g.cursor
	g.hasSelected = false
	g.hintTicks = 0

	events, err := g.eng.RequestSwap(a, b)
	if err != nil {
		// Busy or malformed requests cannot happen from this input
		// path; treat them as a no-op.
		return
	}
	g.consumeEvents(events, true)
}

// consumeEvents applies an engine event log to the score and starts
// playback. countMove is false for reshuffle-triggered logs.
func (g *Game) consumeEvents(events []engine.Event, countMove bool) {
	matched := false
	for _, ev := range events {
		switch e := ev.(type) {
		case engine.MatchResolvedEvent:
			matched = true
			g.score += e.ScoreDelta
			if e.Chain > g.maxChain {
				g.maxChain = e.Chain
			}
		case engine.BoardStuckEvent:
			g.requestReshuffle(false)
		}
	}

	if matched && countMove {
		g.moves++
		if g.mode == ModeMoves {
			g.movesLeft--
			if g.movesLeft <= 0 {
				g.movesLeft = 0
				g.gameOver = true
				g.endReason = "out_of_moves"
			}
		}
	}

	g.anim.load(events)
}

// requestReshuffle regenerates the board. Manual reshuffles and
// stuck-board reshuffles both draw from the same allowance in classic
// mode; the limited modes reshuffle freely, their own clocks are the
// pressure.
func (g *Game) requestReshuffle(manual bool) {
	if manual && g.inputHandled {
		return
	}
	if manual {
		g.inputHandled = true
	}

	if g.mode == ModeClassic && g.reshufflesUsed >= g.rules.Reshuffles {
		g.gameOver = true
		g.endReason = "board_stuck"
		return
	}
	if err := g.eng.Reshuffle(); err != nil {
		g.gameOver = true
		g.endReason = "board_stuck"
		return
	}
	if g.mode == ModeClassic {
		g.reshufflesUsed++
	}
	g.hasSelected = false
	g.hintTicks = 0
}

// showHint lights up a valid move for a couple of seconds.
func (g *Game) showHint() {
	if g.inputHandled {
		return
	}
	g.inputHandled = true

	a, b, ok := g.eng.Hint()
	if !ok {
		return
	}
	g.hintA, g.hintB = a, b
	g.hintTicks = hintVisibleTicks
}

// EndReason reports why the game ended ("out_of_moves", "time_up",
// "board_stuck", "bad_config"), or empty while still running. The
// platform persists it with the finished session.
func (g *Game) EndReason() string {
	return g.endReason
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.moves,
		MaxChain: g.maxChain,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
