package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/glowmatch/internal/core"
	"github.com/dkotenko/glowmatch/internal/registry"
	"github.com/dkotenko/glowmatch/internal/storage"
)

// endReporter is implemented by modes that can explain why the game
// ended. The reason is persisted with the finished session.
type endReporter interface {
	EndReason() string
}

// Model is the Bubble Tea model for running one play mode locally.
type Model struct {
	mode       registry.Mode
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	startedAt  time.Time
	quitting   bool
	saved      bool // Whether this game over has been persisted
}

// NewModel creates a new Bubble Tea model for the given mode.
func NewModel(mode registry.Mode, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		mode:       mode,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.mode.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.persistGameOver("quit")
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart with the new dimensions unless a finished board is on
	// display.
	if !m.gameState.GameOver {
		m.mode.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reseed for the new game
		m.config.Seed = time.Now().UnixNano()
		m.mode.Reset(m.config)
		m.gameState = m.mode.State()
		m.saved = false
		m.startedAt = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.mode.Step(m.inputFrame)
	m.gameState = result.State

	// Persist the result once per game over
	if m.gameState.GameOver && !m.saved {
		m.persistGameOver("")
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// persistGameOver saves the score and the session record. The reason
// comes from the mode when it has one; fallbackReason covers quits.
func (m *Model) persistGameOver(fallbackReason string) {
	if m.saved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	m.saved = true

	reason := fallbackReason
	if r, ok := m.mode.(endReporter); ok && r.EndReason() != "" {
		reason = r.EndReason()
	}
	if reason == "" {
		reason = "quit"
	}

	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveScore(m.mode.ID(), m.gameState.Score)
	//nolint:errcheck // Best-effort save
	m.store.SaveSession(storage.SessionResult{
		ModeID:       m.mode.ID(),
		Score:        m.gameState.Score,
		Moves:        m.gameState.Moves,
		MaxChain:     m.gameState.MaxChain,
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
		EndReason:    reason,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.mode.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(mode registry.Mode, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(mode, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
