package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotenko/glowmatch/internal/config"
	"github.com/dkotenko/glowmatch/internal/core"
)

// difficultyOption pairs a preset with its menu line.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy (4 colors, generous limits)"},
	{config.DifficultyNormal, "Normal (5 colors)"},
	{config.DifficultyHard, "Hard (6 colors, tight limits)"},
	{config.DifficultyFixed, "Custom (use config file as-is)"},
}

// DifficultyModel lets users choose a difficulty preset before a game
// starts.
type DifficultyModel struct {
	modeTitle string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a new difficulty selection model.
func NewDifficultyModel(modeTitle string, width, height int) DifficultyModel {
	return DifficultyModel{
		modeTitle: modeTitle,
		cursor:    1, // Normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = difficultyOptions[m.cursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m DifficultyModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.modeTitle, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or empty string if still choosing.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	if m.choosing {
		return ""
	}
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the difficulty menu for a mode. An empty
// preset in the result means the user backed out or quit.
func RunDifficultySelector(modeTitle string, cfg core.RuntimeConfig) (config.DifficultyPreset, bool, error) {
	model := NewDifficultyModel(modeTitle, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return "", false, nil
	}

	if m.IsQuitting() {
		return "", true, nil
	}
	if m.WantsBack() {
		return "", false, nil
	}

	return m.Selected(), false, nil
}
