package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/glowmatch/internal/config"
	"github.com/dkotenko/glowmatch/internal/core"
	"github.com/dkotenko/glowmatch/internal/games/bulbs"
	"github.com/dkotenko/glowmatch/internal/platform/tui"
	"github.com/dkotenko/glowmatch/internal/registry"
	"github.com/dkotenko/glowmatch/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRows       int
	flagCols       int
	flagColors     int
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Pick up / swap bulbs
  Esc          - Drop selection
  H            - Show a hint
  F            - Reshuffle the board
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 4 colors, generous move and time limits
  normal - 5 colors, standard limits
  hard   - 6 colors, tight limits
  fixed  - Use the config file values as-is

If --difficulty is omitted, a selector is shown before the game starts.

Examples:
  glowmatch play bulbs
  glowmatch play bulbs_moves --difficulty easy
  glowmatch play bulbs_timed --difficulty hard
  glowmatch play bulbs --rows 7 --cols 7 --colors 4
  glowmatch play bulbs --config ./my-board.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (0 = from config)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (0 = from config)")
	playCmd.Flags().IntVar(&flagColors, "colors", 0, "Palette size (0 = from config)")
}

// configureBulbs loads the board config, applies the preset and flag
// overrides, and installs the result for the next created mode.
func configureBulbs(preset config.DifficultyPreset) error {
	cfg, err := config.LoadBulbs(flagConfig)
	if err != nil {
		return err
	}

	config.ApplyPreset(&cfg, preset)

	if flagRows > 0 {
		cfg.Board.Rows = flagRows
	}
	if flagCols > 0 {
		cfg.Board.Cols = flagCols
	}
	if flagColors > 0 {
		cfg.Board.Palette = flagColors
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid board config: %w", err)
	}

	bulbs.SetEngineConfig(cfg.Engine())
	bulbs.SetRules(bulbs.Rules{
		MoveLimit:  cfg.Rules.MoveLimit,
		TimeLimit:  cfg.Rules.TimeLimit,
		Reshuffles: cfg.Rules.Reshuffles,
	})
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	// Check if mode exists
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'glowmatch list' to see available modes.")
		os.Exit(1)
	}

	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	// Get terminal size early for the difficulty selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Pick a difficulty preset: from the flag, or interactively
	preset := config.DifficultyPreset(flagDifficulty)
	if preset == "" {
		mode, err := registry.Create(modeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
			os.Exit(1)
		}

		selected, quit, selErr := tui.RunDifficultySelector(mode.Title(), cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if quit || selected == "" {
			return
		}
		preset = selected
	}

	if err := configureBulbs(preset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create mode instance
	mode, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(mode, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
