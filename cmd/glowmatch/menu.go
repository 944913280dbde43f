package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkotenko/glowmatch/internal/config"
	"github.com/dkotenko/glowmatch/internal/core"
	"github.com/dkotenko/glowmatch/internal/platform/tui"
	"github.com/dkotenko/glowmatch/internal/registry"
	"github.com/dkotenko/glowmatch/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for the
scoreboard. After a round ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  glowmatch menu
  glowmatch menu --fps 30
  glowmatch menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		modeID := menuResult.ModeID
		if modeID == "" {
			break
		}

		// Create mode instance
		mode, err := registry.Create(modeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
			continue
		}

		// Pick a difficulty preset: from the flag, or interactively
		preset := config.DifficultyPreset(flagDifficulty)
		if preset == "" {
			selected, quit, selErr := tui.RunDifficultySelector(mode.Title(), cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			if quit {
				break
			}
			if selected == "" {
				continue // Back to menu
			}
			preset = selected
		}

		if err := configureBulbs(preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		// Update seed for each round
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(mode, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
