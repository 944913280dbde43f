// glowmatch is a terminal match-three puzzle about swapping glowing bulbs.
//
// Usage:
//
//	glowmatch list              - List available modes
//	glowmatch play <mode>       - Play a mode
//	glowmatch menu              - Start menu to pick modes interactively
//	glowmatch serve             - Start SSH server for remote play
//	glowmatch scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.glowmatch/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/dkotenko/glowmatch/internal/games/bulbs"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glowmatch",
	Short: "Glow Match - Swap glowing bulbs in your terminal",
	Long: `Glow Match is a terminal match-three puzzle. Swap adjacent bulbs to
line up three or more of a color, chain cascades for bigger scores, and
earn line-clear and area-clear bulbs with longer runs.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  glowmatch list
  glowmatch play bulbs
  glowmatch menu
  glowmatch serve --ssh :2222
  glowmatch scores bulbs_timed`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.glowmatch/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
