package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkotenko/glowmatch/internal/registry"
	"github.com/dkotenko/glowmatch/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores and session stats for the specified mode.

Examples:
  glowmatch scores bulbs
  glowmatch scores bulbs_timed --recent 5`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also show the N most recent rounds")
}

func runScores(cmd *cobra.Command, args []string) {
	modeID := args[0]

	// Check if mode exists
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'glowmatch list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	mode, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	title := mode.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(modeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'glowmatch play %s' to set the first high score!\n", modeID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Session stats
	if stats, statsErr := store.GetModeStats(modeID); statsErr == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Rounds played: %d\n", stats.GamesCount)
		fmt.Printf("Best:          %d\n", stats.HighScore)
		fmt.Printf("Average:       %.0f\n", stats.AvgScore)
		fmt.Printf("Best chain:    x%d\n", stats.BestChain)
	}

	// Recent rounds
	if flagRecent > 0 {
		sessions, sessErr := store.RecentSessions(modeID, flagRecent)
		if sessErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", sessErr)
			os.Exit(1)
		}

		fmt.Println()
		fmt.Println("Recent rounds:")
		fmt.Printf("  %-10s  %-6s  %-6s  %-8s  %s\n", "Score", "Moves", "Chain", "Length", "Ended")
		for _, s := range sessions {
			fmt.Printf("  %-10d  %-6d  x%-5d  %3dm %02ds  %s\n",
				s.Score, s.Moves, s.MaxChain,
				s.DurationSecs/60, s.DurationSecs%60, s.EndReason)
		}
	}
}
