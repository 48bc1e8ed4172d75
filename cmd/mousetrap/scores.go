package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mousetrap/internal/platform/tui"
	"github.com/vovakirdan/mousetrap/internal/registry"
	"github.com/vovakirdan/mousetrap/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresBoard bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs for a mode (default: mousetrap).

With --board the interactive scoreboard opens instead.

Examples:
  mousetrap scores
  mousetrap scores --limit 25
  mousetrap scores --board
  mousetrap scores --backend prefs`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresBoard, "board", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "mousetrap"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mousetrap list' to see available modes.")
		os.Exit(1)
	}

	store, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores: %v\n", err)
		os.Exit(1)
	}
	defer closeAll(store)

	if flagScoresBoard {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mousetrap play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Only the SQLite backend keeps every run.
	if s, ok := store.(*storage.Store); ok {
		stats, err := s.GetGameStats(gameID)
		if err == nil && stats.RunsCount > 0 {
			fmt.Println()
			fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Deepest level: %d\n",
				stats.RunsCount, stats.HighScore, stats.AvgScore, stats.MaxLevel)
		}
	}
}
