package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mousetrap/internal/games/mousetrap"
	"github.com/vovakirdan/mousetrap/internal/platform/tui"
	"github.com/vovakirdan/mousetrap/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode directly",
	Long: `Start playing the given mode (default: mousetrap).

Controls:
  Left/A/H     - Run left
  Right/D/L    - Run right
  Space/Down   - Stop and fall straight
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Longer clock, start at level 1
  normal - Use the config as loaded (default)
  hard   - Shorter clock, start at level 16

Examples:
  mousetrap play
  mousetrap play mousetrap_practice
  mousetrap play --difficulty hard
  mousetrap play --config ./my-mousetrap.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyGameFlags hands --config and --difficulty to the game package before
// any game is created.
func applyGameFlags() {
	mousetrap.SetConfigPath(flagConfig)
	mousetrap.SetDifficultyPreset(flagDifficulty)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "mousetrap"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mousetrap list' to see available modes.")
		os.Exit(1)
	}

	applyGameFlags()
	store := openScores()

	game, err := registry.Create(gameID)
	if err != nil {
		closeAll(store)
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	logger.Info("game started", "game", gameID, "seed", cfg.Seed)
	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	closeAll(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
