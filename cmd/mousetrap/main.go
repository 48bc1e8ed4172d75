// mousetrap is a terminal maze runner: steer a mouse through rows of traps,
// eat cheese to buy time and stay ahead of the cat.
//
// Usage:
//
//	mousetrap                  - Start the mode picker menu
//	mousetrap play [mode]      - Play a mode directly
//	mousetrap list             - List available modes
//	mousetrap scores [mode]    - Show recorded runs
//	mousetrap serve            - Start SSH server for remote play
//	mousetrap gen              - Print generated level layouts
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 44)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.mousetrap/scores.db)
//	--backend <name>  - Score backend: sqlite or prefs
//	--log-file <path> - Log destination, "-" for stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game modes
	_ "github.com/vovakirdan/mousetrap/internal/games/mousetrap"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagBackend  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mousetrap",
	Short: "Mousetrap - outrun the cat in your terminal",
	Long: `Mousetrap is a terminal game: the mouse falls through a field of traps,
you steer it left and right and race the clock to the far side.
Cheese adds time. When the clock runs out the cat's paw comes down.

Running mousetrap without a command opens the mode picker.

Available commands:
  play     - Play a mode directly
  list     - Show all available modes
  scores   - View recorded runs
  serve    - Start SSH server for remote play
  gen      - Print generated level layouts

Examples:
  mousetrap
  mousetrap play
  mousetrap play mousetrap_practice --difficulty hard
  mousetrap serve --ssh :2222
  mousetrap gen --level 10 --count 3 --seed 42`,
	PersistentPreRunE: setupLogging,
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 44, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mousetrap/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", backendSQLite, "Score backend: sqlite or prefs")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.mousetrap/mousetrap.log", `Log file path ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(genCmd)
}
