package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mousetrap/internal/config"
	"github.com/vovakirdan/mousetrap/internal/games/mousetrap/layout"
)

var (
	flagGenLevel int
	flagGenCount int
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print generated level layouts",
	Long: `Generate trap layouts and print them as text grids.

Columns run left to right from entry to exit. 'O' is a trap, 'X' is the
carved path and '.' is free.

Examples:
  mousetrap gen
  mousetrap gen --level 20 --count 3
  mousetrap gen --seed 42 --config ./my-mousetrap.yaml`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntVar(&flagGenLevel, "level", 1, "First level to generate")
	genCmd.Flags().IntVar(&flagGenCount, "count", 1, "Number of consecutive levels")
}

func runGen(cmd *cobra.Command, _ []string) error {
	if flagGenLevel < 1 || flagGenCount < 1 {
		return fmt.Errorf("--level and --count must be at least 1")
	}

	cfg, err := config.LoadMousetrap(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	params := layout.ParamsFromConfig(cfg.Field, cfg.Generation)
	gen := layout.NewGenerator(params, rand.New(rand.NewSource(seed)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d, grid %dx%d\n", seed, params.Rows, params.Cols)
	for level := flagGenLevel; level < flagGenLevel+flagGenCount; level++ {
		l, err := gen.Generate(level)
		if err != nil {
			return fmt.Errorf("level %d: %w", level, err)
		}
		fmt.Fprintf(out, "\nlevel %d: %d traps, path %d cells\n", l.LevelID, len(l.Obstacles), len(l.Path))
		fmt.Fprintln(out, l.Grid.String())
	}
	return nil
}
