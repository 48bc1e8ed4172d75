package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mousetrap/internal/core"
	"github.com/vovakirdan/mousetrap/internal/games/mousetrap"
	"github.com/vovakirdan/mousetrap/internal/storage"
)

const (
	backendSQLite = "sqlite"
	backendPrefs  = "prefs"
)

// logger is shared by every command; setupLogging replaces it before Run.
var logger = log.New(io.Discard)

// logCloser closes the log file when one was opened.
var logCloser io.Closer

// setupLogging points the logger at --log-file. The TUI owns the terminal,
// so logs go to a file unless "-" asks for stderr. serve logs to stderr
// unless told otherwise.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	path := flagLogFile
	if cmd.Name() == "serve" && !cmd.Flags().Changed("log-file") {
		path = "-"
	}
	if path != "-" {
		path, err = storage.ExpandHome(path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		logCloser = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "mousetrap",
	})
	mousetrap.SetLogger(logger)
	return nil
}

// openBackend opens the score backend chosen by --backend.
func openBackend() (storage.Backend, error) {
	switch flagBackend {
	case backendSQLite:
		return storage.Open(flagDBPath)
	case backendPrefs:
		return storage.OpenPrefs("mousetrap")
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", flagBackend, backendSQLite, backendPrefs)
	}
}

// openScores opens the backend and seeds the in-game high score from it.
// A backend that cannot be opened is reported and the game runs without
// persistence.
func openScores() storage.Backend {
	store, err := openBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores: %v\n", err)
		logger.Warn("playing without score storage", "backend", flagBackend, "err", err)
		mousetrap.SetScoreStore(nil)
		return nil
	}
	mousetrap.SetScoreStore(storage.NewKeeper(store, "mousetrap", logger))
	return store
}

// closeAll releases the backend and the log file.
func closeAll(store storage.Backend) {
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("closing scores", "err", err)
		}
	}
	if logCloser != nil {
		logCloser.Close()
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
