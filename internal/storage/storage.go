// Package storage persists Mousetrap scores.
//
// Two backends exist: Store keeps every finished run in SQLite through the
// pure-Go modernc.org/sqlite driver, and PrefsStore keeps only the best run
// per game in the platform's per-user data directory through gdata.
// Keeper sits in front of either and serves the game's high-score queries
// from memory.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Backend is a score persistence backend.
type Backend interface {
	// HighScore returns the best score recorded for gameID, or 0.
	HighScore(gameID string) (int, error)

	// TopScores returns up to limit runs for gameID, best first.
	TopScores(gameID string, limit int) ([]ScoreEntry, error)

	// SaveScore records a finished run and returns its record id.
	SaveScore(gameID string, score, level int) (int64, error)

	Close() error
}

// ScoreEntry is one recorded run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Level     int // level the run ended on
	CreatedAt time.Time
}

const sqliteTimeLayout = "2006-01-02 15:04:05"

// parseTimestamp accepts what the SQLite driver hands back for DATETIME
// columns: either a time.Time or its text form.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
