package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Keeper answers high-score queries for one game from memory. The best
// score is read from the backend once; runs are persisted separately
// through Backend.SaveScore when they end.
type Keeper struct {
	mu     sync.Mutex
	gameID string
	best   int
}

// NewKeeper loads the best score of gameID. A backend error is logged and
// the keeper starts from 0.
func NewKeeper(backend Backend, gameID string, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	k := &Keeper{gameID: gameID}
	if backend == nil {
		return k
	}

	best, err := backend.HighScore(gameID)
	if err != nil {
		logger.Warn("high score unavailable, starting from 0", "game", gameID, "err", err)
		return k
	}
	k.best = best
	return k
}

// GameID returns the game the keeper tracks.
func (k *Keeper) GameID() string {
	return k.gameID
}

// HighScore returns the best score seen.
func (k *Keeper) HighScore() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.best
}

// UpdateHighScore records score if it beats the best and reports whether it did.
func (k *Keeper) UpdateHighScore(score int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	if score <= k.best {
		return false
	}
	k.best = score
	return true
}
