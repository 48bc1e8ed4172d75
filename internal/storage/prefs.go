package storage

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/quasilyte/gdata"
)

// bestRun is the JSON blob PrefsStore keeps per game.
type bestRun struct {
	Score   int       `json:"score"`
	Level   int       `json:"level"`
	SavedAt time.Time `json:"savedAt"`
}

// PrefsStore keeps the single best run per game in the per-user data
// directory gdata picks for the platform.
type PrefsStore struct {
	mu     sync.Mutex
	m      *gdata.Manager
	nextID int64
}

var _ Backend = (*PrefsStore)(nil)

// OpenPrefs opens the data directory of the named application.
func OpenPrefs(appName string) (*PrefsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open prefs for %q: %w", appName, err)
	}
	return &PrefsStore{m: m}, nil
}

func prefsKey(gameID string) string {
	return gameID + "_best"
}

// load returns the stored best run; ok is false when none was saved yet.
func (p *PrefsStore) load(gameID string) (run bestRun, ok bool, err error) {
	data, err := p.m.LoadItem(prefsKey(gameID))
	if err != nil {
		return bestRun{}, false, fmt.Errorf("storage: cannot load best run: %w", err)
	}
	if data == nil {
		return bestRun{}, false, nil
	}
	if err := json.Unmarshal(data, &run); err != nil {
		return bestRun{}, false, fmt.Errorf("storage: cannot parse best run: %w", err)
	}
	return run, true, nil
}

// HighScore returns the stored best score, or 0.
func (p *PrefsStore) HighScore(gameID string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	run, _, err := p.load(gameID)
	return run.Score, err
}

// TopScores returns the best run as a single entry.
func (p *PrefsStore) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	run, ok, err := p.load(gameID)
	if err != nil || !ok || limit == 0 {
		return nil, err
	}
	return []ScoreEntry{{
		ID:        1,
		GameID:    gameID,
		Score:     run.Score,
		Level:     run.Level,
		CreatedAt: run.SavedAt,
	}}, nil
}

// SaveScore replaces the stored run when score beats it. Runs that do not
// beat the best are accepted and dropped.
func (p *PrefsStore) SaveScore(gameID string, score, level int) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	id := p.nextID

	best, ok, err := p.load(gameID)
	if err != nil {
		return 0, err
	}
	if ok && score <= best.Score {
		return id, nil
	}

	data, err := json.Marshal(bestRun{Score: score, Level: level, SavedAt: time.Now().UTC()})
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode best run: %w", err)
	}
	if err := p.m.SaveItem(prefsKey(gameID), data); err != nil {
		return 0, fmt.Errorf("storage: cannot save best run: %w", err)
	}
	return id, nil
}

// Close is a no-op; gdata writes every item through.
func (p *PrefsStore) Close() error {
	return nil
}
