package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

type failingBackend struct{ Backend }

func (failingBackend) HighScore(string) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestKeeperLoadsBest(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "k.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore("mousetrap", 9, 5)

	k := NewKeeper(store, "mousetrap", nil)
	if k.HighScore() != 9 {
		t.Errorf("HighScore = %d, want 9", k.HighScore())
	}
	if k.GameID() != "mousetrap" {
		t.Errorf("GameID = %q", k.GameID())
	}
}

func TestKeeperUpdate(t *testing.T) {
	k := NewKeeper(nil, "mousetrap", nil)

	tests := []struct {
		score int
		want  bool
		best  int
	}{
		{0, false, 0},
		{3, true, 3},
		{3, false, 3},
		{2, false, 3},
		{10, true, 10},
	}
	for _, tt := range tests {
		if got := k.UpdateHighScore(tt.score); got != tt.want {
			t.Errorf("UpdateHighScore(%d) = %v, want %v", tt.score, got, tt.want)
		}
		if k.HighScore() != tt.best {
			t.Errorf("after %d best = %d, want %d", tt.score, k.HighScore(), tt.best)
		}
	}
}

func TestKeeperBackendError(t *testing.T) {
	k := NewKeeper(failingBackend{}, "mousetrap", nil)
	if k.HighScore() != 0 {
		t.Errorf("HighScore = %d, want 0 after a backend error", k.HighScore())
	}
}
