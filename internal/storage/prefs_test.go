package storage

import (
	"fmt"
	"testing"
	"time"
)

func openTestPrefs(t *testing.T) *PrefsStore {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := OpenPrefs(fmt.Sprintf("mousetrap_test_%d", time.Now().UnixNano()))
	if err != nil {
		t.Skipf("gdata unavailable here: %v", err)
	}
	return p
}

func TestPrefsKeepsBestRun(t *testing.T) {
	p := openTestPrefs(t)
	defer p.Close()

	high, err := p.HighScore("mousetrap")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d", high)
	}
	if top, _ := p.TopScores("mousetrap", 10); len(top) != 0 {
		t.Errorf("empty store returned %d runs", len(top))
	}

	for _, run := range []struct{ score, level int }{{5, 2}, {11, 7}, {8, 4}} {
		if _, err := p.SaveScore("mousetrap", run.score, run.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	high, _ = p.HighScore("mousetrap")
	if high != 11 {
		t.Errorf("high score = %d, want 11", high)
	}

	top, err := p.TopScores("mousetrap", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].Score != 11 || top[0].Level != 7 {
		t.Errorf("TopScores = %+v, want the single best run", top)
	}

	other, _ := p.HighScore("mousetrap_practice")
	if other != 0 {
		t.Errorf("games should not share a best run, got %d", other)
	}
}
