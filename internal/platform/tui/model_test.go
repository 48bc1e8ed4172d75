package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mousetrap/internal/core"
	"github.com/vovakirdan/mousetrap/internal/storage"
)

// scriptedGame reports the states it is given, one per Step.
type scriptedGame struct {
	states []core.GameState
	step   int
	resets int
	inputs []core.InputFrame
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++; g.step = 0 }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	st := g.State()
	g.step++
	return core.StepResult{State: st}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	if g.step < len(g.states) {
		return g.states[g.step]
	}
	return core.GameState{}
}

type savedRun struct {
	game         string
	score, level int
}

type memoryBackend struct {
	saved []savedRun
}

func (b *memoryBackend) HighScore(string) (int, error) { return 0, nil }

func (b *memoryBackend) TopScores(string, int) ([]storage.ScoreEntry, error) { return nil, nil }

func (b *memoryBackend) SaveScore(gameID string, score, level int) (int64, error) {
	b.saved = append(b.saved, savedRun{gameID, score, level})
	return int64(len(b.saved)), nil
}

func (b *memoryBackend) Close() error { return nil }

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelRecordsEachCaughtRunOnce(t *testing.T) {
	game := &scriptedGame{states: []core.GameState{
		{Score: 3, Level: 2},
		{Score: 3, Level: 2, GameOver: true},
		{Score: 3, Level: 2, GameOver: true},
		{Score: 0, Level: 1},
		{Score: 5, Level: 4, GameOver: true},
	}}
	store := &memoryBackend{}
	m := NewModel(game, store, core.DefaultConfig(), nil)

	for range len(game.states) {
		m = tick(t, m)
	}

	if len(store.saved) != 2 {
		t.Fatalf("saved %d runs, want 2: %+v", len(store.saved), store.saved)
	}
	if store.saved[0] != (savedRun{"scripted", 3, 2}) || store.saved[1] != (savedRun{"scripted", 5, 4}) {
		t.Errorf("saved = %+v", store.saved)
	}
}

func TestModelQuitRecordsRunInProgress(t *testing.T) {
	game := &scriptedGame{states: []core.GameState{{Score: 7, Level: 3}}}
	store := &memoryBackend{}
	m := NewModel(game, store, core.DefaultConfig(), nil)
	m = tick(t, m)

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}
	if len(store.saved) != 1 || store.saved[0].score != 7 {
		t.Errorf("saved = %+v, want the run in progress", store.saved)
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelEmbeddedQuitGoesBack(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.DefaultConfig(), nil)
	m.embedded = true

	next, _ := m.Update(runeKey('q'))
	m = next.(Model)
	if m.IsQuitting() || !m.BackToMenu() {
		t.Error("embedded q should return to the menu")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(Model).IsQuitting() {
		t.Error("ctrl+c should always quit")
	}
}

func TestModelRestartResetsGame(t *testing.T) {
	game := &scriptedGame{states: []core.GameState{{Score: 1}, {Score: 2}}}
	m := NewModel(game, nil, core.DefaultConfig(), nil)
	m.Init()

	next, _ := m.Update(runeKey('r'))
	m = tick(t, next.(Model))

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if len(game.inputs) != 0 {
		t.Error("restart tick should not step the game")
	}
}

func TestModelForwardsInput(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.DefaultConfig(), nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, next.(Model))
	m = tick(t, m)

	if len(game.inputs) != 2 {
		t.Fatalf("stepped %d times", len(game.inputs))
	}
	if !game.inputs[0].Has(core.ActionLeft) {
		t.Error("first tick should carry the key")
	}
	if game.inputs[1].Has(core.ActionLeft) {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, core.DefaultConfig(), nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if game.resets != 0 {
		t.Error("resize should not reset the game")
	}
	view := m.View()
	if !strings.Contains(view, "scripted") || len(strings.Split(view, "\n")) != 30 {
		t.Errorf("view not resized: %d lines", len(strings.Split(view, "\n")))
	}
}

type practiceGame struct{ scriptedGame }

func (practiceGame) Unranked() bool { return true }

func TestModelSkipsUnrankedRuns(t *testing.T) {
	game := &practiceGame{scriptedGame{states: []core.GameState{{Score: 9, Level: 2}}}}
	store := &memoryBackend{}
	m := NewModel(game, store, core.DefaultConfig(), nil)
	m = tick(t, m)

	next, _ := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() {
		t.Fatal("q should quit")
	}
	if len(store.saved) != 0 {
		t.Errorf("practice run saved: %+v", store.saved)
	}
}
