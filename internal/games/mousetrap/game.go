// Package mousetrap implements Mousetrap: a mouse bounces up and down across
// a field of traps while the player steers it left and right toward the
// exit. Cheese refills a countdown timer; when the timer runs out a cat paw
// catches the mouse and the run starts over.
//
// All positions are logical units on a fixed reference field and are only
// scaled to terminal cells when rendering.
package mousetrap

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/mousetrap/internal/assets"
	"github.com/vovakirdan/mousetrap/internal/config"
	"github.com/vovakirdan/mousetrap/internal/core"
	"github.com/vovakirdan/mousetrap/internal/registry"
)

// ScoreStore keeps the best score across runs.
type ScoreStore interface {
	HighScore() int
	// UpdateHighScore records score if it beats the best and reports whether it did.
	UpdateHighScore(score int) bool
}

// memoryScores is used when no store is configured.
type memoryScores struct {
	best int
}

func (m *memoryScores) HighScore() int { return m.best }

func (m *memoryScores) UpdateHighScore(score int) bool {
	if score > m.best {
		m.best = score
		return true
	}
	return false
}

// Mode selects the rules variant.
type Mode int

const (
	ModeClassic  Mode = iota // timed, high scores recorded
	ModePractice             // no timer, nothing recorded
)

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset = config.DifficultyNormal

	logger = log.New(io.Discard)

	scoreStore ScoreStore
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetScoreStore sets the high-score store used by classic games.
func SetScoreStore(s ScoreStore) {
	scoreStore = s
}

// Game implements the Mousetrap game logic.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.MousetrapConfig
	set     settings
	logger  *log.Logger
	scores  ScoreStore
	rng     *rand.Rand

	seq        *Sequencer
	player     *Player
	background *Background
	timer      *Timer
	catcher    *Catcher

	score    int
	catching bool
	paused   bool
	ticks    int
}

// New creates a new classic Mousetrap game instance.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewPractice creates a Mousetrap game without the countdown.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "mousetrap_practice"
	}
	return "mousetrap"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Mousetrap (Practice)"
	}
	return "Mousetrap"
}

// Unranked reports whether runs are kept off the scoreboard.
func (g *Game) Unranked() bool {
	return g.mode == ModePractice
}

// Reset loads configuration and starts a fresh run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.logger = logger.WithPrefix(g.ID())

	cfg, err := config.LoadMousetrap(configPath)
	if err != nil {
		g.logger.Error("config rejected, using defaults", "err", err)
		cfg = config.DefaultMousetrapConfig()
	}
	config.ApplyMousetrapPreset(&cfg, difficultyPreset)
	g.ResetWithConfig(rc, cfg)
}

// ResetWithConfig starts a fresh run with an explicit configuration.
func (g *Game) ResetWithConfig(rc core.RuntimeConfig, cfg config.MousetrapConfig) {
	g.runtime = rc
	if g.logger == nil {
		g.logger = logger.WithPrefix(g.ID())
	}
	if g.mode == ModePractice {
		cfg.Timer.Enabled = false
	}
	g.cfg = cfg
	g.set = newSettings(cfg, assets.NewCatalog(cfg.Sprites, g.logger))

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.scores = scoreStore
	if g.scores == nil || g.mode == ModePractice {
		g.scores = &memoryScores{}
	}

	builder := newLevelBuilder(g.set, g.rng, g.logger)
	g.seq = NewSequencer(builder, g.set.startLevel, g.set.panSpeed, g.set.field.PanGoal())
	g.player = NewPlayer(g.set.field, g.set.playerSize, g.set.playerSpeed)
	g.background = NewBackground(g.set.field)
	g.timer = NewTimer(g.set.timer.Total, g.set.timer.Warning)
	g.catcher = NewCatcher(g.set.field, g.set.pawSprites, g.set.paw.Width, g.set.paw.Speed, g.set.paw.Separation, g.rng)
	g.paused = false
	g.ticks = 0

	g.logger.Info("run started", "seed", seed, "start_level", g.set.startLevel, "timer", g.set.timer.Enabled)
	g.startNewGame()
}

// startNewGame puts everything back at the start level.
func (g *Game) startNewGame() {
	if err := g.seq.Reset(); err != nil {
		g.logger.Error("start level unavailable, playing an empty field", "err", err)
	}
	g.catcher.Cancel()
	g.catching = false
	g.background.SetOffset(0)
	g.player.SetCanMove(true)
	g.player.SetOffset(0)
	g.player.PositionAtStart(true)
	g.player.Visible = true
	g.timer.Reset()
	g.score = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.ticks++

	g.handleInput(in)

	switch {
	case g.catching:
		if g.catcher.Running() {
			g.catcher.Update()
		} else {
			g.startNewGame()
		}
	case g.timerEnabled() && g.timer.OutOfTime():
		g.catcher.Start(g.player)
		g.scores.UpdateHighScore(g.score)
		g.catching = true
		g.logger.Info("mouse caught", "score", g.score, "level", g.seq.Current().ID, "best", g.scores.HighScore())
	case g.seq.State() == StateIdle:
		g.checkCollisions()
	case g.seq.State() == StateFinished:
		if g.seq.Poll(g.player) {
			g.logger.Debug("level entered", "level", g.seq.Current().ID)
		}
	}

	if g.seq.State() == StateLoading {
		g.seq.Update(g.player, g.background)
	}
	g.player.Update()
	if g.timerEnabled() && !g.catching {
		g.timer.Update()
	}

	return core.StepResult{State: g.State()}
}

// handleInput steers the mouse. Steering is ignored during transitions.
func (g *Game) handleInput(in core.InputFrame) {
	if g.catching || g.seq.State() != StateIdle {
		return
	}
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case right && !left:
		g.player.Move(true, g.player.MovingDown())
	case left && !right:
		g.player.Move(false, g.player.MovingDown())
	}
	if in.Has(core.ActionStop) {
		g.player.StopHorizontal()
	}
}

// checkCollisions applies trap, cheese and exit rules to the current level.
func (g *Game) checkCollisions() {
	lvl := g.seq.Current()

	for _, trap := range lvl.Traps {
		if core.Collide(g.player.Entity, trap) {
			g.player.PositionAtStart(true)
			g.player.StopHorizontal()
			break
		}
	}

	for i := len(lvl.Cheeses) - 1; i >= 0; i-- {
		if core.Collide(g.player.Entity, lvl.Cheeses[i]) {
			g.timer.Add(g.set.cheeseTime)
			g.addScore(1)
			lvl.RemoveCheese(i)
		}
	}

	if g.player.Pos.X > g.set.field.ExitThreshold(g.player.Size.H) {
		if err := g.seq.Load(); err != nil {
			g.logger.Error("next level unavailable", "level", lvl.ID+1, "err", err)
		}
		g.player.StopHorizontal()
	}
}

func (g *Game) addScore(points int) {
	g.score += points
	if g.scores.UpdateHighScore(g.score) {
		g.logger.Debug("new high score", "score", g.score)
	}
}

func (g *Game) timerEnabled() bool {
	return g.set.timer.Enabled
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		GameOver: g.catching,
		Paused:   g.paused,
	}
	if g.seq != nil {
		st.Level = g.seq.Current().ID
	}
	if g.scores != nil {
		st.HighScore = g.scores.HighScore()
	}
	return st
}

// Register the games with the registry
func init() {
	registry.Register("mousetrap", func() registry.Game {
		return New()
	})
	registry.Register("mousetrap_practice", func() registry.Game {
		return NewPractice()
	})
}
