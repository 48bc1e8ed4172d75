package core

import "time"

// RuntimeConfig is what the platform tells a game about where it runs.
// The simulation works in logical units, so the screen size only affects
// rendering.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 44)
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 terminal at 44 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 44,
	}
}

// Normalized fills a missing tick rate and seed.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// TickInterval is the wall-clock time between two simulation ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(max(c.TickRate, 1))
}

// GameState is the part of a game's state the platform acts on.
type GameState struct {
	Score     int
	HighScore int  // best score known to the game
	Level     int  // current level id
	GameOver  bool // the run has ended; the game restarts by itself
	Paused    bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
