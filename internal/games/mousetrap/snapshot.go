package mousetrap

import "math"

// Snapshot is a flat copy of the game state for determinism checks and
// debug dumps. Positions are in logical units.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	Level     int
	Load      string
	Catching  bool
	TimeLeft  int

	PlayerX, PlayerY float64
	PlayerOffset     float64
	PlayerVisible    bool

	BackgroundOffset float64
	Panned           float64

	// Each entity is 2 values: X, Y
	TrapData   []float64
	CheeseData []float64
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     uint64(g.ticks), //#nosec G115 -- tick count is always positive
		Score:    g.score,
		Catching: g.catching,
	}
	if g.seq == nil {
		return snap
	}

	lvl := g.seq.Current()
	snap.HighScore = g.scores.HighScore()
	snap.Level = lvl.ID
	snap.Load = g.seq.State().String()
	snap.TimeLeft = g.timer.Left()
	snap.PlayerX, snap.PlayerY = g.player.Pos.X, g.player.Pos.Y
	snap.PlayerOffset = g.player.Offset
	snap.PlayerVisible = g.player.Visible
	snap.BackgroundOffset = g.background.Offset
	snap.Panned = g.seq.Panned()

	for _, t := range lvl.Traps {
		snap.TrapData = append(snap.TrapData, t.Pos.X, t.Pos.Y)
	}
	for _, c := range lvl.Cheeses {
		snap.CheeseData = append(snap.CheeseData, c.Pos.X, c.Pos.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeLeft) //#nosec G115 -- hash computation
	if snap.Catching {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerOffset)
	h = h*31 + math.Float64bits(snap.BackgroundOffset)

	for _, v := range snap.TrapData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.CheeseData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
