package mousetrap

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/mousetrap/internal/core"
)

// ErrBusy is returned by Sequencer.Load while a transition is in progress.
var ErrBusy = errors.New("mousetrap: level transition in progress")

// LoadState is the sequencer's transition state.
type LoadState int

const (
	StateIdle     LoadState = iota // playing the current level
	StateLoading                   // panning toward the next level
	StateFinished                  // pan complete, waiting for Poll
)

// String returns a human-readable name for the state.
func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Sequencer owns the current level and, during a transition, the next one.
//
// Load builds the next level one pan goal to the right. Update pans the
// camera by at most speed per tick until exactly the goal has been covered.
// Poll then promotes the next level and returns to Idle.
type Sequencer struct {
	source     LevelSource
	startLevel int
	speed      float64
	goal       float64

	state   LoadState
	current *Level
	next    *Level
	panned  float64
}

// NewSequencer creates a sequencer. Call Reset before use.
func NewSequencer(source LevelSource, startLevel int, speed, goal float64) *Sequencer {
	return &Sequencer{
		source:     source,
		startLevel: startLevel,
		speed:      speed,
		goal:       goal,
		current:    &Level{ID: startLevel},
	}
}

// Reset rebuilds the start level and drops any transition. If the level
// cannot be built an empty one takes its place and the error is returned.
func (s *Sequencer) Reset() error {
	s.state = StateIdle
	s.next = nil
	s.panned = 0

	lvl, err := s.source.Build(s.startLevel)
	if err != nil {
		s.current = &Level{ID: s.startLevel}
		return fmt.Errorf("build start level: %w", err)
	}
	s.current = lvl
	s.current.SetOffset(0)
	return nil
}

// Load starts the transition to the next level.
func (s *Sequencer) Load() error {
	if s.state != StateIdle {
		return fmt.Errorf("load from %s: %w", s.state, ErrBusy)
	}

	next, err := s.source.Build(s.current.ID + 1)
	if err != nil {
		return fmt.Errorf("build level %d: %w", s.current.ID+1, err)
	}
	next.SetOffset(s.goal)

	s.next = next
	s.panned = 0
	s.state = StateLoading
	return nil
}

// Update advances the pan by one tick, scrolling the character, the
// background and both levels by the same amount.
func (s *Sequencer) Update(character, background core.Scroller) {
	if s.state != StateLoading {
		return
	}

	delta := min(s.speed, s.goal-s.panned)
	s.panned += delta

	character.OffsetBy(-delta)
	background.OffsetBy(-delta)
	s.current.OffsetBy(-delta)
	s.next.OffsetBy(-delta)

	if s.panned == s.goal {
		s.state = StateFinished
	}
}

// Poll completes a finished transition: the next level becomes current, the
// old one is dropped, level and character offsets return to zero and the
// character goes back to its start column. It reports whether a promotion
// happened; outside Finished it does nothing.
func (s *Sequencer) Poll(p *Player) bool {
	if s.state != StateFinished {
		return false
	}

	s.current = s.next
	s.next = nil
	// The background keeps its wrapped offset so the tile does not jump.
	s.current.SetOffset(0)
	s.panned = 0
	s.state = StateIdle

	p.SetOffset(0)
	p.PositionAtStart(false)
	return true
}

// State returns the transition state.
func (s *Sequencer) State() LoadState { return s.state }

// Current returns the level being played.
func (s *Sequencer) Current() *Level { return s.current }

// Next returns the level being panned in, or nil.
func (s *Sequencer) Next() *Level { return s.next }

// Panned returns how far the current transition has scrolled.
func (s *Sequencer) Panned() float64 { return s.panned }

// Goal returns the full pan distance.
func (s *Sequencer) Goal() float64 { return s.goal }
