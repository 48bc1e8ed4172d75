package mousetrap

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mousetrap/internal/core"
)

// stubSource builds levels with a single trap and records what was asked for.
type stubSource struct {
	built []int
	fail  map[int]bool
}

var errStubBuild = errors.New("stub build failure")

func (s *stubSource) Build(id int) (*Level, error) {
	s.built = append(s.built, id)
	if s.fail[id] {
		return nil, errStubBuild
	}
	return &Level{
		ID:    id,
		Traps: []core.Entity{core.NewEntity(core.KindObstacle, 500, 500, 120, 120)},
	}, nil
}

func newTestSequencer(src *stubSource) *Sequencer {
	f := testField()
	return NewSequencer(src, 1, 120, f.PanGoal())
}

func TestSequencerTransition(t *testing.T) {
	src := &stubSource{}
	seq := newTestSequencer(src)
	if err := seq.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if seq.State() != StateIdle || seq.Current().ID != 1 {
		t.Fatalf("after Reset state=%v level=%d", seq.State(), seq.Current().ID)
	}

	if err := seq.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if seq.State() != StateLoading {
		t.Fatalf("state = %v, want loading", seq.State())
	}
	if seq.Next().ID != 2 {
		t.Errorf("next level = %d, want 2", seq.Next().ID)
	}
	if got := seq.Next().Traps[0].Offset; got != seq.Goal() {
		t.Errorf("next level offset = %v, want %v", got, seq.Goal())
	}

	character := &core.Entity{}
	bg := NewBackground(testField())
	ticks := 0
	for seq.State() == StateLoading {
		seq.Update(character, bg)
		ticks++
		if ticks > 100 {
			t.Fatal("pan never finished")
		}
	}

	// 2240 units at 120 per tick: 18 full steps and one of 80.
	if ticks != 19 {
		t.Errorf("pan took %d ticks, want 19", ticks)
	}
	if seq.Panned() != seq.Goal() {
		t.Errorf("panned %v, want exactly %v", seq.Panned(), seq.Goal())
	}
	if character.Offset != -seq.Goal() {
		t.Errorf("character offset = %v, want %v", character.Offset, -seq.Goal())
	}
	if got := seq.Next().Traps[0].Offset; got != 0 {
		t.Errorf("next level offset after pan = %v, want 0", got)
	}

	p := testPlayer()
	p.SetX(2400)
	p.SetOffset(-seq.Goal())
	if !seq.Poll(p) {
		t.Fatal("Poll should promote a finished transition")
	}
	if seq.State() != StateIdle || seq.Current().ID != 2 || seq.Next() != nil {
		t.Errorf("after Poll state=%v level=%d next=%v", seq.State(), seq.Current().ID, seq.Next())
	}
	if p.Offset != 0 || p.Pos.X != p.Start().X {
		t.Errorf("player after Poll offset=%v x=%v", p.Offset, p.Pos.X)
	}
	if bg.Offset != -seq.Goal() {
		t.Errorf("background offset after Poll = %v, want it kept at %v", bg.Offset, -seq.Goal())
	}
	if seq.Poll(p) {
		t.Error("second Poll should do nothing")
	}
}

func TestSequencerLoadWhileBusy(t *testing.T) {
	seq := newTestSequencer(&stubSource{})
	if err := seq.Reset(); err != nil {
		t.Fatal(err)
	}
	if err := seq.Load(); err != nil {
		t.Fatal(err)
	}

	err := seq.Load()
	if !errors.Is(err, ErrBusy) {
		t.Errorf("second Load = %v, want ErrBusy", err)
	}
	if seq.Next().ID != 2 {
		t.Errorf("busy Load replaced next level: %d", seq.Next().ID)
	}
}

func TestSequencerBuildFailures(t *testing.T) {
	src := &stubSource{fail: map[int]bool{1: true}}
	seq := newTestSequencer(src)

	err := seq.Reset()
	if !errors.Is(err, errStubBuild) {
		t.Fatalf("Reset = %v, want wrapped build error", err)
	}
	if seq.Current() == nil || seq.Current().ID != 1 || len(seq.Current().Traps) != 0 {
		t.Errorf("failed Reset should leave an empty start level, got %+v", seq.Current())
	}

	src.fail = map[int]bool{2: true}
	if err := seq.Reset(); err != nil {
		t.Fatal(err)
	}
	if err := seq.Load(); !errors.Is(err, errStubBuild) {
		t.Errorf("Load = %v, want wrapped build error", err)
	}
	if seq.State() != StateIdle {
		t.Errorf("failed Load left state %v", seq.State())
	}
}

func TestSequencerUpdateOutsideLoading(t *testing.T) {
	seq := newTestSequencer(&stubSource{})
	if err := seq.Reset(); err != nil {
		t.Fatal(err)
	}
	character := &core.Entity{}
	seq.Update(character, NewBackground(testField()))
	if character.Offset != 0 || seq.Panned() != 0 {
		t.Errorf("idle Update scrolled: offset=%v panned=%v", character.Offset, seq.Panned())
	}
}
