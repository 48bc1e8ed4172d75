package mousetrap

import (
	"errors"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/mousetrap/internal/core"
	"github.com/vovakirdan/mousetrap/internal/games/mousetrap/layout"
)

// Level is one screen of traps and cheese. It is built once; only cheese
// removal changes it afterwards.
type Level struct {
	ID      int
	Traps   []core.Entity
	Cheeses []core.Entity
}

// OffsetBy scrolls every entity of the level.
func (l *Level) OffsetBy(dx float64) {
	for i := range l.Traps {
		l.Traps[i].OffsetBy(dx)
	}
	for i := range l.Cheeses {
		l.Cheeses[i].OffsetBy(dx)
	}
}

// SetOffset places every entity of the level at the same scroll offset.
func (l *Level) SetOffset(x float64) {
	for i := range l.Traps {
		l.Traps[i].SetOffset(x)
	}
	for i := range l.Cheeses {
		l.Cheeses[i].SetOffset(x)
	}
}

// RemoveCheese drops the cheese at index i, keeping the others in order.
func (l *Level) RemoveCheese(i int) {
	if i < 0 || i >= len(l.Cheeses) {
		return
	}
	l.Cheeses = append(l.Cheeses[:i], l.Cheeses[i+1:]...)
}

// LevelSource builds levels by id.
type LevelSource interface {
	Build(id int) (*Level, error)
}

// levelBuilder turns generated grids into entities.
type levelBuilder struct {
	field      layout.Field
	gen        *layout.Generator
	placer     *layout.Placer
	budget     *layout.Budget
	trapSize   core.Size
	cheeseSize core.Size
	logger     *log.Logger
}

func newLevelBuilder(s settings, rng *rand.Rand, logger *log.Logger) *levelBuilder {
	return &levelBuilder{
		field:      s.field,
		gen:        layout.NewGenerator(s.params, rng),
		placer:     layout.NewPlacer(s.field, s.cheeseClearance, s.maxPickupAttempts, rng),
		budget:     layout.NewBudget(rng),
		trapSize:   s.trapSize,
		cheeseSize: s.cheeseSize,
		logger:     logger,
	}
}

// Build generates level id. A level that runs out of room for cheese keeps
// the cheese placed so far.
func (b *levelBuilder) Build(id int) (*Level, error) {
	grid, err := b.gen.Generate(id)
	if err != nil {
		return nil, err
	}

	lvl := &Level{ID: id}
	blockers := make([]core.Rect, 0, len(grid.Obstacles)+3)
	for _, cell := range grid.Obstacles {
		r := b.field.CellRect(cell, b.trapSize)
		lvl.Traps = append(lvl.Traps, core.NewEntity(core.KindObstacle, r.X, r.Y, r.W, r.H))
		blockers = append(blockers, r)
	}

	want := b.budget.Count(id)
	for i := 0; i < want; i++ {
		pt, err := b.placer.Place(blockers, b.cheeseSize)
		if errors.Is(err, layout.ErrNoSpace) {
			b.logger.Warn("level has no room for more cheese", "level", id, "placed", i, "wanted", want)
			break
		}
		if err != nil {
			return nil, err
		}
		cheese := core.NewEntity(core.KindCollectible, pt.X, pt.Y, b.cheeseSize.W, b.cheeseSize.H)
		lvl.Cheeses = append(lvl.Cheeses, cheese)
		blockers = append(blockers, cheese.BoundingRect())
	}

	b.logger.Debug("level built", "level", id, "traps", len(lvl.Traps), "cheese", len(lvl.Cheeses), "path", len(grid.Path))
	return lvl, nil
}
