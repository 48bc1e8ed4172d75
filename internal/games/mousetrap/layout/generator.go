package layout

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/mousetrap/internal/config"
)

// ErrUnsatisfiable is returned when a bounded generation loop runs out of attempts.
var ErrUnsatisfiable = errors.New("layout: constraints unsatisfiable")

// Params bounds the generator.
type Params struct {
	Rows             int
	Cols             int
	MaxPathSteps     int     // longest corridor accepted, in distinct cells
	DenseThreshold   float64 // fraction of Capacity at which fill-then-free takes over
	MaxCarveAttempts int
	MaxPlaceAttempts int
}

// ParamsFromConfig builds generator parameters from the YAML sections.
func ParamsFromConfig(f config.FieldConfig, g config.GenerationConfig) Params {
	return Params{
		Rows:             f.Rows,
		Cols:             f.Cols,
		MaxPathSteps:     g.MaxPathSteps,
		DenseThreshold:   g.DenseThreshold,
		MaxCarveAttempts: g.MaxCarveAttempts,
		MaxPlaceAttempts: g.MaxPlaceAttempts,
	}
}

// Capacity is the most obstacles a level can hold while a corridor of
// MaxPathSteps cells stays free.
func (p Params) Capacity() int {
	return p.Rows*p.Cols - p.MaxPathSteps
}

// Layout is one generated level grid.
type Layout struct {
	LevelID   int
	Grid      *Grid
	Path      []Cell // corridor cells in the order they were carved
	Obstacles []Cell // row-major
}

// Generator builds level layouts from a shared random source.
// It is not safe for concurrent use; give each game its own.
type Generator struct {
	params Params
	rng    *rand.Rand
}

// NewGenerator creates a generator.
func NewGenerator(p Params, rng *rand.Rand) *Generator {
	return &Generator{params: p, rng: rng}
}

// Params returns the generator's bounds.
func (g *Generator) Params() Params {
	return g.params
}

// Generate carves a corridor from the first to the last column and fills
// the rest of the grid with ObstacleCount(levelID) obstacles.
func (g *Generator) Generate(levelID int) (Layout, error) {
	ctx := newGenContext(g.params, g.rng)

	if err := ctx.carve(); err != nil {
		return Layout{}, fmt.Errorf("level %d: %w", levelID, err)
	}
	desired := ObstacleCount(levelID, g.params.Capacity())
	if err := ctx.populate(desired); err != nil {
		return Layout{}, fmt.Errorf("level %d: %w", levelID, err)
	}

	return Layout{
		LevelID:   levelID,
		Grid:      ctx.grid,
		Path:      ctx.path,
		Obstacles: ctx.grid.Cells(CellOccupied),
	}, nil
}

type stepMode int

const (
	modeRight stepMode = iota
	modeStraight
)

// genContext is the walker state for a single Generate call.
type genContext struct {
	params Params
	rng    *rand.Rand
	grid   *Grid
	path   []Cell

	row, col int
	vdir     int
	mode     stepMode
	run      int
}

func newGenContext(p Params, rng *rand.Rand) *genContext {
	return &genContext{
		params: p,
		rng:    rng,
		grid:   NewGrid(p.Rows, p.Cols),
	}
}

// carve walks left to right, zig-zagging vertically, until it produces a
// corridor no longer than MaxPathSteps.
func (c *genContext) carve() error {
	for attempt := 0; attempt < c.params.MaxCarveAttempts; attempt++ {
		c.walk()
		if len(c.path) <= c.params.MaxPathSteps {
			return nil
		}
	}
	return fmt.Errorf("no corridor within %d cells after %d attempts: %w",
		c.params.MaxPathSteps, c.params.MaxCarveAttempts, ErrUnsatisfiable)
}

func (c *genContext) walk() {
	c.grid.Reset()
	c.path = c.path[:0]

	c.row = c.rng.Intn(c.params.Rows)
	c.col = 0
	c.vdir = 1
	if c.rng.Intn(2) == 0 {
		c.vdir = -1
	}
	c.mode = modeRight
	c.run = 0
	c.mark()

	for c.col < c.params.Cols-1 {
		c.stepVertical()
		if c.row != 0 && c.row != c.params.Rows-1 {
			c.stepHorizontal()
		}
	}
	c.stepVertical()
}

// stepVertical moves one row, reflecting off the top and bottom edges.
func (c *genContext) stepVertical() {
	r := c.row + c.vdir
	switch {
	case r < 0:
		r, c.vdir = 1, 1
	case r >= c.params.Rows:
		r, c.vdir = c.params.Rows-2, -1
	}
	c.row = r
	c.mark()
}

// stepHorizontal decides whether to keep the current mode and moves one
// column right in right mode. Long runs make a switch more likely and runs
// of five always switch.
func (c *genContext) stepHorizontal() {
	d := c.rng.Intn(100)
	c.run++

	flip := false
	switch c.mode {
	case modeRight:
		switch {
		case c.run >= 5:
			flip = true
		case c.run < 3:
			flip = d < 27
		default:
			flip = d < 50
		}
	case modeStraight:
		switch {
		case c.run >= 5 || c.col == 0:
			flip = true
		case c.run < 3:
			flip = d < 18
		default:
			flip = d < 37
		}
	}
	if flip {
		if c.mode == modeRight {
			c.mode = modeStraight
		} else {
			c.mode = modeRight
		}
		c.run = 0
	}

	if c.mode == modeRight {
		c.col++
		c.mark()
	}
}

func (c *genContext) mark() {
	if c.grid.At(c.row, c.col) == CellPath {
		return
	}
	c.grid.Set(c.row, c.col, CellPath)
	c.path = append(c.path, Cell{Row: c.row, Col: c.col})
}

// populate places exactly desired obstacles on allowed cells.
func (c *genContext) populate(desired int) error {
	allowed := c.grid.Count(CellAllowed)
	if desired > allowed {
		return fmt.Errorf("%d obstacles do not fit %d free cells: %w", desired, allowed, ErrUnsatisfiable)
	}
	if float64(desired) < c.params.DenseThreshold*float64(c.params.Capacity()) {
		return c.populateSparse(desired)
	}
	c.populateDense(desired)
	return nil
}

// populateSparse samples random cells until enough allowed ones are taken.
func (c *genContext) populateSparse(desired int) error {
	placed := 0
	for attempt := 0; placed < desired; attempt++ {
		if attempt >= c.params.MaxPlaceAttempts {
			return fmt.Errorf("placed %d of %d obstacles in %d attempts: %w",
				placed, desired, c.params.MaxPlaceAttempts, ErrUnsatisfiable)
		}
		r, col := c.rng.Intn(c.params.Rows), c.rng.Intn(c.params.Cols)
		if c.grid.At(r, col) != CellAllowed {
			continue
		}
		c.grid.Set(r, col, CellOccupied)
		placed++
	}
	return nil
}

// populateDense occupies every allowed cell, then frees random ones until
// exactly desired remain. Rejection sampling would stall near full grids.
func (c *genContext) populateDense(desired int) {
	occupied := c.grid.Cells(CellAllowed)
	for _, cell := range occupied {
		c.grid.Set(cell.Row, cell.Col, CellOccupied)
	}
	for len(occupied) > desired {
		i := c.rng.Intn(len(occupied))
		cell := occupied[i]
		c.grid.Set(cell.Row, cell.Col, CellAllowed)
		occupied[i] = occupied[len(occupied)-1]
		occupied = occupied[:len(occupied)-1]
	}
}
