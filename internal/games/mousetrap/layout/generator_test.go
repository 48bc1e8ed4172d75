package layout

import (
	"errors"
	"math/rand"
	"testing"
)

func defaultParams() Params {
	return Params{
		Rows:             6,
		Cols:             8,
		MaxPathSteps:     20,
		DenseThreshold:   0.75,
		MaxCarveAttempts: 10000,
		MaxPlaceAttempts: 10000,
	}
}

func TestGenerateInvariants(t *testing.T) {
	levels := []int{1, 2, 3, 15, 16, 39, 40, 99, 100, 349, 350, 1000}
	p := defaultParams()

	for seed := int64(1); seed <= 40; seed++ {
		gen := NewGenerator(p, rand.New(rand.NewSource(seed)))
		for _, id := range levels {
			l, err := gen.Generate(id)
			if err != nil {
				t.Fatalf("seed %d level %d: %v", seed, id, err)
			}

			if got, want := len(l.Obstacles), ObstacleCount(id, p.Capacity()); got != want {
				t.Errorf("seed %d level %d: %d obstacles, expected %d", seed, id, got, want)
			}
			if len(l.Path) > p.MaxPathSteps {
				t.Errorf("seed %d level %d: corridor of %d cells", seed, id, len(l.Path))
			}
			if !l.Grid.Reachable() {
				t.Errorf("seed %d level %d: no route across\n%s", seed, id, l.Grid)
			}
			checkCorridor(t, l)
		}
	}
}

// checkCorridor verifies the carved path is a 4-connected chain from the
// first to the last column with no obstacle on it.
func checkCorridor(t *testing.T, l Layout) {
	t.Helper()
	if len(l.Path) == 0 {
		t.Fatal("empty corridor")
	}
	if l.Path[0].Col != 0 {
		t.Errorf("corridor starts in column %d", l.Path[0].Col)
	}

	reachedEnd := false
	for i, c := range l.Path {
		if l.Grid.At(c.Row, c.Col) != CellPath {
			t.Errorf("corridor cell %+v has status %d", c, l.Grid.At(c.Row, c.Col))
		}
		if c.Col == l.Grid.Cols()-1 {
			reachedEnd = true
		}
		if i == 0 {
			continue
		}
		// Revisited cells are recorded once, so consecutive entries may skip
		// back over a cell that is already on the path.
		if !adjacentToPath(c, l.Path[:i]) {
			t.Errorf("corridor cell %+v is not next to an earlier cell", c)
		}
	}
	if !reachedEnd {
		t.Errorf("corridor never reaches the last column\n%s", l.Grid)
	}
}

func adjacentToPath(c Cell, earlier []Cell) bool {
	for _, e := range earlier {
		dr, dc := c.Row-e.Row, c.Col-e.Col
		if dr*dr+dc*dc == 1 {
			return true
		}
	}
	return false
}

func TestGenerateDeterministic(t *testing.T) {
	p := defaultParams()
	a := NewGenerator(p, rand.New(rand.NewSource(7)))
	b := NewGenerator(p, rand.New(rand.NewSource(7)))

	for id := 1; id <= 30; id++ {
		la, err := a.Generate(id)
		if err != nil {
			t.Fatal(err)
		}
		lb, err := b.Generate(id)
		if err != nil {
			t.Fatal(err)
		}
		if la.Grid.String() != lb.Grid.String() {
			t.Fatalf("level %d differs with the same seed:\n%s\n---\n%s", id, la.Grid, lb.Grid)
		}
	}
}

func TestGenerateDenseFillsExactly(t *testing.T) {
	p := defaultParams()
	gen := NewGenerator(p, rand.New(rand.NewSource(3)))

	l, err := gen.Generate(400)
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Grid.Count(CellOccupied); got != p.Capacity() {
		t.Errorf("dense level has %d obstacles, expected %d", got, p.Capacity())
	}
	if got := l.Grid.Count(CellAllowed) + len(l.Path) + len(l.Obstacles); got != p.Rows*p.Cols {
		t.Errorf("cell statuses do not add up: %d", got)
	}
}

func TestGenerateUnsatisfiableCorridor(t *testing.T) {
	p := defaultParams()
	p.MaxPathSteps = 3 // eight columns need at least eight cells
	p.MaxCarveAttempts = 25

	_, err := NewGenerator(p, rand.New(rand.NewSource(1))).Generate(1)
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Fatalf("expected ErrUnsatisfiable, got %v", err)
	}
}

func TestGenerateUnsatisfiablePlacement(t *testing.T) {
	p := defaultParams()
	p.MaxPlaceAttempts = 0

	_, err := NewGenerator(p, rand.New(rand.NewSource(1))).Generate(1)
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Fatalf("expected ErrUnsatisfiable, got %v", err)
	}
}

func TestGridReachable(t *testing.T) {
	g := NewGrid(3, 3)
	if !g.Reachable() {
		t.Error("empty grid should be reachable")
	}

	for r := 0; r < 3; r++ {
		g.Set(r, 1, CellOccupied)
	}
	if g.Reachable() {
		t.Errorf("wall in the middle column should block\n%s", g)
	}

	g.Set(2, 1, CellPath)
	if !g.Reachable() {
		t.Error("gap in the wall should connect")
	}
	if got := g.String(); got != ".O.\n.O.\n.X." {
		t.Errorf("String() = %q", got)
	}
}
