package layout

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/mousetrap/internal/core"
)

func testField() Field {
	return Field{Width: 2560, Height: 1440, Rows: 6, Cols: 8, SafeWidth: 320}
}

func TestFieldGeometry(t *testing.T) {
	f := testField()
	if f.CellWidth() != 240 || f.CellHeight() != 240 {
		t.Fatalf("cell = %vx%v, expected 240x240", f.CellWidth(), f.CellHeight())
	}
	r := f.CellRect(Cell{Row: 1, Col: 2}, core.Size{W: 120, H: 120})
	if r != core.NewRect(320+480+60, 240+60, 120, 120) {
		t.Errorf("CellRect = %+v", r)
	}
	if f.PanGoal() != 2240 {
		t.Errorf("PanGoal = %v", f.PanGoal())
	}
	if got := f.ExitThreshold(125); got != 2302.5 {
		t.Errorf("ExitThreshold = %v", got)
	}
}

func TestPlacerKeepsClearance(t *testing.T) {
	f := testField()
	const clearance = 100
	size := core.Size{W: 160, H: 160}
	trap := core.Size{W: 120, H: 120}
	rng := rand.New(rand.NewSource(11))

	gen := NewGenerator(defaultParams(), rng)
	placer := NewPlacer(f, clearance, 10000, rng)

	for _, levelID := range []int{1, 2, 3} {
		l, err := gen.Generate(levelID)
		if err != nil {
			t.Fatal(err)
		}
		blockers := make([]core.Rect, 0, len(l.Obstacles)+1)
		for _, c := range l.Obstacles {
			blockers = append(blockers, f.CellRect(c, trap))
		}
		// A previously placed pickup blocks as well.
		blockers = append(blockers, core.NewRect(1200, 600, 160, 160))

		for i := 0; i < 1000; i++ {
			pt, err := placer.Place(blockers, size)
			if err != nil {
				t.Fatalf("level %d trial %d: %v", levelID, i, err)
			}
			c := core.Circle{X: pt.X + size.W/2, Y: pt.Y + size.H/2, R: size.W / 2}
			for _, b := range blockers {
				if core.CircleRectIntersect(c, b.Dilate(clearance)) {
					t.Fatalf("level %d: pickup at %+v within clearance of %+v", levelID, pt, b)
				}
			}
			if pt.X < f.SafeWidth || pt.X+size.W > f.Width-f.SafeWidth || pt.Y < 0 || pt.Y+size.H > f.Height {
				t.Fatalf("pickup at %+v leaves the playable area", pt)
			}
		}
	}
}

// Dense levels start from a full grid and free cells, so most free cells are
// boxed in and placement may run out of attempts. Whatever is placed must
// still keep the clearance.
func TestPlacerKeepsClearanceOnDenseLevels(t *testing.T) {
	f := testField()
	const clearance = 100
	size := core.Size{W: 160, H: 160}
	trap := core.Size{W: 120, H: 120}
	rng := rand.New(rand.NewSource(23))

	gen := NewGenerator(defaultParams(), rng)
	placer := NewPlacer(f, clearance, 10000, rng)

	placed := 0
	for levelID := 340; levelID <= 350; levelID++ {
		l, err := gen.Generate(levelID)
		if err != nil {
			t.Fatal(err)
		}
		blockers := make([]core.Rect, 0, len(l.Obstacles))
		for _, c := range l.Obstacles {
			blockers = append(blockers, f.CellRect(c, trap))
		}

		for i := 0; i < 1000; i++ {
			pt, err := placer.Place(blockers, size)
			if errors.Is(err, ErrNoSpace) {
				continue
			}
			if err != nil {
				t.Fatalf("level %d trial %d: %v", levelID, i, err)
			}
			placed++
			c := core.Circle{X: pt.X + size.W/2, Y: pt.Y + size.H/2, R: size.W / 2}
			for _, b := range blockers {
				if core.CircleRectIntersect(c, b.Dilate(clearance)) {
					t.Fatalf("level %d: pickup at %+v within clearance of %+v", levelID, pt, b)
				}
			}
		}
	}
	if placed == 0 {
		t.Error("no pickup fit on any dense level")
	}
}

func TestPlacerNoSpace(t *testing.T) {
	f := testField()
	placer := NewPlacer(f, 0, 50, rand.New(rand.NewSource(1)))

	_, err := placer.Place([]core.Rect{f.Bounds()}, core.Size{W: 160, H: 160})
	if !errors.Is(err, ErrNoSpace) {
		t.Fatalf("expected ErrNoSpace, got %v", err)
	}

	_, err = placer.Place(nil, core.Size{W: 5000, H: 160})
	if !errors.Is(err, ErrNoSpace) {
		t.Fatalf("oversized pickup: expected ErrNoSpace, got %v", err)
	}
}

func TestBudgetTriples(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := NewBudget(rand.New(rand.NewSource(seed)))
		for first := 1; first <= 30; first += 3 {
			a, m, z := b.Count(first), b.Count(first+1), b.Count(first+2)
			if a != 1 {
				t.Fatalf("seed %d: first level of triple got %d", seed, a)
			}
			if m+z != 2 || m < 0 || z < 0 {
				t.Fatalf("seed %d: triple at %d split as (%d, %d)", seed, first, m, z)
			}
		}
	}
}

func TestBudgetSplitsVary(t *testing.T) {
	seen := map[int]bool{}
	b := NewBudget(rand.New(rand.NewSource(5)))
	for first := 1; first <= 300; first += 3 {
		b.Count(first)
		seen[b.Count(first+1)] = true
	}
	for _, n := range []int{0, 1, 2} {
		if !seen[n] {
			t.Errorf("split %d never happened in 100 triples", n)
		}
	}
}

func TestBudgetMidTriple(t *testing.T) {
	b := NewBudget(rand.New(rand.NewSource(9)))
	// Starting on the second level of a triple still decides a split once.
	m := b.Count(5)
	if z := b.Count(6); m+z != 2 {
		t.Errorf("mid-triple split = (%d, %d)", m, z)
	}
	if again := b.Count(5); again != m {
		t.Errorf("split changed without recounting the triple's first level: %d then %d", m, again)
	}
}
