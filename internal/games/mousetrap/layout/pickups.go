package layout

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/mousetrap/internal/core"
)

// ErrNoSpace is returned when no pickup position was found within the attempt budget.
var ErrNoSpace = errors.New("layout: no space for pickup")

// Placer finds pickup positions that keep a clearance margin from
// everything already on the field.
type Placer struct {
	field       Field
	clearance   float64
	maxAttempts int
	rng         *rand.Rand
}

// NewPlacer creates a pickup placer.
func NewPlacer(field Field, clearance float64, maxAttempts int, rng *rand.Rand) *Placer {
	return &Placer{field: field, clearance: clearance, maxAttempts: maxAttempts, rng: rng}
}

// Place returns the top-left corner for a pickup of the given size.
//
// x is sampled between the entry and exit margins and y over the full
// height, both keeping the pickup inside the field. A sample is accepted
// when the pickup's inscribed circle misses every blocker dilated by the
// clearance margin.
func (p *Placer) Place(blockers []core.Rect, size core.Size) (core.Point, error) {
	dilated := make([]core.Rect, len(blockers))
	for i, b := range blockers {
		dilated[i] = b.Dilate(p.clearance)
	}

	spanX := p.field.Width - 2*p.field.SafeWidth - size.W
	spanY := p.field.Height - size.H
	if spanX <= 0 || spanY <= 0 {
		return core.Point{}, fmt.Errorf("pickup %vx%v larger than field: %w", size.W, size.H, ErrNoSpace)
	}

	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		pt := core.Point{
			X: p.field.SafeWidth + p.rng.Float64()*spanX,
			Y: p.rng.Float64() * spanY,
		}
		circle := core.Circle{X: pt.X + size.W/2, Y: pt.Y + size.H/2, R: size.W / 2}
		if !hitsAny(circle, dilated) {
			return pt, nil
		}
	}
	return core.Point{}, fmt.Errorf("%d attempts among %d blockers: %w", p.maxAttempts, len(blockers), ErrNoSpace)
}

func hitsAny(c core.Circle, rects []core.Rect) bool {
	for _, r := range rects {
		if core.CircleRectIntersect(c, r) {
			return true
		}
	}
	return false
}

// Budget decides how many pickups each level gets.
//
// Levels come in triples (1,2,3), (4,5,6), ...: the first level of a triple
// always gets one pickup and the other two share two more, split by two
// fair coin flips. The split is decided when the triple is first counted.
type Budget struct {
	rng     *rand.Rand
	triple  int
	split   [2]int
	decided bool
}

// NewBudget creates a pickup budget.
func NewBudget(rng *rand.Rand) *Budget {
	return &Budget{rng: rng}
}

// Count returns the pickup count for a level. Counting the first level of a
// triple re-decides that triple's split.
func (b *Budget) Count(levelID int) int {
	if levelID < 1 {
		levelID = 1
	}
	triple, pos := (levelID-1)/3, (levelID-1)%3
	if pos == 0 || !b.decided || b.triple != triple {
		b.decide(triple)
	}

	switch pos {
	case 0:
		return 1
	case 1:
		return b.split[0]
	default:
		return b.split[1]
	}
}

func (b *Budget) decide(triple int) {
	b.triple = triple
	b.split = [2]int{}
	for i := 0; i < 2; i++ {
		b.split[b.rng.Intn(2)]++
	}
	b.decided = true
}
