package mousetrap

import (
	"math/rand"

	"github.com/vovakirdan/mousetrap/internal/assets"
	"github.com/vovakirdan/mousetrap/internal/core"
	"github.com/vovakirdan/mousetrap/internal/games/mousetrap/layout"
)

// Paw is the cat paw that reaches in from the top or bottom edge, stops a
// fixed distance past the mouse and pulls back out.
type Paw struct {
	core.Entity
	Sprite assets.Handle

	fromTop   bool
	speed     float64
	stopY     float64 // y of the paw's top edge at the catch point
	homeY     float64 // y of the paw's top edge fully off the field
	extending bool
	caught    bool
	done      bool
}

// NewPaw aims a paw at target. It comes from the top when the target is in
// the upper half of the field, centered horizontally on it.
func NewPaw(sprite assets.Handle, field layout.Field, width, speed, separation float64, target core.Rect) *Paw {
	height := sprite.HeightFor(width)
	fromTop := target.Y < field.Height/2
	x := target.X - (width-target.W)/2

	p := &Paw{
		Sprite:    sprite,
		fromTop:   fromTop,
		speed:     speed,
		extending: true,
	}
	if fromTop {
		// The paw's bottom edge stops separation below the mouse.
		p.stopY = target.Bottom() + separation - height
		p.homeY = -height
		p.Entity = core.NewEntity(core.KindProp, x, -height, width, height)
		p.Orientation = core.OrientationDown
	} else {
		// The paw's top edge stops separation above the mouse.
		p.stopY = target.Y - separation
		p.homeY = field.Height
		p.Entity = core.NewEntity(core.KindProp, x, field.Height, width, height)
		p.Orientation = core.OrientationUp
	}
	return p
}

// FromTop reports which edge the paw comes from.
func (p *Paw) FromTop() bool { return p.fromTop }

// Done reports whether the paw has extended and retracted.
func (p *Paw) Done() bool { return p.done }

// Update moves the paw one tick. It returns true on exactly the tick the
// paw reaches the catch point.
func (p *Paw) Update() bool {
	if p.done {
		return false
	}

	y := p.Pos.Y
	if p.extending {
		y = stepToward(y, p.stopY, p.speed)
		p.SetY(y)
		if y == p.stopY && !p.caught {
			p.caught = true
			p.extending = false
			return true
		}
		return false
	}

	y = stepToward(y, p.homeY, p.speed)
	p.SetY(y)
	if y == p.homeY {
		p.done = true
	}
	return false
}

// stepToward moves from toward to by at most step, landing exactly on to.
func stepToward(from, to, step float64) float64 {
	if from < to {
		return min(from+step, to)
	}
	return max(from-step, to)
}

type catchState int

const (
	catchNone catchState = iota
	catchPaw
	catchFading
)

// Catcher plays the lost-game sequence: a paw catches the mouse, then one
// fading tick passes before the game restarts.
type Catcher struct {
	field      layout.Field
	variants   []assets.Handle
	width      float64
	speed      float64
	separation float64
	rng        *rand.Rand

	state  catchState
	paw    *Paw
	player *Player
}

// NewCatcher creates an idle catcher. variants must not be empty.
func NewCatcher(field layout.Field, variants []assets.Handle, width, speed, separation float64, rng *rand.Rand) *Catcher {
	return &Catcher{
		field:      field,
		variants:   variants,
		width:      width,
		speed:      speed,
		separation: separation,
		rng:        rng,
	}
}

// Start freezes the player and sends a randomly chosen paw at it.
func (c *Catcher) Start(p *Player) {
	c.player = p
	p.SetCanMove(false)
	sprite := c.variants[c.rng.Intn(len(c.variants))]
	c.paw = NewPaw(sprite, c.field, c.width, c.speed, c.separation, p.BoundingRect())
	c.state = catchPaw
}

// Running reports whether the sequence is still playing.
func (c *Catcher) Running() bool {
	return c.state != catchNone
}

// Update advances the sequence one tick.
func (c *Catcher) Update() {
	switch c.state {
	case catchPaw:
		if c.paw.Done() {
			c.state = catchFading
			return
		}
		if c.paw.Update() {
			c.player.Visible = false
		}
	case catchFading:
		c.state = catchNone
		c.paw = nil
	}
}

// Paw returns the active paw, or nil.
func (c *Catcher) Paw() *Paw {
	return c.paw
}

// Cancel drops the sequence without finishing it.
func (c *Catcher) Cancel() {
	c.state = catchNone
	c.paw = nil
}
