package mousetrap

import (
	"github.com/vovakirdan/mousetrap/internal/core"
	"github.com/vovakirdan/mousetrap/internal/games/mousetrap/layout"
)

// Player is the mouse. It never stops moving vertically, bouncing between
// the top and bottom of the field; horizontal movement is steered.
type Player struct {
	core.Entity

	field   layout.Field
	speed   float64
	vx, vy  float64
	canMove bool
	start   core.Point
}

// NewPlayer creates a mouse at its start position, moving up.
func NewPlayer(field layout.Field, size core.Size, speed float64) *Player {
	p := &Player{
		Entity:  core.NewEntity(core.KindCharacter, 0, 0, size.W, size.H),
		field:   field,
		speed:   speed,
		vy:      -speed,
		canMove: true,
		start: core.Point{
			X: (field.SafeWidth - size.W) / 2,
			Y: (field.Height - size.H) / 2,
		},
	}
	p.Orientation = core.OrientationUp
	p.SetPosition(p.start.X, p.start.Y)
	return p
}

// Move steers the mouse. down selects the vertical direction, which callers
// usually keep with MovingDown.
func (p *Player) Move(right, down bool) {
	if !p.canMove {
		return
	}
	p.vx = p.speed
	if !right {
		p.vx = -p.speed
	}
	p.vy, p.Orientation = p.speed, core.OrientationDown
	if !down {
		p.vy, p.Orientation = -p.speed, core.OrientationUp
	}
}

// StopHorizontal keeps the vertical bounce and stops sideways movement.
func (p *Player) StopHorizontal() {
	p.vx = 0
}

// MovingDown reports the current vertical direction.
func (p *Player) MovingDown() bool {
	return p.vy > 0
}

// CanMove reports whether the mouse accepts steering.
func (p *Player) CanMove() bool {
	return p.canMove
}

// SetCanMove freezes or releases the mouse. A frozen mouse stands still;
// a released one starts moving down.
func (p *Player) SetCanMove(canMove bool) {
	p.canMove = canMove
	if !canMove {
		p.vx, p.vy = 0, 0
		return
	}
	p.vx, p.vy = 0, p.speed
	p.Orientation = core.OrientationDown
}

// PositionAtStart returns the mouse to the entry column, and to the
// vertical middle too when vertical is set. Frozen mice stay put.
func (p *Player) PositionAtStart(vertical bool) {
	if !p.canMove {
		return
	}
	p.SetX(p.start.X)
	if vertical {
		p.SetY(p.start.Y)
	}
}

// Start returns the start position.
func (p *Player) Start() core.Point {
	return p.start
}

// Velocity returns the per-tick movement.
func (p *Player) Velocity() (vx, vy float64) {
	return p.vx, p.vy
}

// Update bounces off the top and bottom walls, stops at the side walls and
// moves one tick.
func (p *Player) Update() {
	maxY := p.field.Height - p.Size.H
	maxX := p.field.Width - p.Size.W

	switch {
	case p.Pos.Y <= 0 && p.vy < 0:
		p.vy = -p.vy
		p.Orientation = core.OrientationDown
	case p.Pos.Y >= maxY && p.vy > 0:
		p.vy = -p.vy
		p.Orientation = core.OrientationUp
	}

	if (p.Pos.X <= 0 && p.vx < 0) || (p.Pos.X >= maxX && p.vx > 0) {
		p.vx = 0
	}

	p.SetPosition(
		core.ClampF(p.Pos.X+p.vx, 0, maxX),
		core.ClampF(p.Pos.Y+p.vy, 0, maxY),
	)
}
