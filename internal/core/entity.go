package core

import "fmt"

// Kind tags what an entity is. It decides the collision shape.
type Kind int

const (
	KindCharacter   Kind = iota // the player, circular
	KindObstacle                // traps, rectangular
	KindCollectible             // pickups, circular
	KindProp                    // background and effects, rectangular
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	case KindProp:
		return "prop"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Circular reports whether entities of this kind collide as circles.
func (k Kind) Circular() bool {
	return k == KindCharacter || k == KindCollectible
}

// Orientation is the facing used for presentation only.
type Orientation int

const (
	OrientationUp Orientation = iota
	OrientationDown
	OrientationLeft
	OrientationRight
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationUp:
		return "up"
	case OrientationDown:
		return "down"
	case OrientationLeft:
		return "left"
	case OrientationRight:
		return "right"
	default:
		return "unknown"
	}
}

// Entity is a positioned, sized object in logical units.
//
// Offset is a horizontal scroll applied on top of the position while a level
// pans. Collision uses the unscrolled bounds; drawing uses ScreenRect.
type Entity struct {
	Kind        Kind
	Pos         Point
	Size        Size
	Orientation Orientation
	Visible     bool
	Offset      float64
}

// NewEntity creates a visible entity facing up.
func NewEntity(kind Kind, x, y, w, h float64) Entity {
	return Entity{
		Kind:    kind,
		Pos:     Point{X: x, Y: y},
		Size:    Size{W: w, H: h},
		Visible: true,
	}
}

// SetPosition moves the entity's top-left corner.
func (e *Entity) SetPosition(x, y float64) {
	e.Pos = Point{X: x, Y: y}
}

// SetX moves the entity horizontally.
func (e *Entity) SetX(x float64) { e.Pos.X = x }

// SetY moves the entity vertically.
func (e *Entity) SetY(y float64) { e.Pos.Y = y }

// SetOffset replaces the scroll offset.
func (e *Entity) SetOffset(x float64) { e.Offset = x }

// OffsetBy adds dx to the scroll offset.
func (e *Entity) OffsetBy(dx float64) { e.Offset += dx }

// BoundingRect returns position and size, ignoring the scroll offset.
func (e Entity) BoundingRect() Rect {
	return Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.Size.W, H: e.Size.H}
}

// ScreenRect returns the bounds shifted by the scroll offset.
func (e Entity) ScreenRect() Rect {
	return e.BoundingRect().Translate(e.Offset, 0)
}

// Center returns the center of the bounding rectangle.
func (e Entity) Center() Point {
	return e.BoundingRect().Center()
}

// Circle returns the circle inscribed in the entity's width.
func (e Entity) Circle() Circle {
	c := e.Center()
	return Circle{X: c.X, Y: c.Y, R: e.Size.W / 2}
}

// Collide reports whether two entities touch, choosing the test from their
// kinds: circle/circle, circle/rectangle or rectangle/rectangle.
func Collide(a, b Entity) bool {
	switch {
	case a.Kind.Circular() && b.Kind.Circular():
		return CircleCircleIntersect(a.Circle(), b.Circle())
	case a.Kind.Circular():
		return CircleRectIntersect(a.Circle(), b.BoundingRect())
	case b.Kind.Circular():
		return CircleRectIntersect(b.Circle(), a.BoundingRect())
	default:
		return RectIntersect(a.BoundingRect(), b.BoundingRect())
	}
}

// Scroller is anything the level pan can shift horizontally.
type Scroller interface {
	OffsetBy(dx float64)
	SetOffset(x float64)
}
