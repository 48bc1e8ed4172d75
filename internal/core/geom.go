// Package core provides the geometry, entity and screen types shared by the
// game logic and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
//
// All game coordinates are logical units on a fixed reference resolution;
// conversion to terminal cells happens only at render time.
package core

import "math"

// Point is a position in logical units.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in logical units.
type Size struct {
	W, H float64
}

// Rect represents an axis-aligned rectangle in logical units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether two rectangles overlap with positive area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// All four edges are inclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Dilate returns a copy grown by margin on every side.
func (r Rect) Dilate(margin float64) Rect {
	return Rect{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, H: r.H + 2*margin}
}

// Translate returns a copy moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Circle is a circle given by its center and radius.
type Circle struct {
	X, Y float64
	R    float64
}

// Bounds returns the circle's bounding square.
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// RectIntersect reports whether two rectangles overlap.
func RectIntersect(a, b Rect) bool {
	return a.Intersects(b)
}

// CircleCircleIntersect reports whether the distance between the centers is
// strictly less than the sum of the radii.
func CircleCircleIntersect(a, b Circle) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < a.R+b.R
}

// CircleRectIntersect reports whether a circle touches a rectangle.
//
// After a bounding-box rejection the circle hits when the rectangle contains
// its center, one of its four axis-extreme points, or the point at distance R
// from the center in the direction of the rectangle's nearest corner. The
// test is exact as long as the radius does not exceed the rectangle's sides,
// which holds for every entity in the game.
func CircleRectIntersect(c Circle, r Rect) bool {
	if !c.Bounds().Intersects(r) {
		return false
	}
	if r.Contains(c.X, c.Y) {
		return true
	}
	if r.Contains(c.X-c.R, c.Y) || r.Contains(c.X+c.R, c.Y) ||
		r.Contains(c.X, c.Y-c.R) || r.Contains(c.X, c.Y+c.R) {
		return true
	}

	corner := nearestCorner(r, c.X, c.Y)
	dx, dy := corner.X-c.X, corner.Y-c.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return true
	}
	px := c.X + dx/dist*c.R
	py := c.Y + dy/dist*c.R
	return r.Contains(px, py)
}

func nearestCorner(r Rect, x, y float64) Point {
	cx := r.X
	if math.Abs(x-r.Right()) < math.Abs(x-r.X) {
		cx = r.Right()
	}
	cy := r.Y
	if math.Abs(y-r.Bottom()) < math.Abs(y-r.Y) {
		cy = r.Bottom()
	}
	return Point{X: cx, Y: cy}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
