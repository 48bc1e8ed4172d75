// Package layout generates trap grids and places pickups for Mousetrap levels.
//
// Generation works on grid cells; Field converts cells to logical units.
// Nothing in this package keeps state between calls except the random
// source handed in by the caller.
package layout

import (
	"github.com/vovakirdan/mousetrap/internal/config"
	"github.com/vovakirdan/mousetrap/internal/core"
)

// Field is the logical play field: a reference-resolution rectangle with a
// trap grid between an entry margin on the left and an exit margin on the right.
type Field struct {
	Width     float64
	Height    float64
	Rows      int
	Cols      int
	SafeWidth float64
}

// FieldFromConfig builds a Field from its YAML section.
func FieldFromConfig(c config.FieldConfig) Field {
	return Field{
		Width:     c.Width,
		Height:    c.Height,
		Rows:      c.Rows,
		Cols:      c.Cols,
		SafeWidth: c.SafeWidth,
	}
}

// CellWidth is the width of one grid column.
func (f Field) CellWidth() float64 {
	return (f.Width - 2*f.SafeWidth) / float64(f.Cols)
}

// CellHeight is the height of one grid row.
func (f Field) CellHeight() float64 {
	return f.Height / float64(f.Rows)
}

// CellRect returns a rectangle of the given size centered in a grid cell.
func (f Field) CellRect(c Cell, size core.Size) core.Rect {
	cw, ch := f.CellWidth(), f.CellHeight()
	x := f.SafeWidth + float64(c.Col)*cw + (cw-size.W)/2
	y := float64(c.Row)*ch + (ch-size.H)/2
	return core.NewRect(x, y, size.W, size.H)
}

// PanGoal is how far the camera travels between two levels.
// The next level's entry margin overlaps the current level's exit margin.
func (f Field) PanGoal() float64 {
	return f.Width - f.SafeWidth
}

// ExitThreshold is the x a character of the given height must pass to leave
// the level: halfway into the exit margin.
func (f Field) ExitThreshold(characterHeight float64) float64 {
	return f.Width - f.SafeWidth + characterHeight/2
}

// Bounds returns the whole field.
func (f Field) Bounds() core.Rect {
	return core.NewRect(0, 0, f.Width, f.Height)
}
