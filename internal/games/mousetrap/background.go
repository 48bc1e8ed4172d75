package mousetrap

import (
	"math"

	"github.com/vovakirdan/mousetrap/internal/core"
	"github.com/vovakirdan/mousetrap/internal/games/mousetrap/layout"
)

// Background is a field-sized tile repeated horizontally. Its offset wraps
// into (-width, 0] so panning can continue forever.
type Background struct {
	core.Entity
}

// NewBackground creates a background covering the field.
func NewBackground(field layout.Field) *Background {
	return &Background{Entity: core.NewEntity(core.KindProp, 0, 0, field.Width, field.Height)}
}

// SetOffset wraps x into one tile width.
func (b *Background) SetOffset(x float64) {
	w := b.Size.W
	if w <= 0 {
		b.Offset = 0
		return
	}
	o := math.Mod(x, w)
	if o > 0 {
		o -= w
	}
	b.Offset = o
}

// OffsetBy scrolls the background.
func (b *Background) OffsetBy(dx float64) {
	b.SetOffset(b.Offset + dx)
}
