package mousetrap

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/mousetrap/internal/assets"
	"github.com/vovakirdan/mousetrap/internal/core"
)

const (
	minScreenW = 32
	minScreenH = 10

	// hudRows are the screen rows above the field.
	hudRows = 2

	timerBarWidth = 20

	// Background dots are drawn on a lattice of this many logical units.
	dotSpacingX = 160
	dotSpacingY = 180
)

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.seq == nil {
		return
	}

	v := g.viewport(dst)

	g.renderBackground(dst, v)
	g.renderLevel(dst, v, g.seq.Current())
	if next := g.seq.Next(); next != nil {
		g.renderLevel(dst, v, next)
	}
	if g.player.Visible {
		v.drawEntity(dst, g.player.Entity, g.set.playerSprite)
	}
	if paw := g.catcher.Paw(); paw != nil {
		v.drawEntity(dst, paw.Entity, paw.Sprite)
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// viewport maps logical field units to screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	h := dst.Height() - hudRows
	return viewport{
		sx:  float64(dst.Width()) / g.set.field.Width,
		sy:  float64(h) / g.set.field.Height,
		top: hudRows,
		w:   dst.Width(),
		h:   h,
	}
}

// cellSpan converts a logical interval to a cell interval that is at least
// one cell wide.
func cellSpan(from, to, scale float64) (int, int) {
	a := int(math.Round(from * scale))
	b := int(math.Round(to * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func (v viewport) drawEntity(dst *core.Screen, e core.Entity, sprite assets.Handle) {
	r := e.ScreenRect()
	x0, x1 := cellSpan(r.X, r.Right(), v.sx)
	y0, y1 := cellSpan(r.Y, r.Bottom(), v.sy)
	glyph := sprite.Glyph(e.Orientation)
	for y := max(y0, 0); y < min(y1, v.h); y++ {
		for x := max(x0, 0); x < min(x1, v.w); x++ {
			dst.SetColored(x, v.top+y, glyph, sprite.Color())
		}
	}
}

func (g *Game) renderBackground(dst *core.Screen, v viewport) {
	bg := g.set.backgroundSprite
	glyph := bg.Glyph(core.OrientationUp)
	offset := g.background.Offset

	// Two tiles cover the field at any wrapped offset.
	for lx := offset; lx < g.set.field.Width; lx += dotSpacingX {
		x := int(math.Round(lx * v.sx))
		if x < 0 || x >= v.w {
			continue
		}
		for ly := dotSpacingY / 2.0; ly < g.set.field.Height; ly += dotSpacingY {
			dst.SetColored(x, v.top+int(ly*v.sy), glyph, bg.Color())
		}
	}
}

func (g *Game) renderLevel(dst *core.Screen, v viewport, lvl *Level) {
	for _, trap := range lvl.Traps {
		v.drawEntity(dst, trap, g.set.trapSprite)
	}
	for _, cheese := range lvl.Cheeses {
		v.drawEntity(dst, cheese, g.set.cheeseSprite)
	}
}

// renderHUD draws score, best and level on row 0 and the timer bar on row 1.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", st.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Best: %d", st.HighScore))
	levelText := fmt.Sprintf("Level: %d", st.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	if !g.timerEnabled() {
		dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
		dst.DrawTextCentered(1, " PRACTICE ")
		return
	}

	filled := int(math.Ceil(g.timer.Fraction() * timerBarWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", timerBarWidth-filled)
	color := core.ColorGreen
	if g.timer.Warning() {
		color = core.ColorRed
	}
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
	x := (dst.Width() - timerBarWidth) / 2
	dst.DrawTextColored(x, 1, bar, color)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	mid := hudRows + (dst.Height()-hudRows)/2
	switch {
	case g.paused:
		dst.DrawTextCentered(mid, " PAUSED ")
		dst.DrawTextCentered(mid+1, " P to resume ")
	case g.catching:
		dst.DrawTextCentered(mid, " CAUGHT! ")
	}
}
