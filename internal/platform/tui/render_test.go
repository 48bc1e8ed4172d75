package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/mousetrap/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: 3")
	s.DrawTextColored(9, 0, "◆", core.ColorBrightYellow)
	s.DrawHLine(0, 1, 12, '─', core.ColorGray)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "Score: 3 ◆  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != strings.Repeat("─", 12) {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); ansi.Strip(got) != "x" {
		t.Errorf("unknown color rendered %q", got)
	}
}
