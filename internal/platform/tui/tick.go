// Package tui runs games in the terminal with Bubble Tea: the fixed-rate
// tick loop, key mapping, the mode menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mousetrap/internal/core"
)

// TickMsg advances the simulation by one step.
type TickMsg time.Time

// tickCmd schedules the next tick. Ticks are chained one at a time, so a
// slow frame delays the game instead of queueing steps.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
