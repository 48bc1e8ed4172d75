package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mousetrap/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings. Arrow keys,
// WASD and vi keys all steer.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: []actionBinding{
			{key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")), core.ActionQuit},
			{key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")), core.ActionLeft},
			{key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")), core.ActionRight},
			{key.NewBinding(key.WithKeys(" ", "down", "s", "j"), key.WithHelp("space/↓", "fall straight")), core.ActionStop},
			{key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")), core.ActionPause},
			{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")), core.ActionRestart},
		},
		menu: []menuBinding{
			{key.NewBinding(key.WithKeys("ctrl+c", "q", "esc")), MenuActionQuit},
			{key.NewBinding(key.WithKeys("w", "up", "k")), MenuActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j")), MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
			{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
		},
	}
}

// MapKey translates a key message to an action and reports whether it is
// a quit request. Unbound keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the key's action to frame. Quit is reported, not queued.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// GameBindings returns the in-game bindings for help views.
func (km *KeyMapper) GameBindings() []key.Binding {
	out := make([]key.Binding, len(km.game))
	for i, b := range km.game {
		out[i] = b.binding
	}
	return out
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
