package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridtoken/internal/core"
)

// keyMap defines the key bindings for the game view.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	ToggleView key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "move north"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "move south"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move west"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move east"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v", "tab"),
			key.WithHelp("v", "toggle view mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.ToggleView, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ToggleView, k.Quit},
	}
}

// intentFor translates a key message into a game intent.
func (k keyMap) intentFor(msg tea.KeyMsg) core.Intent {
	switch {
	case key.Matches(msg, k.Up):
		return core.IntentMoveNorth
	case key.Matches(msg, k.Down):
		return core.IntentMoveSouth
	case key.Matches(msg, k.Left):
		return core.IntentMoveWest
	case key.Matches(msg, k.Right):
		return core.IntentMoveEast
	case key.Matches(msg, k.ToggleView):
		return core.IntentToggleView
	case key.Matches(msg, k.Quit):
		return core.IntentQuit
	}
	return core.IntentNone
}
