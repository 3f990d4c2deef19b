package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the key bindings for a session.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Launch key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Launch, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "launch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Translate maps a key message to a game key.
// Keys the game does not bind map to core.KeyUnknown; they still count as
// presses so their release stops the paddle like any other key.
func (k KeyMap) Translate(msg tea.KeyMsg) (gameKey core.Key, quit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyUnknown, true
	case key.Matches(msg, k.Left):
		return core.KeyLeft, false
	case key.Matches(msg, k.Right):
		return core.KeyRight, false
	case key.Matches(msg, k.Launch):
		return core.KeySpace, false
	}
	return core.KeyUnknown, false
}
