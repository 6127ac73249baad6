package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/deepline/internal/core"
)

// KeyMap defines the key bindings for the play screen.
type KeyMap struct {
	Descend key.Binding
	Sticky  key.Binding
	Start   key.Binding
	Restart key.Binding
	Pause   key.Binding
	Summary key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Descend, k.Start, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Descend, k.Sticky, k.Start, k.Restart},
		{k.Pause, k.Summary, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Descend: key.NewBinding(
			key.WithKeys(" ", "down", "j"),
			key.WithHelp("space", "hold to sink"),
		),
		Sticky: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle sink"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Summary: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "catch log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to the game action it drives.
// Platform-only keys (sticky, summary, help) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Descend):
		return core.ActionDescend
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	default:
		return core.ActionNone
	}
}
