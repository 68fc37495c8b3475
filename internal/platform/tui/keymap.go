package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappyball/internal/core"
)

// KeyMap defines the game's key bindings.
type KeyMap struct {
	Flap key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Flap, k.Quit}}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap / start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Event translates a key message into a game event.
// Every flap key arrives as Space; keys without a binding still arrive
// so scenes see that something was pressed.
func (k KeyMap) Event(msg tea.KeyMsg) core.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return core.QuitEvent()
	case key.Matches(msg, k.Flap):
		return core.KeyEvent(core.KeySpace)
	}

	switch msg.Type {
	case tea.KeyEnter:
		return core.KeyEvent(core.KeyEnter)
	case tea.KeyEsc:
		return core.KeyEvent(core.KeyEscape)
	}
	return core.KeyEvent(core.KeyOther)
}
