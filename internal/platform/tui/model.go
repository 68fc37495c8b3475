package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappyball/internal/app"
	"github.com/vovakirdan/flappyball/internal/core"
)

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *app.Game
	queue    *core.EventQueue
	canvas   *Canvas
	keys     KeyMap
	help     help.Model
	tickRate int
	quitting bool
}

// NewModel creates a model for a game that reads events from queue and draws on canvas.
func NewModel(game *app.Game, queue *core.EventQueue, canvas *Canvas, tickRate int) Model {
	return Model{
		game:     game,
		queue:    queue,
		canvas:   canvas,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: tickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Quit goes through the queue too; the frame that sees it ends the program.
		m.queue.Push(m.keys.Event(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height-footerHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one frame and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.game.Frame() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// View renders the last frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.canvas.Screen()) + "\n" + m.help.View(m.keys)
}

// Run plays the game in the alternate screen until it quits.
func Run(game *app.Game, queue *core.EventQueue, canvas *Canvas, tickRate int) error {
	p := tea.NewProgram(
		NewModel(game, queue, canvas, tickRate),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
