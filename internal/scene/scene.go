// Package scene holds the screens of the game and the manager that switches
// between them. Exactly one scene is current at a time; the frame loop polls
// its input, updates it and renders it.
package scene

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappyball/internal/assets"
	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
)

// Name identifies a registered scene.
type Name string

const (
	NameStart Name = "start"
	NameMain  Name = "main"
	NameDeath Name = "death"
)

// Scene is one screen of the game.
type Scene interface {
	// PollInput drains the pending events and reacts to them.
	PollInput(src core.EventSource)
	Update()
	Render(dst core.Canvas)
}

// UnknownSceneError is the panic value of a switch to an unregistered scene.
type UnknownSceneError struct {
	Name Name
}

func (e *UnknownSceneError) Error() string {
	return fmt.Sprintf("scene: unknown scene %q", e.Name)
}

// Deps are the collaborators shared by every scene.
type Deps struct {
	Config  config.Config
	Catalog *assets.Catalog
	Audio   core.Audio
	Logger  *log.Logger
	Now     func() time.Time
	Rand    *rand.Rand
}

// withDefaults fills the optional collaborators.
func (d Deps) withDefaults() Deps {
	if d.Catalog == nil {
		if cat, err := assets.Load(); err == nil {
			d.Catalog = cat
		}
	}
	if d.Audio == nil {
		d.Audio = core.NopAudio{}
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return d
}

// drawPrompt clears the screen and draws a white prompt.
func drawPrompt(dst core.Canvas, bg core.Color, text string, p config.Prompts) {
	dst.Clear(bg)
	dst.DrawText(core.RenderText(text, core.ColorWhite), p.X, p.Y)
}
