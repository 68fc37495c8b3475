package scene

import (
	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
)

// Death is shown after the player dies. Space starts a fresh run.
type Death struct {
	manager *Manager
	prompts config.Prompts
}

func NewDeath(manager *Manager, prompts config.Prompts) *Death {
	return &Death{manager: manager, prompts: prompts}
}

func (d *Death) PollInput(src core.EventSource) {
	for _, ev := range src.Poll() {
		switch {
		case ev.Kind == core.EventQuit:
			d.manager.Quit()
		case ev.Pressed(core.KeySpace):
			d.manager.ResetMain()
			d.manager.SetScene(NameMain)
		}
	}
}

func (d *Death) Update() {}

func (d *Death) Render(dst core.Canvas) {
	drawPrompt(dst, core.ColorMaroon, d.prompts.Death, d.prompts)
}
