package scene

import (
	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
)

// Start is the title screen. Space begins the run.
type Start struct {
	manager *Manager
	prompts config.Prompts
}

func NewStart(manager *Manager, prompts config.Prompts) *Start {
	return &Start{manager: manager, prompts: prompts}
}

func (s *Start) PollInput(src core.EventSource) {
	for _, ev := range src.Poll() {
		switch {
		case ev.Kind == core.EventQuit:
			s.manager.Quit()
		case ev.Pressed(core.KeySpace):
			s.manager.SetScene(NameMain)
		}
	}
}

func (s *Start) Update() {}

func (s *Start) Render(dst core.Canvas) {
	drawPrompt(dst, core.ColorBlack, s.prompts.Start, s.prompts)
}
