// Package app ties the scene manager to its input, drawing and sound
// collaborators and runs one frame at a time.
package app

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
	"github.com/vovakirdan/flappyball/internal/scene"
)

// Game runs the frame loop body over a scene manager.
type Game struct {
	manager *scene.Manager
	source  core.EventSource
	canvas  core.Canvas
	audio   core.Audio
	logger  *log.Logger
	frames  uint64
}

// NewGame builds the scenes, applies the configured volumes and starts the music.
func NewGame(deps scene.Deps, source core.EventSource, canvas core.Canvas) *Game {
	if deps.Audio == nil {
		deps.Audio = core.NopAudio{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	applyVolumes(deps.Audio, deps.Config.Audio)
	deps.Audio.Play(core.SoundMusic)

	return &Game{
		manager: scene.NewManager(deps),
		source:  source,
		canvas:  canvas,
		audio:   deps.Audio,
		logger:  deps.Logger,
	}
}

func applyVolumes(a core.Audio, cfg config.Audio) {
	a.SetVolume(core.SoundJump, cfg.JumpVolume)
	a.SetVolume(core.SoundDeath, cfg.DeathVolume)
	a.SetVolume(core.SoundMusic, cfg.MusicVolume)
}

// Frame polls input, updates and renders the current scene, in that order.
// The scene is looked up again before each step since any step may switch it.
// Returns false once a quit has been requested.
func (g *Game) Frame() bool {
	g.manager.Current().PollInput(g.source)
	g.manager.Current().Update()
	g.manager.Current().Render(g.canvas)
	g.frames++

	return !g.manager.QuitRequested()
}

// Manager returns the scene manager.
func (g *Game) Manager() *scene.Manager {
	return g.manager
}

// Frames returns how many frames have run.
func (g *Game) Frames() uint64 {
	return g.frames
}

// Close releases the audio device when the backend holds one.
func (g *Game) Close() error {
	g.logger.Debug("game closed", "frames", g.frames)
	if c, ok := g.audio.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
