package scene

import (
	"time"

	"github.com/vovakirdan/flappyball/internal/core"
	"github.com/vovakirdan/flappyball/internal/games/flappy"
)

// Main is the playing scene: it owns one run of the simulation.
type Main struct {
	manager *Manager
	deps    Deps

	Player      *flappy.Player
	Environment *flappy.Environment
	Score       *flappy.Score

	background core.Sprite
	previous   time.Time
	started    bool
}

// NewMain starts a run with the player at the centre of the playfield.
func NewMain(manager *Manager, deps Deps) *Main {
	deps = deps.withDefaults()
	cfg := deps.Config

	player := flappy.NewPlayer(
		float64(cfg.Display.Width)/2,
		float64(cfg.Display.Height)/2,
		cfg.Physics,
		deps.Catalog.Player(),
		deps.Audio,
	)

	return &Main{
		manager:     manager,
		deps:        deps,
		Player:      player,
		Environment: flappy.NewEnvironment(player, cfg, deps.Catalog.Obstacle(), deps.Rand),
		Score:       flappy.NewScore(cfg.Score.X, cfg.Score.Y, cfg.Score.ColorValue()),
		background:  deps.Catalog.Background(),
	}
}

func (s *Main) PollInput(src core.EventSource) {
	for _, ev := range src.Poll() {
		switch {
		case ev.Kind == core.EventQuit:
			s.manager.Quit()
		case ev.Pressed(core.KeySpace):
			s.Player.Jump()
		}
	}
}

// Update advances the run by the wall-clock time since the previous update.
// The first update of a run has a zero step.
func (s *Main) Update() {
	dt := s.delta()

	s.Player.Update(dt)
	s.Environment.Update(dt)

	if s.dead() {
		s.Player.PlayDeathSound()
		s.deps.Logger.Info("player died", "score", s.Score.Value)
		s.manager.SetScene(NameDeath)
	}

	if s.Environment.ScoreTracker > s.Score.Value {
		s.Score.Add()
	}
	s.Score.Update()
}

func (s *Main) delta() float64 {
	now := s.deps.Now()
	if !s.started {
		s.started = true
		s.previous = now
	}
	dt := now.Sub(s.previous).Seconds()
	s.previous = now
	return dt
}

func (s *Main) dead() bool {
	return s.Environment.Collides(s.Player.Box) || s.Player.Y > float64(s.deps.Config.Display.Height)
}

func (s *Main) Render(dst core.Canvas) {
	dst.Clear(core.ColorBlack)
	dst.DrawSprite(s.background, 0, 0)

	s.Player.Render(dst)
	s.Environment.Render(dst)
	s.Score.Render(dst)
}
