package flappy

import (
	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
)

// Player is the ball. Speed is vertical: positive falls, negative rises.
type Player struct {
	Entity
	Gravity     float64
	JumpImpulse float64
	Box         core.Rect

	audio core.Audio
}

// NewPlayer creates a player at (x, y) falling with the configured initial speed.
func NewPlayer(x, y float64, phys config.Physics, sprite core.Sprite, audio core.Audio) *Player {
	if audio == nil {
		audio = core.NopAudio{}
	}
	p := &Player{
		Entity: Entity{
			X:      x,
			Y:      y,
			Speed:  phys.InitialSpeed,
			Sprite: sprite,
		},
		Gravity:     phys.Gravity,
		JumpImpulse: phys.JumpImpulse,
		audio:       audio,
	}
	p.Box = sprite.Bounds(p.Origin())
	return p
}

// Update advances the player by dt seconds.
// Position is clamped at the top edge; speed is left untouched.
// There is no bottom clamp: falling off is a death condition checked by the caller.
func (p *Player) Update(dt float64) {
	p.Y += p.Speed * dt
	p.Speed += p.Gravity * dt

	if p.Y < 0 {
		p.Y = 0
	}

	p.Box = p.Box.MoveTo(p.Origin())
}

// Jump replaces the current speed with the jump impulse and plays the jump sound.
func (p *Player) Jump() {
	p.Speed = p.JumpImpulse
	p.audio.Play(core.SoundJump)
}

// PlayDeathSound plays the sound of the player dying.
func (p *Player) PlayDeathSound() {
	p.audio.Play(core.SoundDeath)
}

var _ Body = (*Player)(nil)
