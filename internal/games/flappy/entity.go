// Package flappy implements the simulation of a Flappy Bird-style game:
// a ball falls under gravity and must pass through the gaps of walls built
// from square blocks, scoring a point for every wall it gets behind.
//
// The package is pure logic. Drawing and sound go through the collaborators
// in the core package.
package flappy

import "github.com/vovakirdan/flappyball/internal/core"

// Body is anything the simulation advances and draws each frame.
type Body interface {
	Update(dt float64)
	Render(dst core.Canvas)
}

// Entity is the shape shared by every moving, drawable object.
type Entity struct {
	X, Y   float64     // Top-left corner in playfield pixels
	Speed  float64     // Pixels per second along the entity's axis of motion
	Sprite core.Sprite // Visual representation
}

// Origin returns the position truncated to whole pixels.
func (e Entity) Origin() (int, int) {
	return int(e.X), int(e.Y)
}

// Render draws the sprite at the truncated position.
func (e Entity) Render(dst core.Canvas) {
	x, y := e.Origin()
	dst.DrawSprite(e.Sprite, x, y)
}
