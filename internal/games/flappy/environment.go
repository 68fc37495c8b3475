package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
)

// Environment owns the walls: it spawns them on a frame counter, moves them,
// retires the ones that left the screen and counts the ones the player passed.
type Environment struct {
	Obstacles    []*Obstacle // Oldest first
	SpawnTimer   int         // Frames since the last spawn
	ScoreTracker int         // Walls passed so far

	SpawnX        float64
	Frequency     int // Frames between spawns
	ObstacleSpeed float64
	ObstacleGap   int

	retireX      float64
	minGapLoc    int
	maxGapLoc    int
	screenHeight int
	player       *Player
	sprite       core.Sprite
	rng          *rand.Rand
}

// NewEnvironment creates an empty environment around the player.
func NewEnvironment(player *Player, cfg config.Config, sprite core.Sprite, rng *rand.Rand) *Environment {
	return &Environment{
		Obstacles:     make([]*Obstacle, 0, 8),
		SpawnX:        cfg.Obstacles.SpawnX,
		Frequency:     cfg.Obstacles.Frequency,
		ObstacleSpeed: cfg.Obstacles.Speed,
		ObstacleGap:   cfg.Obstacles.GapHeight,
		retireX:       cfg.Obstacles.RetireX,
		minGapLoc:     cfg.Obstacles.MinGapLocation,
		maxGapLoc:     cfg.Obstacles.MaxGapLocation,
		screenHeight:  cfg.Display.Height,
		player:        player,
		sprite:        sprite,
		rng:           rng,
	}
}

// Update advances every wall by dt seconds, scores passed walls, retires
// walls beyond the left edge and spawns a new one when the timer runs out.
//
// The spawn timer counts calls, not seconds, so spawn cadence follows the
// frame rate while movement follows dt.
func (e *Environment) Update(dt float64) {
	for _, o := range e.Obstacles {
		o.Update(dt)

		if !o.Passed && o.X < e.player.X {
			o.Passed = true
			e.ScoreTracker++
		}
	}

	// Walls share speed and spawn x, so they leave in spawn order.
	for len(e.Obstacles) > 0 && e.Obstacles[0].X < e.retireX {
		e.removeOldest()
	}

	if e.SpawnTimer > e.Frequency {
		e.Spawn()
		e.SpawnTimer = 0
	}
	e.SpawnTimer++
}

// Spawn adds a wall at the spawn line with a random gap location.
func (e *Environment) Spawn() *Obstacle {
	gapLoc := e.minGapLoc + e.rng.Intn(e.maxGapLoc-e.minGapLoc+1)
	o := NewObstacle(e.SpawnX, 0, e.ObstacleSpeed, e.screenHeight, e.ObstacleGap, gapLoc, e.sprite)
	e.Obstacles = append(e.Obstacles, o)
	return o
}

func (e *Environment) removeOldest() {
	e.Obstacles[0] = nil
	e.Obstacles = e.Obstacles[1:]
}

// Collides reports whether any block of any wall overlaps the box.
// Walls are checked oldest first; the scan stops at the first hit.
func (e *Environment) Collides(box core.Rect) bool {
	for _, o := range e.Obstacles {
		if o.Collides(box) {
			return true
		}
	}
	return false
}

// Render draws every wall.
func (e *Environment) Render(dst core.Canvas) {
	for _, o := range e.Obstacles {
		o.Render(dst)
	}
}

var _ Body = (*Environment)(nil)
