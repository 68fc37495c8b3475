package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
)

var (
	testPlayerSprite = core.Sprite{Key: "player", W: 32, H: 32, Glyph: 'o'}
	testBlockSprite  = core.Sprite{Key: "obstacle", W: BlockSize, H: BlockSize, Glyph: '#'}
)

type spriteCall struct {
	key  string
	x, y int
}

type textCall struct {
	text string
	x, y int
}

// recordingCanvas remembers every draw call.
type recordingCanvas struct {
	cleared []core.Color
	sprites []spriteCall
	texts   []textCall
}

func (c *recordingCanvas) Size() (int, int) { return 1280, 720 }
func (c *recordingCanvas) Clear(bg core.Color) { c.cleared = append(c.cleared, bg) }

func (c *recordingCanvas) DrawSprite(s core.Sprite, x, y int) {
	c.sprites = append(c.sprites, spriteCall{key: s.Key, x: x, y: y})
}

func (c *recordingCanvas) DrawText(t core.Text, x, y int) {
	c.texts = append(c.texts, textCall{text: t.Value, x: x, y: y})
}

// recordingAudio counts played sounds.
type recordingAudio struct {
	played map[core.Sound]int
}

func newRecordingAudio() *recordingAudio {
	return &recordingAudio{played: make(map[core.Sound]int)}
}

func (a *recordingAudio) Play(s core.Sound) { a.played[s]++ }
func (a *recordingAudio) SetVolume(core.Sound, float64) {}

func newTestPlayer(audio core.Audio) *Player {
	return NewPlayer(640, 360, config.DefaultConfig().Physics, testPlayerSprite, audio)
}

// newTestEnvironment returns an environment that never spawns on its own.
func newTestEnvironment(p *Player) *Environment {
	cfg := config.DefaultConfig()
	cfg.Obstacles.Frequency = 1 << 30
	return NewEnvironment(p, cfg, testBlockSprite, rand.New(rand.NewSource(1)))
}

// placePlayer moves the player and refreshes its box without moving it further.
func placePlayer(p *Player, x, y float64) {
	p.X = x
	p.Y = y
	p.Speed = 0
	p.Gravity = 0
	p.Update(0)
}
