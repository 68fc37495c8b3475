// Package config provides YAML-based tuning constants for the game.
// The constants are embedded at build time and validated at boot.
package config

import "github.com/vovakirdan/flappyball/internal/core"

// Config contains all tuning constants of the game.
type Config struct {
	Display   Display   `yaml:"display"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Score     Score     `yaml:"score"`
	Audio     Audio     `yaml:"audio"`
	Prompts   Prompts   `yaml:"prompts"`
}

// Display defines the fixed playfield size in pixels.
type Display struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Physics defines player kinematics. Units are pixels and seconds.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration
	InitialSpeed float64 `yaml:"initial_speed"` // Vertical speed at spawn
	JumpImpulse  float64 `yaml:"jump_impulse"`  // Speed set by a jump (negative = up)
}

// Obstacles defines wall generation and movement.
type Obstacles struct {
	Frequency      int     `yaml:"frequency"`        // Frames between spawns
	Speed          float64 `yaml:"speed"`            // Horizontal speed (negative = left)
	GapHeight      int     `yaml:"gap_height"`       // Passed as the obstacle's gap height
	SpawnX         float64 `yaml:"spawn_x"`          // Where new walls appear
	RetireX        float64 `yaml:"retire_x"`         // Walls left of this are removed
	MinGapLocation int     `yaml:"min_gap_location"` // Inclusive bounds of the random gap location
	MaxGapLocation int     `yaml:"max_gap_location"`
}

// Score defines where the counter is drawn.
type Score struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Color string `yaml:"color"`
}

// ColorValue returns the parsed counter color, white when the name is unknown.
func (s Score) ColorValue() core.Color {
	c, err := core.ParseColor(s.Color)
	if err != nil {
		return core.ColorWhite
	}
	return c
}

// Audio defines per-sound volumes applied at load time.
type Audio struct {
	JumpVolume  float64 `yaml:"jump_volume"`
	DeathVolume float64 `yaml:"death_volume"`
	MusicVolume float64 `yaml:"music_volume"`
}

// Prompts defines the text of the start and death screens.
type Prompts struct {
	Start string `yaml:"start"`
	Death string `yaml:"death"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
}
