package config

import (
	_ "embed"
)

//go:embed defaults/flappyball.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded constants. Used when the embedded YAML
// cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Display: Display{
			Width:  1280,
			Height: 720,
		},
		Physics: Physics{
			Gravity:      1700,
			InitialSpeed: 200,
			JumpImpulse:  -450,
		},
		Obstacles: Obstacles{
			Frequency:      90,
			Speed:          -200,
			GapHeight:      2,
			SpawnX:         1280,
			RetireX:        -200,
			MinGapLocation: 2,
			MaxGapLocation: 10,
		},
		Score: Score{
			X:     640,
			Y:     50,
			Color: "white",
		},
		Audio: Audio{
			JumpVolume:  0.1,
			DeathVolume: 0.5,
			MusicVolume: 0.1,
		},
		Prompts: Prompts{
			Start: "Press Space To Begin",
			Death: "You Died! Press Space to Restart",
			X:     400,
			Y:     200,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
