package config

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappyball/internal/core"
)

// Load returns the embedded constants, validated.
// Falls back to DefaultConfig if the embedded YAML does not parse.
func Load() (Config, error) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid defaults: %w", err)
	}
	return cfg, nil
}

// Parse decodes a YAML document into a Config. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	return cfg, nil
}

// Validate checks that the constants describe a playable game.
func (c Config) Validate() error {
	var errs []error

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("jump_impulse must be negative, got %v", c.Physics.JumpImpulse))
	}

	o := c.Obstacles
	if o.Frequency < 0 {
		errs = append(errs, fmt.Errorf("frequency must not be negative, got %d", o.Frequency))
	}
	if o.Speed >= 0 {
		errs = append(errs, fmt.Errorf("obstacle speed must be negative, got %v", o.Speed))
	}
	if o.RetireX >= o.SpawnX {
		errs = append(errs, fmt.Errorf("retire_x (%v) must be left of spawn_x (%v)", o.RetireX, o.SpawnX))
	}
	if o.GapHeight < 0 {
		errs = append(errs, fmt.Errorf("gap_height must not be negative, got %d", o.GapHeight))
	}
	if o.MinGapLocation < 0 || o.MinGapLocation > o.MaxGapLocation {
		errs = append(errs, fmt.Errorf("gap location range [%d, %d] is invalid", o.MinGapLocation, o.MaxGapLocation))
	}

	if _, err := core.ParseColor(c.Score.Color); err != nil {
		errs = append(errs, fmt.Errorf("score color: %w", err))
	}

	volumes := []struct {
		name  string
		value float64
	}{
		{"jump_volume", c.Audio.JumpVolume},
		{"death_volume", c.Audio.DeathVolume},
		{"music_volume", c.Audio.MusicVolume},
	}
	for _, v := range volumes {
		if v.value < 0 || v.value > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", v.name, v.value))
		}
	}

	return errors.Join(errs...)
}
