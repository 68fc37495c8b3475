// Package assets loads the sprite and sound catalog embedded in the binary.
// Every asset is resolved once at boot; a missing or malformed asset aborts
// startup with an AssetLoadError.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappyball/internal/core"
)

// Sprite keys every scene relies on.
const (
	SpritePlayer     = "player"
	SpriteObstacle   = "obstacle"
	SpriteBackground = "background"
)

//go:embed data/catalog.yaml
var catalogYAML []byte

// AssetLoadError reports an asset that could not be loaded.
type AssetLoadError struct {
	Key string
	Err error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("assets: cannot load %q: %v", e.Key, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// SoundSpec describes how a sound asset is produced.
type SoundSpec struct {
	Synth string `yaml:"synth"` // Name of the generator that renders the samples
	Loop  bool   `yaml:"loop"`  // Restart from the beginning when finished
}

type spriteSpec struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Glyph  string   `yaml:"glyph"`
	Color  string   `yaml:"color"`
	Tile   []string `yaml:"tile"`
}

type catalogFile struct {
	Sprites map[string]spriteSpec `yaml:"sprites"`
	Sounds  map[string]SoundSpec  `yaml:"sounds"`
}

// Catalog holds the resolved assets.
type Catalog struct {
	sprites map[string]core.Sprite
	sounds  map[string]SoundSpec
}

// Load resolves the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse resolves a catalog document and checks that every required asset exists.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, &AssetLoadError{Key: "catalog", Err: err}
	}

	c := &Catalog{
		sprites: make(map[string]core.Sprite, len(file.Sprites)),
		sounds:  make(map[string]SoundSpec, len(file.Sounds)),
	}

	for key, spec := range file.Sprites {
		sprite, err := spec.resolve(key)
		if err != nil {
			return nil, &AssetLoadError{Key: key, Err: err}
		}
		c.sprites[key] = sprite
	}

	for key, spec := range file.Sounds {
		if spec.Synth == "" {
			return nil, &AssetLoadError{Key: key, Err: fmt.Errorf("no synth given")}
		}
		c.sounds[key] = spec
	}

	for _, key := range []string{SpritePlayer, SpriteObstacle, SpriteBackground} {
		if _, ok := c.sprites[key]; !ok {
			return nil, &AssetLoadError{Key: key, Err: fmt.Errorf("sprite missing from catalog")}
		}
	}
	for _, s := range []core.Sound{core.SoundJump, core.SoundDeath, core.SoundMusic} {
		if _, ok := c.sounds[s.String()]; !ok {
			return nil, &AssetLoadError{Key: s.String(), Err: fmt.Errorf("sound missing from catalog")}
		}
	}

	return c, nil
}

func (s spriteSpec) resolve(key string) (core.Sprite, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return core.Sprite{}, fmt.Errorf("size must be positive, got %dx%d", s.Width, s.Height)
	}

	color, err := core.ParseColor(s.Color)
	if err != nil {
		return core.Sprite{}, err
	}

	glyph := ' '
	if s.Glyph != "" {
		if utf8.RuneCountInString(s.Glyph) != 1 {
			return core.Sprite{}, fmt.Errorf("glyph %q must be a single character", s.Glyph)
		}
		glyph, _ = utf8.DecodeRuneInString(s.Glyph)
	}
	if s.Glyph == "" && len(s.Tile) == 0 {
		return core.Sprite{}, fmt.Errorf("needs a glyph or a tile")
	}

	return core.Sprite{
		Key:   key,
		W:     s.Width,
		H:     s.Height,
		Glyph: glyph,
		Color: color,
		Tile:  s.Tile,
	}, nil
}

// Sprite returns the sprite registered under key.
func (c *Catalog) Sprite(key string) (core.Sprite, bool) {
	s, ok := c.sprites[key]
	return s, ok
}

// Player returns the player sprite.
func (c *Catalog) Player() core.Sprite { return c.sprites[SpritePlayer] }

// Obstacle returns the wall block sprite.
func (c *Catalog) Obstacle() core.Sprite { return c.sprites[SpriteObstacle] }

// Background returns the backdrop of the main scene.
func (c *Catalog) Background() core.Sprite { return c.sprites[SpriteBackground] }

// Sound returns the spec of a sound asset.
func (c *Catalog) Sound(s core.Sound) (SoundSpec, bool) {
	spec, ok := c.sounds[s.String()]
	return spec, ok
}

// Keys lists every sprite and sound key, sorted. Used for the boot log line.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.sprites)+len(c.sounds))
	for k := range c.sprites {
		keys = append(keys, "sprite:"+k)
	}
	for k := range c.sounds {
		keys = append(keys, "sound:"+k)
	}
	sort.Strings(keys)
	return keys
}
