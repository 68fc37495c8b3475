package core

// Sprite is the visual handle of an entity: its pixel size plus the glyph art
// used to draw it on a character grid.
type Sprite struct {
	Key   string
	W, H  int      // Size in playfield pixels
	Glyph rune     // Fill character when Tile is empty
	Color Color    // Foreground color
	Tile  []string // Optional pattern repeated over the covered cells
}

// Bounds returns the sprite's rectangle with its origin at (x, y).
func (s Sprite) Bounds(x, y int) Rect {
	return NewRect(x, y, s.W, s.H)
}

// Text is a rendered string ready to be drawn.
type Text struct {
	Value string
	Color Color
}

// RenderText turns a string into a drawable in the given color.
// Terminal output has a single font, so only the color is kept.
func RenderText(value string, color Color) Text {
	return Text{Value: value, Color: color}
}

// Canvas is the render surface scenes draw on.
// All coordinates are playfield pixels; the implementation maps them to
// whatever the display actually is.
type Canvas interface {
	// Size returns the playfield size in pixels.
	Size() (w, h int)

	// Clear blanks the whole surface with the given background.
	Clear(bg Color)

	// DrawSprite draws a sprite with its top-left corner at (x, y).
	DrawSprite(s Sprite, x, y int)

	// DrawText draws text with its first character at (x, y).
	DrawText(t Text, x, y int)
}
