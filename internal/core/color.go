package core

import "fmt"

// Color represents a terminal color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGray
	ColorBrightYellow
	ColorBrightGreen
	ColorMaroon // Dark red of the death screen
	ColorNavy
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"black":         ColorBlack,
	"white":         ColorWhite,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"cyan":          ColorCyan,
	"gray":          ColorGray,
	"bright_yellow": ColorBrightYellow,
	"bright_green":  ColorBrightGreen,
	"maroon":        ColorMaroon,
	"navy":          ColorNavy,
}

// ParseColor resolves a color by its lowercase name.
// An empty name maps to ColorDefault.
func ParseColor(name string) (Color, error) {
	if name == "" {
		return ColorDefault, nil
	}
	c, ok := colorNames[name]
	if !ok {
		return ColorDefault, fmt.Errorf("core: unknown color %q", name)
	}
	return c, nil
}
