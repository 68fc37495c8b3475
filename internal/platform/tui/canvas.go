package tui

import (
	"github.com/vovakirdan/flappyball/internal/core"
)

// Canvas draws pixel-space scenes onto a terminal cell grid.
// Sprites are stretched to the cells their pixel rectangle covers; text is
// placed at the cell of its origin and keeps the terminal's font.
type Canvas struct {
	screen *core.Screen
	width  int // Playfield size in pixels
	height int
}

// NewCanvas creates a canvas mapping a width×height pixel playfield onto cols×rows cells.
func NewCanvas(width, height, cols, rows int) *Canvas {
	return &Canvas{
		screen: core.NewScreen(cols, rows),
		width:  width,
		height: height,
	}
}

// Screen returns the cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Resize changes the cell grid. The pixel playfield is unchanged.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(max(cols, 1), max(rows, 1))
}

// Size returns the playfield size in pixels.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) Clear(bg core.Color) {
	c.screen.Fill(bg)
}

// DrawSprite paints the cells under the sprite rectangle. Tiled sprites
// repeat their pattern across the rectangle and leave spaces transparent.
func (c *Canvas) DrawSprite(s core.Sprite, x, y int) {
	x0, y0 := c.cellX(x), c.cellY(y)
	x1 := max(ceilDiv((x+s.W)*c.screen.Width(), c.width), x0+1)
	y1 := max(ceilDiv((y+s.H)*c.screen.Height(), c.height), y0+1)

	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			r := s.Glyph
			if len(s.Tile) > 0 {
				r = tileRune(s.Tile, cx-x0, cy-y0)
				if r == ' ' {
					continue
				}
			}
			c.screen.Set(cx, cy, r, s.Color)
		}
	}
}

func (c *Canvas) DrawText(t core.Text, x, y int) {
	c.screen.DrawText(c.cellX(x), c.cellY(y), t.Value, t.Color)
}

func (c *Canvas) cellX(px int) int {
	return floorDiv(px*c.screen.Width(), c.width)
}

func (c *Canvas) cellY(py int) int {
	return floorDiv(py*c.screen.Height(), c.height)
}

func tileRune(tile []string, col, row int) rune {
	line := []rune(tile[row%len(tile)])
	if len(line) == 0 {
		return ' '
	}
	return line[col%len(line)]
}

// floorDiv divides rounding toward negative infinity, so walls
// sliding off the left edge keep their width.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

var _ core.Canvas = (*Canvas)(nil)
