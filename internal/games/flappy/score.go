package flappy

import (
	"strconv"

	"github.com/vovakirdan/flappyball/internal/core"
)

// Score is the displayed point counter. It only ever goes up.
type Score struct {
	Value int
	X, Y  int

	color core.Color
	text  core.Text
}

// NewScore creates a zero score drawn at (x, y).
func NewScore(x, y int, color core.Color) *Score {
	s := &Score{X: x, Y: y, color: color}
	s.Update()
	return s
}

// Add counts one point.
func (s *Score) Add() {
	s.Value++
}

// Update refreshes the cached text from the value.
func (s *Score) Update() {
	s.text = core.RenderText(strconv.Itoa(s.Value), s.color)
}

// Text returns the cached text.
func (s *Score) Text() string {
	return s.text.Value
}

// Render draws the cached text.
func (s *Score) Render(dst core.Canvas) {
	dst.DrawText(s.text, s.X, s.Y)
}
