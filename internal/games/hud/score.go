// Package hud holds on-screen elements shared by the games.
package hud

import (
	"strconv"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// BoxSize is the side of the square a score counter is anchored in.
const BoxSize = 50

// ScoreCounter renders a number whose text surface is rebuilt only when the
// number changes.
type ScoreCounter struct {
	rect  core.Rect
	score int
	size  float64
	color core.Color
	image *core.Lazy[core.Surface]
}

// NewScoreCounter creates a counter showing 0, anchored in a box centered at (cx, cy).
func NewScoreCounter(cx, cy int, size float64, clr core.Color) *ScoreCounter {
	s := &ScoreCounter{
		rect:  core.RectCentered(cx, cy, BoxSize, BoxSize),
		size:  size,
		color: clr,
	}
	s.image = core.NewLazy(func() core.Surface {
		return core.TextSurface(s.Text(), s.size, s.color)
	})
	return s
}

// Set replaces the displayed score.
func (s *ScoreCounter) Set(score int) {
	if score != s.score {
		s.score = score
		s.image.Invalidate()
	}
}

// Add increments the displayed score by n.
func (s *ScoreCounter) Add(n int) {
	s.Set(s.score + n)
}

// Score returns the displayed score.
func (s *ScoreCounter) Score() int {
	return s.score
}

// Text returns the displayed string.
func (s *ScoreCounter) Text() string {
	return strconv.Itoa(s.score)
}

// Rect returns the anchor box.
func (s *ScoreCounter) Rect() core.Rect {
	return s.rect
}

// Builds returns how many times the text surface has been rendered.
func (s *ScoreCounter) Builds() int {
	return s.image.Builds()
}

// Render draws the text at the anchor box's top-left corner.
func (s *ScoreCounter) Render(dst *core.Canvas) {
	dst.DrawSurface(s.rect.X, s.rect.Y, s.image.Get())
}
