package flappy

import (
	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
)

// Pipe is one half of a pipe pair.
type Pipe struct {
	rect core.Rect
}

// PipePair is an upper and lower pipe moving left in lock-step, with the gap
// between them. The pair owns both pipes.
type PipePair struct {
	upper   Pipe
	lower   Pipe
	x       int // Horizontal center of the pair
	speed   int
	outside bool
	scored  bool
}

// NewPipePair creates a pair centered on x with its gap centered on gapY.
func NewPipePair(x, gapY int, cfg config.FlappyPipes) *PipePair {
	return &PipePair{
		upper: Pipe{rect: core.RectCentered(x, gapY-cfg.Offset, cfg.Width, cfg.Height)},
		lower: Pipe{rect: core.RectCentered(x, gapY+cfg.Offset, cfg.Width, cfg.Height)},
		x:     x,
		speed: cfg.Speed,
	}
}

// Update moves both pipes left and flags the pair once it is fully off-screen.
func (p *PipePair) Update() {
	p.upper.rect.X -= p.speed
	p.lower.rect.X -= p.speed
	p.x -= p.speed
	if p.upper.rect.Right() < 0 && p.lower.rect.Right() < 0 {
		p.outside = true
	}
}

// Collides reports whether r touches either pipe.
func (p *PipePair) Collides(r core.Rect) bool {
	return p.upper.rect.Intersects(r) || p.lower.rect.Intersects(r)
}

// Pass marks the pair scored the first time its center is left of x.
// Returns true only on that first time.
func (p *PipePair) Pass(x int) bool {
	if p.scored || p.x >= x {
		return false
	}
	p.scored = true
	return true
}

// X returns the pair's horizontal center.
func (p *PipePair) X() int {
	return p.x
}

// Rects returns the upper and lower pipe rectangles.
func (p *PipePair) Rects() (upper, lower core.Rect) {
	return p.upper.rect, p.lower.rect
}

// Render draws both pipes.
func (p *PipePair) Render(dst *core.Canvas) {
	dst.FillRect(p.upper.rect, core.ColorLime)
	dst.FillRect(p.lower.rect, core.ColorLime)
}
