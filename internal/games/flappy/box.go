package flappy

import (
	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
)

// Box is the player. Velocity is positive upward.
type Box struct {
	rect core.Rect
	vel  int
	cfg  config.FlappyPlayer
}

// NewBox creates a resting box centered at (cx, cy).
func NewBox(cx, cy int, cfg config.FlappyPlayer) *Box {
	return &Box{
		rect: core.RectCentered(cx, cy, cfg.Size, cfg.Size),
		cfg:  cfg,
	}
}

// Update launches the box while flap is held, moves it, applies gravity down
// to the terminal velocity and clamps it to bounds. Resting on the bottom edge
// is not fatal.
func (b *Box) Update(flap bool, bounds core.Rect) {
	if flap {
		b.vel = b.cfg.LaunchVelocity
	}

	b.rect.Y -= b.vel
	if b.vel > b.cfg.TerminalVelocity {
		b.vel = max(b.vel-b.cfg.Gravity, b.cfg.TerminalVelocity)
	}

	b.rect = b.rect.ClampTo(bounds)
}

// Recenter puts the box back at (cx, cy) at rest.
func (b *Box) Recenter(cx, cy int) {
	b.rect = b.rect.CenteredAt(cx, cy)
	b.vel = 0
}

// Rect returns the collision rectangle.
func (b *Box) Rect() core.Rect {
	return b.rect
}

// Velocity returns the vertical velocity.
func (b *Box) Velocity() int {
	return b.vel
}

// Render draws the box.
func (b *Box) Render(dst *core.Canvas) {
	dst.FillRect(b.rect, core.ColorYellow)
}
