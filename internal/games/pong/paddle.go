package pong

import "github.com/vovakirdan/box-arcade/internal/core"

// Axis is the direction a paddle slides along.
type Axis int

const (
	Vertical   Axis = iota // Left and right paddles, moved with Up/Down
	Horizontal             // Top and bottom paddles, moved with Left/Right
)

// Paddle is a player's bat. It moves a fixed distance per held key per tick
// with no momentum and is clamped to the field.
type Paddle struct {
	rect   core.Rect
	axis   Axis
	speed  int
	player core.PlayerID
}

// NewPaddle creates a paddle centered at (cx, cy). Thickness and length are
// swapped for horizontal paddles.
func NewPaddle(cx, cy, thickness, length, speed int, axis Axis, player core.PlayerID) *Paddle {
	w, h := thickness, length
	if axis == Horizontal {
		w, h = length, thickness
	}
	return &Paddle{
		rect:   core.RectCentered(cx, cy, w, h),
		axis:   axis,
		speed:  speed,
		player: player,
	}
}

// Update moves the paddle for each held direction key, then clamps it.
func (p *Paddle) Update(in core.InputFrame, bounds core.Rect) {
	back, fwd := core.ActionUp, core.ActionDown
	if p.axis == Horizontal {
		back, fwd = core.ActionLeft, core.ActionRight
	}

	delta := 0
	if in.Has(back) {
		delta -= p.speed
	}
	if in.Has(fwd) {
		delta += p.speed
	}

	if p.axis == Vertical {
		p.rect.Y += delta
	} else {
		p.rect.X += delta
	}
	p.rect = p.rect.ClampTo(bounds)
}

// Rect returns the collision rectangle.
func (p *Paddle) Rect() core.Rect {
	return p.rect
}

// Axis returns the movement axis.
func (p *Paddle) Axis() Axis {
	return p.axis
}

// Player returns the controlling player.
func (p *Paddle) Player() core.PlayerID {
	return p.player
}

// Render draws the paddle.
func (p *Paddle) Render(dst *core.Canvas) {
	dst.FillRect(p.rect, core.ColorWhite)
}
