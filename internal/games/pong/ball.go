package pong

import (
	"math/rand"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// diagonals are the directions a served ball may take.
var diagonals = [4][2]int{
	{-1, -1},
	{-1, 1},
	{1, -1},
	{1, 1},
}

// Ball moves diagonally at constant speed. Each direction component is ±1;
// bounces only flip signs.
type Ball struct {
	rect   core.Rect
	dx, dy int
	speed  int

	// Spawn state restored by Reset.
	originX, originY int
	originDX         int
	originDY         int
	originSpeed      int
}

// NewBall creates a ball centered at (cx, cy) and remembers that state for Reset.
func NewBall(cx, cy, size, dx, dy, speed int) *Ball {
	return &Ball{
		rect:        core.RectCentered(cx, cy, size, size),
		dx:          dx,
		dy:          dy,
		speed:       speed,
		originX:     cx,
		originY:     cy,
		originDX:    dx,
		originDY:    dy,
		originSpeed: speed,
	}
}

// Update moves the ball one tick.
func (b *Ball) Update() {
	b.rect.X += b.dx * b.speed
	b.rect.Y += b.dy * b.speed
}

// BounceX inverts horizontal direction.
func (b *Ball) BounceX() {
	b.dx = -b.dx
}

// BounceY inverts vertical direction.
func (b *Ball) BounceY() {
	b.dy = -b.dy
}

// Reset returns the ball to its spawn position, direction and speed.
// The rectangle is moved in place, not recreated.
func (b *Ball) Reset() {
	b.rect = b.rect.CenteredAt(b.originX, b.originY)
	b.dx, b.dy = b.originDX, b.originDY
	b.speed = b.originSpeed
}

// ResetRandom returns the ball to its spawn position with a uniformly chosen diagonal.
func (b *Ball) ResetRandom(rng *rand.Rand) {
	b.Reset()
	d := diagonals[rng.Intn(len(diagonals))]
	b.dx, b.dy = d[0], d[1]
}

// Direction returns the direction components.
func (b *Ball) Direction() (int, int) {
	return b.dx, b.dy
}

// Rect returns the collision rectangle.
func (b *Ball) Rect() core.Rect {
	return b.rect
}

// Render draws the ball.
func (b *Ball) Render(dst *core.Canvas) {
	dst.FillRect(b.rect, core.ColorWhite)
}
