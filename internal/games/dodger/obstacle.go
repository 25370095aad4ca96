package dodger

import "github.com/vovakirdan/box-arcade/internal/core"

// Obstacle is a dot travelling straight up or down.
type Obstacle struct {
	rect     core.Rect
	dir      int // 1 = down, -1 = up
	speed    int
	collided bool
	outside  bool
}

// NewObstacle creates an obstacle of the given size centered at (cx, cy).
func NewObstacle(cx, cy, size, dir, speed int) *Obstacle {
	return &Obstacle{
		rect:  core.RectCentered(cx, cy, size, size),
		dir:   dir,
		speed: speed,
	}
}

// Update moves the obstacle one tick along its direction.
func (o *Obstacle) Update() {
	o.rect.Y += o.dir * o.speed
}

// markOutside flags the obstacle once it is more than margin pixels past
// either edge of a field of height h.
func (o *Obstacle) markOutside(h, margin int) {
	if o.rect.Y < -margin || o.rect.Y > h+margin {
		o.outside = true
	}
}

// removed reports whether the obstacle is marked for removal.
func (o *Obstacle) removed() bool {
	return o.collided || o.outside
}

// Rect returns the collision rectangle.
func (o *Obstacle) Rect() core.Rect {
	return o.rect
}

// Render draws the obstacle.
func (o *Obstacle) Render(dst *core.Canvas) {
	dst.FillRect(o.rect, core.ColorRed)
}
