package flappy

import "github.com/vovakirdan/box-arcade/internal/core"

// Lava is the hazard strip along the bottom edge.
type Lava struct {
	rect core.Rect
}

// NewLava creates a strip of the given height across the bottom of a w×h field.
func NewLava(w, h, height int) Lava {
	return Lava{rect: core.NewRect(0, h-height, w, height)}
}

// Collides reports whether r touches the lava.
func (l Lava) Collides(r core.Rect) bool {
	return l.rect.Intersects(r)
}

// Render draws the strip.
func (l Lava) Render(dst *core.Canvas) {
	dst.FillRect(l.rect, core.ColorRed)
}
