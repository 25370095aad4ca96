// Package core provides fundamental types and utilities for the arcade.
// It contains no frontend dependencies (no ebiten, no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in field pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
// Negative dimensions are clamped to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: Max(w, 0), H: Max(h, 0)}
}

// RectCentered creates a w×h rectangle whose center is (cx, cy).
func RectCentered(cx, cy, w, h int) Rect {
	return NewRect(0, 0, w, h).CenteredAt(cx, cy)
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenteredAt returns a copy of r moved so its center is (cx, cy).
func (r Rect) CenteredAt(cx, cy int) Rect {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
	return r
}

// Translate returns a copy of r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ClampTo returns a copy of r moved (never resized) so that it lies inside bounds.
// A rect larger than bounds on an axis is centered on that axis.
func (r Rect) ClampTo(bounds Rect) Rect {
	if r.W >= bounds.W {
		r.X = bounds.X + bounds.W/2 - r.W/2
	} else {
		r.X = Clamp(r.X, bounds.X, bounds.Right()-r.W)
	}
	if r.H >= bounds.H {
		r.Y = bounds.Y + bounds.H/2 - r.H/2
	} else {
		r.Y = Clamp(r.Y, bounds.Y, bounds.Bottom()-r.H)
	}
	return r
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Approach moves val toward zero by step without crossing it.
func Approach(val, step int) int {
	switch {
	case val > 0:
		return Max(val-step, 0)
	case val < 0:
		return Min(val+step, 0)
	default:
		return 0
	}
}

// ApproachF is Approach for float64 values.
func ApproachF(val, step float64) float64 {
	switch {
	case val > 0:
		return max(val-step, 0)
	case val < 0:
		return min(val+step, 0)
	default:
		return 0
	}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
