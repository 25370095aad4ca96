package dodger

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
)

// particle is one square fragment of an explosion.
type particle struct {
	pos     mgl64.Vec2 // Center
	vel     mgl64.Vec2
	opacity float64
}

// Explosion is a burst of particles radiating from a point.
// It owns its particles; they are created once and never removed, so a
// finished explosion holds at zero opacity.
type Explosion struct {
	particles []particle
	size      int
	decel     float64 // Velocity lost per tick on each axis
	decay     float64 // Opacity lost per tick
}

// NewExplosion creates n particles at center, moving outward at power with
// evenly spaced angles around the full circle.
func NewExplosion(cx, cy int, cfg config.DodgerExplosion) *Explosion {
	e := &Explosion{
		particles: make([]particle, cfg.Particles),
		size:      cfg.ParticleSize,
		decel:     1 / cfg.Power,
		decay:     cfg.Decay,
	}

	origin := mgl64.Vec2{float64(cx), float64(cy)}
	for i := range e.particles {
		angle := float64(i) / float64(cfg.Particles) * 2 * math.Pi
		e.particles[i] = particle{
			pos:     origin,
			vel:     mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(cfg.Power),
			opacity: 255,
		}
	}
	return e
}

// Update fades and decelerates every particle, then moves it.
// Each velocity component approaches zero without crossing it.
func (e *Explosion) Update() {
	for i := range e.particles {
		p := &e.particles[i]
		p.opacity -= e.decay
		p.vel = mgl64.Vec2{
			core.ApproachF(p.vel.X(), e.decel),
			core.ApproachF(p.vel.Y(), e.decel),
		}
		p.pos = p.pos.Add(p.vel)
	}
}

// Render draws the visible particles.
func (e *Explosion) Render(dst *core.Canvas) {
	for _, p := range e.particles {
		rect := core.RectCentered(int(math.Round(p.pos.X())), int(math.Round(p.pos.Y())), e.size, e.size)
		dst.FillRect(rect, core.WithAlpha(core.ColorRed, p.opacity))
	}
}

// Len returns the number of particles.
func (e *Explosion) Len() int {
	return len(e.particles)
}

// Faded reports whether every particle is fully transparent.
func (e *Explosion) Faded() bool {
	for _, p := range e.particles {
		if p.opacity > 0 {
			return false
		}
	}
	return true
}
