package dodger

import (
	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
)

// Player is the box the user steers left and right.
// Its image shows remaining health as a white fill rising from the bottom.
type Player struct {
	rect      core.Rect
	vel       int
	health    int
	dead      bool
	explosion *Explosion // Created on death
	image     *core.Lazy[core.Surface]
	cfg       config.DodgerPlayer
	burst     config.DodgerExplosion
}

// NewPlayer creates a player centered at (cx, cy) with full health.
func NewPlayer(cx, cy int, cfg config.DodgerPlayer, burst config.DodgerExplosion) *Player {
	p := &Player{
		rect:   core.RectCentered(cx, cy, cfg.Size, cfg.Size),
		health: cfg.MaxHealth,
		cfg:    cfg,
		burst:  burst,
	}
	p.image = core.NewLazy(p.makeImage)
	return p
}

// makeImage builds the health gauge surface.
func (p *Player) makeImage() core.Surface {
	size := p.cfg.Size
	top := size - size*p.health/p.cfg.MaxHealth
	return core.Surface{
		{Kind: core.OpFill, Rect: core.NewRect(0, 0, size, size), Color: core.ColorRed},
		{Kind: core.OpFill, Rect: core.NewRect(0, top, size, size-top), Color: core.ColorWhite},
	}
}

// Update applies held-key acceleration and friction, then moves and clamps
// the player. A dead player no longer moves but its explosion keeps running.
func (p *Player) Update(in core.InputFrame, bounds core.Rect) {
	if in.Has(core.ActionLeft) {
		p.vel -= p.cfg.Acceleration
	}
	if in.Has(core.ActionRight) {
		p.vel += p.cfg.Acceleration
	}
	p.vel = core.Approach(p.vel, p.cfg.Friction)

	if !p.dead {
		p.rect.X += p.vel
	}
	p.rect = p.rect.ClampTo(bounds)

	if p.explosion != nil {
		p.explosion.Update()
	}
}

// SetHealth stores amount clamped to [0, max]. Reaching zero kills the player
// and spawns the explosion at its center. Returns true if this call killed it.
func (p *Player) SetHealth(amount int) bool {
	amount = core.Clamp(amount, 0, p.cfg.MaxHealth)
	if amount != p.health {
		p.health = amount
		p.image.Invalidate()
	}
	if p.health > 0 || p.dead {
		return false
	}

	p.dead = true
	cx, cy := p.rect.Center()
	p.explosion = NewExplosion(cx, cy, p.burst)
	return true
}

// Hit applies one obstacle collision.
func (p *Player) Hit() bool {
	return p.SetHealth(p.health - p.cfg.HitDamage)
}

// Regenerate heals by the configured amount while alive and below max.
// Returns true if health changed.
func (p *Player) Regenerate() bool {
	if p.dead || p.health >= p.cfg.MaxHealth {
		return false
	}
	p.SetHealth(p.health + p.cfg.RegenAmount)
	return true
}

// Render draws the gauge and, once dead, the explosion over it.
func (p *Player) Render(dst *core.Canvas) {
	dst.DrawSurface(p.rect.X, p.rect.Y, p.image.Get())
	if p.explosion != nil {
		p.explosion.Render(dst)
	}
}

// Rect returns the collision rectangle.
func (p *Player) Rect() core.Rect {
	return p.rect
}

// Health returns the current health.
func (p *Player) Health() int {
	return p.health
}

// Dead reports whether health has reached zero.
func (p *Player) Dead() bool {
	return p.dead
}
