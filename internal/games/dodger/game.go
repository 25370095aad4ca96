// Package dodger implements Avoid the Dots.
// The player slides a box along the middle of the field while red dots rain
// down from the top and rise from the bottom. Each hit costs health, health
// slowly regenerates, and at zero the box bursts into particles.
package dodger

import (
	"math/rand"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// GameID is the registry identifier.
const GameID = "dodger"

// Game implements the Avoid the Dots game logic.
type Game struct {
	cfg       config.DodgerConfig
	rng       *rand.Rand
	bounds    core.Rect
	player    *Player
	obstacles []*Obstacle
	spawn     core.Countdown
	regen     core.Countdown
}

// New creates a new game from an already validated configuration.
func New(cfg config.DodgerConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the window title.
func (g *Game) Title() string {
	return g.cfg.Title
}

// Field returns the logical resolution.
func (g *Game) Field() (int, int) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Bindings returns the arrow keys for Player 1 plus Escape.
func (g *Game) Bindings() []core.Binding {
	return []core.Binding{
		{Key: "left", Player: core.Player1, Action: core.ActionLeft},
		{Key: "right", Player: core.Player1, Action: core.ActionRight},
		core.QuitBinding,
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.bounds = core.NewRect(0, 0, g.cfg.Field.Width, g.cfg.Field.Height)

	cx, cy := g.bounds.Center()
	g.player = NewPlayer(cx, cy, g.cfg.Player, g.cfg.Explosion)
	g.obstacles = make([]*Obstacle, 0, 64)
	g.spawn = core.NewCountdown(g.cfg.Obstacles.SpawnInterval, runtime.TickRate)
	g.regen = core.NewCountdown(g.cfg.Player.RegenInterval, runtime.TickRate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	var events []core.Event

	g.player.Update(in.Player1(), g.bounds)

	// Mark pass: each obstacle moves, then either hits the player or leaves.
	for _, o := range g.obstacles {
		o.Update()
		if o.Rect().Intersects(g.player.Rect()) {
			o.collided = true
			events = append(events, g.hit()...)
			continue
		}
		o.markOutside(g.cfg.Field.Height, g.cfg.Obstacles.DespawnMargin)
	}
	g.compact()

	if g.spawn.Tick() {
		g.spawnObstacle()
	}
	if g.regen.Tick() {
		g.player.Regenerate()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// hit deducts health for one collision and reports what happened.
func (g *Game) hit() []core.Event {
	if g.player.Dead() {
		return nil
	}
	killed := g.player.Hit()
	events := []core.Event{{Kind: core.EventPlayerHit, Player: core.Player1, Score: g.player.Health()}}
	if killed {
		events = append(events, core.Event{Kind: core.EventPlayerDied, Player: core.Player1})
	}
	return events
}

// compact drops obstacles marked during the update pass.
func (g *Game) compact() {
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if !o.removed() {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(g.obstacles); i++ {
		g.obstacles[i] = nil
	}
	g.obstacles = kept
}

// spawnObstacle adds a dot at a random x on the top edge moving down or on
// the bottom edge moving up.
func (g *Game) spawnObstacle() {
	x := g.rng.Intn(g.cfg.Field.Width)
	dir, y := -1, g.cfg.Field.Height
	if g.rng.Float64() > 0.5 {
		dir, y = 1, 0
	}
	g.obstacles = append(g.obstacles, NewObstacle(x, y, g.cfg.Obstacles.Size, dir, g.cfg.Obstacles.Speed))
}

// Render draws obstacles, then the player and its explosion.
func (g *Game) Render(dst *core.Canvas) {
	dst.Clear(core.ColorBlack)
	for _, o := range g.obstacles {
		o.Render(dst)
	}
	g.player.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Health:   g.player.Health(),
		GameOver: g.player.Dead(),
	}
}

// Register the game with the registry
func init() {
	defaults := config.DefaultDodgerConfig()
	registry.Register(registry.GameInfo{
		ID:     GameID,
		Title:  defaults.Title,
		Width:  defaults.Field.Width,
		Height: defaults.Field.Height,
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := registry.LoadConfig(opts, config.LoadDodger, config.EmbeddedDodger)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}
