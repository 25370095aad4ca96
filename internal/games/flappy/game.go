// Package flappy implements Flappy Box.
// A yellow box hangs in the middle of the field until the first flap. Pipe
// pairs then scroll in from the right; each pair passed scores a point and
// touching a pipe or the lava strip ends the round.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/games/hud"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// GameID is the registry identifier.
const GameID = "flappy"

// Game implements the Flappy Box game logic.
type Game struct {
	cfg      config.FlappyConfig
	rng      *rand.Rand
	bounds   core.Rect
	player   *Box
	lava     Lava
	pipes    []*PipePair
	counter  *hud.ScoreCounter
	spawn    core.Countdown
	score    int
	idle     bool // Waiting for the first flap of a round
	flapHeld bool // Flap state on the previous tick, for edge detection
}

// New creates a new game from an already validated configuration.
func New(cfg config.FlappyConfig) *Game {
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

// Bindings returns Space to flap plus Escape.
func (g *Game) Bindings() []core.Binding {
	return []core.Binding{
		{Key: " ", Player: core.Player1, Action: core.ActionFlap},
		core.QuitBinding,
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	w, h := g.Field()
	g.bounds = core.NewRect(0, 0, w, h)
	cx, cy := g.bounds.Center()
	g.player = NewBox(cx, cy, g.cfg.Player)
	g.lava = NewLava(w, h, g.cfg.Lava.Height)
	g.counter = hud.NewScoreCounter(cx, g.cfg.Score.Inset, g.cfg.Score.FontSize, core.ColorBlack)
	g.pipes = make([]*PipePair, 0, 8)
	g.spawn = core.NewCountdown(g.cfg.Pipes.SpawnInterval, runtime.TickRate)
	g.score = 0
	g.idle = true
	g.flapHeld = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	flap := in.Player1().Has(core.ActionFlap)
	pressed := flap && !g.flapHeld
	g.flapHeld = flap

	if g.idle {
		if !pressed {
			return core.StepResult{State: g.State()}
		}
		g.idle = false
	}

	if g.spawn.Tick() {
		g.spawnPipes()
	}

	var events []core.Event
	playerX, _ := g.player.Rect().Center()

	// Mark pass over the pipes. A hit ends the round immediately.
	for _, p := range g.pipes {
		p.Update()
		if p.Collides(g.player.Rect()) {
			return core.StepResult{State: g.State(), Events: append(events, g.roundOver())}
		}
		if p.Pass(playerX) {
			g.score++
			events = append(events, core.Event{Kind: core.EventPointScored, Player: core.Player1, Score: g.score})
		}
	}
	g.compact()

	g.player.Update(flap, g.bounds)
	g.counter.Set(g.score)

	if g.lava.Collides(g.player.Rect()) {
		events = append(events, g.roundOver())
	}

	return core.StepResult{State: g.State(), Events: events}
}

// spawnPipes adds a pair at the right edge with a random gap center.
func (g *Game) spawnPipes() {
	margin := g.cfg.Pipes.SpawnMargin
	gapY := margin + g.rng.Intn(g.cfg.Field.Height-2*margin)
	g.pipes = append(g.pipes, NewPipePair(g.cfg.Field.Width, gapY, g.cfg.Pipes))
}

// compact drops pairs that have left the field.
func (g *Game) compact() {
	kept := g.pipes[:0]
	for _, p := range g.pipes {
		if !p.outside {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(g.pipes); i++ {
		g.pipes[i] = nil
	}
	g.pipes = kept
}

// roundOver resets the round and reports the score it ended with.
func (g *Game) roundOver() core.Event {
	ev := core.Event{Kind: core.EventRoundOver, Player: core.Player1, Score: g.score}

	g.score = 0
	g.counter.Set(0)
	clear(g.pipes)
	g.pipes = g.pipes[:0]
	cx, cy := g.bounds.Center()
	g.player.Recenter(cx, cy)
	g.spawn.Reset()
	g.idle = true

	return ev
}

// Render draws lava, pipes, the box and the score over a light blue sky.
func (g *Game) Render(dst *core.Canvas) {
	dst.Clear(core.ColorLightBlue)
	g.lava.Render(dst)
	for _, p := range g.pipes {
		p.Render(dst)
	}
	g.player.Render(dst)
	g.counter.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Idle:  g.idle,
	}
}

// Register the game with the registry
func init() {
	defaults := config.DefaultFlappyConfig()
	registry.Register(registry.GameInfo{
		ID:     GameID,
		Title:  defaults.Title,
		Width:  defaults.Field.Width,
		Height: defaults.Field.Height,
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := registry.LoadConfig(opts, config.LoadFlappy, config.EmbeddedFlappy)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}
