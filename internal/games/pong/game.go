// Package pong implements local 2- and 4-player Pong.
// In the 2-player game the top and bottom edges are walls and a ball leaving
// through a side scores for the opposite player. In the 4-player game every
// edge is guarded by a paddle and a ball leaving through one side scores a
// point for each of the other three players.
package pong

import (
	"math/rand"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/games/hud"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// Registry identifiers for the two variants.
const (
	GameID   = "pong"
	GameID4P = "pong4p"
)

// Side is an edge of the field, owned by one player.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// sidePlayers maps each side to the player defending it.
var sidePlayers = [4]core.PlayerID{
	SideLeft:   core.Player1,
	SideRight:  core.Player2,
	SideTop:    core.Player3,
	SideBottom: core.Player4,
}

// Game implements both Pong variants.
type Game struct {
	cfg      config.PongConfig
	rng      *rand.Rand
	bounds   core.Rect
	paddles  []*Paddle
	ball     *Ball
	counters []*hud.ScoreCounter // Indexed by Side
}

// New creates a new game from an already validated configuration.
// cfg.Players selects the variant.
func New(cfg config.PongConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	if g.fourPlayer() {
		return GameID4P
	}
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

// Bindings returns W/S and Up/Down, plus Z/X and N/M with four players.
func (g *Game) Bindings() []core.Binding {
	b := []core.Binding{
		{Key: "w", Player: core.Player1, Action: core.ActionUp},
		{Key: "s", Player: core.Player1, Action: core.ActionDown},
		{Key: "up", Player: core.Player2, Action: core.ActionUp},
		{Key: "down", Player: core.Player2, Action: core.ActionDown},
	}
	if g.fourPlayer() {
		b = append(b,
			core.Binding{Key: "z", Player: core.Player3, Action: core.ActionLeft},
			core.Binding{Key: "x", Player: core.Player3, Action: core.ActionRight},
			core.Binding{Key: "n", Player: core.Player4, Action: core.ActionLeft},
			core.Binding{Key: "m", Player: core.Player4, Action: core.ActionRight},
		)
	}
	return append(b, core.QuitBinding)
}

func (g *Game) fourPlayer() bool {
	return g.cfg.Players == 4
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
	pc := g.cfg.Paddles
	margin := pc.Margin
	inset := g.cfg.Score.Inset
	font := g.cfg.Score.FontSize

	g.paddles = []*Paddle{
		NewPaddle(margin, cy, pc.Thickness, pc.Length, pc.Speed, Vertical, sidePlayers[SideLeft]),
		NewPaddle(w-margin, cy, pc.Thickness, pc.Length, pc.Speed, Vertical, sidePlayers[SideRight]),
	}
	if g.fourPlayer() {
		g.paddles = append(g.paddles,
			NewPaddle(cx, margin, pc.Thickness, pc.Length, pc.Speed, Horizontal, sidePlayers[SideTop]),
			NewPaddle(cx, h-margin, pc.Thickness, pc.Length, pc.Speed, Horizontal, sidePlayers[SideBottom]),
		)
		g.counters = []*hud.ScoreCounter{
			SideLeft:   hud.NewScoreCounter(inset, cy, font, core.ColorWhite),
			SideRight:  hud.NewScoreCounter(w-inset, cy, font, core.ColorWhite),
			SideTop:    hud.NewScoreCounter(cx, inset, font, core.ColorWhite),
			SideBottom: hud.NewScoreCounter(cx, h-inset, font, core.ColorWhite),
		}
	} else {
		g.counters = []*hud.ScoreCounter{
			SideLeft:  hud.NewScoreCounter(inset, inset, font, core.ColorWhite),
			SideRight: hud.NewScoreCounter(w-inset, inset, font, core.ColorWhite),
		}
	}

	g.ball = NewBall(cx, cy, g.cfg.Ball.Size, 1, 1, g.cfg.Ball.Speed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {

	for _, p := range g.paddles {
		p.Update(in.Player(p.Player()), g.bounds)
	}

	g.ball.Update()
	g.bounce()

	var events []core.Event
	if side, ok := g.exitSide(); ok {
		events = g.award(side)
		g.ball.ResetRandom(g.rng)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// bounce flips the ball off paddles and, with two players, the top and
// bottom walls.
func (g *Game) bounce() {
	ball := g.ball.Rect()

	var hitVertical, hitHorizontal bool
	for _, p := range g.paddles {
		if !ball.Intersects(p.Rect()) {
			continue
		}
		if p.Axis() == Vertical {
			hitVertical = true
		} else {
			hitHorizontal = true
		}
	}
	if hitVertical {
		g.ball.BounceX()
	}
	if hitHorizontal {
		g.ball.BounceY()
	}

	if !g.fourPlayer() && (ball.Y < 0 || ball.Bottom() > g.bounds.H) {
		g.ball.BounceY()
	}
}

// exitSide reports the side the ball has left through. Sides are tested in
// the order left, right, bottom, top and only the first match counts.
func (g *Game) exitSide() (Side, bool) {
	ball := g.ball.Rect()
	switch {
	case ball.X < 0:
		return SideLeft, true
	case ball.X > g.bounds.W:
		return SideRight, true
	}

	if !g.fourPlayer() {
		return 0, false
	}
	switch {
	case ball.Y > g.bounds.H:
		return SideBottom, true
	case ball.Y < 0:
		return SideTop, true
	}
	return 0, false
}

// award gives a point to every player except the one defending side.
func (g *Game) award(side Side) []core.Event {
	events := make([]core.Event, 0, len(g.counters)-1)
	for s, counter := range g.counters {
		if Side(s) == side {
			continue
		}
		counter.Add(1)
		events = append(events, core.Event{
			Kind:   core.EventPointScored,
			Player: sidePlayers[s],
			Score:  counter.Score(),
		})
	}
	return events
}

// Render draws the ball, the paddles and the scores on black.
func (g *Game) Render(dst *core.Canvas) {
	dst.Clear(core.ColorBlack)
	g.ball.Render(dst)
	for _, p := range g.paddles {
		p.Render(dst)
	}
	for _, c := range g.counters {
		c.Render(dst)
	}
}

// State returns the current game state. Scores is indexed by PlayerID-1.
func (g *Game) State() core.GameState {
	scores := make([]int, len(g.counters))
	for s, c := range g.counters {
		scores[s] = c.Score()
	}
	return core.GameState{
		Score:  scores[SideLeft],
		Scores: scores,
	}
}

// Register both variants with the registry
func init() {
	register(GameID, config.DefaultPongConfig(), config.LoadPong, config.EmbeddedPong)
	register(GameID4P, config.DefaultPong4PConfig(), config.LoadPong4P, config.EmbeddedPong4P)
}

func register(id string, defaults config.PongConfig, load func(string) (config.PongConfig, error), builtin func() (config.PongConfig, error)) {
	registry.Register(registry.GameInfo{
		ID:     id,
		Title:  defaults.Title,
		Width:  defaults.Field.Width,
		Height: defaults.Field.Height,
	}, func(opts registry.Options) (registry.Game, error) {
		cfg, err := registry.LoadConfig(opts, load, builtin)
		if err != nil {
			return nil, err
		}
		return New(cfg), nil
	})
}
