package pong

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
)

func press(pairs ...any) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for i := 0; i+1 < len(pairs); i += 2 {
		in.Press(pairs[i].(core.PlayerID), pairs[i+1].(core.Action))
	}
	return in
}

// place puts the ball's top-left corner at (x, y) heading (dx, dy).
func place(g *Game, x, y, dx, dy int) {
	g.ball.rect.X, g.ball.rect.Y = x, y
	g.ball.dx, g.ball.dy = dx, dy
}

func TestInitialLayout(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PongConfig
		id      string
		paddles []core.Rect
		ball    core.Rect
		keys    int
	}{
		{
			name: "two players",
			cfg:  config.DefaultPongConfig(),
			id:   "pong",
			paddles: []core.Rect{
				core.NewRect(45, 310, 10, 100),
				core.NewRect(1225, 310, 10, 100),
			},
			ball: core.NewRect(638, 358, 5, 5),
			keys: 5,
		},
		{
			name: "four players",
			cfg:  config.DefaultPong4PConfig(),
			id:   "pong4p",
			paddles: []core.Rect{
				core.NewRect(45, 310, 10, 100),
				core.NewRect(665, 310, 10, 100),
				core.NewRect(310, 45, 100, 10),
				core.NewRect(310, 665, 100, 10),
			},
			ball: core.NewRect(358, 358, 5, 5),
			keys: 9,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(tc.cfg)
			if g.ID() != tc.id {
				t.Errorf("ID() = %q", g.ID())
			}
			if len(g.paddles) != len(tc.paddles) {
				t.Fatalf("expected %d paddles, got %d", len(tc.paddles), len(g.paddles))
			}
			for i, want := range tc.paddles {
				if g.paddles[i].Rect() != want {
					t.Errorf("paddle %d = %+v, expected %+v", i, g.paddles[i].Rect(), want)
				}
			}
			if g.ball.Rect() != tc.ball {
				t.Errorf("ball = %+v, expected %+v", g.ball.Rect(), tc.ball)
			}
			if len(g.Bindings()) != tc.keys {
				t.Errorf("expected %d bindings, got %d", tc.keys, len(g.Bindings()))
			}
		})
	}
}

func TestPaddleMovementClamped(t *testing.T) {
	g := New(config.DefaultPong4PConfig())

	g.Step(press(core.Player1, core.ActionUp, core.Player3, core.ActionRight))
	if g.paddles[0].Rect().Y != 305 {
		t.Errorf("left paddle should move up 5, Y = %d", g.paddles[0].Rect().Y)
	}
	if g.paddles[2].Rect().X != 315 {
		t.Errorf("top paddle should move right 5, X = %d", g.paddles[2].Rect().X)
	}

	for range 200 {
		g.Step(press(
			core.Player1, core.ActionUp,
			core.Player2, core.ActionDown,
			core.Player3, core.ActionLeft,
			core.Player4, core.ActionRight,
		))
		for _, p := range g.paddles {
			r := p.Rect()
			if r.X < 0 || r.Y < 0 || r.Right() > 720 || r.Bottom() > 720 {
				t.Fatalf("paddle left the field: %+v", r)
			}
		}
	}

	if g.paddles[0].Rect().Y != 0 || g.paddles[1].Rect().Bottom() != 720 {
		t.Error("vertical paddles should stop at the edges")
	}
	if g.paddles[2].Rect().X != 0 || g.paddles[3].Rect().Right() != 720 {
		t.Error("horizontal paddles should stop at the edges")
	}

	// Both keys cancel out.
	before := g.paddles[0].Rect()
	g.Step(press(core.Player1, core.ActionDown, core.Player1, core.ActionUp))
	if g.paddles[0].Rect() != before {
		t.Error("opposite keys should cancel")
	}
}

func TestVerticalPaddleBounce(t *testing.T) {
	g := New(config.DefaultPongConfig())
	place(g, 1218, 358, 1, 1)

	g.Step(core.NewMultiInputFrame())

	if dx, dy := g.ball.Direction(); dx != -1 || dy != 1 {
		t.Errorf("right paddle should invert x only, direction = (%d, %d)", dx, dy)
	}
}

func TestHorizontalPaddleBounce(t *testing.T) {
	g := New(config.DefaultPong4PConfig())
	place(g, 358, 657, 1, 1)

	g.Step(core.NewMultiInputFrame())

	if dx, dy := g.ball.Direction(); dx != 1 || dy != -1 {
		t.Errorf("bottom paddle should invert y only, direction = (%d, %d)", dx, dy)
	}
}

func TestWallsOnlyInTwoPlayer(t *testing.T) {
	g := New(config.DefaultPongConfig())
	place(g, 100, 2, 1, -1)
	g.Step(core.NewMultiInputFrame())
	if _, dy := g.ball.Direction(); dy != 1 {
		t.Error("top wall should invert y")
	}

	place(g, 100, 714, 1, 1)
	g.Step(core.NewMultiInputFrame())
	if _, dy := g.ball.Direction(); dy != -1 {
		t.Error("bottom wall should invert y")
	}

	g4 := New(config.DefaultPong4PConfig())
	place(g4, 200, 2, 1, -1)
	res := g4.Step(core.NewMultiInputFrame())
	if len(res.Events) != 3 {
		t.Errorf("four-player top edge is a goal, got events %+v", res.Events)
	}
}

func TestTwoPlayerScoring(t *testing.T) {
	g := New(config.DefaultPongConfig())

	place(g, 2, 500, -1, 1)
	res := g.Step(core.NewMultiInputFrame())
	if got := res.State.Scores; got[0] != 0 || got[1] != 1 {
		t.Errorf("left exit should score for the right player, scores %v", got)
	}
	if len(res.Events) != 1 || res.Events[0].Player != core.Player2 {
		t.Errorf("unexpected events %+v", res.Events)
	}
	if g.ball.Rect() != core.NewRect(638, 358, 5, 5) {
		t.Errorf("ball should be re-served from the center, got %+v", g.ball.Rect())
	}

	place(g, 1278, 500, 1, 1)
	res = g.Step(core.NewMultiInputFrame())
	if got := res.State.Scores; got[0] != 1 || got[1] != 1 {
		t.Errorf("right exit should score for the left player, scores %v", got)
	}
	if res.State.Score != 1 {
		t.Errorf("Score should mirror the left player, got %d", res.State.Score)
	}
}

func TestFourPlayerExitAwardsOthers(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		dx, dy int
		want   []int
	}{
		{"left", 2, 200, -1, 1, []int{0, 1, 1, 1}},
		{"right", 718, 200, 1, 1, []int{1, 0, 1, 1}},
		{"bottom", 200, 718, 1, 1, []int{1, 1, 1, 0}},
		{"top", 200, 2, 1, -1, []int{1, 1, 0, 1}},
		// Leaves left and top at once: only the left rule applies.
		{"top-left corner", 3, 3, -1, -1, []int{0, 1, 1, 1}},
		// Leaves right and bottom at once: right wins over bottom.
		{"bottom-right corner", 718, 718, 1, 1, []int{1, 0, 1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(config.DefaultPong4PConfig())
			place(g, tc.x, tc.y, tc.dx, tc.dy)

			res := g.Step(core.NewMultiInputFrame())

			for i, want := range tc.want {
				if res.State.Scores[i] != want {
					t.Fatalf("scores = %v, expected %v", res.State.Scores, tc.want)
				}
			}
			if len(res.Events) != 3 {
				t.Errorf("expected 3 point events, got %d", len(res.Events))
			}
			if g.ball.Rect() != core.NewRect(358, 358, 5, 5) {
				t.Errorf("ball should be re-served from the center, got %+v", g.ball.Rect())
			}
		})
	}
}

func TestDirectionMagnitudeNeverChanges(t *testing.T) {
	for _, cfg := range []config.PongConfig{config.DefaultPongConfig(), config.DefaultPong4PConfig()} {
		g := New(cfg)
		g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 3})
		rng := rand.New(rand.NewSource(11))
		actions := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

		for range 5000 {
			in := core.NewMultiInputFrame()
			for _, id := range []core.PlayerID{core.Player1, core.Player2, core.Player3, core.Player4} {
				in.Press(id, actions[rng.Intn(len(actions))])
			}
			g.Step(in)

			dx, dy := g.ball.Direction()
			if (dx != 1 && dx != -1) || (dy != 1 && dy != -1) {
				t.Fatalf("%s: direction drifted to (%d, %d)", g.ID(), dx, dy)
			}
			if g.ball.speed != 5 {
				t.Fatalf("%s: speed changed to %d", g.ID(), g.ball.speed)
			}
		}
	}
}

func TestBallResets(t *testing.T) {
	b := NewBall(640, 360, 5, 1, 1, 5)
	b.Update()
	b.BounceX()
	b.speed = 9

	b.Reset()
	if b.Rect() != core.NewRect(638, 358, 5, 5) || b.speed != 5 {
		t.Errorf("Reset should restore the spawn state, got %+v speed %d", b.Rect(), b.speed)
	}
	if dx, dy := b.Direction(); dx != 1 || dy != 1 {
		t.Errorf("Reset should restore the spawn direction, got (%d, %d)", dx, dy)
	}

	seen := make(map[[2]int]bool)
	rng := rand.New(rand.NewSource(1))
	for range 200 {
		b.ResetRandom(rng)
		dx, dy := b.Direction()
		seen[[2]int{dx, dy}] = true
		if b.Rect() != core.NewRect(638, 358, 5, 5) {
			t.Fatalf("ResetRandom should re-center the ball, got %+v", b.Rect())
		}
	}
	if len(seen) != 4 {
		t.Errorf("ResetRandom should use all four diagonals, saw %v", seen)
	}
}

func TestScoreTextCached(t *testing.T) {
	g := New(config.DefaultPongConfig())
	c := core.NewCanvas(g.Field())

	g.Render(c)
	g.Render(c)
	for i, counter := range g.counters {
		if counter.Builds() != 1 {
			t.Errorf("counter %d built %d times", i, counter.Builds())
		}
	}

	ops := c.Ops()
	// Ball, two paddles, two scores.
	if len(ops) != 5 {
		t.Fatalf("expected 5 ops, got %d", len(ops))
	}
	if ops[0].Rect != g.ball.Rect() {
		t.Error("ball should be drawn first")
	}
	if ops[3].Kind != core.OpText || ops[4].Kind != core.OpText || ops[3].Size != 36 {
		t.Errorf("scores should be drawn last at 36px: %+v %+v", ops[3], ops[4])
	}
}
