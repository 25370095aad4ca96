package flappy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/box-arcade/internal/config"
	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// quietConfig returns the default tuning with pipe spawning pushed out of
// reach so tests place every pipe themselves.
func quietConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.SpawnInterval = 1000
	return cfg
}

func flap() core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	in.Press(core.Player1, core.ActionFlap)
	return in
}

func none() core.MultiInputFrame {
	return core.NewMultiInputFrame()
}

func findEvent(events []core.Event, kind core.EventKind) (core.Event, bool) {
	for _, ev := range events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return core.Event{}, false
}

func TestIdleUntilFirstFlap(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	start := g.player.Rect()

	for range 200 {
		res := g.Step(none())
		if !res.State.Idle {
			t.Fatal("game should stay idle without a flap")
		}
	}
	if g.player.Rect() != start {
		t.Errorf("idle box moved from %+v to %+v", start, g.player.Rect())
	}
	if len(g.pipes) != 0 {
		t.Errorf("idle game spawned %d pipes", len(g.pipes))
	}
	if start != core.NewRect(295, 155, 50, 50) {
		t.Errorf("box should start at the field center, got %+v", start)
	}
}

func TestFlapSetsLaunchVelocity(t *testing.T) {
	g := New(quietConfig())

	g.Step(flap())
	if g.State().Idle {
		t.Fatal("first flap should start the round")
	}
	if g.player.Rect().Y != 145 {
		t.Errorf("flap should lift the box by 10, Y = %d", g.player.Rect().Y)
	}
	if g.player.Velocity() != 9 {
		t.Errorf("gravity should apply after the move, velocity = %d", g.player.Velocity())
	}

	// Fall until velocity is negative, then flap again.
	for range 15 {
		g.Step(none())
	}
	if g.player.Velocity() >= 0 {
		t.Fatalf("box should be falling, velocity = %d", g.player.Velocity())
	}
	before := g.player.Rect().Y
	g.Step(flap())
	if got := before - g.player.Rect().Y; got != 10 {
		t.Errorf("flap while falling should move up exactly 10, moved %d", got)
	}
}

func TestTerminalVelocity(t *testing.T) {
	g := New(quietConfig())
	g.Step(flap())

	lowest := 0
	for range 200 {
		res := g.Step(none())
		if _, over := findEvent(res.Events, core.EventRoundOver); over {
			break
		}
		lowest = min(lowest, g.player.Velocity())
	}
	if lowest != -10 {
		t.Errorf("velocity should bottom out at -10, lowest %d", lowest)
	}
}

func TestBoxClampedToField(t *testing.T) {
	g := New(quietConfig())
	bounds := core.NewRect(0, 0, 640, 360)

	for range 100 {
		g.Step(flap())
		r := g.player.Rect()
		if r.Y < 0 || r.Bottom() > bounds.Bottom() {
			t.Fatalf("box left the field: %+v", r)
		}
	}
	if g.player.Rect().Y != 0 {
		t.Errorf("holding flap should pin the box to the top, Y = %d", g.player.Rect().Y)
	}
}

func TestPipePairScoresOnce(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewPipePair(640, 180, cfg.Pipes)

	var scoredAt []int
	for tick := 1; tick <= 200; tick++ {
		p.Update()
		if p.Pass(320) {
			scoredAt = append(scoredAt, tick)
		}
	}

	// 640 - 5*64 = 320 is not past; 640 - 5*65 = 315 is.
	if len(scoredAt) != 1 || scoredAt[0] != 65 {
		t.Errorf("pair should score exactly once on tick 65, scored on %v", scoredAt)
	}
}

func TestPipePairGeometry(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewPipePair(640, 180, cfg.Pipes)

	upper, lower := p.Rects()
	if upper != core.NewRect(615, -220, 50, 300) {
		t.Errorf("upper pipe = %+v", upper)
	}
	if lower != core.NewRect(615, 280, 50, 300) {
		t.Errorf("lower pipe = %+v", lower)
	}
	if gap := lower.Y - upper.Bottom(); gap != 200 {
		t.Errorf("gap = %d, expected 200", gap)
	}

	// Removed only once fully off-screen: right edge 665 needs 134 moves to pass 0.
	for range 133 {
		p.Update()
	}
	if p.outside {
		t.Fatal("pair flagged outside while still visible")
	}
	p.Update()
	if !p.outside {
		t.Error("pair should be outside once its right edge is left of 0")
	}
}

func TestScoringInGame(t *testing.T) {
	g := New(quietConfig())
	g.Step(flap())

	// Gap spans 0..200, the box is pinned at the top by holding flap.
	g.pipes = append(g.pipes, NewPipePair(640, 100, g.cfg.Pipes))

	for tick := 1; tick <= 80; tick++ {
		res := g.Step(flap())
		if _, over := findEvent(res.Events, core.EventRoundOver); over {
			t.Fatalf("unexpected round over on tick %d", tick)
		}
		ev, scored := findEvent(res.Events, core.EventPointScored)
		switch {
		case tick < 65 && scored:
			t.Fatalf("scored too early on tick %d", tick)
		case tick == 65 && (!scored || ev.Score != 1):
			t.Fatalf("expected the point on tick 65, got %+v", res.Events)
		case tick > 65 && scored:
			t.Fatalf("pair scored twice (tick %d)", tick)
		}
	}
	if g.State().Score != 1 || g.counter.Score() != 1 {
		t.Errorf("score = %d, counter = %d", g.State().Score, g.counter.Score())
	}
}

func TestPipeCollisionResetsRound(t *testing.T) {
	g := New(quietConfig())
	g.Step(flap())
	g.score = 3
	g.pipes = append(g.pipes, NewPipePair(400, 300, g.cfg.Pipes))

	var over core.Event
	for range 30 {
		res := g.Step(none())
		if ev, ok := findEvent(res.Events, core.EventRoundOver); ok {
			over = ev
			break
		}
	}

	if over.Kind != core.EventRoundOver || over.Score != 3 {
		t.Fatalf("expected round over with score 3, got %+v", over)
	}
	assertFreshRound(t, g)
}

func TestLavaResetsRound(t *testing.T) {
	g := New(quietConfig())
	g.Step(flap())

	var ended bool
	for range 200 {
		res := g.Step(none())
		if _, ok := findEvent(res.Events, core.EventRoundOver); ok {
			ended = true
			break
		}
	}
	if !ended {
		t.Fatal("falling into the lava should end the round")
	}
	assertFreshRound(t, g)
}

func assertFreshRound(t *testing.T, g *Game) {
	t.Helper()

	st := g.State()
	if st.Score != 0 || !st.Idle {
		t.Errorf("round reset should zero the score and go idle, got %+v", st)
	}
	if len(g.pipes) != 0 {
		t.Errorf("round reset should clear pipes, %d left", len(g.pipes))
	}
	if g.player.Rect() != core.NewRect(295, 155, 50, 50) {
		t.Errorf("box should be back at the start, got %+v", g.player.Rect())
	}
	if g.player.Velocity() != 0 {
		t.Errorf("box velocity should be reset, got %d", g.player.Velocity())
	}
	if g.counter.Text() != "0" {
		t.Errorf("counter shows %q", g.counter.Text())
	}
}

func TestRestartNeedsFreshPress(t *testing.T) {
	g := New(quietConfig())
	g.Step(flap())
	g.pipes = append(g.pipes, NewPipePair(400, 300, g.cfg.Pipes))

	// Hold flap: the box rises into the upper pipe and the round ends.
	for range 30 {
		if g.Step(flap()); g.State().Idle {
			break
		}
	}
	if !g.State().Idle {
		t.Fatal("round should have ended")
	}

	g.Step(flap())
	if !g.State().Idle {
		t.Error("a flap held across the reset should not restart")
	}
	g.Step(none())
	g.Step(flap())
	if g.State().Idle {
		t.Error("a new press should restart")
	}
}

func TestPipeSpawning(t *testing.T) {
	run := func() int {
		g := New(config.DefaultFlappyConfig())
		g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 99})
		g.Step(flap())
		for range 58 {
			g.Step(flap())
		}
		if len(g.pipes) != 0 {
			t.Fatalf("no pair before 1s")
		}
		g.Step(flap())
		if len(g.pipes) != 1 {
			t.Fatalf("one pair after 1s, got %d", len(g.pipes))
		}

		p := g.pipes[0]
		if p.X() != 635 {
			t.Errorf("new pair should enter at the right edge and move once, x = %d", p.X())
		}
		upper, lower := p.Rects()
		gapY := (upper.Bottom() + lower.Y) / 2
		if gapY < 100 || gapY >= 260 {
			t.Errorf("gap center %d outside [100, 260)", gapY)
		}
		return gapY
	}

	if run() != run() {
		t.Error("same seed should place the same gap")
	}
}

func TestRenderOrder(t *testing.T) {
	g := New(quietConfig())
	g.pipes = append(g.pipes, NewPipePair(500, 180, g.cfg.Pipes))

	c := core.NewCanvas(g.Field())
	g.Render(c)

	if c.Background() != core.ColorLightBlue {
		t.Error("sky should be light blue")
	}
	ops := c.Ops()
	if len(ops) != 5 {
		t.Fatalf("expected lava, 2 pipes, box, score; got %d ops", len(ops))
	}
	if ops[0].Color != core.ColorRed || ops[0].Rect != core.NewRect(0, 350, 640, 10) {
		t.Errorf("lava should be drawn first: %+v", ops[0])
	}
	lime := core.Color{R: 0, G: 255, B: 0, A: 255}
	if ops[1].Color != lime || ops[2].Color != lime {
		t.Errorf("pipes should follow the lava in lime, got %+v and %+v", ops[1].Color, ops[2].Color)
	}
	if ops[3].Color != core.ColorYellow {
		t.Error("box should follow the pipes")
	}
	if ops[4].Kind != core.OpText || ops[4].Text != "0" {
		t.Errorf("score text should be last: %+v", ops[4])
	}
}

func TestFactoryEmbeddedIgnoresLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "flappy.yaml"), []byte("pipes:\n  speed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	g, err := registry.Create(GameID, registry.Options{Embedded: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if speed := g.(*Game).cfg.Pipes.Speed; speed != config.DefaultFlappyConfig().Pipes.Speed {
		t.Errorf("embedded game picked up the local file, pipe speed = %d", speed)
	}

	g, err = registry.Create(GameID, registry.Options{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if speed := g.(*Game).cfg.Pipes.Speed; speed != 7 {
		t.Errorf("search order should apply the local file, pipe speed = %d", speed)
	}
}

func TestPipeCountdownRestartsWithRound(t *testing.T) {
	g := New(config.DefaultFlappyConfig())
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 5})
	g.Step(flap())
	for range 30 {
		g.Step(flap())
	}
	g.roundOver()
	g.Step(none())

	// The new round waits the full second again, counting its first flap.
	for range 59 {
		g.Step(flap())
	}
	if len(g.pipes) != 0 {
		t.Fatalf("pair spawned early after a reset, %d pipes", len(g.pipes))
	}
	g.Step(flap())
	if len(g.pipes) != 1 {
		t.Fatalf("expected one pair on tick 60 of the new round, got %d", len(g.pipes))
	}
}
