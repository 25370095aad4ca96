package core

import "time"

// Simulation is the part of a game the loop drives.
type Simulation interface {
	Step(in MultiInputFrame) StepResult
	Render(dst *Canvas)
}

// InputSource returns the held-key snapshot for the next tick.
type InputSource interface {
	Poll() MultiInputFrame
}

// Presenter shows a rendered frame.
type Presenter interface {
	Present(c *Canvas)
}

// Clock abstracts time for tick pacing.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock paces against wall time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Loop is the fixed-timestep controller shared by every frontend.
// Each tick samples input, steps the simulation (update, collisions, timers),
// clears the canvas and renders into it. Run adds presentation and pacing;
// frontends that own their own scheduler (ebiten, Bubble Tea) call Tick.
type Loop struct {
	sim    Simulation
	canvas *Canvas
	budget time.Duration
	clock  Clock
	done   bool
	ticks  int
	last   StepResult

	// OnEvent receives every event emitted by Step, in order.
	OnEvent func(Event)
}

// NewLoop creates a loop for a w×h field running at tickRate ticks per second.
func NewLoop(sim Simulation, w, h, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = DefaultConfig().TickRate
	}
	return &Loop{
		sim:    sim,
		canvas: NewCanvas(w, h),
		budget: time.Second / time.Duration(tickRate),
		clock:  SystemClock{},
	}
}

// SetClock replaces the pacing clock.
func (l *Loop) SetClock(c Clock) {
	l.clock = c
}

// Budget returns the frame budget (1/tickRate).
func (l *Loop) Budget() time.Duration {
	return l.budget
}

// Tick runs one iteration without pacing or presentation.
// A quit request sets the done flag but the tick still completes its render.
func (l *Loop) Tick(in MultiInputFrame) StepResult {
	if in.Quit() {
		l.done = true
	}

	l.last = l.sim.Step(in)
	if l.OnEvent != nil {
		for _, ev := range l.last.Events {
			l.OnEvent(ev)
		}
	}

	l.canvas.Clear(ColorBlack)
	l.sim.Render(l.canvas)
	l.ticks++
	return l.last
}

// Run ticks until a quit request, presenting each frame and sleeping out the
// rest of the frame budget. Returns the number of ticks executed.
func (l *Loop) Run(src InputSource, out Presenter) int {
	for !l.done {
		start := l.clock.Now()

		l.Tick(src.Poll())
		if out != nil {
			out.Present(l.canvas)
		}

		if rest := l.budget - l.clock.Now().Sub(start); rest > 0 {
			l.clock.Sleep(rest)
		}
	}
	return l.ticks
}

// Stop sets the done flag; Run returns after the current iteration.
func (l *Loop) Stop() {
	l.done = true
}

// Done reports whether a quit was requested.
func (l *Loop) Done() bool {
	return l.done
}

// Ticks returns the number of completed ticks.
func (l *Loop) Ticks() int {
	return l.ticks
}

// Last returns the most recent step result.
func (l *Loop) Last() StepResult {
	return l.last
}

// Canvas returns the frame rendered by the last tick.
func (l *Loop) Canvas() *Canvas {
	return l.canvas
}
