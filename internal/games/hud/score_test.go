package hud

import (
	"testing"

	"github.com/vovakirdan/box-arcade/internal/core"
)

func TestScoreCounterRebuildsOnChange(t *testing.T) {
	s := NewScoreCounter(320, 50, 15, core.ColorBlack)
	c := core.NewCanvas(640, 360)

	s.Render(c)
	s.Set(0)
	s.Render(c)
	if s.Builds() != 1 {
		t.Errorf("unchanged score should reuse its text, built %d times", s.Builds())
	}

	s.Add(1)
	s.Add(0)
	s.Render(c)
	if s.Builds() != 2 {
		t.Errorf("changed score should rebuild once, built %d times", s.Builds())
	}

	ops := c.Ops()
	last := ops[len(ops)-1]
	if last.Text != "1" || last.Size != 15 || last.Color != core.ColorBlack {
		t.Errorf("unexpected text op %+v", last)
	}
	if last.Rect.X != 295 || last.Rect.Y != 25 {
		t.Errorf("text should be anchored at the box corner, got (%d, %d)", last.Rect.X, last.Rect.Y)
	}
}
