package player

import (
	"errors"
	"math"
	"testing"

	"github.com/mo-shahab/go-breakout/server/ball"
	"github.com/mo-shahab/go-breakout/server/canvas"
	"github.com/mo-shahab/go-breakout/server/paddle"
)

func newPaddle(fieldWidth, x, width float64) *paddle.Paddle {
	return paddle.New(canvas.New(fieldWidth, 500), canvas.Vector{X: x, Y: 400}, canvas.Size{Width: width, Height: 10})
}

func TestAddPaddleNil(t *testing.T) {
	p := New()
	if err := p.AddPaddle(nil); !errors.Is(err, paddle.ErrInvalidArgument) {
		t.Fatalf("AddPaddle(nil) = %v, want ErrInvalidArgument", err)
	}
	if len(p.Paddles()) != 0 {
		t.Fatalf("nil paddle was added")
	}
}

func TestAddRemovePaddle(t *testing.T) {
	a := newPaddle(300, 0, 100)
	b := newPaddle(300, 0, 100)
	p := New(a, nil)

	if n := len(p.Paddles()); n != 1 {
		t.Fatalf("New kept %d paddles, want 1", n)
	}

	p.RemovePaddle(b)
	if n := len(p.Paddles()); n != 1 {
		t.Fatalf("removing an unknown paddle changed the player")
	}

	p.AddPaddle(b)
	p.AddPaddle(b)
	if n := len(p.Paddles()); n != 3 {
		t.Fatalf("player has %d paddles, want 3", n)
	}

	p.RemovePaddle(b)
	got := p.Paddles()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("remove dropped the wrong entry")
	}

	got[0] = nil
	if p.Paddles()[0] != a {
		t.Fatalf("Paddles returned a live view")
	}
}

func TestSetPaddlesPositionXClamps(t *testing.T) {
	cases := []struct {
		x    float64
		want float64
	}{
		{x: 1000, want: 200},
		{x: 200, want: 200},
		{x: 120, want: 120},
		{x: 0, want: 0},
		{x: -50, want: 0},
	}

	for _, c := range cases {
		pd := newPaddle(300, 50, 100)
		p := New(pd)
		p.SetPaddlesPositionX(c.x)
		if pos := pd.Position(); pos.X != c.want || pos.Y != 400 {
			t.Fatalf("SetPaddlesPositionX(%f) put paddle at %v, want x=%f y=400", c.x, pos, c.want)
		}
	}
}

func TestSetPaddlesPositionXPerPaddle(t *testing.T) {
	narrow := newPaddle(150, 0, 100)
	wide := newPaddle(600, 0, 40)
	p := New(narrow, wide)

	p.SetPaddlesPositionX(250)

	if x := narrow.Position().X; x != 50 {
		t.Fatalf("narrow field paddle at %f, want 50", x)
	}
	if x := wide.Position().X; x != 250 {
		t.Fatalf("wide field paddle at %f, want 250", x)
	}
}

func TestMovePaddlesStep(t *testing.T) {
	pd := newPaddle(300, 100, 100)
	p := New(pd)

	p.MovePaddles(East)
	if x := pd.Position().X; x != 167 {
		t.Fatalf("east step to %f, want 167", x)
	}

	p.MovePaddles(West)
	p.MovePaddles(West)
	if x := pd.Position().X; x != 33 {
		t.Fatalf("west steps to %f, want 33", x)
	}
}

func TestMovePaddlesStallsAtEdges(t *testing.T) {
	pd := newPaddle(300, 50, 100)
	p := New(pd)
	maxX := 300.0 - 100

	for i := 0; i < 10; i++ {
		p.MovePaddles(East)
		if x := pd.Position().X; x+100 > 300 {
			t.Fatalf("step %d: right edge at %f past the field", i, x+100)
		}
	}
	if x := pd.Position().X; x != maxX {
		t.Fatalf("paddle stalled at %f, want %f", x, maxX)
	}

	for i := 0; i < 10; i++ {
		p.MovePaddles(West)
		if x := pd.Position().X; x < 0 {
			t.Fatalf("step %d: left edge at %f past the field", i, x)
		}
	}
	if x := pd.Position().X; x != 0 {
		t.Fatalf("paddle stalled at %f, want 0", x)
	}
}

func TestMovePaddlesCarriesBalls(t *testing.T) {
	pd := newPaddle(300, 100, 100)
	b := ball.New(pd.Field(), canvas.Vector{X: 120, Y: 0}, canvas.Size{Width: 10, Height: 10}, 5)
	if err := pd.AttachBall(b); err != nil {
		t.Fatalf("AttachBall: %v", err)
	}

	p := New(pd)
	p.MovePaddles(East)
	p.MovePaddles(East)

	if got := b.Position(); got.X != 220 || got.Y != 390 {
		t.Fatalf("ball at %v, want (220, 390)", got)
	}
}

func TestFirePaddles(t *testing.T) {
	left := newPaddle(300, 0, 100)
	right := newPaddle(300, 200, 100)
	size := canvas.Size{Width: 10, Height: 10}
	b1 := ball.New(left.Field(), canvas.Vector{X: 0}, size, 7)
	b2 := ball.New(right.Field(), canvas.Vector{X: 290}, size, 7)
	left.AttachBall(b1)
	right.AttachBall(b2)

	p := New(left, right)
	p.FirePaddles()

	for _, pd := range p.Paddles() {
		if n := len(pd.AttachedBalls()); n != 0 {
			t.Fatalf("paddle still carries %d balls", n)
		}
	}
	for _, b := range []*ball.Ball{b1, b2} {
		if n := b.Velocity().Norm(); math.Abs(n-7) > 1e-9 {
			t.Fatalf("ball speed %f, want 7", n)
		}
	}
	if b1.Velocity().X >= 0 || b2.Velocity().X <= 0 {
		t.Fatalf("balls fired the wrong way: %v, %v", b1.Velocity(), b2.Velocity())
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("left"); !ok || d != West {
		t.Fatalf("left = %v, %v", d, ok)
	}
	if d, ok := ParseDirection("east"); !ok || d != East {
		t.Fatalf("east = %v, %v", d, ok)
	}
	if _, ok := ParseDirection("up"); ok {
		t.Fatalf("up parsed as a direction")
	}
}
