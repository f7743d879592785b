package paddle

import (
	"math"
	"testing"

	"github.com/mo-shahab/go-breakout/server/canvas"
)

// ballCenteredAt places a ball so its centre is at x on top of p
func ballCenteredAt(p *Paddle, x float64) *testBall {
	b := newTestBall(0, 0)
	b.pos = canvas.Vector{X: x - b.size.Width/2, Y: p.Position().Y - b.size.Height}
	return b
}

func TestFireVelocityMagnitude(t *testing.T) {
	for _, width := range []float64{10, 30, 100, 257} {
		p := New(canvas.New(1000, 500), canvas.Vector{X: 100, Y: 400}, canvas.Size{Width: width, Height: 10})
		for x := 100.0; x <= 100+width; x += width / 37 {
			b := ballCenteredAt(p, x)
			v := p.ComputeFireVelocity(b)
			if n := v.Norm(); math.Abs(n-b.speed) > eps {
				t.Fatalf("width %f, centre %f: |v| = %f, want %f", width, x, n, b.speed)
			}
			if v.Y >= 0 {
				t.Fatalf("width %f, centre %f: v.y = %f, want upward", width, x, v.Y)
			}
		}
	}
}

func TestFireVelocityDeadZone(t *testing.T) {
	p := newTestPaddle()
	// paddle spans [50, 150]; the middle fifth is [90, 110]
	for _, x := range []float64{90, 95, 100, 104.5, 110} {
		b := ballCenteredAt(p, x)
		v := p.ComputeFireVelocity(b)
		if v != (canvas.Vector{X: 0, Y: -b.speed}) {
			t.Fatalf("centre %f: v = %v, want (0, %f)", x, v, -b.speed)
		}
	}
}

func TestFireVelocitySign(t *testing.T) {
	p := newTestPaddle()
	for x := 50.0; x <= 150; x += 2.5 {
		b := ballCenteredAt(p, x)
		v := p.ComputeFireVelocity(b)
		switch {
		case x > 100 && v.X < 0:
			t.Fatalf("centre %f right of middle: v.x = %f", x, v.X)
		case x < 100 && v.X > 0:
			t.Fatalf("centre %f left of middle: v.x = %f", x, v.X)
		}
	}
}

func TestFireVelocityAngleGrowsTowardEdges(t *testing.T) {
	p := newTestPaddle()
	prev := 0.0
	for _, x := range []float64{112, 120, 130, 145} {
		v := p.ComputeFireVelocity(ballCenteredAt(p, x))
		if v.X <= prev {
			t.Fatalf("centre %f: v.x = %f not above %f", x, v.X, prev)
		}
		prev = v.X
	}
}

func TestFireVelocityMirrors(t *testing.T) {
	p := newTestPaddle()
	for _, off := range []float64{12, 25, 40, 49} {
		r := p.ComputeFireVelocity(ballCenteredAt(p, 100+off))
		l := p.ComputeFireVelocity(ballCenteredAt(p, 100-off))
		if math.Abs(r.X+l.X) > eps || math.Abs(r.Y-l.Y) > eps {
			t.Fatalf("offset %f: right %v and left %v are not mirrored", off, r, l)
		}
	}
}

func TestFireVelocityKnownAngle(t *testing.T) {
	p := newTestPaddle()
	// ball centre 5 above the paddle and 5 right of the 60% pivot: 45 degrees
	b := ballCenteredAt(p, 115)
	v := p.ComputeFireVelocity(b)
	want := b.speed / math.Sqrt2
	if math.Abs(v.X-want) > eps || math.Abs(v.Y+want) > eps {
		t.Fatalf("v = %v, want (%f, %f)", v, want, -want)
	}
}

func TestComputeFireVelocityIsPure(t *testing.T) {
	p := newTestPaddle()
	b := ballCenteredAt(p, 130)
	p.AttachBall(b)
	before := *b

	p.ComputeFireVelocity(b)
	if *b != before || len(p.AttachedBalls()) != 1 {
		t.Fatalf("ComputeFireVelocity changed state")
	}
}

func TestFireBallsDrainsPaddle(t *testing.T) {
	p := newTestPaddle()
	balls := []*testBall{newTestBall(50, 0), newTestBall(95, 0), newTestBall(140, 0)}
	for _, b := range balls {
		if err := p.AttachBall(b); err != nil {
			t.Fatalf("AttachBall: %v", err)
		}
	}

	p.FireBalls()

	if n := len(p.AttachedBalls()); n != 0 {
		t.Fatalf("%d balls still attached", n)
	}
	for i, b := range balls {
		if n := math.Hypot(b.vel.X, b.vel.Y); math.Abs(n-b.speed) > eps {
			t.Fatalf("ball %d speed %f, want %f", i, n, b.speed)
		}
	}
	if balls[0].vel.X >= 0 || balls[2].vel.X <= 0 {
		t.Fatalf("edge balls fired the wrong way: %v, %v", balls[0].vel, balls[2].vel)
	}
	if balls[1].vel != (canvas.Vector{X: 0, Y: -balls[1].speed}) {
		t.Fatalf("centre ball fired at %v", balls[1].vel)
	}
}

func TestFireCenteredScenario(t *testing.T) {
	p := newTestPaddle()
	b := newTestBall(95, 390)
	p.AttachBall(b)
	p.FireBalls()
	if b.vel != (canvas.Vector{X: 0, Y: -b.speed}) {
		t.Fatalf("v = %v, want (0, %f)", b.vel, -b.speed)
	}
}

func TestFireFlatBallGoesStraightUp(t *testing.T) {
	p := newTestPaddle()
	for _, x := range []float64{65, 135} {
		b := newTestBall(x-5, 0)
		b.size.Height = 0
		if err := p.AttachBall(b); err != nil {
			t.Fatalf("AttachBall: %v", err)
		}

		v := p.ComputeFireVelocity(b)
		if v != (canvas.Vector{X: 0, Y: -b.speed}) {
			t.Fatalf("flat ball centred at %f: v = %v, want (0, %f)", x, v, -b.speed)
		}
		p.DetachBall(b)
	}
}

func TestFireBallOnPivot(t *testing.T) {
	// with a 21 wide paddle the centre offset rounds just past the dead band
	// and lands exactly on the pivot
	p := New(canvas.New(300, 500), canvas.Vector{X: 50, Y: 400}, canvas.Size{Width: 21, Height: 10})
	for _, x := range []float64{57.6, 53.4} {
		b := newTestBall(x, 390)

		v := p.ComputeFireVelocity(b)
		if v != (canvas.Vector{X: 0, Y: -b.speed}) {
			t.Fatalf("ball at %f: v = %v, want (0, %f)", x, v, -b.speed)
		}
	}
}
