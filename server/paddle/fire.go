package paddle

import (
	"math"

	"github.com/mo-shahab/go-breakout/server/canvas"
)

// ComputeFireVelocity returns the velocity b leaves the paddle with. The
// magnitude is always b.DefaultSpeed() and the ball always goes up.
//
// The paddle is split into five equal bands. A ball centred in the middle
// band goes straight up. Otherwise the direction is the line from the pivot
// at the 40% (left) or 60% (right) mark through the ball centre, scaled onto
// the circle of radius speed.
func (p *Paddle) ComputeFireVelocity(b Ball) canvas.Vector {
	pos := p.Position()
	width := p.Size().Width
	speed := b.DefaultSpeed()

	paddleCenter := canvas.Vector{X: pos.X + width/2, Y: pos.Y}
	leftPivot := canvas.Vector{X: pos.X + width/5*2, Y: pos.Y}
	rightPivot := canvas.Vector{X: pos.X + width/5*3, Y: pos.Y}

	// ball centre relative to the paddle centre, y pointing up
	bp := b.Position()
	bs := b.Size()
	rel := canvas.Vector{
		X: bp.X + bs.Width/2 - paddleCenter.X,
		Y: paddleCenter.Y - bp.Y - bs.Height/2,
	}

	straightUp := canvas.Vector{X: 0, Y: -speed}
	if math.Abs(rel.X) <= width/10 {
		return straightUp
	}

	pivot := leftPivot
	if rel.X > width/10 {
		pivot = rightPivot
	}
	rel.X += paddleCenter.X - pivot.X

	// Rounding can land the ball exactly on the pivot. A centre at or below
	// the paddle top (a flat ball) has no upward line through the pivot.
	if rel.X == 0 || rel.Y <= 0 {
		return straightUp
	}

	// Intersect y = k*x with x^2 + y^2 = speed^2.
	k := rel.Y / rel.X
	a := (rel.X*rel.X + rel.Y*rel.Y) / (rel.X * rel.X)
	c := -speed * speed
	d := -4 * a * c

	p1 := canvas.Vector{X: math.Sqrt(d) / (2 * a)}
	p2 := canvas.Vector{X: -math.Sqrt(d) / (2 * a)}
	p1.Y = p1.X * k
	p2.Y = p2.X * k

	chosen := p2
	if p1.Y > 0 {
		chosen = p1
	}

	// back to screen coordinates
	return canvas.Vector{X: chosen.X, Y: -math.Abs(chosen.Y)}
}

// FireBalls launches every attached ball. The paddle is empty afterwards.
func (p *Paddle) FireBalls() {
	for len(p.balls) > 0 {
		b := p.balls[0]
		b.SetVelocity(p.ComputeFireVelocity(b))
		p.DetachBall(b)
	}
}
