package paddle

import (
	"github.com/google/uuid"
	"github.com/mo-shahab/go-breakout/server/canvas"
	"github.com/mo-shahab/go-breakout/server/object"
	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned when a nil ball or paddle is handed over.
var ErrInvalidArgument = errors.New("invalid argument")

// Ball is what a paddle needs from a ball it carries.
type Ball interface {
	Position() canvas.Vector
	SetPosition(pos canvas.Vector)
	Size() canvas.Size
	SetVelocity(v canvas.Vector)
	DefaultSpeed() float64
}

// Paddle is a player controlled paddle. Balls attached to it rest on its top
// edge, stay within its horizontal extent and do not move on their own.
// The paddle does not own its balls: detaching one leaves it untouched.
type Paddle struct {
	object.Object
	ID    string
	balls []Ball
}

func New(field canvas.Field, pos canvas.Vector, size canvas.Size) *Paddle {
	return &Paddle{
		Object: object.New(field, pos, size),
		ID:     uuid.New().String(),
	}
}

// NewUnplaced returns a paddle whose first SetPosition is taken as is.
func NewUnplaced(field canvas.Field, size canvas.Size) *Paddle {
	return &Paddle{
		Object: object.NewUnplaced(field, size),
		ID:     uuid.New().String(),
	}
}

// AttachBall puts b on the paddle, stops it and snaps every attached ball
// back onto the paddle surface.
func (p *Paddle) AttachBall(b Ball) error {
	if b == nil {
		return errors.Wrap(ErrInvalidArgument, "attach nil ball")
	}

	b.SetVelocity(canvas.Vector{})
	p.balls = append(p.balls, b)
	p.fixBallsPosition()
	return nil
}

// DetachBall removes the first occurrence of b. Unknown balls are ignored.
func (p *Paddle) DetachBall(b Ball) {
	for i, attached := range p.balls {
		if attached == b {
			p.balls = append(p.balls[:i], p.balls[i+1:]...)
			return
		}
	}
}

// AttachedBalls returns a copy of the attached balls in attach order.
func (p *Paddle) AttachedBalls() []Ball {
	balls := make([]Ball, len(p.balls))
	copy(balls, p.balls)
	return balls
}

// Carries reports whether b is attached to the paddle.
func (p *Paddle) Carries(b Ball) bool {
	for _, attached := range p.balls {
		if attached == b {
			return true
		}
	}
	return false
}

// fixBallsPosition puts every ball right on top of the paddle and pulls it
// back horizontally if it hangs over either end.
func (p *Paddle) fixBallsPosition() {
	pos := p.Position()
	width := p.Size().Width

	for _, b := range p.balls {
		size := b.Size()
		x := canvas.Clamp(b.Position().X, pos.X, pos.X+width-size.Width)
		b.SetPosition(canvas.Vector{X: x, Y: pos.Y - size.Height})
	}
}

// SetPosition moves the paddle and drags attached balls by the same offset.
// The very first assignment on an unplaced paddle is taken as is.
func (p *Paddle) SetPosition(pos canvas.Vector) {
	if !p.Placed() {
		p.Object.SetPosition(pos)
		return
	}

	delta := pos.Sub(p.Position())
	p.Object.SetPosition(pos)

	for _, b := range p.balls {
		b.SetPosition(b.Position().Add(delta))
	}
}

// Move translates the paddle, and its balls, by delta.
func (p *Paddle) Move(delta canvas.Vector) {
	p.SetPosition(p.Position().Add(delta))
}

// Hits reports whether the box of a ball at pos with size s overlaps the paddle.
func (p *Paddle) Hits(pos canvas.Vector, s canvas.Size) bool {
	pp := p.Position()
	ps := p.Size()
	return pos.X < pp.X+ps.Width && pos.X+s.Width > pp.X &&
		pos.Y < pp.Y+ps.Height && pos.Y+s.Height > pp.Y
}
