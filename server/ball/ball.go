package ball

import (
	"github.com/google/uuid"
	"github.com/mo-shahab/go-breakout/server/canvas"
	"github.com/mo-shahab/go-breakout/server/object"
)

// Ball is a single ball on the field. Its speed scalar is fixed at creation;
// the velocity is either zero (resting on a paddle) or has that magnitude.
type Ball struct {
	object.Object
	ID       string
	velocity canvas.Vector
	speed    float64
}

func New(field canvas.Field, pos canvas.Vector, size canvas.Size, speed float64) *Ball {
	return &Ball{
		Object: object.New(field, pos, size),
		ID:     uuid.New().String(),
		speed:  speed,
	}
}

func (b *Ball) Velocity() canvas.Vector {
	return b.velocity
}

func (b *Ball) SetVelocity(v canvas.Vector) {
	b.velocity = v
}

// DefaultSpeed is the magnitude the velocity has while the ball is in flight.
func (b *Ball) DefaultSpeed() float64 {
	return b.speed
}

// Flying reports whether the ball currently moves.
func (b *Ball) Flying() bool {
	return b.velocity.X != 0 || b.velocity.Y != 0
}

func (b *Ball) Center() canvas.Vector {
	s := b.Size()
	return b.Position().Add(canvas.Vector{X: s.Width / 2, Y: s.Height / 2})
}
