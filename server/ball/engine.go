package ball

import "math"

// Step advances the ball by one tick and bounces it off the left, right and
// top walls. The bottom edge is open; see Lost.
func (b *Ball) Step() {
	if !b.Flying() {
		return
	}

	pos := b.Position().Add(b.velocity)
	size := b.Size()
	field := b.Field().Size()

	// wall collision (left & right)
	if pos.X <= 0 {
		pos.X = 0
		b.velocity.X = math.Abs(b.velocity.X)
	} else if pos.X+size.Width >= field.Width {
		pos.X = field.Width - size.Width
		b.velocity.X = -math.Abs(b.velocity.X)
	}

	// wall collision (top)
	if pos.Y <= 0 {
		pos.Y = 0
		b.velocity.Y = math.Abs(b.velocity.Y)
	}

	b.SetPosition(pos)
}

// Lost reports whether the ball dropped out through the bottom of the field.
func (b *Ball) Lost() bool {
	return b.Position().Y >= b.Field().Size().Height
}

// Falling reports whether the ball moves toward the bottom edge.
func (b *Ball) Falling() bool {
	return b.velocity.Y > 0
}
