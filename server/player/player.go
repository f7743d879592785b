package player

import (
	"math"

	"github.com/google/uuid"
	"github.com/mo-shahab/go-breakout/server/canvas"
	"github.com/mo-shahab/go-breakout/server/paddle"
	"github.com/pkg/errors"
)

// Player steers every paddle it controls at once. Paddles are shared, not
// owned: a paddle outlives the player and may be steered by several players.
type Player struct {
	ID      string
	paddles []*paddle.Paddle
}

// New returns a player controlling the given paddles. Nil paddles are skipped.
func New(paddles ...*paddle.Paddle) *Player {
	p := &Player{ID: uuid.New().String()}
	for _, pd := range paddles {
		if pd != nil {
			p.paddles = append(p.paddles, pd)
		}
	}
	return p
}

// Paddles returns a copy of the controlled paddles.
func (p *Player) Paddles() []*paddle.Paddle {
	paddles := make([]*paddle.Paddle, len(p.paddles))
	copy(paddles, p.paddles)
	return paddles
}

func (p *Player) AddPaddle(pd *paddle.Paddle) error {
	if pd == nil {
		return errors.Wrap(paddle.ErrInvalidArgument, "add nil paddle")
	}
	p.paddles = append(p.paddles, pd)
	return nil
}

// RemovePaddle drops the first occurrence of pd. Unknown paddles are ignored.
func (p *Player) RemovePaddle(pd *paddle.Paddle) {
	for i, owned := range p.paddles {
		if owned == pd {
			p.paddles = append(p.paddles[:i], p.paddles[i+1:]...)
			return
		}
	}
}

// SetPaddlesPositionX moves every paddle horizontally to x, clamped to its own field.
func (p *Player) SetPaddlesPositionX(x float64) {
	for _, pd := range p.paddles {
		maxX := pd.Field().Size().Width - pd.Size().Width
		actualX := x
		if actualX > maxX {
			actualX = maxX
		} else if actualX < 0 {
			actualX = 0
		}
		pd.SetPosition(canvas.Vector{X: actualX, Y: pd.Position().Y})
	}
}

// MovePaddles shifts every paddle by two thirds of its width in dir. A paddle
// that would cross a field edge stops flush with it instead.
func (p *Player) MovePaddles(dir Direction) {
	for _, pd := range p.paddles {
		width := pd.Size().Width
		fieldWidth := pd.Field().Size().Width
		pos := pd.Position()

		delta := math.Round(width / 3 * 2)
		if dir == West {
			delta = -delta
		}

		switch {
		case pos.X+width+delta > fieldWidth:
			pd.SetPosition(canvas.Vector{X: fieldWidth - width, Y: pos.Y})
		case pos.X+delta < 0:
			pd.SetPosition(canvas.Vector{X: 0, Y: pos.Y})
		default:
			pd.Move(canvas.Vector{X: delta})
		}
	}
}

// FirePaddles launches the balls of every paddle in order.
func (p *Player) FirePaddles() {
	for _, pd := range p.paddles {
		pd.FireBalls()
	}
}
