package canvas

import "github.com/golang/geo/r2"

// Vector is a point or displacement in field space. The origin is the top-left
// corner and y grows downward.
type Vector = r2.Point

// Size is the width and height of a rectangular thing
type Size struct {
	Width  float64
	Height float64
}

// Field is the read-only play area every paddle and ball lives in.
type Field interface {
	Size() Size
}

// Canvas is the rectangular field the server plays on
type Canvas struct {
	Width  float64
	Height float64
}

func New(width, height float64) *Canvas {
	return &Canvas{Width: width, Height: height}
}

func (c *Canvas) Size() Size {
	return Size{Width: c.Width, Height: c.Height}
}

// Clamp returns v bounded to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
