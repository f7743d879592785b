package object

import (
	"github.com/mo-shahab/go-breakout/server/canvas"
)

// Positioned is anything that sits somewhere on a field.
type Positioned interface {
	Position() canvas.Vector
	SetPosition(pos canvas.Vector)
	Size() canvas.Size
	Field() canvas.Field
}

// Object carries the shared state of a positioned entity. It never clamps:
// keeping the position inside the field is the caller's job.
type Object struct {
	field  canvas.Field
	pos    canvas.Vector
	size   canvas.Size
	placed bool
}

// New returns an object already placed at pos
func New(field canvas.Field, pos canvas.Vector, size canvas.Size) Object {
	return Object{field: field, pos: pos, size: size, placed: true}
}

// NewUnplaced returns an object whose position has not been assigned yet
func NewUnplaced(field canvas.Field, size canvas.Size) Object {
	return Object{field: field, size: size}
}

func (o *Object) Position() canvas.Vector {
	return o.pos
}

func (o *Object) SetPosition(pos canvas.Vector) {
	o.pos = pos
	o.placed = true
}

// Placed reports whether the position was ever assigned.
func (o *Object) Placed() bool {
	return o.placed
}

func (o *Object) Size() canvas.Size {
	return o.size
}

func (o *Object) Field() canvas.Field {
	return o.field
}

// Move translates the object by delta.
func (o *Object) Move(delta canvas.Vector) {
	o.SetPosition(o.pos.Add(delta))
}
