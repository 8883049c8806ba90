package object

import (
	"github.com/tomz197/polyroids/internal/physics"
)

// Asteroid drifts along a straight line toward where the ship was when the
// line was fixed. It stops existing once it leaves the plane.
type Asteroid struct {
	id   ID
	pos  physics.Point
	size float32
	step float32 // Dominant-axis distance per tick

	origin physics.Point // Anchor of the current line
	offset float32       // Accumulated dominant-axis travel from origin
	dir    physics.Point // Aim vector when the line was fixed
	slope  float32       // dir.X / dir.Y, 0 when dir.Y is 0
}

// NewAsteroid creates an asteroid at pos aimed at target.
func NewAsteroid(id ID, pos physics.Point, size float32, target physics.Point, step float32) *Asteroid {
	a := &Asteroid{
		id:   id,
		size: size,
		step: step,
	}
	a.aim(pos, target)
	return a
}

func (a *Asteroid) ID() ID                  { return a.id }
func (a *Asteroid) Kind() Kind              { return KindAsteroid }
func (a *Asteroid) Position() physics.Point { return a.pos }
func (a *Asteroid) Size() float32           { return a.size }
func (a *Asteroid) body()                   {}

// Direction returns the aim vector of the current line.
func (a *Asteroid) Direction() physics.Point { return a.dir }

// Vertices returns the square around the position.
func (a *Asteroid) Vertices() physics.Polygon {
	return square(a.pos, a.size)
}

// Retarget fixes a new line from the current position toward target.
func (a *Asteroid) Retarget(target physics.Point) {
	a.aim(a.pos, target)
}

func (a *Asteroid) aim(from, target physics.Point) {
	a.pos = from
	a.origin = from
	a.offset = 0
	a.dir = target.Sub(from)
	a.slope = 0
	if a.dir.Y != 0 {
		a.slope = a.dir.X / a.dir.Y
	}
}

// Advance moves one step along the dominant axis and derives the other
// coordinate from the line through origin.
func (a *Asteroid) Advance() {
	if abs32(a.dir.X) > abs32(a.dir.Y) {
		a.offset += signedStep(a.step, a.dir.X)
		a.pos.X = a.origin.X + a.offset
		a.pos.Y = a.slope*(a.pos.X-a.origin.X) + a.origin.Y
		return
	}

	a.offset += signedStep(a.step, a.dir.Y)
	a.pos.Y = a.origin.Y + a.offset
	if a.slope == 0 {
		a.pos.X = a.origin.X
		return
	}
	a.pos.X = (a.pos.Y-a.origin.Y)/a.slope + a.origin.X
}

func signedStep(step, component float32) float32 {
	if component < 0 {
		return -step
	}
	return step
}
