// Package object defines the game entities and how they move each tick.
package object

import (
	"math"

	"github.com/tomz197/polyroids/internal/physics"
)

// Kind tags the closed set of entity types.
type Kind uint8

const (
	KindShip Kind = iota + 1
	KindAsteroid
	KindBullet
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// ID identifies an entity for its whole lifetime. Zero is never assigned.
type ID uint64

// IDs hands out increasing entity IDs. The zero value is ready to use.
type IDs struct {
	last ID
}

// Next returns a fresh ID.
func (g *IDs) Next() ID {
	g.last++
	return g.last
}

// Body is implemented by Ship, Asteroid and Bullet only.
type Body interface {
	ID() ID
	Kind() Kind
	Position() physics.Point
	// Vertices returns the collision polygon in plane coordinates,
	// computed fresh from the current position.
	Vertices() physics.Polygon

	body()
}

// Overlaps reports whether any vertex of probe lies inside target.
// The test is one-sided: Overlaps(a, b) may differ from Overlaps(b, a).
func Overlaps(probe, target Body) bool {
	return physics.AnyInside(probe.Vertices(), target.Vertices())
}

// square builds the 6-vertex double-triangle form of an axis-aligned
// square of the given side centered at c.
func square(c physics.Point, size float32) physics.Polygon {
	h := size / 2
	return physics.Polygon{
		{X: c.X - h, Y: c.Y - h},
		{X: c.X + h, Y: c.Y - h},
		{X: c.X + h, Y: c.Y + h},
		{X: c.X + h, Y: c.Y + h},
		{X: c.X - h, Y: c.Y + h},
		{X: c.X - h, Y: c.Y - h},
	}
}

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
