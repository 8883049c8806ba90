package object

import (
	"math"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/physics"
)

const sqrt3 = float32(1.7320508075688772)

// Ship is the player-controlled triangle. It never leaves the plane: crossing
// an edge teleports it just inside the opposite edge.
type Ship struct {
	id    ID
	pos   physics.Point
	angle float32 // Heading in radians (0 = up, counter-clockwise positive)

	size      float32
	thrust    float32 // Distance per thrust command
	rotStep   float32 // Radians per rotate command
	wrapInset float32
}

// NewShip creates a ship at the origin heading up.
func NewShip(id ID, cfg config.Ship) *Ship {
	return &Ship{
		id:        id,
		size:      cfg.Size,
		thrust:    cfg.ThrustStep,
		rotStep:   cfg.RotationStepDeg * math.Pi / 180,
		wrapInset: cfg.WrapInset,
	}
}

func (s *Ship) ID() ID                  { return s.id }
func (s *Ship) Kind() Kind              { return KindShip }
func (s *Ship) Position() physics.Point { return s.pos }
func (s *Ship) Angle() float32          { return s.angle }
func (s *Ship) Size() float32           { return s.size }
func (s *Ship) body()                   {}

// Vertices returns the unrotated equilateral triangle around the position.
// The heading only affects rendering.
func (s *Ship) Vertices() physics.Polygon {
	return s.triangle(s.pos)
}

// LocalVertices returns the triangle around the origin, for rendering
// with a translate-rotate transform.
func (s *Ship) LocalVertices() physics.Polygon {
	return s.triangle(physics.Point{})
}

func (s *Ship) triangle(c physics.Point) physics.Polygon {
	return physics.Polygon{
		{X: c.X, Y: c.Y + sqrt3*s.size/3},
		{X: c.X - s.size/2, Y: c.Y - sqrt3*s.size/6},
		{X: c.X + s.size/2, Y: c.Y - sqrt3*s.size/6},
	}
}

// MoveForward moves one thrust step along the heading.
func (s *Ship) MoveForward() {
	s.move(1)
}

// MoveBackward moves one thrust step against the heading.
func (s *Ship) MoveBackward() {
	s.move(-1)
}

func (s *Ship) move(dir float32) {
	s.pos.X += dir * s.thrust * -sin32(s.angle)
	s.pos.Y += dir * s.thrust * cos32(s.angle)
	s.pos.X = s.wrap(s.pos.X)
	s.pos.Y = s.wrap(s.pos.Y)
}

func (s *Ship) wrap(v float32) float32 {
	switch {
	case v >= physics.PlaneMax:
		return -s.wrapInset
	case v <= physics.PlaneMin:
		return s.wrapInset
	}
	return v
}

// RotateLeft turns the heading counter-clockwise by one step.
func (s *Ship) RotateLeft() {
	s.angle += s.rotStep
}

// RotateRight turns the heading clockwise by one step.
func (s *Ship) RotateRight() {
	s.angle -= s.rotStep
}

// Reset returns the ship to the origin heading up.
func (s *Ship) Reset() {
	s.pos = physics.Point{}
	s.angle = 0
}
