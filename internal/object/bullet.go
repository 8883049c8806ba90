package object

import (
	"math"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/physics"
)

// Bullet is a small square fired from the ship. Its velocity is fixed at
// creation.
type Bullet struct {
	id   ID
	pos  physics.Point
	size float32
	vel  physics.Point // Distance per tick
}

// NewBullet creates a bullet at pos travelling along heading angle
// (0 = up, counter-clockwise positive).
func NewBullet(id ID, pos physics.Point, angle float32, cfg config.Bullets) *Bullet {
	dir := angle + math.Pi/2
	return &Bullet{
		id:   id,
		pos:  pos,
		size: cfg.Size,
		vel: physics.Point{
			X: cfg.Speed * cos32(dir) * cfg.StepScale,
			Y: cfg.Speed * sin32(dir) * cfg.StepScale,
		},
	}
}

func (b *Bullet) ID() ID                  { return b.id }
func (b *Bullet) Kind() Kind              { return KindBullet }
func (b *Bullet) Position() physics.Point { return b.pos }
func (b *Bullet) Size() float32           { return b.size }
func (b *Bullet) body()                   {}

// Velocity returns the distance travelled per tick.
func (b *Bullet) Velocity() physics.Point { return b.vel }

// Vertices returns the square around the position.
func (b *Bullet) Vertices() physics.Polygon {
	return square(b.pos, b.size)
}

// Advance moves the bullet one tick.
func (b *Bullet) Advance() {
	b.pos.X += b.vel.X
	b.pos.Y += b.vel.Y
}
