package loop

import (
	"math/rand"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

// World owns the ship and the asteroid and bullet populations. It is not
// safe for concurrent use; one loop goroutine drives it.
type World struct {
	Ship      *object.Ship
	Asteroids []*object.Asteroid
	Bullets   []*object.Bullet

	cfg     config.Config
	ids     *object.IDs
	spawner *object.AsteroidSpawner

	// Reused between ticks
	grid          *physics.SpatialGrid
	deadAsteroids map[object.ID]bool
	deadBullets   map[object.ID]bool
}

// FrameReport summarises what happened during one or more ticks.
type FrameReport struct {
	ShipHit          bool
	AsteroidsRemoved int
	BulletsRemoved   int
	Spawned          int
}

// Add accumulates o into r.
func (r *FrameReport) Add(o FrameReport) {
	r.ShipHit = r.ShipHit || o.ShipHit
	r.AsteroidsRemoved += o.AsteroidsRemoved
	r.BulletsRemoved += o.BulletsRemoved
	r.Spawned += o.Spawned
}

// NewWorld creates a world with the ship at the origin and the initial
// asteroid batch.
func NewWorld(cfg config.Config, rng *rand.Rand) *World {
	ids := &object.IDs{}
	w := &World{
		Ship:          object.NewShip(ids.Next(), cfg.Ship),
		cfg:           cfg,
		ids:           ids,
		spawner:       object.NewAsteroidSpawner(rng, ids, cfg.Asteroids),
		grid:          physics.NewSpatialGrid(cfg.Asteroids.MaxSize/2 + cfg.Bullets.Size/2),
		deadAsteroids: make(map[object.ID]bool),
		deadBullets:   make(map[object.ID]bool),
	}
	w.Asteroids = w.spawner.SpawnInitial(nil, w.Ship.Position())
	return w
}

// Apply executes one command. It returns true for Quit, which does not
// touch the world.
func (w *World) Apply(cmd input.Command) (quit bool) {
	switch cmd {
	case input.Forward:
		w.Ship.MoveForward()
	case input.Backward:
		w.Ship.MoveBackward()
	case input.RotateLeft:
		w.Ship.RotateLeft()
	case input.RotateRight:
		w.Ship.RotateRight()
	case input.Fire:
		w.Bullets = append(w.Bullets, object.NewBullet(w.ids.Next(), w.Ship.Position(), w.Ship.Angle(), w.cfg.Bullets))
	case input.Quit:
		return true
	}
	return false
}

// AdvanceFrame runs one simulation tick: every asteroid and bullet moves,
// collisions are resolved and the asteroid population is topped up.
func (w *World) AdvanceFrame() FrameReport {
	shipPos := w.Ship.Position()
	for _, a := range w.Asteroids {
		if w.cfg.Asteroids.Retarget {
			a.Retarget(shipPos)
		}
		a.Advance()
	}
	for _, b := range w.Bullets {
		b.Advance()
	}

	report := w.resolve()

	before := len(w.Asteroids)
	w.Asteroids = w.spawner.TopUp(w.Asteroids, w.Ship.Position())
	report.Spawned = len(w.Asteroids) - before

	return report
}
