package object

import (
	"math/rand"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/physics"
)

// AsteroidSpawner creates randomly placed asteroids and keeps the population
// above a floor.
type AsteroidSpawner struct {
	rng *rand.Rand
	ids *IDs
	cfg config.Asteroids
}

// NewAsteroidSpawner creates a spawner drawing from rng. IDs are shared with
// the rest of the world so they stay unique across kinds.
func NewAsteroidSpawner(rng *rand.Rand, ids *IDs, cfg config.Asteroids) *AsteroidSpawner {
	return &AsteroidSpawner{
		rng: rng,
		ids: ids,
		cfg: cfg,
	}
}

// Spawn appends count-1 new asteroids aimed at shipPos. A count of 0 or 1
// adds nothing.
func (s *AsteroidSpawner) Spawn(existing []*Asteroid, shipPos physics.Point, count int) []*Asteroid {
	for i := 1; i < count; i++ {
		size := s.cfg.MinSize + s.rng.Float32()*(s.cfg.MaxSize-s.cfg.MinSize)
		pos := physics.Point{
			X: s.rng.Float32()*2 - 1,
			Y: s.rng.Float32()*2 - 1,
		}
		existing = append(existing, NewAsteroid(s.ids.Next(), pos, size, shipPos, s.cfg.Step))
	}
	return existing
}

// SpawnInitial populates an empty field at game start.
func (s *AsteroidSpawner) SpawnInitial(existing []*Asteroid, shipPos physics.Point) []*Asteroid {
	return s.Spawn(existing, shipPos, s.cfg.InitialBatch)
}

// TopUp spawns a batch when fewer than the floor remain.
func (s *AsteroidSpawner) TopUp(existing []*Asteroid, shipPos physics.Point) []*Asteroid {
	if len(existing) >= s.cfg.Floor {
		return existing
	}
	return s.Spawn(existing, shipPos, s.cfg.Batch)
}
