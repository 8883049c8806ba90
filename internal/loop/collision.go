package loop

import (
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

// resolve applies out-of-bounds removal, the ship hit and bullet hits for
// the current positions.
func (w *World) resolve() FrameReport {
	clear(w.deadAsteroids)
	clear(w.deadBullets)

	populateBulletGrid(w.grid, w.Bullets, w.deadBullets)

	for _, a := range w.Asteroids {
		if w.deadAsteroids[a.ID()] {
			continue
		}
		if !physics.InBounds(a.Position()) {
			w.deadAsteroids[a.ID()] = true
			continue
		}

		if object.Overlaps(w.Ship, a) {
			return w.shipHit()
		}

		w.grid.QueryAround(a.Position(), func(i int) bool {
			b := w.Bullets[i]
			if w.deadBullets[b.ID()] {
				return false
			}
			if object.Overlaps(b, a) {
				w.deadBullets[b.ID()] = true
				w.deadAsteroids[a.ID()] = true
			}
			return false // Keep scanning: one asteroid may absorb several bullets
		})
	}

	var report FrameReport
	w.Asteroids, report.AsteroidsRemoved = removeDead(w.Asteroids, w.deadAsteroids)
	w.Bullets, report.BulletsRemoved = removeDead(w.Bullets, w.deadBullets)
	return report
}

// populateBulletGrid marks bullets outside the plane and inserts the rest
// into the grid by index.
func populateBulletGrid(grid *physics.SpatialGrid, bullets []*object.Bullet, dead map[object.ID]bool) {
	grid.Clear()
	for i, b := range bullets {
		if !physics.InBounds(b.Position()) {
			dead[b.ID()] = true
			continue
		}
		grid.Insert(b.Position(), i)
	}
}

// shipHit clears the field and puts the ship back at the origin.
func (w *World) shipHit() FrameReport {
	report := FrameReport{
		ShipHit:          true,
		AsteroidsRemoved: len(w.Asteroids),
		BulletsRemoved:   len(w.Bullets),
	}
	clear(w.Asteroids)
	w.Asteroids = w.Asteroids[:0]
	clear(w.Bullets)
	w.Bullets = w.Bullets[:0]
	w.Ship.Reset()
	return report
}

// removeDead drops every item whose ID is in dead, preserving the order of
// the rest, and returns how many were dropped.
func removeDead[T object.Body](items []T, dead map[object.ID]bool) ([]T, int) {
	if len(dead) == 0 {
		return items, 0
	}
	kept := items[:0] // reuse backing array
	for _, it := range items {
		if !dead[it.ID()] {
			kept = append(kept, it)
		}
	}
	removed := len(items) - len(kept)
	clear(items[len(kept):])
	return kept, removed
}
