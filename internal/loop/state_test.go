package loop

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/object"
	"github.com/tomz197/polyroids/internal/physics"
)

// newTestWorld returns a world with the default config and no asteroids.
func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(config.Default(), rand.New(rand.NewSource(1)))
	w.Asteroids = nil
	return w
}

func (w *World) addAsteroid(pos physics.Point, size float32, target physics.Point) *object.Asteroid {
	a := object.NewAsteroid(w.ids.Next(), pos, size, target, w.cfg.Asteroids.Step)
	w.Asteroids = append(w.Asteroids, a)
	return a
}

func (w *World) addBullet(pos physics.Point) *object.Bullet {
	b := object.NewBullet(w.ids.Next(), pos, 0, w.cfg.Bullets)
	w.Bullets = append(w.Bullets, b)
	return b
}

func TestNewWorldInitialBatch(t *testing.T) {
	w := NewWorld(config.Default(), rand.New(rand.NewSource(1)))
	if len(w.Asteroids) != 9 {
		t.Errorf("initial asteroids = %d, expected 9", len(w.Asteroids))
	}
	if len(w.Bullets) != 0 {
		t.Errorf("initial bullets = %d, expected 0", len(w.Bullets))
	}
	if w.Ship.Position() != (physics.Point{}) || w.Ship.Angle() != 0 {
		t.Error("ship should start at the origin heading up")
	}
}

func TestApply(t *testing.T) {
	w := newTestWorld(t)

	if w.Apply(input.Forward) {
		t.Error("Forward should not quit")
	}
	if p := w.Ship.Position(); p.Y <= 0 {
		t.Errorf("Forward should move the ship up, got %v", p)
	}

	w.Apply(input.RotateLeft)
	if w.Ship.Angle() <= 0 {
		t.Error("RotateLeft should increase the heading")
	}
	w.Apply(input.RotateRight)
	w.Apply(input.RotateRight)
	if w.Ship.Angle() >= 0 {
		t.Error("RotateRight should decrease the heading")
	}

	w.Apply(input.Backward)
	w.Apply(input.Backward)
	if p := w.Ship.Position(); p.Y >= 0 {
		t.Errorf("Backward should move the ship down, got %v", p)
	}

	if !w.Apply(input.Quit) {
		t.Error("Quit should report quit")
	}
}

func TestApplyFire(t *testing.T) {
	w := newTestWorld(t)
	w.Apply(input.Forward)

	w.Apply(input.Fire)
	w.Apply(input.Fire)
	if len(w.Bullets) != 2 {
		t.Fatalf("bullets = %d, expected 2", len(w.Bullets))
	}
	b := w.Bullets[0]
	if b.Position() != w.Ship.Position() {
		t.Errorf("bullet at %v, expected ship position %v", b.Position(), w.Ship.Position())
	}
	if v := b.Velocity(); v.Y <= 0 {
		t.Errorf("bullet fired heading up should travel up, velocity %v", v)
	}
	if w.Bullets[0].ID() == w.Bullets[1].ID() {
		t.Error("bullets must get distinct IDs")
	}
}

func TestAdvanceFrameMovesEntities(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 6; i++ {
		w.addAsteroid(physics.Point{X: -0.8, Y: 0.8 - float32(i)*0.1}, 0.05, physics.Point{})
	}
	b := w.addBullet(physics.Point{X: 0.5, Y: -0.5})
	a := w.Asteroids[0]

	aBefore, bBefore := a.Position(), b.Position()
	report := w.AdvanceFrame()

	if report.ShipHit || report.AsteroidsRemoved != 0 || report.BulletsRemoved != 0 || report.Spawned != 0 {
		t.Errorf("unexpected report %+v", report)
	}
	if a.Position() == aBefore {
		t.Error("asteroid did not move")
	}
	if b.Position() == bBefore {
		t.Error("bullet did not move")
	}
}

func TestAdvanceFrameTopsUp(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 3; i++ {
		w.addAsteroid(physics.Point{X: -0.8, Y: 0.8 - float32(i)*0.1}, 0.05, physics.Point{})
	}

	report := w.AdvanceFrame()
	if report.Spawned != 9 || len(w.Asteroids) != 12 {
		t.Errorf("spawned %d, have %d; expected 9 and 12", report.Spawned, len(w.Asteroids))
	}
}

func TestAdvanceFrameShipHit(t *testing.T) {
	w := newTestWorld(t)
	w.Apply(input.RotateLeft)
	w.Apply(input.Forward)
	w.Apply(input.Fire)

	w.addAsteroid(w.Ship.Position(), 0.2, physics.Point{X: 0.9, Y: 0.9})
	for i := 0; i < 5; i++ {
		w.addAsteroid(physics.Point{X: -0.8, Y: 0.8 - float32(i)*0.1}, 0.05, physics.Point{})
	}
	w.addBullet(physics.Point{X: 0.5, Y: -0.5})

	report := w.AdvanceFrame()

	if !report.ShipHit {
		t.Fatal("expected the ship to be hit")
	}
	if report.AsteroidsRemoved != 6 || report.BulletsRemoved != 2 {
		t.Errorf("removed %d asteroids and %d bullets, expected 6 and 2", report.AsteroidsRemoved, report.BulletsRemoved)
	}
	if w.Ship.Position() != (physics.Point{}) || w.Ship.Angle() != 0 {
		t.Errorf("ship not reset: at %v heading %v", w.Ship.Position(), w.Ship.Angle())
	}
	if len(w.Bullets) != 0 {
		t.Errorf("bullets = %d, expected none after a ship hit", len(w.Bullets))
	}
	if report.Spawned != 9 || len(w.Asteroids) != 9 {
		t.Errorf("spawned %d, have %d; expected the same tick to refill 9", report.Spawned, len(w.Asteroids))
	}
}

func TestAdvanceFrameRetarget(t *testing.T) {
	cfg := config.Default()
	cfg.Asteroids.Retarget = true
	w := NewWorld(cfg, rand.New(rand.NewSource(1)))
	w.Asteroids = nil
	for i := 0; i < 5; i++ {
		w.addAsteroid(physics.Point{X: -0.8, Y: 0.8 - float32(i)*0.1}, 0.05, physics.Point{})
	}
	a := w.Asteroids[0]

	for i := 0; i < 30; i++ {
		w.Apply(input.Forward)
	}
	w.AdvanceFrame()

	// The aim was fixed from the position before this tick's step
	want := w.Ship.Position().Sub(a.Position())
	d := a.Direction()
	if math.Abs(float64(d.X-want.X)) > 1e-3 || math.Abs(float64(d.Y-want.Y)) > 1e-3 {
		t.Errorf("direction %v, expected about %v", d, want)
	}
	if math.Abs(float64(d.Y+0.8)) < 0.1 {
		t.Errorf("direction %v still aims at the spawn-time ship position", d)
	}
}

func TestAdvanceFrameKeepsSpawnTimeAim(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 5; i++ {
		w.addAsteroid(physics.Point{X: -0.8, Y: 0.8 - float32(i)*0.1}, 0.05, physics.Point{})
	}
	a := w.Asteroids[4]
	before := a.Direction()

	for i := 0; i < 30; i++ {
		w.Apply(input.Forward)
	}
	w.AdvanceFrame()
	if a.Direction() != before {
		t.Errorf("direction changed from %v to %v without retargeting", before, a.Direction())
	}
}

func TestFrameReportAdd(t *testing.T) {
	var r FrameReport
	r.Add(FrameReport{AsteroidsRemoved: 1, Spawned: 9})
	r.Add(FrameReport{ShipHit: true, BulletsRemoved: 2})
	r.Add(FrameReport{AsteroidsRemoved: 3})

	expected := FrameReport{ShipHit: true, AsteroidsRemoved: 4, BulletsRemoved: 2, Spawned: 9}
	if r != expected {
		t.Errorf("Add = %+v, expected %+v", r, expected)
	}
}
