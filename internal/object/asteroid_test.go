package object

import (
	"math"
	"testing"

	"github.com/tomz197/polyroids/internal/physics"
)

const step = float32(0.00001)

func TestAsteroidDominantAxis(t *testing.T) {
	tests := []struct {
		name   string
		start  physics.Point
		target physics.Point
		dx, dy float32 // Expected sign of travel per axis on the dominant axis
	}{
		{"x dominant toward +x", physics.Point{X: -0.5, Y: -0.1}, physics.Point{}, 1, 0},
		{"x dominant toward -x", physics.Point{X: 0.5, Y: 0.1}, physics.Point{}, -1, 0},
		{"y dominant toward +y", physics.Point{X: 0.1, Y: -0.5}, physics.Point{}, 0, 1},
		{"y dominant toward -y", physics.Point{X: -0.1, Y: 0.5}, physics.Point{}, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAsteroid(1, tc.start, 0.1, tc.target, step)
			const n = 1000
			for i := 0; i < n; i++ {
				a.Advance()
			}
			moved := a.Position().Sub(tc.start)
			travel := float32(n) * step
			if tc.dx != 0 && !near(moved.X, tc.dx*travel) {
				t.Errorf("x moved %v, expected %v", moved.X, tc.dx*travel)
			}
			if tc.dy != 0 && !near(moved.Y, tc.dy*travel) {
				t.Errorf("y moved %v, expected %v", moved.Y, tc.dy*travel)
			}
		})
	}
}

func TestAsteroidFollowsLineEquation(t *testing.T) {
	starts := []physics.Point{
		{X: -0.8, Y: -0.3},
		{X: 0.7, Y: -0.6},
		{X: 0.2, Y: 0.9},
		{X: -0.1, Y: -0.9},
	}
	ship := physics.Point{X: 0.05, Y: -0.02}

	for _, start := range starts {
		a := NewAsteroid(1, start, 0.1, ship, step)
		dir := ship.Sub(start)
		slope := dir.X / dir.Y

		for n := 0; n <= 5000; n++ {
			if n > 0 {
				a.Advance()
			}
			p := a.Position()
			want := slope*(p.X-start.X) + start.Y
			if math.Abs(float64(p.Y-want)) > 1e-4 {
				t.Fatalf("start %v after %d steps: y=%v, line gives %v", start, n, p.Y, want)
			}
		}
	}
}

func TestAsteroidDirectionFixedAtSpawn(t *testing.T) {
	a := NewAsteroid(1, physics.Point{X: -0.5, Y: 0.2}, 0.1, physics.Point{}, step)
	dir := a.Direction()

	// Ship movement is not observed: there is no input for it
	for i := 0; i < 100; i++ {
		a.Advance()
	}
	if a.Direction() != dir {
		t.Errorf("direction changed from %v to %v", dir, a.Direction())
	}
}

func TestAsteroidDegenerateDirection(t *testing.T) {
	tests := []struct {
		name   string
		start  physics.Point
		target physics.Point
	}{
		{"horizontal", physics.Point{X: -0.5, Y: 0.2}, physics.Point{X: 0.5, Y: 0.2}},
		{"vertical", physics.Point{X: 0.3, Y: -0.5}, physics.Point{X: 0.3, Y: 0.5}},
		{"on target", physics.Point{X: 0.3, Y: 0.3}, physics.Point{X: 0.3, Y: 0.3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAsteroid(1, tc.start, 0.1, tc.target, step)
			for i := 0; i < 100; i++ {
				a.Advance()
			}
			p := a.Position()
			for _, v := range []float32{p.X, p.Y} {
				if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
					t.Fatalf("position became %v", p)
				}
			}
			if tc.name == "horizontal" && p.Y != tc.start.Y {
				t.Errorf("horizontal drift changed y: %v", p)
			}
			if tc.name == "vertical" && p.X != tc.start.X {
				t.Errorf("vertical drift changed x: %v", p)
			}
		})
	}
}

func TestAsteroidRetarget(t *testing.T) {
	a := NewAsteroid(1, physics.Point{X: -0.5, Y: 0}, 0.1, physics.Point{X: 0.5, Y: 0}, step)
	for i := 0; i < 100; i++ {
		a.Advance()
	}
	here := a.Position()

	a.Retarget(physics.Point{X: here.X, Y: 0.9})
	if a.Position() != here {
		t.Fatalf("Retarget moved the asteroid: %v -> %v", here, a.Position())
	}
	a.Advance()
	if p := a.Position(); p.X != here.X || !near(p.Y, here.Y+step) {
		t.Errorf("after retarget: %v, expected straight up from %v", p, here)
	}
}

func TestAsteroidVertices(t *testing.T) {
	a := NewAsteroid(1, physics.Point{X: 0.1, Y: 0.1}, 0.2, physics.Point{}, step)
	v := a.Vertices()
	if len(v) != 6 {
		t.Fatalf("asteroid has %d vertices, expected 6", len(v))
	}
	if !near(v[0].X, 0) || !near(v[0].Y, 0) || !near(v[2].X, 0.2) || !near(v[2].Y, 0.2) {
		t.Errorf("unexpected square %v", v)
	}
}
