// Package config holds the tunable game parameters and loads them from YAML.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all tunable parameters of the game.
type Config struct {
	Sim       Sim       `yaml:"sim"`
	Ship      Ship      `yaml:"ship"`
	Asteroids Asteroids `yaml:"asteroids"`
	Bullets   Bullets   `yaml:"bullets"`
}

// Sim controls the loop cadence.
type Sim struct {
	TickRate         int `yaml:"tick_rate"`           // Simulation ticks per second
	FrameRate        int `yaml:"frame_rate"`          // Render frames per second
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"` // Cap to avoid a spiral of death after a stall
}

// Ship defines the player ship.
type Ship struct {
	Size            float32 `yaml:"size"`
	ThrustStep      float32 `yaml:"thrust_step"`       // Distance per thrust command
	RotationStepDeg float32 `yaml:"rotation_step_deg"` // Degrees per rotate command
	WrapInset       float32 `yaml:"wrap_inset"`        // Where the ship reappears after crossing an edge
}

// Asteroids defines asteroid motion and population.
type Asteroids struct {
	Step         float32 `yaml:"step"` // Dominant-axis distance per tick
	MinSize      float32 `yaml:"min_size"`
	MaxSize      float32 `yaml:"max_size"`
	Floor        int     `yaml:"floor"`         // Top up when fewer than this remain
	Batch        int     `yaml:"batch"`         // Requested batch on top-up
	InitialBatch int     `yaml:"initial_batch"` // Requested batch at game start
	Retarget     bool    `yaml:"retarget"`      // Re-aim asteroids at the ship every tick
}

// Bullets defines bullet shape and speed.
type Bullets struct {
	Size      float32 `yaml:"size"`
	Speed     float32 `yaml:"speed"`
	StepScale float32 `yaml:"step_scale"` // Fraction of velocity applied per tick
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sim: Sim{
			TickRate:         2000,
			FrameRate:        60,
			MaxTicksPerFrame: 400,
		},
		Ship: Ship{
			Size:            0.1,
			ThrustStep:      0.01,
			RotationStepDeg: 3,
			WrapInset:       0.99,
		},
		Asteroids: Asteroids{
			Step:         0.00001,
			MinSize:      0.05,
			MaxSize:      0.3,
			Floor:        5,
			Batch:        10,
			InitialBatch: 10,
		},
		Bullets: Bullets{
			Size:      0.02,
			Speed:     3,
			StepScale: 0.0001,
		},
	}
}

// TickDuration is the simulated time covered by one tick.
func (s Sim) TickDuration() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

// FrameDuration is the target wall-clock time of one rendered frame.
func (s Sim) FrameDuration() time.Duration {
	return time.Second / time.Duration(s.FrameRate)
}

// Validate reports the first inconsistent parameter.
func (c Config) Validate() error {
	switch {
	case c.Sim.TickRate <= 0:
		return fmt.Errorf("%w: sim.tick_rate must be positive, got %d", ErrInvalid, c.Sim.TickRate)
	case c.Sim.FrameRate <= 0:
		return fmt.Errorf("%w: sim.frame_rate must be positive, got %d", ErrInvalid, c.Sim.FrameRate)
	case c.Sim.TickDuration() <= 0:
		return fmt.Errorf("%w: sim.tick_rate %d is too high for a non-zero tick duration", ErrInvalid, c.Sim.TickRate)
	case c.Sim.FrameDuration() <= 0:
		return fmt.Errorf("%w: sim.frame_rate %d is too high for a non-zero frame duration", ErrInvalid, c.Sim.FrameRate)
	case c.Sim.MaxTicksPerFrame <= 0:
		return fmt.Errorf("%w: sim.max_ticks_per_frame must be positive, got %d", ErrInvalid, c.Sim.MaxTicksPerFrame)
	case c.Ship.Size <= 0:
		return fmt.Errorf("%w: ship.size must be positive", ErrInvalid)
	case c.Ship.WrapInset <= 0 || c.Ship.WrapInset >= 1:
		return fmt.Errorf("%w: ship.wrap_inset must be in (0,1), got %g", ErrInvalid, c.Ship.WrapInset)
	case c.Asteroids.MinSize <= 0 || c.Asteroids.MaxSize <= c.Asteroids.MinSize:
		return fmt.Errorf("%w: asteroids size range [%g,%g) is empty", ErrInvalid, c.Asteroids.MinSize, c.Asteroids.MaxSize)
	case c.Asteroids.Floor < 0 || c.Asteroids.Batch < 0 || c.Asteroids.InitialBatch < 0:
		return fmt.Errorf("%w: asteroid counts must not be negative", ErrInvalid)
	case c.Bullets.Size <= 0:
		return fmt.Errorf("%w: bullets.size must be positive", ErrInvalid)
	}
	return nil
}
