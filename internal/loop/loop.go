// Package loop runs the asteroids simulation and its terminal front end.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/input"
)

// hudRows is the number of terminal rows reserved below the playfield.
const hudRows = 1

// Options configures a terminal game.
type Options struct {
	Config   config.Config
	Rand     *rand.Rand         // Defaults to a time-seeded source
	Logger   *log.Logger        // Defaults to discarding
	TermSize draw.TermSizeFunc  // Defaults to draw.DefaultTermSizeFunc
	Renderer *lipgloss.Renderer // HUD styling; defaults to one bound to the output writer
}

// Run plays one game on a raw terminal: Input → Simulate → Draw each frame,
// with the simulation advanced in fixed ticks. It returns nil when the player
// quits, the input ends or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	opts = withDefaults(opts, w)
	logger := opts.Logger
	cfg := opts.Config

	termWidth, termHeight, err := opts.TermSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	world := NewWorld(cfg, opts.Rand)
	stream := input.StartStream(r)
	stepper := NewStepper(cfg.Sim.TickDuration(), cfg.Sim.MaxTicksPerFrame)
	status := newHUD(opts.Renderer)
	canvas := draw.NewCanvas(termWidth, termHeight-hudRows)
	fw := draw.NewFrameWriter(w)

	fw.Begin()
	defer func() {
		fw.End()
		_ = fw.Flush()
	}()

	logger.Info("game started", "asteroids", len(world.Asteroids), "width", termWidth, "height", termHeight)

	ticker := time.NewTicker(cfg.Sim.FrameDuration())
	defer ticker.Stop()
	last := time.Now()

	for {
		// ===== INPUT PHASE =====
		keys, closed := stream.Poll()
		for _, cmd := range input.Commands(keys) {
			if world.Apply(cmd) {
				logger.Info("player quit")
				return nil
			}
		}
		if closed {
			logger.Info("input closed")
			return nil
		}

		// ===== SIMULATE PHASE =====
		now := time.Now()
		var report FrameReport
		for n := stepper.Advance(now.Sub(last)); n > 0; n-- {
			report.Add(world.AdvanceFrame())
		}
		last = now
		LogReport(logger, report)

		// ===== DRAW PHASE =====
		if tw, th, err := opts.TermSize(); err == nil {
			termWidth, termHeight = tw, th
			canvas.Resize(termWidth, termHeight-hudRows)
		}
		if err := drawFrame(fw, canvas, world, status, termWidth); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		select {
		case <-ctx.Done():
			logger.Info("game cancelled")
			return nil
		case <-ticker.C:
		}
	}
}

func withDefaults(opts Options, w io.Writer) Options {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TermSize == nil {
		opts.TermSize = draw.DefaultTermSizeFunc
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.NewRenderer(w)
	}
	return opts
}

// LogReport writes the notable events of r at debug level.
func LogReport(logger *log.Logger, r FrameReport) {
	if r.ShipHit {
		logger.Debug("ship destroyed", "asteroids_cleared", r.AsteroidsRemoved, "bullets_cleared", r.BulletsRemoved)
	}
	if r.Spawned > 0 {
		logger.Debug("asteroids spawned", "count", r.Spawned)
	}
}

// drawFrame renders the scene and HUD into fw and flushes it.
func drawFrame(fw *draw.FrameWriter, canvas *draw.Canvas, world *World, status hud, termWidth int) error {
	canvas.Clear()
	for _, m := range world.Meshes() {
		canvas.DrawMesh(m)
	}
	if err := canvas.Render(fw, 1); err != nil {
		return err
	}

	fw.Line(canvas.TerminalHeight()+1, status.line(world, termWidth))
	return fw.Flush()
}
