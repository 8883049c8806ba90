// Package window runs the game in a desktop window using ebiten.
package window

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/polyroids/internal/config"
	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/loop"
)

// Title is the window title.
const Title = "Asteroids"

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyW:          input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyS:          input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyA:          input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyD:          input.KeyRight,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyEscape:     input.KeyEscape,
}

// Game implements ebiten.Game on top of a loop.World.
type Game struct {
	world   *loop.World
	stepper *loop.Stepper
	logger  *log.Logger
	last    time.Time

	width, height int

	white    *ebiten.Image // 1x1 source for flat-coloured triangles
	keys     []ebiten.Key
	vertices []ebiten.Vertex
}

// New creates a game with a fresh world.
func New(cfg config.Config, rng *rand.Rand, logger *log.Logger) *Game {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)

	return &Game{
		world:   loop.NewWorld(cfg, rng),
		stepper: loop.NewStepper(cfg.Sim.TickDuration(), cfg.Sim.MaxTicksPerFrame),
		logger:  logger,
		last:    time.Now(),
		white:   img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		keys:    make([]ebiten.Key, 0, 8),
	}
}

// Update applies key presses then runs the due simulation ticks.
// Escape ends the game with ebiten.Termination.
func (g *Game) Update() error {
	g.keys = inpututil.AppendPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		key, ok := keyMap[k]
		if !ok || !input.Repeats(inpututil.KeyPressDuration(k)) {
			continue
		}
		cmd, _ := input.Map(key)
		if g.world.Apply(cmd) {
			g.logger.Info("player quit")
			return ebiten.Termination
		}
	}

	now := time.Now()
	var report loop.FrameReport
	for n := g.stepper.Advance(now.Sub(g.last)); n > 0; n-- {
		report.Add(g.world.AdvanceFrame())
	}
	g.last = now
	loop.LogReport(g.logger, report)
	return nil
}

// Draw renders every mesh as filled triangles over a black background.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	view := draw.Viewport(float32(g.width), float32(g.height))
	for _, m := range g.world.Meshes() {
		g.drawMesh(screen, m, view)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("asteroids %d  bullets %d", len(g.world.Asteroids), len(g.world.Bullets)))
}

func (g *Game) drawMesh(screen *ebiten.Image, m draw.Mesh, view mgl32.Mat4) {
	mvp := view.Mul4(m.Transform)
	r, gr, b, a := float32(m.Color.R)/0xff, float32(m.Color.G)/0xff, float32(m.Color.B)/0xff, float32(m.Color.A)/0xff

	g.vertices = g.vertices[:0]
	for _, v := range m.Vertices {
		p := draw.Project(mvp, v)
		g.vertices = append(g.vertices, ebiten.Vertex{
			DstX:   p.X(),
			DstY:   p.Y(),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: gr,
			ColorB: b,
			ColorA: a,
		})
	}

	screen.DrawTriangles(g.vertices, m.TriangleIndices(), g.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Layout follows the window size so the plane fills the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
