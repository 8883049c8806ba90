package loop

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"

	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/physics"
)

// Index patterns of the render contract. The quad pattern carries a trailing
// incomplete triangle that triangle-list drawing drops.
var (
	ShipIndices = []uint16{0, 1, 2}
	QuadIndices = []uint16{0, 1, 2, 3, 4, 5, 6}
)

// Entity colours.
var (
	ShipColor     = colornames.Yellow
	AsteroidColor = colornames.Magenta
	BulletColor   = colornames.Red
)

// ShipTransform places ship-local vertices at pos rotated by angle.
func ShipTransform(pos physics.Point, angle float32) mgl32.Mat4 {
	return mgl32.Translate3D(pos.X, pos.Y, 0).Mul4(mgl32.HomogRotate3DZ(angle))
}

// Meshes returns the current scene: the ship, then asteroids, then bullets.
// It does not modify the world.
func (w *World) Meshes() []draw.Mesh {
	meshes := make([]draw.Mesh, 0, 1+len(w.Asteroids)+len(w.Bullets))

	meshes = append(meshes, draw.Mesh{
		Vertices:  toVec2(w.Ship.LocalVertices()),
		Indices:   ShipIndices,
		Transform: ShipTransform(w.Ship.Position(), w.Ship.Angle()),
		Color:     ShipColor,
	})
	for _, a := range w.Asteroids {
		meshes = append(meshes, quadMesh(a.Vertices(), AsteroidColor))
	}
	for _, b := range w.Bullets {
		meshes = append(meshes, quadMesh(b.Vertices(), BulletColor))
	}
	return meshes
}

func quadMesh(poly physics.Polygon, col color.RGBA) draw.Mesh {
	return draw.Mesh{
		Vertices:  toVec2(poly),
		Indices:   QuadIndices,
		Transform: mgl32.Ident4(),
		Color:     col,
	}
}

func toVec2(poly physics.Polygon) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, len(poly))
	for i, p := range poly {
		out[i] = mgl32.Vec2{p.X, p.Y}
	}
	return out
}
