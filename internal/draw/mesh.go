package draw

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a renderable shape: vertices in model space, a triangle-list index
// pattern, a model transform and a flat colour.
type Mesh struct {
	Vertices  []mgl32.Vec2
	Indices   []uint16
	Transform mgl32.Mat4
	Color     color.RGBA
}

// TriangleIndices returns Indices cut down to whole triangles. A trailing
// incomplete triangle is dropped, as a triangle-list draw would.
func (m Mesh) TriangleIndices() []uint16 {
	return m.Indices[:len(m.Indices)/3*3]
}

// Triangles returns the mesh triangles after applying the model transform
// followed by view.
func (m Mesh) Triangles(view mgl32.Mat4) [][3]mgl32.Vec2 {
	mvp := view.Mul4(m.Transform)
	idx := m.TriangleIndices()

	tris := make([][3]mgl32.Vec2, 0, len(idx)/3)
	for i := 0; i < len(idx); i += 3 {
		tris = append(tris, [3]mgl32.Vec2{
			Project(mvp, m.Vertices[idx[i]]),
			Project(mvp, m.Vertices[idx[i+1]]),
			Project(mvp, m.Vertices[idx[i+2]]),
		})
	}
	return tris
}

// Project applies m to the point v on the z=0 plane.
func Project(m mgl32.Mat4, v mgl32.Vec2) mgl32.Vec2 {
	return m.Mul4x1(v.Vec4(0, 1)).Vec2()
}

// Viewport maps the game plane [-1,1]² onto a width x height pixel area with
// the origin at the top-left and y growing downward.
func Viewport(width, height float32) mgl32.Mat4 {
	return mgl32.Translate3D(width/2, height/2, 0).Mul4(mgl32.Scale3D(width/2, -height/2, 1))
}
