// Package physics provides the geometry primitives used for collision detection.
package physics

import "fmt"

// Point is a position on the game plane.
type Point struct {
	X, Y float32
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Polygon is an ordered vertex list; order defines edge adjacency.
type Polygon []Point

// Plane bounds. Coordinates at or beyond either edge are out of bounds.
const (
	PlaneMin float32 = -1
	PlaneMax float32 = 1
)

// InBounds reports whether p lies strictly inside the plane.
func InBounds(p Point) bool {
	return p.X < PlaneMax && p.X > PlaneMin && p.Y < PlaneMax && p.Y > PlaneMin
}

// edgeSign is the signed area of (p, v1, v2), used for the triangle test.
func edgeSign(p, v1, v2 Point) float32 {
	return (p.X-v2.X)*(v1.Y-v2.Y) - (v1.X-v2.X)*(p.Y-v2.Y)
}

// sideSign is the cross product of edge v1->v2 with v1->p, used for the quad test.
func sideSign(p, v1, v2 Point) float32 {
	return (v2.X-v1.X)*(p.Y-v1.Y) - (p.X-v1.X)*(v2.Y-v1.Y)
}

// mixed reports whether the signs contain both a negative and a positive value.
// Zeros never count, which makes the containment tests boundary inclusive.
func mixed(signs ...float32) bool {
	var neg, pos bool
	for _, d := range signs {
		if d < 0 {
			neg = true
		} else if d > 0 {
			pos = true
		}
	}
	return neg && pos
}

// PointInTriangle reports whether p lies inside or on the triangle abc.
func PointInTriangle(p, a, b, c Point) bool {
	return !mixed(
		edgeSign(p, a, b),
		edgeSign(p, b, c),
		edgeSign(p, c, a),
	)
}

// PointInQuad reports whether p lies inside or on the square encoded by the
// 6-vertex double-triangle form (v0,v1,v2 and v3,v4,v5). The square's corners
// are v0, v1, v2 and v4; v3 and v5 repeat v2 and v0. Taking v4 as the fourth
// corner covers the whole square, the upper-left triangle included, rather
// than only the lower-right triangle that v3 would outline.
func PointInQuad(p Point, quad Polygon) bool {
	c0, c1, c2, c3 := quad[0], quad[1], quad[2], quad[4]
	return !mixed(
		sideSign(p, c1, c0),
		sideSign(p, c2, c1),
		sideSign(p, c3, c2),
		sideSign(p, c0, c3),
	)
}

// Contains tests p against poly, choosing the test by vertex count.
// Only triangles (3) and double-triangle squares (6) are supported; any other
// count is a programming error and panics.
func Contains(p Point, poly Polygon) bool {
	switch len(poly) {
	case 3:
		return PointInTriangle(p, poly[0], poly[1], poly[2])
	case 6:
		return PointInQuad(p, poly)
	default:
		panic(fmt.Sprintf("physics: containment test on unsupported polygon with %d vertices", len(poly)))
	}
}

// AnyInside reports whether any probe vertex is contained in target.
func AnyInside(probe, target Polygon) bool {
	for _, v := range probe {
		if Contains(v, target) {
			return true
		}
	}
	return false
}
