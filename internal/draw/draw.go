// Package draw rasterises meshes onto a colour half-block terminal canvas.
package draw

// Point is a position in canvas pixel space.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)
