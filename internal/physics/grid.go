package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection on the bounded plane.
// Objects are inserted by position and index, then nearby objects can be queried
// via a 3x3 neighborhood lookup.
//
// Cell size must be >= the maximum per-axis distance between the centers of any two
// colliding objects so that all potential collisions are found within
// the 3x3 neighborhood.
type SpatialGrid struct {
	min         float32
	invCellSize float32 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of objects that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the plane [PlaneMin, PlaneMax]².
// cellSize should be >= the maximum collision distance for the objects being inserted.
func NewSpatialGrid(cellSize float32) *SpatialGrid {
	span := float64(PlaneMax - PlaneMin)
	n := int(math.Ceil(span / float64(cellSize)))
	if n < 1 {
		n = 1
	}

	return &SpatialGrid{
		min:         PlaneMin,
		invCellSize: 1 / cellSize,
		cols:        n,
		rows:        n,
		cells:       make([]gridCell, n*n),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given position.
// Positions outside the plane are clamped into the edge cells.
func (g *SpatialGrid) Insert(p Point, index int) {
	col, row := g.posToCell(p)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given position. The plane does not wrap, so neighbors past an
// edge are skipped. If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(p Point, fn func(index int) bool) {
	col, row := g.posToCell(p)

	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= g.rows {
			continue
		}
		rowOffset := r * g.cols

		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= g.cols {
				continue
			}
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts plane coordinates to grid cell coordinates.
// Out-of-bounds positions land in the edge cells.
func (g *SpatialGrid) posToCell(p Point) (col, row int) {
	col = clampCell(int(math.Floor(float64((p.X-g.min)*g.invCellSize))), g.cols)
	row = clampCell(int(math.Floor(float64((p.Y-g.min)*g.invCellSize))), g.rows)
	return col, row
}

func clampCell(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
