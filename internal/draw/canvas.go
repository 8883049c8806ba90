package draw

import (
	"image/color"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Each terminal cell holds two stacked pixels.
type Canvas struct {
	termWidth      int          // Terminal columns
	termHeight     int          // Terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]; zero alpha means unset

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	intersectionBuf []float64
	triangleBuf     [3]Point
}

// NewCanvas creates a canvas for the given terminal dimensions.
func NewCanvas(termWidth, termHeight int) *Canvas {
	c := &Canvas{}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize reallocates the pixel buffer when the terminal size changed.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 0)
	termHeight = max(termHeight, 0)
	if termWidth == c.termWidth && termHeight == c.termHeight && c.pixels != nil {
		return
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]color.RGBA, c.subPixelHeight*termWidth)
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// Viewport maps the game plane onto the whole canvas in pixel space.
func (c *Canvas) Viewport() mgl32.Mat4 {
	return Viewport(float32(c.termWidth), float32(c.subPixelHeight))
}

// At returns the colour of a pixel and whether it is set.
func (c *Canvas) At(x, y int) (color.RGBA, bool) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}, false
	}
	col := c.pixels[y*c.termWidth+x]
	return col, col.A != 0
}

func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// DrawMesh fills every triangle of m in its colour.
func (c *Canvas) DrawMesh(m Mesh) {
	col := m.Color
	if col.A == 0 {
		col.A = 0xff
	}
	for _, tri := range m.Triangles(c.Viewport()) {
		for i, v := range tri {
			c.triangleBuf[i] = Point{X: float64(v.X()), Y: float64(v.Y())}
		}
		c.DrawPolygon(c.triangleBuf[:], col)
	}
}

// DrawPolygon fills a polygon and draws its outline, so shapes smaller than
// a pixel still show up.
func (c *Canvas) DrawPolygon(points []Point, col color.RGBA) {
	if len(points) < 3 {
		return
	}

	c.fillPolygon(points, col)

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, col color.RGBA) {
	x1 := int(math.Floor(p1.X))
	y1 := int(math.Floor(p1.Y))
	x2 := int(math.Floor(p2.X))
	y2 := int(math.Floor(p2.Y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillPolygon fills a polygon using a scanline algorithm sampling pixel centers.
func (c *Canvas) fillPolygon(points []Point, col color.RGBA) {
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(points)
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i] - 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// Render writes every row of the canvas using half-block characters with
// 24-bit colours. Rows start at terminal row startRow (1-based).
func (c *Canvas) Render(w io.Writer, startRow int) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	for row := 0; row < c.termHeight; row++ {
		c.renderBuf.WriteString("\033[")
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(startRow+row), 10))
		c.renderBuf.WriteString(";1H")

		var cur cellStyle
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			style, ch := cellFor(top, bottom)
			if style != cur {
				c.writeStyle(style)
				cur = style
			}
			c.renderBuf.WriteRune(ch)
		}
		c.renderBuf.WriteString("\033[0m")
	}

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// cellStyle is the SGR state of one terminal cell. Zero alpha means the
// terminal default.
type cellStyle struct {
	fg, bg color.RGBA
}

func cellFor(top, bottom color.RGBA) (cellStyle, rune) {
	switch {
	case top.A != 0 && bottom.A != 0 && top == bottom:
		return cellStyle{fg: top}, BlockFull
	case top.A != 0 && bottom.A != 0:
		return cellStyle{fg: top, bg: bottom}, BlockUpperHalf
	case top.A != 0:
		return cellStyle{fg: top}, BlockUpperHalf
	case bottom.A != 0:
		return cellStyle{fg: bottom}, BlockLowerHalf
	default:
		return cellStyle{}, ' '
	}
}

func (c *Canvas) writeStyle(s cellStyle) {
	c.renderBuf.WriteString("\033[0")
	if s.fg.A != 0 {
		c.renderBuf.WriteString(";38;2;")
		c.writeRGB(s.fg)
	}
	if s.bg.A != 0 {
		c.renderBuf.WriteString(";48;2;")
		c.writeRGB(s.bg)
	}
	c.renderBuf.WriteByte('m')
}

func (c *Canvas) writeRGB(col color.RGBA) {
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendUint(c.numBuf[:0], uint64(col.B), 10))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
