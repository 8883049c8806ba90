package draw

import (
	"image/color"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var red = color.RGBA{R: 255, A: 255}

func square(cx, cy, h float32, col color.RGBA) Mesh {
	return Mesh{
		Vertices: []mgl32.Vec2{
			{cx - h, cy - h}, {cx + h, cy - h}, {cx + h, cy + h},
			{cx + h, cy + h}, {cx - h, cy + h}, {cx - h, cy - h},
		},
		Indices:   []uint16{0, 1, 2, 3, 4, 5, 6},
		Transform: mgl32.Ident4(),
		Color:     col,
	}
}

func TestDrawMeshFillsArea(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawMesh(square(0, 0, 0.5, red))

	// Plane [-0.5,0.5]² spans pixels 5..15 on both axes
	for _, p := range [][2]int{{10, 10}, {6, 6}, {13, 13}} {
		col, ok := c.At(p[0], p[1])
		if !ok || col != red {
			t.Errorf("pixel %v = %v, %v; expected red", p, col, ok)
		}
	}
	for _, p := range [][2]int{{0, 0}, {19, 19}, {2, 10}} {
		if _, ok := c.At(p[0], p[1]); ok {
			t.Errorf("pixel %v should be empty", p)
		}
	}
}

func TestDrawMeshTinyShapeVisible(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawMesh(square(0.01, 0.01, 0.01, red))

	if _, ok := c.At(10, 9); !ok {
		t.Error("sub-pixel mesh should still set a pixel")
	}
}

func TestDrawMeshClipsOffCanvas(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawMesh(square(1.5, 1.5, 1, red))
	if col, ok := c.At(9, 0); !ok || col != red {
		t.Error("partly visible mesh should be drawn in the corner")
	}
}

func TestClearAndResize(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawMesh(square(0, 0, 0.5, red))
	c.Clear()
	if _, ok := c.At(5, 5); ok {
		t.Error("Clear should reset pixels")
	}

	c.Resize(30, 12)
	if c.TerminalWidth() != 30 || c.TerminalHeight() != 12 {
		t.Errorf("size after Resize = %dx%d", c.TerminalWidth(), c.TerminalHeight())
	}
	if _, ok := c.At(29, 23); ok {
		t.Error("new pixels should be empty")
	}
	if _, ok := c.At(30, 0); ok {
		t.Error("At outside the canvas should report unset")
	}
}

func TestCellFor(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	none := color.RGBA{}

	tests := []struct {
		name     string
		top      color.RGBA
		bottom   color.RGBA
		expected rune
		style    cellStyle
	}{
		{"empty", none, none, ' ', cellStyle{}},
		{"top only", red, none, BlockUpperHalf, cellStyle{fg: red}},
		{"bottom only", none, blue, BlockLowerHalf, cellStyle{fg: blue}},
		{"same colour", red, red, BlockFull, cellStyle{fg: red}},
		{"two colours", red, blue, BlockUpperHalf, cellStyle{fg: red, bg: blue}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			style, ch := cellFor(tc.top, tc.bottom)
			if ch != tc.expected || style != tc.style {
				t.Errorf("cellFor = %+v %q, expected %+v %q", style, ch, tc.style, tc.expected)
			}
		})
	}
}

func TestRender(t *testing.T) {
	c := NewCanvas(4, 2)
	c.setPixel(1, 0, red)
	c.setPixel(1, 1, red)

	var sb strings.Builder
	if err := c.Render(&sb, 3); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, "\033[3;1H") {
		t.Errorf("render should start at row 3, got %q", out)
	}
	if !strings.Contains(out, "\033[4;1H") {
		t.Error("second row should be positioned at row 4")
	}
	if !strings.Contains(out, "\033[0;38;2;255;0;0m"+string(BlockFull)) {
		t.Errorf("expected a red full block, got %q", out)
	}
	if strings.Count(out, string(BlockFull)) != 1 {
		t.Errorf("expected exactly one block, got %q", out)
	}
}
