package loop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const controlsText = "W/S thrust  A/D rotate  SPACE fire  ESC quit"

// hud renders the status line below the playfield.
type hud struct {
	controls lipgloss.Style
	counts   lipgloss.Style
}

func newHUD(r *lipgloss.Renderer) hud {
	return hud{
		controls: r.NewStyle().Foreground(lipgloss.Color("245")),
		counts:   r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	}
}

// line lays out controls on the left and population counts on the right,
// truncated to width.
func (h hud) line(w *World, width int) string {
	counts := fmt.Sprintf("asteroids %d  bullets %d", len(w.Asteroids), len(w.Bullets))
	left := h.controls.Render(controlsText)
	right := h.counts.Render(counts)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return h.counts.MaxWidth(width).Render(counts)
	}
	return left + strings.Repeat(" ", gap) + right
}
