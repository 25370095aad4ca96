package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/box-arcade/internal/core"
)

// cellColors is the style key of a run of cells.
type cellColors struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per foreground/background pair.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	key := cellColors{fg, bg}
	if style, ok := c[key]; ok {
		return style
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(fg))).
		Background(lipgloss.Color(hex(bg)))
	c[key] = style
	return style
}

func hex(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != first.FG || cell.BG != first.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(first.FG, first.BG).Render(run.String()))
		}
	}
	return sb.String()
}
