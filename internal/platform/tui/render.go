package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tadpole-arcade/internal/core"
)

// styleFor returns the lipgloss style for a palette color.
func styleFor(c core.Color) lipgloss.Style {
	code := c.ANSI()
	if code == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// styleCache holds one style per palette entry.
var styleCache = map[core.Color]lipgloss.Style{}

func init() {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		styleCache[c] = styleFor(c)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styleCache[color]
			if !ok {
				style = styleFor(color)
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
