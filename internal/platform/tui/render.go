package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// styleCache maps cell colors to lipgloss styles.
// Screens use few distinct colors per frame, so the cache stays small.
type styleCache map[core.RGB]lipgloss.Style

func (c styleCache) get(rgb core.RGB) lipgloss.Style {
	if s, ok := c[rgb]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(rgb.Hex()))
	c[rgb] = s
	return s
}

var defaultStyle = lipgloss.NewStyle()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Colored != start.Colored || (cell.Colored && cell.Color != start.Color) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style := defaultStyle
			if start.Colored {
				style = styles.get(start.Color)
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
