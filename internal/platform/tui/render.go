package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSky:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorCloud:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorPipe:      lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
	core.ColorPipeCap:   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorGroundTop: lipgloss.NewStyle().Foreground(lipgloss.Color("106")),
	core.ColorBird:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorBeak:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorWing:      lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
	core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBanner:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	core.ColorHint:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
