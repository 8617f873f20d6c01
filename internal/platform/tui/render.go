package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zombie-dash/internal/core"
)

// palette maps core colors to terminal colors. Actors use the bright
// variants so they stand out against walls and floor.
var palette = map[core.Color]lipgloss.Style{
	core.ColorRed:           fg("1"),
	core.ColorGreen:         fg("2"),
	core.ColorYellow:        fg("3"),
	core.ColorBlue:          fg("4"),
	core.ColorMagenta:       fg("5"),
	core.ColorCyan:          fg("6"),
	core.ColorWhite:         fg("7"),
	core.ColorBrightRed:     fg("9").Bold(true),
	core.ColorBrightGreen:   fg("10").Bold(true),
	core.ColorBrightYellow:  fg("11").Bold(true),
	core.ColorBrightBlue:    fg("12").Bold(true),
	core.ColorBrightMagenta: fg("13").Bold(true),
	core.ColorBrightCyan:    fg("14").Bold(true),
	core.ColorBrightWhite:   fg("15").Bold(true),
	core.ColorOrange:        fg("208"),
	core.ColorGray:          fg("245"),
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of same-colored cells share one escape sequence; default-colored
// runs are written unstyled.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := palette[color]
			if !ok {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
