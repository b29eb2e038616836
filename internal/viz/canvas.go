package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/pixpal/internal/pixel"
)

// cellColor resolves the display color of (x, y). Unpainted cells and cells
// holding an unparseable color get the theme's hatch pattern.
func cellColor(c pixel.Canvas, t Theme, x, y int) lipgloss.Color {
	if color, ok := c.ColorAt(x, y); ok {
		if hex, ok := pixel.NormalizeColor(color); ok {
			return lipgloss.Color(hex)
		}
	}
	if (x+y)%2 == 0 {
		return t.Empty
	}
	return t.Hatch
}

// Block renders one cell as a two-column swatch.
func Block(c pixel.Canvas, t Theme, x, y int) string {
	return lipgloss.NewStyle().Background(cellColor(c, t, x, y)).Render("  ")
}

// Terminal renders the whole grid with upper-half blocks: each text line
// carries two grid rows, the upper one as foreground and the lower one as
// background.
func Terminal(c pixel.Canvas, t Theme) string {
	var b strings.Builder
	for y := 0; y < pixel.Height; y += 2 {
		for x := 0; x < pixel.Width; x++ {
			style := lipgloss.NewStyle().Foreground(cellColor(c, t, x, y))
			if y+1 < pixel.Height {
				style = style.Background(cellColor(c, t, x, y+1))
			}
			b.WriteString(style.Render("▀▀"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
