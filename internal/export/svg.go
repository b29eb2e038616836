package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/pixpal/internal/pixel"
)

// CanvasToSVG renders painted cells as scale×scale squares. Empty cells and
// cells with unparseable colors are left transparent.
func CanvasToSVG(c pixel.Canvas, scale int) string {
	if scale < 1 {
		scale = 1
	}
	width := pixel.Width * scale
	height := pixel.Height * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
`, width, height, width, height))

	for _, cell := range c.Cells() {
		hex, ok := pixel.NormalizeColor(cell.Color)
		if !ok || !cell.Coord().Valid() {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, cell.X*scale, cell.Y*scale, scale, scale, hex))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
