package viz

import (
	"sort"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pixpal/internal/pixel"
)

// RowFill counts painted cells per grid row.
func RowFill(c pixel.Canvas) []int {
	rows := make([]int, pixel.Height)
	for _, cell := range c.Cells() {
		if cell.Y >= 0 && cell.Y < pixel.Height {
			rows[cell.Y]++
		}
	}
	return rows
}

// Profile plots RowFill, top row on the left.
func Profile(c pixel.Canvas) string {
	rows := RowFill(c)
	data := make([]float64, len(rows))
	for i, v := range rows {
		data[i] = float64(v)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(pixel.Width),
		asciigraph.Width(pixel.Height*2),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(pixel.Width),
		asciigraph.Caption("painted cells per row (top → bottom)"),
	)
}

type ColorCount struct {
	Color string
	Count int
}

// Usage counts cells per color, most used first.
func Usage(c pixel.Canvas) []ColorCount {
	counts := map[string]int{}
	for _, cell := range c.Cells() {
		counts[cell.Color]++
	}
	out := make([]ColorCount, 0, len(counts))
	for color, n := range counts {
		out = append(out, ColorCount{Color: color, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Color < out[j].Color
	})
	return out
}
