// Package pixel holds the grid model of a pixel artwork: the set of painted
// cells, the color palette and the color-editing mode.
//
// All values are immutable. Every operation returns a new value and leaves
// its receiver untouched, so a caller can keep the previous state around for
// comparison or discard it.
package pixel

import "fmt"

const (
	Width  = 10
	Height = 30
)

// Coord identifies one grid position.
type Coord struct {
	X, Y int
}

func (c Coord) Valid() bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cell is a painted grid position.
type Cell struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

func (c Cell) Coord() Coord {
	return Coord{X: c.X, Y: c.Y}
}

// Canvas is the set of painted cells, at most one per coordinate. Cells keep
// the order in which their coordinate was first painted; repainting a cell
// changes its color in place. The zero value is an empty canvas.
type Canvas struct {
	cells []Cell
	index map[Coord]int
}

// FromCells builds a canvas from a cell list as-is. Colors and coordinates
// are not checked. When a coordinate repeats, the last color wins and the
// cell stays at the position of its first occurrence.
func FromCells(cells []Cell) Canvas {
	c := Canvas{
		cells: make([]Cell, 0, len(cells)),
		index: make(map[Coord]int, len(cells)),
	}
	for _, cell := range cells {
		c.put(cell)
	}
	return c
}

func (c *Canvas) put(cell Cell) {
	if i, ok := c.index[cell.Coord()]; ok {
		c.cells[i] = cell
		return
	}
	c.index[cell.Coord()] = len(c.cells)
	c.cells = append(c.cells, cell)
}

func (c Canvas) clone() Canvas {
	out := Canvas{
		cells: make([]Cell, len(c.cells), len(c.cells)+1),
		index: make(map[Coord]int, len(c.cells)+1),
	}
	copy(out.cells, c.cells)
	for k, v := range c.index {
		out.index[k] = v
	}
	return out
}

// Paint sets the color of the cell at (x, y), adding the cell if the
// coordinate was empty.
func (c Canvas) Paint(x, y int, color string) (Canvas, error) {
	pos := Coord{X: x, Y: y}
	if !pos.Valid() {
		return c, fmt.Errorf("%w: %v", ErrOutOfRange, pos)
	}
	if !ValidColor(color) {
		return c, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	out := c.clone()
	out.put(Cell{X: x, Y: y, Color: color})
	return out, nil
}

// Put sets the color of the cell at (x, y) like Paint but takes color as
// given. It is for colors already held by the model, such as a brush sampled
// from an imported cell.
func (c Canvas) Put(x, y int, color string) (Canvas, error) {
	pos := Coord{X: x, Y: y}
	if !pos.Valid() {
		return c, fmt.Errorf("%w: %v", ErrOutOfRange, pos)
	}
	out := c.clone()
	out.put(Cell{X: x, Y: y, Color: color})
	return out, nil
}

// Clear removes the cell at (x, y). Clearing an empty or out-of-range
// coordinate returns the canvas unchanged.
func (c Canvas) Clear(x, y int) Canvas {
	pos := Coord{X: x, Y: y}
	if _, ok := c.index[pos]; !ok {
		return c
	}
	cells := make([]Cell, 0, len(c.cells)-1)
	for _, cell := range c.cells {
		if cell.Coord() != pos {
			cells = append(cells, cell)
		}
	}
	return FromCells(cells)
}

// ClearAll returns an empty canvas.
func (c Canvas) ClearAll() Canvas {
	return Canvas{}
}

func (c Canvas) ColorAt(x, y int) (string, bool) {
	i, ok := c.index[Coord{X: x, Y: y}]
	if !ok {
		return "", false
	}
	return c.cells[i].Color, true
}

// Cells returns a copy of the painted cells in paint order.
func (c Canvas) Cells() []Cell {
	out := make([]Cell, len(c.cells))
	copy(out, c.cells)
	return out
}

func (c Canvas) Len() int {
	return len(c.cells)
}

// Equal reports whether both canvases map the same coordinates to the same
// colors. Order is ignored.
func (c Canvas) Equal(other Canvas) bool {
	if len(c.cells) != len(other.cells) {
		return false
	}
	for _, cell := range c.cells {
		color, ok := other.ColorAt(cell.X, cell.Y)
		if !ok || color != cell.Color {
			return false
		}
	}
	return true
}
