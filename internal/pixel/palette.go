package pixel

import "fmt"

// DefaultColors are the initial palette slots.
var DefaultColors = []string{
	"#ffffff",
	"#ff0000",
	"#00ff00",
	"#0000ff",
	"#ffff00",
	"#ff00ff",
	"#00ffff",
	"#000000",
	"#ff8800",
	"#8800ff",
}

// Palette is a fixed-length list of color slots plus the brush color used for
// painting. Slots are edited in place; the slot count never changes after
// construction.
type Palette struct {
	slots []string
	brush string
}

// NewPalette builds a palette from the given colors with the brush set to the
// first slot.
func NewPalette(colors []string) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, ErrEmptyPalette
	}
	for i, c := range colors {
		if !ValidColor(c) {
			return Palette{}, fmt.Errorf("slot %d: %w: %q", i, ErrInvalidColor, c)
		}
	}
	slots := make([]string, len(colors))
	copy(slots, colors)
	return Palette{slots: slots, brush: slots[0]}, nil
}

func DefaultPalette() Palette {
	p, err := NewPalette(DefaultColors)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Palette) Len() int {
	return len(p.slots)
}

// Colors returns a copy of the slot colors.
func (p Palette) Colors() []string {
	out := make([]string, len(p.slots))
	copy(out, p.slots)
	return out
}

func (p Palette) Slot(i int) (string, error) {
	if i < 0 || i >= len(p.slots) {
		return "", fmt.Errorf("%w: %d", ErrSlotRange, i)
	}
	return p.slots[i], nil
}

func (p Palette) Brush() string {
	return p.brush
}

// Selected returns the first slot holding the brush color, or -1 when the
// brush matches no slot.
func (p Palette) Selected() int {
	for i, c := range p.slots {
		if c == p.brush {
			return i
		}
	}
	return -1
}

// Select makes the color of slot i the brush.
func (p Palette) Select(i int) (Palette, error) {
	c, err := p.Slot(i)
	if err != nil {
		return p, err
	}
	return p.withBrush(c), nil
}

// SetBrush sets the brush to an arbitrary valid color.
func (p Palette) SetBrush(color string) (Palette, error) {
	if !ValidColor(color) {
		return p, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return p.withBrush(color), nil
}

// EditSlot replaces the color of slot i. When the replaced color was the
// brush, the brush follows the new color.
func (p Palette) EditSlot(i int, color string) (Palette, error) {
	if i < 0 || i >= len(p.slots) {
		return p, fmt.Errorf("%w: %d", ErrSlotRange, i)
	}
	if !ValidColor(color) {
		return p, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return p.replace(i, color), nil
}

// PickFromCell copies the color at (x, y) into slot i and makes it the brush.
// It returns ok=false and the palette unchanged when the cell is empty.
// The sampled color is taken as stored on the canvas, unvalidated.
func (p Palette) PickFromCell(c Canvas, x, y, slot int) (Palette, bool, error) {
	if slot < 0 || slot >= len(p.slots) {
		return p, false, fmt.Errorf("%w: %d", ErrSlotRange, slot)
	}
	color, ok := c.ColorAt(x, y)
	if !ok {
		return p, false, nil
	}
	return p.replace(slot, color).withBrush(color), true, nil
}

func (p Palette) replace(i int, color string) Palette {
	out := p.clone()
	if out.slots[i] == out.brush {
		out.brush = color
	}
	out.slots[i] = color
	return out
}

func (p Palette) withBrush(color string) Palette {
	out := p.clone()
	out.brush = color
	return out
}

func (p Palette) clone() Palette {
	slots := make([]string, len(p.slots))
	copy(slots, p.slots)
	return Palette{slots: slots, brush: p.brush}
}
