package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, 10, p.Len())
	assert.Equal(t, DefaultColors, p.Colors())
	assert.Equal(t, "#ffffff", p.Brush())
	assert.Equal(t, 0, p.Selected())
}

func TestNewPaletteRejects(t *testing.T) {
	_, err := NewPalette(nil)
	assert.ErrorIs(t, err, ErrEmptyPalette)

	_, err = NewPalette([]string{"#fff", "nope"})
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestSelect(t *testing.T) {
	p, err := DefaultPalette().Select(3)
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", p.Brush())
	assert.Equal(t, 3, p.Selected())

	_, err = p.Select(10)
	assert.ErrorIs(t, err, ErrSlotRange)
}

func TestEditSlotTracksBrush(t *testing.T) {
	p, err := DefaultPalette().Select(2)
	require.NoError(t, err)

	p, err = p.EditSlot(2, "#123456")
	require.NoError(t, err)
	assert.Equal(t, "#123456", p.Brush(), "editing the active slot moves the brush")

	p, err = p.EditSlot(5, "#654321")
	require.NoError(t, err)
	assert.Equal(t, "#123456", p.Brush(), "editing another slot leaves the brush")
	assert.Equal(t, 10, p.Len())
}

func TestEditSlotRejects(t *testing.T) {
	p := DefaultPalette()

	_, err := p.EditSlot(-1, "#000")
	assert.ErrorIs(t, err, ErrSlotRange)
	_, err = p.EditSlot(10, "#000")
	assert.ErrorIs(t, err, ErrSlotRange)
	_, err = p.EditSlot(0, "black")
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Equal(t, DefaultColors, p.Colors())
}

func TestPickFromCell(t *testing.T) {
	canvas, err := Canvas{}.Paint(4, 4, "#abcdef")
	require.NoError(t, err)

	p, err := DefaultPalette().Select(2)
	require.NoError(t, err)
	p, err = p.EditSlot(2, "#123456")
	require.NoError(t, err)

	p, ok, err := p.PickFromCell(canvas, 4, 4, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	slot, _ := p.Slot(2)
	assert.Equal(t, "#abcdef", slot)
	assert.Equal(t, "#abcdef", p.Brush())
}

func TestPickFromEmptyCell(t *testing.T) {
	p := DefaultPalette()

	got, ok, err := p.PickFromCell(Canvas{}, 0, 0, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, p.Colors(), got.Colors())
	assert.Equal(t, p.Brush(), got.Brush())

	_, _, err = p.PickFromCell(Canvas{}, 0, 0, 42)
	assert.ErrorIs(t, err, ErrSlotRange)
}

func TestPaletteImmutable(t *testing.T) {
	p := DefaultPalette()
	_, err := p.EditSlot(0, "#010101")
	require.NoError(t, err)

	colors := p.Colors()
	colors[1] = "#020202"

	assert.Equal(t, DefaultColors, p.Colors())
	assert.Equal(t, "#ffffff", p.Brush())
}
