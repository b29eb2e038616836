package pixel

import "errors"

// Domain errors for grid and palette operations.
var (
	// ErrOutOfRange indicates a coordinate outside the 10x30 grid.
	ErrOutOfRange = errors.New("pixel: coordinate out of range")

	// ErrInvalidColor indicates a string that is not a #rgb or #rrggbb color.
	ErrInvalidColor = errors.New("pixel: invalid color")

	// ErrSlotRange indicates a palette slot index outside the palette.
	ErrSlotRange = errors.New("pixel: palette slot out of range")

	// ErrEmptyPalette indicates a palette constructed without any slots.
	ErrEmptyPalette = errors.New("pixel: palette has no slots")
)
