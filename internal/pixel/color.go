package pixel

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a #rgb or #rrggbb hex string.
func ParseColor(s string) (colorful.Color, error) {
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

func ValidColor(s string) bool {
	_, err := ParseColor(s)
	return err == nil
}

// NormalizeColor returns the #rrggbb form of s, or ok=false when s does not
// parse. Imported artwork may carry arbitrary strings, so renderers go
// through this instead of trusting the stored value.
func NormalizeColor(s string) (string, bool) {
	c, err := ParseColor(s)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}
