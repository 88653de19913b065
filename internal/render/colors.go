package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// parseColor parses a "#rrggbb" hex color string. Malformed values paint
// black.
func parseColor(hexColor string) color.NRGBA {
	hexColor = strings.TrimPrefix(hexColor, "#")

	var r, g, b uint8
	if len(hexColor) == 6 {
		fmt.Sscanf(hexColor, "%02x%02x%02x", &r, &g, &b)
	}

	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// withAlpha applies an item opacity to a color. Zero means the item never
// declared one, which paints opaque.
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha <= 0 || alpha >= 1 {
		return c
	}
	c.A = uint8(math.Round(alpha * 255))
	return c
}
