package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque RGB brush colour.
// The badge display has no alpha channel, so neither does Color.
type Color struct {
	R, G, B uint8
}

// Predefined colours.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
)

// RGB creates a colour from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA converts the colour for use with image/color consumers.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex returns the colour in "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses a "#rrggbb" (or "rrggbb") colour string.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("core: invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ParseColor parses "#rrggbb" or an SVG colour name such as "seagreen".
func ParseColor(s string) (Color, error) {
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]; ok {
		return ColorOf(c), nil
	}
	return ParseHex(s)
}

// ColorOf converts any image/color value, dropping alpha.
func ColorOf(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
