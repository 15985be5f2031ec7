package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a true color or the terminal default.
type Color struct {
	R, G, B uint8
	// Default indicates the terminal's default color; R, G and B are ignored.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0}
	ColorWhite = Color{R: 255, G: 255, B: 255}
	ColorGray  = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#RRGGBB" or "#RGB".
func ColorFromHex(hex string) (Color, error) {
	if !strings.HasPrefix(hex, "#") || (len(hex) != 4 && len(hex) != 7) {
		return Color{}, fmt.Errorf("invalid hex color %q: want #RRGGBB or #RGB", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustColorFromHex is like ColorFromHex but panics on error.
// It is intended for built-in palettes.
func MustColorFromHex(hex string) Color {
	c, err := ColorFromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// IsDefault returns true if this is the terminal default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default || other.Default {
		return c.Default == other.Default
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns "#RRGGBB" or "default".
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend mixes c toward other in Lab space; amount 0 is c, 1 is other.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Default || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}
	switch {
	case amount <= 0:
		return c
	case amount >= 1:
		return other
	}
	r, g, b := c.colorful().BlendLab(other.colorful(), amount).Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Lighten moves the color toward white.
func (c Color) Lighten(amount float64) Color {
	return c.Blend(ColorWhite, amount)
}

// Darken moves the color toward black.
func (c Color) Darken(amount float64) Color {
	return c.Blend(ColorBlack, amount)
}

// Contrast returns black or white, whichever reads better on c.
func (c Color) Contrast() Color {
	if c.Default {
		return ColorDefault
	}
	l, _, _ := c.colorful().Lab()
	if l > 0.6 {
		return ColorBlack
	}
	return ColorWhite
}
