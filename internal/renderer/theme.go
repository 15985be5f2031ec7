package renderer

import (
	"errors"
	"fmt"

	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/renderer/core"
)

// ButtonKind groups buttons that share a color.
type ButtonKind int

const (
	ButtonDigit ButtonKind = iota
	// ButtonOperator covers the four operators plus "." and "=".
	ButtonOperator
	// ButtonClear covers AC and C.
	ButtonClear
)

// String returns the kind name.
func (k ButtonKind) String() string {
	switch k {
	case ButtonOperator:
		return "operator"
	case ButtonClear:
		return "clear"
	default:
		return "digit"
	}
}

// KindOf returns the color group for a button label.
func KindOf(label string) ButtonKind {
	switch label {
	case "÷", "×", "−", "+", "=", ".":
		return ButtonOperator
	case "AC", "C":
		return ButtonClear
	default:
		return ButtonDigit
	}
}

// Theme holds the screen colors.
type Theme struct {
	Background core.Color
	Text       core.Color
	Digit      core.Color
	Operator   core.Color
	Clear      core.Color
}

// DefaultTheme returns the built-in palette: white on black, blue digits,
// purple operators and red clear keys.
func DefaultTheme() Theme {
	return Theme{
		Background: core.ColorBlack,
		Text:       core.ColorWhite,
		Digit:      core.MustColorFromHex("#0B3D91"),
		Operator:   core.MustColorFromHex("#6650A4"),
		Clear:      core.MustColorFromHex("#D32F2F"),
	}
}

// ThemeFromConfig builds a theme from hex settings. Empty settings keep
// the default color.
func ThemeFromConfig(tc config.ThemeConfig) (Theme, error) {
	t := DefaultTheme()
	var errs []error

	set := func(dst *core.Color, name, hex string) {
		if hex == "" {
			return
		}
		c, err := core.ColorFromHex(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme.%s: %w", name, err))
			return
		}
		*dst = c
	}
	set(&t.Background, "background", tc.Background)
	set(&t.Text, "text", tc.Text)
	set(&t.Digit, "digit", tc.Digit)
	set(&t.Operator, "operator", tc.Operator)
	set(&t.Clear, "clear", tc.Clear)

	return t, errors.Join(errs...)
}

// ButtonStyle returns the style for a button of the given kind.
func (t Theme) ButtonStyle(kind ButtonKind, pressed bool) core.Style {
	var bg core.Color
	switch kind {
	case ButtonOperator:
		bg = t.Operator
	case ButtonClear:
		bg = t.Clear
	default:
		bg = t.Digit
	}
	if pressed {
		bg = bg.Lighten(0.35)
	}
	return core.NewStyle(t.Text, bg).Bold()
}

// DisplayStyle returns the style of the main display line.
func (t Theme) DisplayStyle() core.Style {
	return core.NewStyle(t.Text, t.Background).Bold()
}

// ExpressionStyle returns the style of the expression line.
func (t Theme) ExpressionStyle() core.Style {
	return core.NewStyle(t.Text.Blend(t.Background, 0.4), t.Background)
}

// BaseStyle returns the screen background style.
func (t Theme) BaseStyle() core.Style {
	return core.NewStyle(t.Text, t.Background)
}
