package renderer

import "github.com/dshills/keycalc/internal/renderer/core"

// Grid dimensions.
const (
	GridColumns = 4
	GridRows    = 5

	// MinButtonWidth fits a two column label with a cell of padding.
	MinButtonWidth = 3
	// MaxButtonHeight caps how tall buttons grow on large terminals.
	MaxButtonHeight = 3
)

// gridLabels lists the button rows. An empty label is a gap; "AC" spans
// two columns.
var gridLabels = [GridRows][]string{
	{"7", "8", "9", "÷"},
	{"4", "5", "6", "×"},
	{"1", "2", "3", "−"},
	{"0", ".", "=", "+"},
	{"AC", "", "C"},
}

// Button is one on-screen button.
type Button struct {
	Label string
	Kind  ButtonKind
	Rect  core.ScreenRect
}

// Layout is the screen geometry for a terminal size.
type Layout struct {
	Width, Height int

	// Expression is the row above the display.
	Expression core.ScreenRect
	// Display is the main number row.
	Display core.ScreenRect

	Buttons []Button

	// TooSmall is set when the grid does not fit; only the display is laid out.
	TooSmall bool
}

// NewLayout computes the layout for a width x height screen.
func NewLayout(width, height int) *Layout {
	l := &Layout{Width: max(width, 0), Height: max(height, 0)}

	// One column of margin on each side.
	buttonWidth := (l.Width - 2) / GridColumns
	// Two rows above the grid: expression and display.
	buttonHeight := min((l.Height-2)/GridRows, MaxButtonHeight)

	if buttonWidth < MinButtonWidth || buttonHeight < 1 {
		l.TooSmall = true
		if l.Height > 0 {
			l.Display = core.RectFromSize(l.Height-1, 0, 1, l.Width)
		}
		if l.Height > 1 {
			l.Expression = core.RectFromSize(l.Height-2, 0, 1, l.Width)
		}
		return l
	}

	gridWidth := buttonWidth * GridColumns
	gridLeft := (l.Width - gridWidth) / 2
	gridTop := l.Height - buttonHeight*GridRows

	l.Display = core.RectFromSize(gridTop-1, gridLeft, 1, gridWidth)
	l.Expression = core.RectFromSize(gridTop-2, gridLeft, 1, gridWidth)

	for row, labels := range gridLabels {
		col := 0
		for _, label := range labels {
			span := 1
			if label == "AC" {
				span = 2
			}
			if label != "" {
				l.Buttons = append(l.Buttons, Button{
					Label: label,
					Kind:  KindOf(label),
					// The rightmost column of each button is a gap.
					Rect: core.RectFromSize(
						gridTop+row*buttonHeight,
						gridLeft+col*buttonWidth,
						buttonHeight,
						span*buttonWidth-1,
					),
				})
			}
			col += span
		}
	}
	return l
}

// HitTest returns the label of the button at (x, y), or "" when the
// position is not on a button.
func (l *Layout) HitTest(x, y int) string {
	if b, ok := l.ButtonAt(x, y); ok {
		return b.Label
	}
	return ""
}

// ButtonAt returns the button at (x, y).
func (l *Layout) ButtonAt(x, y int) (Button, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// Button returns the button with the given label.
func (l *Layout) Button(label string) (Button, bool) {
	for _, b := range l.Buttons {
		if b.Label == label {
			return b, true
		}
	}
	return Button{}, false
}
