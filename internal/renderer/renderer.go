package renderer

import (
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/renderer/core"
)

// View is the state to draw.
type View struct {
	// Display is the main number or error text.
	Display string
	// Expression is the secondary line, e.g. "12 +".
	Expression string
	// Pressed highlights a button label.
	Pressed string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithExpression toggles the expression line.
func WithExpression(show bool) Option {
	return func(r *Renderer) {
		r.showExpression = show
	}
}

// Renderer draws Views to a backend.
type Renderer struct {
	backend        backend.Backend
	theme          Theme
	layout         *Layout
	showExpression bool
	last           View
}

// New creates a renderer sized to the backend.
func New(b backend.Backend, theme Theme, opts ...Option) *Renderer {
	w, h := b.Size()
	r := &Renderer{
		backend:        b,
		theme:          theme,
		layout:         NewLayout(w, h),
		showExpression: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Layout returns the current layout.
func (r *Renderer) Layout() *Layout {
	return r.layout
}

// Resize recomputes the layout.
func (r *Renderer) Resize(width, height int) {
	r.layout = NewLayout(width, height)
}

// SetTheme replaces the colors used by subsequent draws.
func (r *Renderer) SetTheme(theme Theme) {
	r.theme = theme
}

// SetShowExpression toggles the expression line for subsequent draws.
func (r *Renderer) SetShowExpression(show bool) {
	r.showExpression = show
}

// HitTest returns the button label at a screen position.
func (r *Renderer) HitTest(x, y int) string {
	return r.layout.HitTest(x, y)
}

// Redraw draws the last View again.
func (r *Renderer) Redraw() {
	r.Draw(r.last)
}

// Draw renders v and flushes it to the screen.
func (r *Renderer) Draw(v View) {
	r.last = v
	l := r.layout

	r.backend.Fill(core.RectFromSize(0, 0, l.Height, l.Width), core.NewStyledCell(' ', r.theme.BaseStyle()))

	if r.showExpression {
		r.drawRight(l.Expression, v.Expression, r.theme.ExpressionStyle())
	}
	r.drawRight(l.Display, v.Display, r.theme.DisplayStyle())

	for _, b := range l.Buttons {
		r.drawButton(b, b.Label == v.Pressed)
	}

	r.backend.Show()
}

// drawRight writes s right aligned in rect's first row. Text wider than
// the rect keeps its rightmost part, the least significant digits.
func (r *Renderer) drawRight(rect core.ScreenRect, s string, style core.Style) {
	if rect.IsEmpty() || s == "" {
		return
	}
	s = core.Truncate(s, rect.Width(), true)
	r.drawText(rect.Right-core.StringWidth(s), rect.Top, s, style)
}

func (r *Renderer) drawButton(b Button, pressed bool) {
	style := r.theme.ButtonStyle(b.Kind, pressed)
	r.backend.Fill(b.Rect, core.NewStyledCell(' ', style))

	label := core.Truncate(b.Label, b.Rect.Width(), false)
	x := b.Rect.Left + (b.Rect.Width()-core.StringWidth(label))/2
	y := b.Rect.Top + (b.Rect.Height()-1)/2
	r.drawText(x, y, label, style)
}

func (r *Renderer) drawText(x, y int, s string, style core.Style) {
	for _, ch := range s {
		cell := core.NewStyledCell(ch, style)
		r.backend.SetCell(x, y, cell)
		x += max(cell.Width, 1)
	}
}
