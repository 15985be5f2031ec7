package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/renderer/core"
)

func newTestRenderer(t *testing.T, w, h int, opts ...Option) (*Renderer, *backend.NullBackend) {
	t.Helper()
	b := backend.NewNullBackend(w, h)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	return New(b, DefaultTheme(), opts...), b
}

func TestRenderer_DrawDisplay(t *testing.T) {
	r, b := newTestRenderer(t, 40, 20)

	r.Draw(View{Display: "0.25", Expression: "1 ÷"})

	l := r.Layout()
	display := b.Line(l.Display.Top)
	if !strings.HasSuffix(display, "0.25") {
		t.Errorf("display line = %q, want suffix 0.25", display)
	}
	if got := len([]rune(display)); got != l.Display.Right {
		t.Errorf("display ends at column %d, want %d", got, l.Display.Right)
	}
	if expr := b.Line(l.Expression.Top); !strings.HasSuffix(expr, "1 ÷") {
		t.Errorf("expression line = %q", expr)
	}
	if b.ShowCount() != 1 {
		t.Errorf("ShowCount() = %d, want 1", b.ShowCount())
	}
}

func TestRenderer_DrawButtons(t *testing.T) {
	r, b := newTestRenderer(t, 40, 20)
	r.Draw(View{Display: "0"})

	theme := DefaultTheme()
	l := r.Layout()

	for _, label := range []string{"7", "÷", "AC", "C"} {
		btn, _ := l.Button(label)
		y := btn.Rect.Top + 1
		if line := b.Line(y); !strings.Contains(line, label) {
			t.Errorf("row %d = %q, missing %q", y, line, label)
		}
		want := theme.ButtonStyle(btn.Kind, false)
		if got := b.Cell(btn.Rect.Left, btn.Rect.Top).Style; !got.Equals(want) {
			t.Errorf("%s style = %+v, want %+v", label, got, want)
		}
	}
}

func TestRenderer_Pressed(t *testing.T) {
	r, b := newTestRenderer(t, 40, 20)
	r.Draw(View{Display: "5", Pressed: "5"})

	btn, _ := r.Layout().Button("5")
	got := b.Cell(btn.Rect.Left, btn.Rect.Top).Style
	if got.Equals(DefaultTheme().ButtonStyle(ButtonDigit, false)) {
		t.Error("pressed button drawn with the normal style")
	}
	if !got.Equals(DefaultTheme().ButtonStyle(ButtonDigit, true)) {
		t.Errorf("pressed style = %+v", got)
	}
}

func TestRenderer_LongDisplayKeepsRight(t *testing.T) {
	r, b := newTestRenderer(t, 14, 7)
	r.Draw(View{Display: "1234567890123456"})

	line := b.Line(r.Layout().Display.Top)
	if got := strings.TrimSpace(line); got != "567890123456" {
		t.Errorf("display = %q, want the rightmost 12 digits", got)
	}
}

func TestRenderer_HideExpression(t *testing.T) {
	r, b := newTestRenderer(t, 40, 20, WithExpression(false))
	r.Draw(View{Display: "12", Expression: "12 +"})

	if line := b.Line(r.Layout().Expression.Top); line != "" {
		t.Errorf("expression line = %q, want empty", line)
	}
}

func TestRenderer_ResizeAndRedraw(t *testing.T) {
	r, b := newTestRenderer(t, 40, 20)
	r.Draw(View{Display: "Error"})

	b.Resize(14, 7)
	r.Resize(14, 7)
	r.Redraw()

	if line := b.Line(r.Layout().Display.Top); !strings.HasSuffix(line, "Error") {
		t.Errorf("after resize display = %q", line)
	}
	if r.HitTest(0, 0) != "" {
		t.Error("HitTest(0,0) should miss")
	}
}

func TestRenderer_TooSmall(t *testing.T) {
	r, b := newTestRenderer(t, 6, 2)
	r.Draw(View{Display: "42"})

	if got := b.Line(1); got != "    42" {
		t.Errorf("display = %q, want right aligned 42", got)
	}
}

func TestThemeFromConfig(t *testing.T) {
	tc := config.Default().Theme
	tc.Digit = "#112233"
	tc.Text = ""

	theme, err := ThemeFromConfig(tc)
	if err != nil {
		t.Fatalf("ThemeFromConfig() error = %v", err)
	}
	if !theme.Digit.Equals(core.ColorFromRGB(0x11, 0x22, 0x33)) {
		t.Errorf("Digit = %v", theme.Digit)
	}
	if !theme.Text.Equals(core.ColorWhite) {
		t.Errorf("Text = %v, want default white", theme.Text)
	}

	tc.Clear = "red"
	if _, err := ThemeFromConfig(tc); err == nil || !strings.Contains(err.Error(), "theme.clear") {
		t.Errorf("ThemeFromConfig(bad) error = %v", err)
	}
}
