package backend

import (
	"testing"

	"github.com/dshills/keycalc/internal/input/key"
	"github.com/dshills/keycalc/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(40, 12)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 40 || h != 12 {
		t.Errorf("expected size (40, 12), got (%d, %d)", w, h)
	}
	if got := b.Line(0); got != "" {
		t.Errorf("fresh screen line 0 = %q, want empty", got)
	}
}

func TestNullBackendSetCell(t *testing.T) {
	b := NewNullBackend(10, 3)
	b.Init()

	cell := core.NewStyledCell('7', core.DefaultStyle().WithForeground(core.ColorWhite))
	b.SetCell(2, 1, cell)

	if got := b.Cell(2, 1); !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds is ignored.
	b.SetCell(-1, 0, cell)
	b.SetCell(10, 0, cell)
	if got := b.Cell(-1, 0); !got.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
	if got := b.Line(1); got != "  7" {
		t.Errorf("Line(1) = %q, want %q", got, "  7")
	}
}

func TestNullBackendFill(t *testing.T) {
	b := NewNullBackend(8, 4)
	b.Init()

	b.Fill(core.RectFromSize(1, 2, 2, 3), core.NewStyledCell('#', core.DefaultStyle()))

	want := "\n  ###\n  ###\n"
	if got := b.Screen(); got != want {
		t.Errorf("Screen() = %q, want %q", got, want)
	}

	b.Clear()
	if got := b.Screen(); got != "\n\n\n" {
		t.Errorf("after Clear Screen() = %q", got)
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(8, 4)
	b.Init()

	b.PostEvent(KeyEvent(key.NewRuneEvent('5', 0)))
	b.PostEvent(ClickEvent(3, 2))

	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Key.Rune != '5' {
		t.Errorf("first event = %+v, want key 5", ev)
	}
	ev = b.PollEvent()
	if ev.Type != EventMouse || ev.MouseX != 3 || ev.MouseY != 2 || ev.MouseButton != MouseLeft {
		t.Errorf("second event = %+v, want left click at (3,2)", ev)
	}

	b.Resize(20, 10)
	ev = b.PollEvent()
	if ev.Type != EventResize || ev.Width != 20 || ev.Height != 10 {
		t.Errorf("resize event = %+v", ev)
	}
	if w, h := b.Size(); w != 20 || h != 10 {
		t.Errorf("Size() = (%d, %d), want (20, 10)", w, h)
	}
}

func TestNullBackendCounters(t *testing.T) {
	b := NewNullBackend(4, 4)
	b.Init()
	b.Show()
	b.Show()
	b.Beep()
	b.EnableMouse()

	if b.ShowCount() != 2 {
		t.Errorf("ShowCount() = %d, want 2", b.ShowCount())
	}
	if b.BeepCount() != 1 {
		t.Errorf("BeepCount() = %d, want 1", b.BeepCount())
	}
	if !b.MouseEnabled() {
		t.Error("MouseEnabled() = false after EnableMouse")
	}
	b.DisableMouse()
	if b.MouseEnabled() {
		t.Error("MouseEnabled() = true after DisableMouse")
	}
	b.Shutdown()
	if !b.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := map[EventType]string{
		EventNone:      "none",
		EventKey:       "key",
		EventMouse:     "mouse",
		EventResize:    "resize",
		EventInterrupt: "interrupt",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
