package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/input/key"
)

func TestDefaultBindings(t *testing.T) {
	k := Default()

	tests := []struct {
		ev   key.Event
		want string
	}{
		{key.NewRuneEvent('7', key.ModNone), "7"},
		{key.NewRuneEvent('.', key.ModNone), "."},
		{key.NewRuneEvent(',', key.ModNone), "."},
		{key.NewRuneEvent('*', key.ModNone), "×"},
		{key.NewRuneEvent('/', key.ModNone), "÷"},
		{key.NewRuneEvent('-', key.ModNone), "−"},
		{key.NewRuneEvent('+', key.ModShift), "+"},
		{key.NewSpecialEvent(key.KeyEnter, key.ModNone), "="},
		{key.NewSpecialEvent(key.KeyBackspace, key.ModNone), "C"},
		{key.NewSpecialEvent(key.KeyEscape, key.ModNone), "AC"},
		{key.NewRuneEvent('q', key.ModNone), "quit"},
		{key.NewRuneEvent('C', key.ModCtrl), "quit"},
	}

	for _, tt := range tests {
		action, ok := k.Lookup(tt.ev)
		if !ok {
			t.Errorf("Lookup(%s): expected binding", tt.ev)
			continue
		}
		if got := action.String(); got != tt.want {
			t.Errorf("Lookup(%s) = %q, want %q", tt.ev, got, tt.want)
		}
	}

	if _, ok := k.Lookup(key.NewSpecialEvent(key.KeyF9, key.ModNone)); ok {
		t.Error("expected F9 to be unbound")
	}
}

func TestBindOverrides(t *testing.T) {
	k := Default()
	if err := k.Bind("<C-l>", "AC", "config"); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if err := k.Bind("Enter", "quit", "config"); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	action, ok := k.Lookup(key.NewRuneEvent('l', key.ModCtrl))
	if !ok || action.Kind != ActionPress || action.Event != calc.AllClear() {
		t.Errorf("expected Ctrl+L bound to AC, got %+v", action)
	}
	action, _ = k.Lookup(key.NewSpecialEvent(key.KeyEnter, key.ModNone))
	if action.Kind != ActionQuit {
		t.Errorf("expected Enter rebound to quit, got %v", action)
	}
}

func TestLoad(t *testing.T) {
	k := Default()
	err := k.Load(map[string]string{
		"F5": "macro:tip",
		"q":  "",
	}, "config")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	action, ok := k.Lookup(key.NewSpecialEvent(key.KeyF5, key.ModNone))
	if !ok || action.Kind != ActionMacro || action.Macro != "tip" {
		t.Errorf("expected F5 bound to macro tip, got %+v", action)
	}
	if _, ok := k.Lookup(key.NewRuneEvent('q', key.ModNone)); ok {
		t.Error("expected q to be unbound")
	}
}

func TestLoadReportsFirstError(t *testing.T) {
	k := New()
	err := k.Load(map[string]string{
		"Hyper+x": "1",
		"z":       "sqrt",
		"F1":      "AC",
	}, "config")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, key.ErrInvalidSpec) {
		t.Errorf("expected first error to be ErrInvalidSpec, got %v", err)
	}
	if _, ok := k.Lookup(key.NewSpecialEvent(key.KeyF1, key.ModNone)); !ok {
		t.Error("valid bindings should still be applied")
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		target string
		kind   ActionKind
	}{
		{"7", ActionPress},
		{"AC", ActionPress},
		{"quit", ActionQuit},
		{"QUIT", ActionQuit},
		{"macro:double", ActionMacro},
	}
	for _, tt := range tests {
		a, err := ParseAction(tt.target)
		if err != nil {
			t.Errorf("ParseAction(%q) failed: %v", tt.target, err)
			continue
		}
		if a.Kind != tt.kind {
			t.Errorf("ParseAction(%q) kind = %v, want %v", tt.target, a.Kind, tt.kind)
		}
	}

	for _, bad := range []string{"", "macro:", "sqrt"} {
		if _, err := ParseAction(bad); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("ParseAction(%q): expected ErrInvalidTarget, got %v", bad, err)
		}
	}
}

func TestBindingsSorted(t *testing.T) {
	k := New()
	_ = k.Bind("b", "1", "test")
	_ = k.Bind("a", "2", "test")

	bindings := k.Bindings()
	if len(bindings) != 2 || k.Len() != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(bindings))
	}
	if bindings[0].Keys != "a" || bindings[1].Keys != "b" {
		t.Errorf("unexpected order: %v", bindings)
	}
	if bindings[0].Source != "test" {
		t.Errorf("unexpected source %q", bindings[0].Source)
	}
}
