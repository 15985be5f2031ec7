package lua

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/input/key"
)

// engineCalc adapts a calc.Engine for tests.
type engineCalc struct {
	eng *calc.Engine
}

func (c *engineCalc) Press(label string) (string, error) {
	ev, err := calc.ParseLabel(label)
	if err != nil {
		return c.eng.Display(), err
	}
	return c.eng.Apply(ev), nil
}

func (c *engineCalc) Input(seq string) (string, error) {
	events, err := calc.ParseSequence(seq)
	if err != nil {
		return c.eng.Display(), err
	}
	return c.eng.ApplyAll(events...), nil
}

func (c *engineCalc) Display() string    { return c.eng.Display() }
func (c *engineCalc) Expression() string { return c.eng.Expression() }

func newTestHost(t *testing.T, opts ...HostOption) (*Host, *engineCalc) {
	t.Helper()
	c := &engineCalc{eng: calc.New()}
	h := NewHost(c, opts...)
	t.Cleanup(func() { h.Close() })
	return h, c
}

func TestHost_PressAndDisplay(t *testing.T) {
	h, c := newTestHost(t)
	ctx := context.Background()

	err := h.LoadString(ctx, "test.lua", `
		calc.press("1")
		calc.press("2")
		calc.press("+")
		last = calc.press("5")
		shown = calc.display()
		expr = calc.expression()
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	if got := c.eng.Display(); got != "5" {
		t.Errorf("display = %q, want 5", got)
	}
	L := h.state.L
	if got := L.GetGlobal("last").String(); got != "5" {
		t.Errorf("press return = %q, want 5", got)
	}
	if got := L.GetGlobal("expr").String(); got != "12 +" {
		t.Errorf("expression = %q, want %q", got, "12 +")
	}
}

func TestHost_Input(t *testing.T) {
	h, c := newTestHost(t)

	if err := h.LoadString(context.Background(), "seq.lua", `result = calc.input("1÷4=")`); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if got := c.eng.Display(); got != "0.25" {
		t.Errorf("display = %q, want 0.25", got)
	}
	if got := h.state.L.GetGlobal("result").String(); got != "0.25" {
		t.Errorf("result = %q, want 0.25", got)
	}
}

func TestHost_PressUnknownLabel(t *testing.T) {
	h, _ := newTestHost(t)

	err := h.LoadString(context.Background(), "bad.lua", `calc.press("sqrt")`)
	if err == nil {
		t.Fatal("LoadString() error = nil, want error")
	}
	var se *ScriptError
	if !errors.As(err, &se) {
		t.Fatalf("error %T is not *ScriptError", err)
	}
	if se.Script != "bad.lua" || se.Op != "load" {
		t.Errorf("ScriptError = %+v", se)
	}
	if !strings.Contains(err.Error(), "unknown button label") {
		t.Errorf("error %q does not describe the label", err)
	}
}

func TestHost_SyntaxError(t *testing.T) {
	h, _ := newTestHost(t)

	err := h.LoadString(context.Background(), "syntax.lua", `calc.press(`)
	var se *ScriptError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *ScriptError", err)
	}
	if len(h.Scripts()) != 0 {
		t.Errorf("Scripts() = %v, failed script should not be listed", h.Scripts())
	}
}

func TestHost_BindAndRunMacro(t *testing.T) {
	h, c := newTestHost(t)
	ctx := context.Background()

	err := h.LoadString(ctx, "square.lua", `
		calc.bind("Ctrl+S", function()
			local v = calc.display()
			calc.press("×")
			calc.input(v .. "=")
		end)
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	bindings := h.Bindings()
	if len(bindings) != 1 {
		t.Fatalf("len(Bindings()) = %d, want 1", len(bindings))
	}
	b := bindings[0]
	want := key.NewRuneEvent('s', key.ModCtrl)
	if b.Key != want {
		t.Errorf("binding key = %s, want %s", b.Key, want)
	}
	if b.Script != "square.lua" {
		t.Errorf("binding script = %q", b.Script)
	}
	if !h.HasMacro(b.Macro) {
		t.Fatalf("macro %q not registered", b.Macro)
	}

	c.eng.ApplyAll(calc.Digit('7'))
	if err := h.RunMacro(ctx, b.Macro); err != nil {
		t.Fatalf("RunMacro() error = %v", err)
	}
	if got := c.eng.Display(); got != "49" {
		t.Errorf("display = %q, want 49", got)
	}
}

func TestHost_NamedMacro(t *testing.T) {
	h, c := newTestHost(t)
	ctx := context.Background()

	if err := h.LoadString(ctx, "m.lua", `calc.macro("tax", function() calc.input("×1.5=") end)`); err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if got := h.Macros(); len(got) != 1 || got[0] != "tax" {
		t.Errorf("Macros() = %v", got)
	}

	c.eng.ApplyAll(calc.Digit('8'))
	if err := h.RunMacro(ctx, "tax"); err != nil {
		t.Fatalf("RunMacro() error = %v", err)
	}
	if got := c.eng.Display(); got != "12" {
		t.Errorf("display = %q, want 12", got)
	}

	err := h.RunMacro(ctx, "missing")
	if !errors.Is(err, ErrUnknownMacro) {
		t.Errorf("RunMacro(missing) error = %v, want ErrUnknownMacro", err)
	}
}

func TestHost_BindInvalidKey(t *testing.T) {
	h, _ := newTestHost(t)

	err := h.LoadString(context.Background(), "k.lua", `calc.bind("", function() end)`)
	if err == nil {
		t.Fatal("LoadString() error = nil, want invalid key error")
	}
}

func TestHost_NotifyResult(t *testing.T) {
	h, _ := newTestHost(t)
	ctx := context.Background()

	err := h.LoadString(ctx, "hook.lua", `
		results = {}
		calc.on_result(function(d) table.insert(results, d) end)
		calc.on_result(function(d) count = (count or 0) + 1 end)
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	for _, d := range []string{"4", "Error"} {
		if err := h.NotifyResult(ctx, d); err != nil {
			t.Fatalf("NotifyResult(%q) error = %v", d, err)
		}
	}

	if err := h.state.L.DoString(`joined = table.concat(results, ",")`); err != nil {
		t.Fatal(err)
	}
	if got := h.state.L.GetGlobal("joined").String(); got != "4,Error" {
		t.Errorf("results = %q, want %q", got, "4,Error")
	}
	if got := h.state.L.GetGlobal("count").String(); got != "2" {
		t.Errorf("count = %q, want 2", got)
	}
}

func TestHost_NotifyResultError(t *testing.T) {
	h, _ := newTestHost(t)
	ctx := context.Background()

	err := h.LoadString(ctx, "hook.lua", `
		calc.on_result(function() error("boom") end)
		calc.on_result(function() ran = true end)
	`)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}

	err = h.NotifyResult(ctx, "1")
	var se *ScriptError
	if !errors.As(err, &se) || se.Op != "on_result" {
		t.Fatalf("NotifyResult() error = %v, want on_result ScriptError", err)
	}
	if h.state.L.GetGlobal("ran").String() != "true" {
		t.Error("later hooks should still run after a failure")
	}
}

func TestHost_Sandbox(t *testing.T) {
	h, _ := newTestHost(t)
	ctx := context.Background()

	for _, name := range []string{"os", "io", "debug", "dofile", "loadfile", "load", "require"} {
		code := "assert(" + name + " == nil, '" + name + " is reachable')"
		if err := h.LoadString(ctx, name+".lua", code); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	if err := h.LoadString(ctx, "libs.lua", `assert(string.upper("ac") == "AC"); assert(math.floor(2.5) == 2)`); err != nil {
		t.Errorf("safe libraries unavailable: %v", err)
	}
}

func TestHost_StringRepLimit(t *testing.T) {
	h, _ := newTestHost(t)
	ctx := context.Background()

	if err := h.LoadString(ctx, "rep.lua", `assert(string.rep("ab", 3) == "ababab"); assert(("x"):rep(0) == "")`); err != nil {
		t.Fatalf("string.rep within limit: %v", err)
	}

	for _, code := range []string{
		`local s = string.rep("x", 1e9)`,
		`local s = ("xy"):rep(1048576)`,
	} {
		err := h.LoadString(ctx, "huge.lua", code)
		if err == nil {
			t.Errorf("%s: expected error", code)
			continue
		}
		if !strings.Contains(err.Error(), "exceeds") {
			t.Errorf("%s: error = %v, want size limit", code, err)
		}
	}
}

func TestHost_Timeout(t *testing.T) {
	h, _ := newTestHost(t, WithTimeout(50*time.Millisecond))

	start := time.Now()
	err := h.LoadString(context.Background(), "loop.lua", `while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Fatalf("error = %v, want ErrExecutionTimeout", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timeout took %v", elapsed)
	}

	// The state stays usable after a timeout.
	if err := h.LoadString(context.Background(), "ok.lua", `x = 1`); err != nil {
		t.Errorf("LoadString after timeout error = %v", err)
	}
}

func TestHost_LoadFile(t *testing.T) {
	h, c := newTestHost(t)
	path := filepath.Join(t.TempDir(), "init.lua")
	if err := os.WriteFile(path, []byte(`calc.input("6×7=")`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := h.Load(context.Background(), path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := c.eng.Display(); got != "42" {
		t.Errorf("display = %q, want 42", got)
	}
	if got := h.Scripts(); len(got) != 1 || got[0] != path {
		t.Errorf("Scripts() = %v", got)
	}

	err := h.Load(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestHost_Closed(t *testing.T) {
	h, _ := newTestHost(t)
	h.Close()

	if err := h.LoadString(context.Background(), "x.lua", `x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("LoadString after Close error = %v, want ErrStateClosed", err)
	}
}
