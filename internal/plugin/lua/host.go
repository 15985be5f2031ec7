package lua

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keycalc/internal/input/key"
)

// Calculator is the engine surface exposed to scripts.
type Calculator interface {
	// Press applies one button label and returns the display.
	Press(label string) (string, error)
	// Input applies a label sequence such as "12+3=".
	Input(seq string) (string, error)
	Display() string
	Expression() string
}

// Binding is a key bound by a script through calc.bind.
type Binding struct {
	Key key.Event
	// Macro is the name to dispatch through RunMacro.
	Macro string
	// Script is the chunk that registered the binding.
	Script string
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithTimeout sets the per-call execution timeout.
func WithTimeout(d time.Duration) HostOption {
	return func(h *Host) {
		h.timeout = d
	}
}

// WithLogger sets the logger used by calc.log and print.
func WithLogger(logger *slog.Logger) HostOption {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Host loads scripts and dispatches macros and result hooks.
type Host struct {
	state   *State
	calc    Calculator
	logger  *slog.Logger
	timeout time.Duration

	// current names the chunk being loaded, for binding attribution.
	current string

	macros   map[string]*lua.LFunction
	bindings map[string]Binding // keyed by canonical key spec
	hooks    []*lua.LFunction
	scripts  []string
}

// NewHost creates a host driving calc.
func NewHost(calc Calculator, opts ...HostOption) *Host {
	h := &Host{
		calc:     calc,
		logger:   slog.New(slog.DiscardHandler),
		macros:   make(map[string]*lua.LFunction),
		bindings: make(map[string]Binding),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.state = newState(h.timeout)
	printTo(h.state.L, func(msg string) {
		h.logger.Info(msg, "source", "print")
	})
	h.registerModule()
	return h
}

// Load runs the script at path.
func (h *Host) Load(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ScriptError{Script: path, Op: "load", Err: err}
	}
	return h.LoadString(ctx, path, string(data))
}

// LoadString runs code under the given chunk name.
func (h *Host) LoadString(ctx context.Context, name, code string) error {
	h.current = name
	defer func() { h.current = "" }()

	if err := h.state.doString(ctx, name, code); err != nil {
		return &ScriptError{Script: name, Op: "load", Err: err}
	}
	h.scripts = append(h.scripts, name)
	h.logger.Debug("script loaded", "script", name)
	return nil
}

// Scripts returns the names of loaded scripts in load order.
func (h *Host) Scripts() []string {
	return append([]string(nil), h.scripts...)
}

// HasMacro reports whether a macro is registered under name.
func (h *Host) HasMacro(name string) bool {
	_, ok := h.macros[name]
	return ok
}

// Macros returns the registered macro names, sorted.
func (h *Host) Macros() []string {
	names := make([]string, 0, len(h.macros))
	for name := range h.macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunMacro calls the macro registered under name.
func (h *Host) RunMacro(ctx context.Context, name string) error {
	fn, ok := h.macros[name]
	if !ok {
		return &ScriptError{Op: "macro", Err: fmt.Errorf("%w: %s", ErrUnknownMacro, name)}
	}
	if err := h.state.call(ctx, fn); err != nil {
		return &ScriptError{Script: name, Op: "macro", Err: err}
	}
	return nil
}

// NotifyResult calls every on_result hook with the display text.
// All hooks run; the first failure is returned.
func (h *Host) NotifyResult(ctx context.Context, display string) error {
	var first error
	for _, fn := range h.hooks {
		if err := h.state.call(ctx, fn, lua.LString(display)); err != nil && first == nil {
			first = &ScriptError{Op: "on_result", Err: err}
		}
	}
	return first
}

// Bindings returns the script key bindings sorted by key spec.
func (h *Host) Bindings() []Binding {
	out := make([]Binding, 0, len(h.bindings))
	for _, b := range h.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key.String() < out[j].Key.String()
	})
	return out
}

// Close releases the Lua state.
func (h *Host) Close() error {
	h.state.close()
	return nil
}
