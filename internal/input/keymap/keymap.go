package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/keycalc/internal/input/key"
)

// Binding is a single key-to-action mapping.
type Binding struct {
	// Keys is the canonical key specification.
	Keys string

	Action Action

	// Source indicates where this binding was defined.
	// Examples: "default", "config", "plugin"
	Source string
}

// Keymap holds key bindings.
// It is not safe for concurrent use.
type Keymap struct {
	bindings map[string]Binding
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[string]Binding)}
}

// Bind maps a key specification to a target. A later binding for the same
// key replaces the earlier one.
func (k *Keymap) Bind(spec, target, source string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("binding %q: %w", spec, err)
	}
	action, err := ParseAction(target)
	if err != nil {
		return fmt.Errorf("binding %q: %w", spec, err)
	}
	k.BindEvent(ev, action, source)
	return nil
}

// BindEvent maps an already parsed key event to an action.
func (k *Keymap) BindEvent(ev key.Event, action Action, source string) {
	canonical := ev.String()
	k.bindings[canonical] = Binding{Keys: canonical, Action: action, Source: source}
}

// Unbind removes the binding for a key specification.
func (k *Keymap) Unbind(spec string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("unbinding %q: %w", spec, err)
	}
	delete(k.bindings, ev.String())
	return nil
}

// Load applies a set of spec-to-target bindings, typically from the
// [keymap] section of the configuration. A target of "" removes the binding.
// All bindings are attempted; the first error is returned.
func (k *Keymap) Load(bindings map[string]string, source string) error {
	var firstErr error

	// Sorted for deterministic error reporting.
	specs := make([]string, 0, len(bindings))
	for spec := range bindings {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	for _, spec := range specs {
		target := bindings[spec]
		var err error
		if target == "" {
			err = k.Unbind(spec)
		} else {
			err = k.Bind(spec, target, source)
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Lookup returns the action bound to a key event.
func (k *Keymap) Lookup(ev key.Event) (Action, bool) {
	b, ok := k.bindings[ev.String()]
	if !ok {
		return Action{}, false
	}
	return b.Action, true
}

// Bindings returns all bindings sorted by key.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for _, b := range k.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Keys < out[j].Keys })
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}
