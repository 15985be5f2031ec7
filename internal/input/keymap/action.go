package keymap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/keycalc/internal/calc"
)

// ErrInvalidTarget indicates a binding target that is not a label, "quit"
// or "macro:<name>".
var ErrInvalidTarget = errors.New("invalid binding target")

// ActionKind identifies what a binding does.
type ActionKind uint8

const (
	// ActionNone means the key is unbound.
	ActionNone ActionKind = iota

	// ActionPress delivers a calculator event.
	ActionPress

	// ActionQuit exits the application.
	ActionQuit

	// ActionMacro runs a named plugin macro.
	ActionMacro
)

// Action is the resolved target of a binding.
type Action struct {
	Kind ActionKind

	// Event is set for ActionPress.
	Event calc.Event

	// Macro is the macro name for ActionMacro.
	Macro string
}

// String returns the target in binding syntax.
func (a Action) String() string {
	switch a.Kind {
	case ActionPress:
		return a.Event.String()
	case ActionQuit:
		return "quit"
	case ActionMacro:
		return "macro:" + a.Macro
	default:
		return ""
	}
}

// ParseAction converts a binding target to an Action.
func ParseAction(target string) (Action, error) {
	target = strings.TrimSpace(target)

	switch {
	case strings.EqualFold(target, "quit"):
		return Action{Kind: ActionQuit}, nil
	case strings.HasPrefix(target, "macro:"):
		name := strings.TrimSpace(strings.TrimPrefix(target, "macro:"))
		if name == "" {
			return Action{}, fmt.Errorf("%w: empty macro name", ErrInvalidTarget)
		}
		return Action{Kind: ActionMacro, Macro: name}, nil
	}

	ev, err := calc.ParseLabel(target)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	return Action{Kind: ActionPress, Event: ev}, nil
}
