package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "7", "+", "q"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+L", "Alt+Enter"
//   - Vim-style: "<C-l>", "<CR>", "<Esc>", "<BS>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// Check for Vim-style <...> notation
	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// "+" on its own, or as the last part of "Shift++", is the plus key.
	if spec == "+" {
		return NewRuneEvent('+', ModNone), nil
	}
	if strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// parseVimStyle parses Vim-style notation like "C-l", "CR", "Esc"
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]
	if keyPart == "" && len(parts) > 1 {
		// "<C-->" means Ctrl and the minus key.
		parts = parts[:len(parts)-1]
		keyPart = "-"
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.ToLower(strings.TrimSpace(p)))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+L" style notation
func parseModifierStyle(spec string) (Event, error) {
	keyPart := spec[strings.LastIndex(spec, "+")+1:]
	modPart := spec[:strings.LastIndex(spec, "+")]
	if keyPart == "" {
		// "Ctrl++" binds the plus key.
		keyPart = "+"
		modPart = strings.TrimSuffix(modPart, "+")
	}

	var mods Modifier
	for _, p := range strings.Split(modPart, "+") {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(strings.ToLower(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}

	lower := strings.ToLower(strings.TrimSpace(keyPart))
	if lower == "space" {
		return NewRuneEvent(' ', mods), nil
	}
	if k := KeyFromName(lower); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, keyPart)
}
