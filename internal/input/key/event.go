package key

import "unicode"

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return normalize(Event{Key: KeyRune, Rune: r, Modifiers: mods})
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// normalize makes equivalent presses compare equal. Shift is part of the
// character itself, and Ctrl chords are case-insensitive.
func normalize(e Event) Event {
	if e.Key != KeyRune {
		return e
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	if e.Modifiers.Has(ModCtrl) {
		e.Rune = unicode.ToLower(e.Rune)
	}
	return e
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// String returns the canonical specification, e.g. "7", "Ctrl+c", "Enter".
func (e Event) String() string {
	e = normalize(e)

	var name string
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "Space"
	case e.Key == KeyRune:
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}

	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}
