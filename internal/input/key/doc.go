// Package key provides key event types and parsing for the input system.
//
// This package defines the types used to describe keyboard input:
//
//   - Key: identifies a special key, or KeyRune for characters
//   - Modifier: modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press with modifiers
//
// # Key Specifications
//
// Key bindings in configuration files and plugin scripts are written as
// specification strings:
//
//   - Simple keys: "7", "+", "Enter", "Escape", "Backspace"
//   - With modifiers: "Ctrl+L", "Alt+Enter"
//   - Vim-style: "<C-l>", "<CR>", "<Esc>", "<BS>"
//
// Parse converts a specification into an Event, and Event.String returns
// the canonical form used as a lookup key, so Parse(s).String() is stable
// for equivalent specifications.
package key
