// Package keymap maps key presses to calculator actions.
//
// A Keymap starts from the default bindings (digits, operators, Enter for
// "=", Escape for AC, Backspace for C) and can be extended from
// configuration or plugin scripts. Bindings are keyed by the canonical
// key specification from the key package, so "Ctrl+L" and "<C-l>" refer to
// the same binding.
//
// Binding targets are written as:
//
//   - a button label: "7", ".", "×", "=", "C", "AC"
//   - "quit": exit the application
//   - "macro:<name>": run a macro registered by a plugin script
package keymap
