package keymap

// defaultBindings are the built-in bindings, spec to target.
var defaultBindings = map[string]string{
	"0": "0", "1": "1", "2": "2", "3": "3", "4": "4",
	"5": "5", "6": "6", "7": "7", "8": "8", "9": "9",

	".": ".",
	",": ".",

	"+": "+",
	"-": "−",
	"*": "×",
	"x": "×",
	"/": "÷",

	"=":     "=",
	"Enter": "=",

	"Backspace": "C",
	"Delete":    "C",
	"c":         "C",
	"Escape":    "AC",
	"a":         "AC",

	"q":      "quit",
	"Ctrl+c": "quit",
}

// Default returns a keymap with the built-in bindings.
func Default() *Keymap {
	k := New()
	// The default table is static and known to parse.
	_ = k.Load(defaultBindings, "default")
	return k
}
