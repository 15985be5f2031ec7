// Package lua runs user scripts that extend the calculator.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. They see a global calc module:
//
//	calc.press(label)        press a button ("7", "+", "=", "AC", ...)
//	calc.input(seq)          press a sequence, e.g. "12+34="
//	calc.display()           current display text
//	calc.expression()        current expression line
//	calc.bind(keyspec, fn)   run fn when the key is pressed
//	calc.macro(name, fn)     register fn for "macro:<name>" key bindings
//	calc.on_result(fn)       fn(display) after each calculation
//	calc.log(msg)            write an info line to the application log
//
// # Example
//
//	-- square the current value
//	calc.bind("Ctrl+S", function()
//	    local v = calc.display()
//	    calc.press("×")
//	    calc.input(v .. "=")
//	end)
//
// A Host owns the state. It is not safe for concurrent use; the app event
// loop calls it from one goroutine. Every call into Lua runs under a
// timeout and failures are reported as *ScriptError.
package lua
