package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keycalc/internal/input/key"
)

// registerModule installs the calc global.
func (h *Host) registerModule() {
	L := h.state.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"press":      h.luaPress,
		"input":      h.luaInput,
		"display":    h.luaDisplay,
		"expression": h.luaExpression,
		"bind":       h.luaBind,
		"macro":      h.luaMacro,
		"on_result":  h.luaOnResult,
		"log":        h.luaLog,
	})
	L.SetGlobal("calc", mod)
}

// calc.press(label) -> display
func (h *Host) luaPress(L *lua.LState) int {
	label := L.CheckString(1)
	display, err := h.calc.Press(label)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LString(display))
	return 1
}

// calc.input(seq) -> display
func (h *Host) luaInput(L *lua.LState) int {
	seq := L.CheckString(1)
	display, err := h.calc.Input(seq)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	L.Push(lua.LString(display))
	return 1
}

func (h *Host) luaDisplay(L *lua.LState) int {
	L.Push(lua.LString(h.calc.Display()))
	return 1
}

func (h *Host) luaExpression(L *lua.LState) int {
	L.Push(lua.LString(h.calc.Expression()))
	return 1
}

// calc.bind(keyspec, fn) registers fn as the macro for a key.
// The macro name is the canonical key spec.
func (h *Host) luaBind(L *lua.LState) int {
	spec := L.CheckString(1)
	fn := L.CheckFunction(2)

	ev, err := key.Parse(spec)
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	name := ev.String()
	h.macros[name] = fn
	h.bindings[name] = Binding{Key: ev, Macro: name, Script: h.current}
	return 0
}

// calc.macro(name, fn)
func (h *Host) luaMacro(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)
	if name == "" {
		L.ArgError(1, "macro name must not be empty")
		return 0
	}
	h.macros[name] = fn
	return 0
}

// calc.on_result(fn)
func (h *Host) luaOnResult(L *lua.LState) int {
	h.hooks = append(h.hooks, L.CheckFunction(1))
	return 0
}

// calc.log(msg)
func (h *Host) luaLog(L *lua.LState) int {
	h.logger.Info(L.CheckString(1), "script", h.current)
	return 0
}
