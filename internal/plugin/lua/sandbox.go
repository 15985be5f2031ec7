package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// unsafeGlobals are base library functions that reach the filesystem or
// compile arbitrary chunks.
var unsafeGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
	"collectgarbage",
}

// MaxStringLength caps the result of string.rep.
const MaxStringLength = 1 << 20

// restrict removes unsafe globals from L and bounds string.rep.
func restrict(L *lua.LState) {
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	if strlib, ok := L.GetGlobal("string").(*lua.LTable); ok {
		strlib.RawSetString("rep", L.NewFunction(limitedRep))
	}
}

// limitedRep is string.rep with a result size limit.
func limitedRep(L *lua.LState) int {
	s := L.CheckString(1)
	n := L.CheckInt(2)
	if n <= 0 || s == "" {
		L.Push(lua.LString(""))
		return 1
	}
	if n > MaxStringLength/len(s) {
		L.RaiseError("string.rep result exceeds %d bytes", MaxStringLength)
		return 0
	}
	L.Push(lua.LString(strings.Repeat(s, n)))
	return 1
}

// printTo replaces print so output goes to fn instead of stdout, which
// belongs to the terminal UI.
func printTo(L *lua.LState, fn func(string)) {
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		fn(strings.Join(parts, "\t"))
		return 0
	}))
}

func stringReader(s string) *strings.Reader {
	return strings.NewReader(s)
}
