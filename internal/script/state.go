package script

import (
	lua "github.com/yuin/gopher-lua"
)

// unsafeGlobals are removed from every state; they can load code from
// disk or from strings outside the compiled chunk.
var unsafeGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
}

// newState creates a Lua state with only the base, table, string and math
// libraries open.
func newState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	// Each opener leaves its module table on the stack.
	L.SetTop(0)

	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}
