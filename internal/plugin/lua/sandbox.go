package lua

import (
	lua "github.com/yuin/gopher-lua"
)

// unsafeGlobals are base-library functions that reach the file system or
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

// openSafeLibraries opens only the base, table, string and math libraries.
// io, os, debug, package and channel are never opened.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// installSandbox removes the unsafe globals and routes print to out.
func installSandbox(L *lua.LState, print func(string)) {
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		if print == nil {
			return 0
		}
		n := L.GetTop()
		parts := make([]byte, 0, 64)
		for i := 1; i <= n; i++ {
			if i > 1 {
				parts = append(parts, '\t')
			}
			parts = append(parts, L.ToStringMeta(L.Get(i)).String()...)
		}
		print(string(parts))
		return 0
	}))
}
