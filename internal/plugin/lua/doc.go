// Package lua runs editor plugins written in Lua.
//
// Plugins execute in a single gopher-lua state with only the base, table,
// string and math libraries. File loading, module loading and the io, os
// and debug libraries are unavailable, and every chunk or callback runs
// under an execution timeout.
//
// Scripts talk to the editor through the global kilo table:
//
//	kilo.syntax{
//	    filetype = "lua",
//	    filematch = {".lua"},
//	    keywords = {"local", "function", "end", "nil|"},
//	    line_comment = "--",
//	    block_start = "--[[", block_end = "]]",
//	    numbers = true, strings = true,
//	}
//
//	kilo.on_save(function(filename, content)
//	    return filename .. ": " .. #content .. " bytes"
//	end)
//
// kilo.syntax registers a highlight.Syntax that takes precedence over the
// built-in table. kilo.on_save hooks run after each successful save; a
// returned string replaces the status message.
package lua
