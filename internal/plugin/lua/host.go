package lua

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/kilo/internal/renderer/highlight"
)

// ModuleName is the global table plugins use to talk to the editor.
const ModuleName = "kilo"

// LoadError records a plugin script that failed to run.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("plugin %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Host runs plugin scripts in one shared sandboxed state and collects what
// they register: syntax definitions and save hooks.
type Host struct {
	state *State

	loaded   []string
	syntaxes []*highlight.Syntax
	onSave   []*lua.LFunction
}

// NewHost creates a host with the kilo module installed.
func NewHost(opts ...StateOption) *Host {
	h := &Host{state: NewState(opts...)}
	h.state.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"syntax":  h.luaSyntax,
		"on_save": h.luaOnSave,
	})
	return h
}

// LoadDir runs every *.lua file in dir in name order. A missing directory
// is not an error. A failing script does not stop the others; all failures
// are returned joined.
func (h *Host) LoadDir(dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading plugin dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && filepath.Ext(e.Name()) == ".lua" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := h.state.DoFile(path); err != nil {
			errs = append(errs, &LoadError{Path: path, Err: err})
			continue
		}
		h.loaded = append(h.loaded, path)
	}
	return errors.Join(errs...)
}

// LoadString runs code as a plugin named name.
func (h *Host) LoadString(name, code string) error {
	if err := h.state.DoString(code); err != nil {
		return &LoadError{Path: name, Err: err}
	}
	h.loaded = append(h.loaded, name)
	return nil
}

// Loaded returns the scripts that ran successfully.
func (h *Host) Loaded() []string {
	return h.loaded
}

// Syntaxes returns the syntax definitions registered so far, in
// registration order.
func (h *Host) Syntaxes() []*highlight.Syntax {
	return h.syntaxes
}

// HasSaveHooks reports whether any script called kilo.on_save.
func (h *Host) HasSaveHooks() bool {
	return len(h.onSave) > 0
}

// OnSave runs every save hook with the file name and saved content. The
// last non-empty string returned by a hook becomes the message. Hook
// failures are joined into the error; the remaining hooks still run.
func (h *Host) OnSave(filename string, content []byte) (string, error) {
	var (
		msg  string
		errs []error
	)
	for _, fn := range h.onSave {
		results, err := h.state.Call(fn, lua.LString(filename), lua.LString(content))
		if err != nil {
			errs = append(errs, fmt.Errorf("on_save: %w", err))
			continue
		}
		if len(results) > 0 {
			if s, ok := results[0].(lua.LString); ok && s != "" {
				msg = string(s)
			}
		}
	}
	return msg, errors.Join(errs...)
}

// Close releases the Lua state.
func (h *Host) Close() error {
	return h.state.Close()
}

// luaSyntax implements kilo.syntax{...}.
func (h *Host) luaSyntax(L *lua.LState) int {
	tbl := L.CheckTable(1)

	syn := &highlight.Syntax{
		FileType:    stringField(L, tbl, "filetype"),
		FileMatch:   stringList(L, tbl, "filematch"),
		Keywords:    stringList(L, tbl, "keywords"),
		LineComment: stringField(L, tbl, "line_comment"),
		BlockStart:  stringField(L, tbl, "block_start"),
		BlockEnd:    stringField(L, tbl, "block_end"),
	}
	if lua.LVAsBool(L.GetField(tbl, "numbers")) {
		syn.Flags |= highlight.HighlightNumbers
	}
	if lua.LVAsBool(L.GetField(tbl, "strings")) {
		syn.Flags |= highlight.HighlightStrings
	}

	if syn.FileType == "" {
		L.ArgError(1, "filetype is required")
	}
	if len(syn.FileMatch) == 0 {
		L.ArgError(1, "filematch needs at least one pattern")
	}
	if (syn.BlockStart == "") != (syn.BlockEnd == "") {
		L.ArgError(1, "block_start and block_end must be set together")
	}

	h.syntaxes = append(h.syntaxes, syn)
	return 0
}

// luaOnSave implements kilo.on_save(fn).
func (h *Host) luaOnSave(L *lua.LState) int {
	h.onSave = append(h.onSave, L.CheckFunction(1))
	return 0
}

func stringField(L *lua.LState, tbl *lua.LTable, name string) string {
	switch v := L.GetField(tbl, name).(type) {
	case lua.LString:
		return string(v)
	case *lua.LNilType:
		return ""
	default:
		L.ArgError(1, fmt.Sprintf("%s must be a string, got %s", name, v.Type()))
		return ""
	}
}

func stringList(L *lua.LState, tbl *lua.LTable, name string) []string {
	switch v := L.GetField(tbl, name).(type) {
	case *lua.LTable:
		out := make([]string, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			s, ok := v.RawGetInt(i).(lua.LString)
			if !ok {
				L.ArgError(1, fmt.Sprintf("%s[%d] must be a string", name, i))
			}
			out = append(out, string(s))
		}
		return out
	case *lua.LNilType:
		return nil
	default:
		L.ArgError(1, fmt.Sprintf("%s must be a list of strings, got %s", name, v.Type()))
		return nil
	}
}
