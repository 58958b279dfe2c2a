package highlight

import (
	"strings"
	"sync"
)

// Flags enable optional highlighting features for a syntax.
type Flags uint8

const (
	// HighlightNumbers enables number highlighting.
	HighlightNumbers Flags = 1 << iota
	// HighlightStrings enables string highlighting.
	HighlightStrings
)

// Has returns true if f contains flag.
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// KeywordMarker is the trailing marker that puts a keyword in the
// secondary class (types, builtins).
const KeywordMarker = '|'

// Syntax describes how one file type is highlighted. A Syntax is never
// mutated once registered.
type Syntax struct {
	// FileType is shown in the status bar.
	FileType string

	// FileMatch patterns. Patterns starting with '.' are compared with the
	// filename's extension; anything else is a substring match.
	FileMatch []string

	// Keywords; entries ending in KeywordMarker are secondary keywords.
	Keywords []string

	LineComment string
	BlockStart  string
	BlockEnd    string

	Flags Flags
}

// Matches reports whether filename selects this syntax.
func (s *Syntax) Matches(filename string) bool {
	ext := ""
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		ext = filename[i:]
	}
	for _, pattern := range s.FileMatch {
		if pattern == "" {
			continue
		}
		if pattern[0] == '.' {
			if ext != "" && ext == pattern {
				return true
			}
			continue
		}
		if strings.Contains(filename, pattern) {
			return true
		}
	}
	return false
}

// Registry holds the syntax table. Entries are consulted in registration
// order and the first match wins.
type Registry struct {
	mu      sync.RWMutex
	entries []*Syntax
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns a registry holding the built-in syntaxes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltinSyntaxes(r)
	return r
}

// Register appends a syntax to the table.
func (r *Registry) Register(s *Syntax) {
	if s == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, s)
}

// Prepend puts a syntax ahead of every existing entry so user definitions
// override the built-ins for the same patterns.
func (r *Registry) Prepend(s *Syntax) {
	if s == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append([]*Syntax{s}, r.entries...)
}

// Select returns the first syntax matching filename, or nil.
func (r *Registry) Select(filename string) *Syntax {
	if filename == "" {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.entries {
		if s.Matches(filename) {
			return s
		}
	}
	return nil
}

// Len returns the number of registered syntaxes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// CSyntax returns the C/C++ syntax definition.
func CSyntax() *Syntax {
	return &Syntax{
		FileType:  "c",
		FileMatch: []string{".c", ".h", ".cpp"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",

			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Flags:       HighlightNumbers | HighlightStrings,
	}
}

// GoSyntax returns the Go syntax definition.
func GoSyntax() *Syntax {
	return &Syntax{
		FileType:  "go",
		FileMatch: []string{".go"},
		Keywords: []string{
			"if", "else", "for", "range", "switch", "case", "default",
			"break", "continue", "return", "goto", "fallthrough", "select",
			"func", "var", "const", "type", "struct", "interface", "map", "chan",
			"package", "import", "defer", "go",

			"int|", "int8|", "int16|", "int32|", "int64|",
			"uint|", "uint8|", "uint16|", "uint32|", "uint64|", "uintptr|",
			"float32|", "float64|", "complex64|", "complex128|",
			"bool|", "byte|", "rune|", "string|", "error|", "any|",
			"true|", "false|", "nil|", "iota|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Flags:       HighlightNumbers | HighlightStrings,
	}
}

// PythonSyntax returns the Python syntax definition.
func PythonSyntax() *Syntax {
	return &Syntax{
		FileType:  "python",
		FileMatch: []string{".py", ".pyw", ".pyi"},
		Keywords: []string{
			"if", "elif", "else", "for", "while", "break", "continue",
			"return", "try", "except", "finally", "raise", "with", "as",
			"def", "class", "lambda", "import", "from", "pass", "yield",
			"in", "is", "not", "and", "or",

			"int|", "float|", "str|", "bool|", "list|", "dict|", "set|", "tuple|",
			"True|", "False|", "None|",
		},
		LineComment: "#",
		Flags:       HighlightNumbers | HighlightStrings,
	}
}

// JavaScriptSyntax returns the JavaScript/TypeScript syntax definition.
func JavaScriptSyntax() *Syntax {
	return &Syntax{
		FileType:  "javascript",
		FileMatch: []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"},
		Keywords: []string{
			"if", "else", "for", "while", "do", "switch", "case", "default",
			"break", "continue", "return", "throw", "try", "catch", "finally",
			"function", "var", "let", "const", "class", "extends", "new",
			"import", "export", "from", "async", "await",

			"true|", "false|", "null|", "undefined|", "this|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Flags:       HighlightNumbers | HighlightStrings,
	}
}

// RustSyntax returns the Rust syntax definition.
func RustSyntax() *Syntax {
	return &Syntax{
		FileType:  "rust",
		FileMatch: []string{".rs"},
		Keywords: []string{
			"if", "else", "match", "for", "while", "loop", "break", "continue",
			"return", "fn", "let", "mut", "const", "static", "struct", "enum",
			"trait", "impl", "type", "mod", "use", "pub", "where", "as",

			"i8|", "i16|", "i32|", "i64|", "isize|",
			"u8|", "u16|", "u32|", "u64|", "usize|",
			"f32|", "f64|", "bool|", "char|", "str|", "String|",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Flags:       HighlightNumbers | HighlightStrings,
	}
}

// RegisterBuiltinSyntaxes registers all built-in syntaxes.
func RegisterBuiltinSyntaxes(r *Registry) {
	r.Register(CSyntax())
	r.Register(GoSyntax())
	r.Register(PythonSyntax())
	r.Register(JavaScriptSyntax())
	r.Register(RustSyntax())
}
