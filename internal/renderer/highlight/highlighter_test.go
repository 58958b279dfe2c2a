package highlight

import (
	"testing"
)

// classString renders classes as one letter per byte for compact assertions:
// . normal, c comment, m mlcomment, k keyword1, t keyword2, s string,
// n number, x match.
func classString(classes []Class) string {
	letters := [...]byte{'.', 'c', 'm', 'k', 't', 's', 'n', 'x'}
	out := make([]byte, len(classes))
	for i, c := range classes {
		out[i] = letters[c]
	}
	return string(out)
}

func TestClassifyNoSyntax(t *testing.T) {
	classes, open := Classify(nil, []byte("int x = 1; /* open"), true)
	if got := classString(classes); got != "..................." {
		t.Errorf("Classify(nil) = %q, want all normal", got)
	}
	if open {
		t.Error("Classify(nil) should never report an open comment")
	}
}

func TestClassifyCExample(t *testing.T) {
	syn := CSyntax()

	classes, open := Classify(syn, []byte("int x = 1;"), false)
	if got, want := classString(classes), "ttt......n."; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
	if open {
		t.Error("row 0 should not leave a comment open")
	}

	classes, open = Classify(syn, []byte("// done"), open)
	if got, want := classString(classes), "ccccccc"; got != want {
		t.Errorf("row 1 = %q, want %q", got, want)
	}
	if open {
		t.Error("line comment should not leave a comment open")
	}
}

func TestClassify(t *testing.T) {
	syn := CSyntax()

	tests := []struct {
		name     string
		line     string
		in       bool
		want     string
		wantOpen bool
	}{
		{"keyword1", "if (a) return;", false, "kk.....kkkkkk.", false},
		{"keyword at end of row", "return", false, "kkkkkk", false},
		{"partial keyword", "iffy", false, "....", false},
		{"keyword prefix of identifier", "int_x", false, ".....", false},
		{"keyword after identifier char", "xint", false, "....", false},
		{"identifier with digits", "x1 2", false, "...n", false},
		{"float", "3.14", false, "nnnn", false},
		{"dot after number only", "a.5", false, "..n", false},
		{"string", `"ab" 1`, false, "ssss.n", false},
		{"escaped quote", `"a\"b" 1`, false, "ssssss.n", false},
		{"single quote", `'x'`, false, "sss", false},
		{"comment inside string", `"//"`, false, "ssss", false},
		{"line comment after code", "x; // hi", false, "...ccccc", false},
		{"block comment closed", "/* a */ 1", false, "mmmmmmm.n", false},
		{"block comment open", "/* open", false, "mmmmmmm", true},
		{"continuation", "still", true, "mmmmm", true},
		{"continuation closes", "end */ 1", true, "mmmmmm.n", false},
		{"line comment inside block", "// */ 1", true, "mmmmm.n", false},
		{"block start inside string", `"/*"`, false, "ssss", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classes, open := Classify(syn, []byte(tt.line), tt.in)
			if len(classes) != len(tt.line) {
				t.Fatalf("len(classes) = %d, want %d", len(classes), len(tt.line))
			}
			if got := classString(classes); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.line, got, tt.want)
			}
			if open != tt.wantOpen {
				t.Errorf("Classify(%q) open = %v, want %v", tt.line, open, tt.wantOpen)
			}
		})
	}
}

func TestClassifyFlagsDisabled(t *testing.T) {
	syn := &Syntax{
		FileType:   "plain",
		Keywords:   []string{"if"},
		BlockStart: "/*",
		BlockEnd:   "*/",
	}

	classes, _ := Classify(syn, []byte(`if "a" 12`), false)
	if got, want := classString(classes), "kk......."; got != want {
		t.Errorf("Classify = %q, want %q", got, want)
	}
}

func TestClassifyPython(t *testing.T) {
	classes, open := Classify(PythonSyntax(), []byte("x = None # note"), false)
	if got, want := classString(classes), "....tttt.cccccc"; got != want {
		t.Errorf("Classify = %q, want %q", got, want)
	}
	if open {
		t.Error("python has no block comments")
	}
}

func TestIsSeparator(t *testing.T) {
	for _, b := range []byte(" \t\n\r\x00,.()+-/*=~%<>[];") {
		if !IsSeparator(b) {
			t.Errorf("IsSeparator(%q) = false, want true", b)
		}
	}
	for _, b := range []byte("aZ09_\"'{}#") {
		if IsSeparator(b) {
			t.Errorf("IsSeparator(%q) = true, want false", b)
		}
	}
}

func TestClassString(t *testing.T) {
	for c := ClassNormal; c < classCount; c++ {
		got, ok := ClassFromString(c.String())
		if !ok || got != c {
			t.Errorf("ClassFromString(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ClassFromString("bogus"); ok {
		t.Error("ClassFromString(bogus) should fail")
	}
	if !ClassMLComment.IsComment() || ClassString.IsComment() {
		t.Error("IsComment mismatch")
	}
	if !ClassKeyword2.IsKeyword() || ClassNumber.IsKeyword() {
		t.Error("IsKeyword mismatch")
	}
}
