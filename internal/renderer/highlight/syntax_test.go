package highlight

import "testing"

func TestRegistrySelect(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		filename string
		want     string
	}{
		{"main.c", "c"},
		{"kilo.h", "c"},
		{"widget.cpp", "c"},
		{"/src/app/main.go", "go"},
		{"script.py", "python"},
		{"index.tsx", "javascript"},
		{"lib.rs", "rust"},
		{"notes.c.txt", ""},
		{"README", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			syn := r.Select(tt.filename)
			got := ""
			if syn != nil {
				got = syn.FileType
			}
			if got != tt.want {
				t.Errorf("Select(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestSyntaxSubstringMatch(t *testing.T) {
	syn := &Syntax{FileType: "make", FileMatch: []string{"Makefile"}}

	if !syn.Matches("Makefile") {
		t.Error("Matches(Makefile) = false, want true")
	}
	if !syn.Matches("/tmp/Makefile.am") {
		t.Error("Matches(/tmp/Makefile.am) = false, want true")
	}
	if syn.Matches("makefile") {
		t.Error("substring match should be case sensitive")
	}
}

func TestRegistryPrepend(t *testing.T) {
	r := DefaultRegistry()
	n := r.Len()

	custom := &Syntax{FileType: "myc", FileMatch: []string{".c"}}
	r.Prepend(custom)

	if r.Len() != n+1 {
		t.Errorf("Len() = %d, want %d", r.Len(), n+1)
	}
	if got := r.Select("x.c"); got != custom {
		t.Errorf("Select(x.c) = %v, want prepended syntax", got)
	}

	r.Register(nil)
	if r.Len() != n+1 {
		t.Error("Register(nil) should be ignored")
	}
}

func TestBuiltinKeywordsAreWellFormed(t *testing.T) {
	r := DefaultRegistry()
	for _, name := range []string{"a.c", "a.go", "a.py", "a.js", "a.rs"} {
		syn := r.Select(name)
		if syn == nil {
			t.Fatalf("no syntax for %s", name)
		}
		for _, kw := range syn.Keywords {
			if kw == "" || kw == string(KeywordMarker) {
				t.Errorf("%s: empty keyword", syn.FileType)
			}
		}
	}
}
