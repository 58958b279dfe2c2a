package buffer

import (
	"testing"

	"github.com/dshills/kilo/internal/renderer/highlight"
)

func newDoc(t *testing.T, syn *highlight.Syntax, lines ...string) *Document {
	t.Helper()
	doc := New(WithSyntax(syn))
	raw := make([][]byte, len(lines))
	for i, l := range lines {
		raw[i] = []byte(l)
	}
	doc.Load(raw)
	return doc
}

func rowStrings(doc *Document) []string {
	out := make([]string, doc.NumRows())
	for i := range out {
		out[i] = doc.Row(i).String()
	}
	return out
}

func checkInvariants(t *testing.T, doc *Document) {
	t.Helper()
	for i := 0; i < doc.NumRows(); i++ {
		row := doc.Row(i)
		if len(row.Highlight()) != len(row.Render()) {
			t.Fatalf("row %d: len(highlight) = %d, len(render) = %d", i, len(row.Highlight()), len(row.Render()))
		}
		want := doc.tabs.Expand(row.Raw())
		if string(row.Render()) != string(want) {
			t.Fatalf("row %d: stale render %q, want %q", i, row.Render(), want)
		}
	}
}

func equalRows(t *testing.T, doc *Document, want ...string) {
	t.Helper()
	got := rowStrings(doc)
	if len(got) != len(want) {
		t.Fatalf("rows = %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("rows = %q, want %q", got, want)
		}
	}
}

func TestLoadIsClean(t *testing.T) {
	doc := newDoc(t, nil, "one", "two")
	if doc.Dirty() != 0 {
		t.Errorf("Dirty() = %d after Load, want 0", doc.Dirty())
	}
	equalRows(t, doc, "one", "two")
	checkInvariants(t, doc)
}

func TestInsertRow(t *testing.T) {
	doc := newDoc(t, nil, "a", "c")

	doc.InsertRow(1, []byte("b"))
	doc.InsertRow(3, []byte("d"))
	doc.InsertRow(0, []byte("start"))
	equalRows(t, doc, "start", "a", "b", "c", "d")
	if doc.Dirty() != 3 {
		t.Errorf("Dirty() = %d, want 3", doc.Dirty())
	}

	// Out of range is a no-op.
	doc.InsertRow(-1, []byte("x"))
	doc.InsertRow(99, []byte("x"))
	equalRows(t, doc, "start", "a", "b", "c", "d")
	if doc.Dirty() != 3 {
		t.Errorf("Dirty() = %d after no-ops, want 3", doc.Dirty())
	}
	checkInvariants(t, doc)
}

func TestInsertRowCopiesContent(t *testing.T) {
	doc := New()
	content := []byte("abc")
	doc.InsertRow(0, content)
	content[0] = 'X'
	if got := doc.Row(0).String(); got != "abc" {
		t.Errorf("row = %q, want %q", got, "abc")
	}
}

func TestDeleteRow(t *testing.T) {
	doc := newDoc(t, nil, "a", "b", "c")

	doc.DeleteRow(1)
	equalRows(t, doc, "a", "c")

	doc.DeleteRow(5)
	doc.DeleteRow(-1)
	equalRows(t, doc, "a", "c")
	if doc.Dirty() != 1 {
		t.Errorf("Dirty() = %d, want 1", doc.Dirty())
	}

	empty := New()
	empty.DeleteRow(0)
	if empty.NumRows() != 0 || empty.Dirty() != 0 {
		t.Error("DeleteRow on empty document should be a no-op")
	}
}

func TestInsertChar(t *testing.T) {
	doc := newDoc(t, nil, "ac")

	doc.InsertChar(0, 1, 'b')
	equalRows(t, doc, "abc")

	// Column past the end is clamped.
	doc.InsertChar(0, 50, 'd')
	equalRows(t, doc, "abcd")

	// Typing on the phantom row after the last line creates it.
	doc.InsertChar(1, 0, 'x')
	equalRows(t, doc, "abcd", "x")

	// Beyond the phantom row is ignored.
	doc.InsertChar(5, 0, 'y')
	equalRows(t, doc, "abcd", "x")
	checkInvariants(t, doc)
}

func TestInsertCharIntoEmptyDocument(t *testing.T) {
	doc := New()
	doc.InsertChar(0, 0, 'h')
	doc.InsertChar(0, 1, 'i')
	equalRows(t, doc, "hi")
	// InsertRow + two inserts
	if doc.Dirty() != 3 {
		t.Errorf("Dirty() = %d, want 3", doc.Dirty())
	}
}

func TestDeleteChar(t *testing.T) {
	doc := newDoc(t, nil, "abc")

	row, col := doc.DeleteChar(0, 2)
	if row != 0 || col != 1 {
		t.Errorf("DeleteChar(0,2) = (%d,%d), want (0,1)", row, col)
	}
	equalRows(t, doc, "ac")

	row, col = doc.DeleteChar(0, 0)
	if row != 0 || col != 0 {
		t.Errorf("DeleteChar(0,0) = (%d,%d), want (0,0)", row, col)
	}
	equalRows(t, doc, "ac")

	// Phantom row: nothing to delete.
	row, col = doc.DeleteChar(1, 0)
	if row != 1 || col != 0 {
		t.Errorf("DeleteChar on phantom row = (%d,%d), want (1,0)", row, col)
	}
	equalRows(t, doc, "ac")
}

func TestDeleteOnlyCharacterLeavesEmptyRow(t *testing.T) {
	doc := newDoc(t, nil, "x")
	doc.DeleteChar(0, 1)
	if doc.NumRows() != 1 {
		t.Fatalf("NumRows() = %d, want 1", doc.NumRows())
	}
	equalRows(t, doc, "")
	checkInvariants(t, doc)
}

func TestDeleteCharMergesRows(t *testing.T) {
	doc := newDoc(t, nil, "hello", "world", "!")

	row, col := doc.DeleteChar(1, 0)
	if row != 0 || col != 5 {
		t.Errorf("DeleteChar(1,0) = (%d,%d), want (0,5)", row, col)
	}
	equalRows(t, doc, "helloworld", "!")
	checkInvariants(t, doc)
}

func TestInsertNewline(t *testing.T) {
	doc := newDoc(t, nil, "abcdef")

	row, col := doc.InsertNewline(0, 3)
	if row != 1 || col != 0 {
		t.Errorf("InsertNewline(0,3) = (%d,%d), want (1,0)", row, col)
	}
	equalRows(t, doc, "abc", "def")

	row, col = doc.InsertNewline(0, 0)
	if row != 1 || col != 0 {
		t.Errorf("InsertNewline(0,0) = (%d,%d), want (1,0)", row, col)
	}
	equalRows(t, doc, "", "abc", "def")

	// Split at the end produces an empty row below.
	doc.InsertNewline(2, 3)
	equalRows(t, doc, "", "abc", "def", "")

	// Newline on the phantom row appends.
	doc.InsertNewline(4, 0)
	equalRows(t, doc, "", "abc", "def", "", "")
	checkInvariants(t, doc)
}

func TestSplitDoesNotAlias(t *testing.T) {
	doc := newDoc(t, nil, "abcdef")
	doc.InsertNewline(0, 3)
	doc.InsertChar(0, 3, 'X')
	equalRows(t, doc, "abcX", "def")
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"empty", nil, ""},
		{"one", []string{"a"}, "a\n"},
		{"blank last", []string{"a", ""}, "a\n\n"},
		{"tabs kept raw", []string{"\tx"}, "\tx\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newDoc(t, nil, tt.lines...)
			if got := string(doc.Serialize()); got != tt.want {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTabRendering(t *testing.T) {
	doc := newDoc(t, nil, "abcdefgh")

	before := doc.Row(0).RenderLen()
	doc.InsertChar(0, 8, '\t')
	if got := doc.Row(0).RenderLen() - before; got != 8 {
		t.Errorf("tab at column 8 grew render by %d, want 8", got)
	}

	doc = newDoc(t, nil, "abc")
	before = doc.Row(0).RenderLen()
	doc.InsertChar(0, 3, '\t')
	if got := doc.Row(0).RenderLen() - before; got != 5 {
		t.Errorf("tab at column 3 grew render by %d, want 5", got)
	}
	checkInvariants(t, doc)
}

func TestColumnConversion(t *testing.T) {
	doc := newDoc(t, nil, "\tx")

	if got := doc.LogicalToVisual(0, 1); got != 8 {
		t.Errorf("LogicalToVisual(0,1) = %d, want 8", got)
	}
	if got := doc.VisualToLogical(0, 8); got != 1 {
		t.Errorf("VisualToLogical(0,8) = %d, want 1", got)
	}
	if got := doc.LogicalToVisual(3, 4); got != 0 {
		t.Errorf("LogicalToVisual on missing row = %d, want 0", got)
	}
	if got := doc.VisualToLogical(-1, 4); got != 0 {
		t.Errorf("VisualToLogical on missing row = %d, want 0", got)
	}
}

func TestWithTabStop(t *testing.T) {
	doc := New(WithTabStop(4))
	doc.InsertRow(0, []byte("\tx"))
	if got := string(doc.Row(0).Render()); got != "    x" {
		t.Errorf("render = %q, want 4-space tab", got)
	}
	if doc.TabStop() != 4 {
		t.Errorf("TabStop() = %d, want 4", doc.TabStop())
	}
}

func TestMutationSequenceKeepsInvariants(t *testing.T) {
	doc := newDoc(t, highlight.CSyntax(), "int main() {", "\t/* note", "\treturn 0;", "}")

	ops := []func(){
		func() { doc.InsertChar(1, 0, '\t') },
		func() { doc.InsertNewline(2, 3) },
		func() { doc.DeleteChar(3, 0) },
		func() { doc.InsertChar(0, 3, '"') },
		func() { doc.AppendString(1, []byte(" */")) },
		func() { doc.DeleteRow(0) },
		func() { doc.InsertRow(2, []byte("/*")) },
		func() { doc.DeleteChar(1, 4) },
		func() { doc.InsertNewline(0, 0) },
		func() { doc.InsertChar(doc.NumRows(), 0, '\t') },
	}
	for i, op := range ops {
		op()
		checkInvariants(t, doc)
		checkCommentChain(t, doc, i)
	}
}

// checkCommentChain verifies that every row was classified with the state
// its predecessor hands down, i.e. that incremental propagation matches a
// from-scratch pass.
func checkCommentChain(t *testing.T, doc *Document, step int) {
	t.Helper()
	open := false
	for i := 0; i < doc.NumRows(); i++ {
		row := doc.Row(i)
		hl, out := highlight.Classify(doc.Syntax(), row.Render(), open)
		for j := range hl {
			if hl[j] != row.Highlight()[j] {
				t.Fatalf("step %d row %d: incremental highlight differs at %d", step, i, j)
			}
		}
		if out != row.OpenComment() {
			t.Fatalf("step %d row %d: OpenComment() = %v, want %v", step, i, row.OpenComment(), out)
		}
		open = out
	}
}

func TestCommentPropagation(t *testing.T) {
	doc := newDoc(t, highlight.CSyntax(), "int a;", "int b;", "int c;")

	for i := 0; i < 3; i++ {
		if doc.Row(i).OpenComment() {
			t.Fatalf("row %d open before edit", i)
		}
	}

	// Open a comment on row 0: everything below becomes comment.
	doc.InsertChar(0, 0, '*')
	doc.InsertChar(0, 0, '/')
	if !doc.Row(0).OpenComment() {
		t.Fatal("row 0 should leave the comment open")
	}
	for i := 1; i < 3; i++ {
		for j, c := range doc.Row(i).Highlight() {
			if c != highlight.ClassMLComment {
				t.Fatalf("row %d byte %d = %v, want mlcomment", i, j, c)
			}
		}
		if !doc.Row(i).OpenComment() {
			t.Errorf("row %d should carry the open comment", i)
		}
	}

	// Close it on row 1: row 2 goes back to normal highlighting.
	doc.AppendString(1, []byte("*/"))
	if doc.Row(1).OpenComment() {
		t.Error("row 1 should close the comment")
	}
	if got := doc.Row(2).Highlight()[0]; got != highlight.ClassKeyword2 {
		t.Errorf("row 2 byte 0 = %v, want keyword2", got)
	}
	checkCommentChain(t, doc, 0)
}

func TestCommentPropagationAfterRowDelete(t *testing.T) {
	doc := newDoc(t, highlight.CSyntax(), "/* open", "still", "done */", "int x;")

	doc.DeleteRow(0)
	if got := doc.Row(0).Highlight()[0]; got != highlight.ClassNormal {
		t.Errorf("row 0 byte 0 = %v, want normal after removing the opener", got)
	}
	checkCommentChain(t, doc, 0)
}

func TestSetSyntaxReclassifies(t *testing.T) {
	doc := newDoc(t, nil, "int x = 1;")
	for _, c := range doc.Row(0).Highlight() {
		if c != highlight.ClassNormal {
			t.Fatal("no syntax should mean all normal")
		}
	}

	doc.SetSyntax(highlight.CSyntax())
	if doc.Syntax() == nil {
		t.Fatal("Syntax() = nil after SetSyntax")
	}
	if got := doc.Row(0).Highlight()[0]; got != highlight.ClassKeyword2 {
		t.Errorf("byte 0 = %v, want keyword2", got)
	}
}

func TestOverlayHighlight(t *testing.T) {
	doc := newDoc(t, highlight.CSyntax(), "int foo = 1;")
	before := append([]highlight.Class(nil), doc.Row(0).Highlight()...)

	saved := doc.OverlayHighlight(0, 4, 3, highlight.ClassMatch)
	for i := 4; i < 7; i++ {
		if doc.Row(0).Highlight()[i] != highlight.ClassMatch {
			t.Errorf("byte %d not tagged as match", i)
		}
	}

	doc.RestoreHighlight(0, saved)
	for i, c := range doc.Row(0).Highlight() {
		if c != before[i] {
			t.Errorf("byte %d = %v after restore, want %v", i, c, before[i])
		}
	}

	// Spans running off the end are clipped.
	doc.OverlayHighlight(0, 10, 50, highlight.ClassMatch)
	checkInvariants(t, doc)

	if doc.OverlayHighlight(9, 0, 1, highlight.ClassMatch) != nil {
		t.Error("overlay on missing row should return nil")
	}
}
