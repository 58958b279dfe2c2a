package buffer

import (
	"bytes"

	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/layout"
)

// Document is the ordered sequence of rows being edited.
//
// Every method that addresses a row checks its index; requests outside the
// document are ignored rather than reported, since they come from ordinary
// cursor-at-boundary situations. Each content change re-renders the touched
// row and re-classifies it, cascading to later rows only while the
// multi-line comment state handed down keeps differing from what those rows
// were classified with.
type Document struct {
	rows   []*Row
	tabs   *layout.TabExpander
	syntax *highlight.Syntax

	// dirty counts edits since the last load or save.
	dirty int
}

// Option configures a Document.
type Option func(*Document)

// WithTabStop sets the tab width used for rendering.
func WithTabStop(width int) Option {
	return func(d *Document) {
		d.tabs = layout.NewTabExpander(width)
	}
}

// WithSyntax sets the initial syntax definition.
func WithSyntax(syn *highlight.Syntax) Option {
	return func(d *Document) {
		d.syntax = syn
	}
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{
		tabs: layout.DefaultTabExpander(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NumRows returns the number of rows.
func (d *Document) NumRows() int {
	return len(d.rows)
}

// Row returns the row at index at, or nil if at is out of range.
func (d *Document) Row(at int) *Row {
	if at < 0 || at >= len(d.rows) {
		return nil
	}
	return d.rows[at]
}

// Dirty returns the number of edits since the document was last clean.
func (d *Document) Dirty() int {
	return d.dirty
}

// MarkClean resets the dirty counter, typically after a successful save.
func (d *Document) MarkClean() {
	d.dirty = 0
}

// TabStop returns the tab width used for rendering.
func (d *Document) TabStop() int {
	return d.tabs.TabWidth()
}

// Syntax returns the active syntax definition, or nil.
func (d *Document) Syntax() *highlight.Syntax {
	return d.syntax
}

// SetSyntax switches the syntax definition and re-classifies every row from
// the top.
func (d *Document) SetSyntax(syn *highlight.Syntax) {
	d.syntax = syn
	for i, row := range d.rows {
		seed := i > 0 && d.rows[i-1].openComment
		d.classify(row, seed)
	}
}

// Load replaces the document content with lines and marks it clean.
func (d *Document) Load(lines [][]byte) {
	d.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		row := &Row{raw: bytes.Clone(line)}
		row.render = d.tabs.Expand(row.raw)
		d.rows = append(d.rows, row)
	}
	d.SetSyntax(d.syntax)
	d.dirty = 0
}

// InsertRow inserts a new row holding a copy of content at index at.
// at may equal NumRows to append.
func (d *Document) InsertRow(at int, content []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}
	row := &Row{raw: bytes.Clone(content)}
	if row.raw == nil {
		row.raw = []byte{}
	}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = row
	d.update(at)
	d.dirty++
}

// DeleteRow removes the row at index at.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	if at < len(d.rows) {
		d.highlightFrom(at)
	}
	d.dirty++
}

// InsertChar inserts ch into row at col. col is clamped to the row length.
// Inserting on the row just past the end appends a new row first.
func (d *Document) InsertChar(row, col int, ch byte) {
	if row < 0 || row > len(d.rows) {
		return
	}
	if row == len(d.rows) {
		d.InsertRow(row, nil)
	}
	d.rows[row].insertByte(col, ch)
	d.update(row)
	d.dirty++
}

// DeleteChar deletes the byte before col on row and returns the resulting
// cursor position. At column 0 the row is joined onto the previous one and
// the cursor lands at the previous row's former end. At the very start of
// the document, or on a row that does not exist, nothing changes.
func (d *Document) DeleteChar(row, col int) (int, int) {
	if row < 0 || row >= len(d.rows) {
		return row, col
	}
	if row == 0 && col <= 0 {
		return row, 0
	}

	r := d.rows[row]
	if col > r.Len() {
		col = r.Len()
	}
	if col > 0 {
		r.deleteByte(col - 1)
		d.update(row)
		d.dirty++
		return row, col - 1
	}

	prevLen := d.rows[row-1].Len()
	d.AppendString(row-1, r.raw)
	d.DeleteRow(row)
	return row - 1, prevLen
}

// InsertNewline breaks row at col and returns the new cursor position, which
// is always the start of the following row. At column 0 an empty row is
// inserted above instead.
func (d *Document) InsertNewline(row, col int) (int, int) {
	if row < 0 || row > len(d.rows) {
		return row, col
	}
	if col <= 0 || row == len(d.rows) {
		d.InsertRow(row, nil)
		return row + 1, 0
	}

	r := d.rows[row]
	if col > r.Len() {
		col = r.Len()
	}
	d.InsertRow(row+1, r.raw[col:])
	r.truncate(col)
	d.update(row)
	return row + 1, 0
}

// AppendString concatenates b onto the end of row.
func (d *Document) AppendString(row int, b []byte) {
	if row < 0 || row >= len(d.rows) {
		return
	}
	d.rows[row].appendBytes(b)
	d.update(row)
	d.dirty++
}

// Serialize returns the bytes to persist: every row followed by '\n',
// including the last.
func (d *Document) Serialize() []byte {
	size := 0
	for _, row := range d.rows {
		size += row.Len() + 1
	}
	out := make([]byte, 0, size)
	for _, row := range d.rows {
		out = append(out, row.raw...)
		out = append(out, '\n')
	}
	return out
}

// LogicalToVisual converts a cursor column on row into a render column.
// Rows past the end of the document have no content and map to 0.
func (d *Document) LogicalToVisual(row, cx int) int {
	r := d.Row(row)
	if r == nil {
		return 0
	}
	return d.tabs.LogicalToVisual(r.raw, cx)
}

// VisualToLogical converts a render column on row back into a cursor column.
func (d *Document) VisualToLogical(row, rx int) int {
	r := d.Row(row)
	if r == nil {
		return 0
	}
	return d.tabs.VisualToLogical(r.raw, rx)
}

// OverlayHighlight tags n rendered bytes of row starting at start with class
// c and returns a copy of the classes it replaced, for RestoreHighlight. The
// span is clipped to the row; the row's length invariant is untouched.
func (d *Document) OverlayHighlight(row, start, n int, c highlight.Class) []highlight.Class {
	r := d.Row(row)
	if r == nil {
		return nil
	}
	saved := make([]highlight.Class, len(r.hl))
	copy(saved, r.hl)
	if start < 0 {
		start = 0
	}
	for i := start; i < start+n && i < len(r.hl); i++ {
		r.hl[i] = c
	}
	return saved
}

// RestoreHighlight puts back classes saved by OverlayHighlight. It is
// ignored if the row has changed length since the overlay.
func (d *Document) RestoreHighlight(row int, saved []highlight.Class) {
	r := d.Row(row)
	if r == nil || len(saved) != len(r.hl) {
		return
	}
	copy(r.hl, saved)
}

// update re-renders the row at index at and re-highlights from there.
func (d *Document) update(at int) {
	row := d.rows[at]
	row.render = d.tabs.Expand(row.raw)
	d.highlightFrom(at)
}

// highlightFrom classifies the row at index at, then walks forward while
// the comment state handed to the next row differs from the seed that row
// was last classified with.
func (d *Document) highlightFrom(at int) {
	for i := at; i < len(d.rows); i++ {
		seed := i > 0 && d.rows[i-1].openComment
		row := d.rows[i]
		if i > at && row.seed == seed {
			return
		}
		d.classify(row, seed)
	}
}

func (d *Document) classify(row *Row, seed bool) {
	row.hl, row.openComment = highlight.Classify(d.syntax, row.render, seed)
	row.seed = seed
}
