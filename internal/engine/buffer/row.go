package buffer

import (
	"github.com/dshills/kilo/internal/renderer/highlight"
)

// Row is one logical line of a Document.
//
// raw is authoritative. render and hl are caches derived from it and are
// refreshed by the Document after every change, so a Row obtained from a
// Document is never stale.
type Row struct {
	raw    []byte
	render []byte
	hl     []highlight.Class

	// seed is the comment state this row was classified with; openComment
	// is the state it hands to the next row.
	seed        bool
	openComment bool
}

// Raw returns the row's logical bytes. The slice must not be modified.
func (r *Row) Raw() []byte {
	return r.raw
}

// Render returns the tab-expanded display bytes.
func (r *Row) Render() []byte {
	return r.render
}

// Highlight returns one class per rendered byte.
func (r *Row) Highlight() []highlight.Class {
	return r.hl
}

// Len returns the logical length of the row.
func (r *Row) Len() int {
	return len(r.raw)
}

// RenderLen returns the display length of the row.
func (r *Row) RenderLen() int {
	return len(r.render)
}

// OpenComment reports whether a multi-line comment is still open at the
// end of the row.
func (r *Row) OpenComment() bool {
	return r.openComment
}

// String returns the raw content as a string.
func (r *Row) String() string {
	return string(r.raw)
}

// insertByte inserts b at col, clamping col to the row length.
func (r *Row) insertByte(col int, b byte) {
	if col < 0 || col > len(r.raw) {
		col = len(r.raw)
	}
	r.raw = append(r.raw, 0)
	copy(r.raw[col+1:], r.raw[col:])
	r.raw[col] = b
}

// deleteByte removes the byte at col. Returns false if col is out of range.
func (r *Row) deleteByte(col int) bool {
	if col < 0 || col >= len(r.raw) {
		return false
	}
	r.raw = append(r.raw[:col], r.raw[col+1:]...)
	return true
}

// appendBytes concatenates b onto the row.
func (r *Row) appendBytes(b []byte) {
	r.raw = append(r.raw, b...)
}

// truncate cuts the row at col.
func (r *Row) truncate(col int) {
	if col >= 0 && col < len(r.raw) {
		r.raw = r.raw[:col]
	}
}
