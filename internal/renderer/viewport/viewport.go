// Package viewport provides the scroll controller for the editor window.
package viewport

// Viewport represents the visible portion of the document: the first
// visible row and render column, and the size of the text area in cells.
//
// Offsets are in document rows and render columns. The status bar and
// message line are not part of the text area.
type Viewport struct {
	// Position in document (first visible row and render column)
	RowOff int
	ColOff int

	// Size of the text area in screen cells
	rows int
	cols int
}

// NewViewport creates a viewport with the given text area size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Width returns the number of visible columns.
func (v *Viewport) Width() int {
	return v.cols
}

// Height returns the number of visible text rows.
func (v *Viewport) Height() int {
	return v.rows
}

// Resize updates the text area size.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.cols = width
	v.rows = height
}

// Scroll clamps the offsets so that the cursor at document row cy and render
// column rx is inside the window. It only moves an offset when the cursor is
// outside, and the result depends only on the inputs, so calling it again
// with the same cursor changes nothing.
func (v *Viewport) Scroll(cy, rx int) {
	if cy < v.RowOff {
		v.RowOff = cy
	}
	if cy >= v.RowOff+v.rows {
		v.RowOff = cy - v.rows + 1
	}
	if rx < v.ColOff {
		v.ColOff = rx
	}
	if rx >= v.ColOff+v.cols {
		v.ColOff = rx - v.cols + 1
	}
	if v.RowOff < 0 {
		v.RowOff = 0
	}
	if v.ColOff < 0 {
		v.ColOff = 0
	}
}

// ScrollTo makes row the first visible row.
func (v *Viewport) ScrollTo(row int) {
	if row < 0 {
		row = 0
	}
	v.RowOff = row
}

// IsRowVisible reports whether document row is inside the window.
func (v *Viewport) IsRowVisible(row int) bool {
	return row >= v.RowOff && row < v.RowOff+v.rows
}

// ScreenRowToRow converts a screen row of the text area to a document row.
func (v *Viewport) ScreenRowToRow(screenRow int) int {
	return v.RowOff + screenRow
}

// RowToScreen converts a document position to a 0-based screen position.
// The result may be outside the window if Scroll has not been called.
func (v *Viewport) RowToScreen(row, rx int) (screenRow, screenCol int) {
	return row - v.RowOff, rx - v.ColOff
}

// VisibleRange returns the first and one-past-last document rows shown.
func (v *Viewport) VisibleRange() (start, end int) {
	return v.RowOff, v.RowOff + v.rows
}

// State is a copy of the scroll offsets, used to save and restore the view.
type State struct {
	RowOff int
	ColOff int
}

// Save returns the current offsets.
func (v *Viewport) Save() State {
	return State{RowOff: v.RowOff, ColOff: v.ColOff}
}

// Restore puts back offsets returned by Save.
func (v *Viewport) Restore(s State) {
	v.RowOff = s.RowOff
	v.ColOff = s.ColOff
}
