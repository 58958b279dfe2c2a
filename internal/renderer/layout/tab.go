// Package layout converts raw row bytes into their display form.
//
// Rows are treated as single-byte code units: every byte other than a tab
// occupies exactly one visual column, and a tab advances to the next tab stop.
package layout

// DefaultTabStop is the tab width used when none is configured.
const DefaultTabStop = 8

// TabExpander provides tab expansion utilities.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = DefaultTabStop
	}
	return &TabExpander{tabWidth: tabWidth}
}

// DefaultTabExpander returns a tab expander with the default tab width of 8.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(DefaultTabStop)
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.TabStopOffset(col)
}

// TabStopOffset returns how many spaces a tab at the given column expands to.
func (t *TabExpander) TabStopOffset(col int) int {
	return t.tabWidth - (col % t.tabWidth)
}

// IsTabStop returns true if the given column is a tab stop.
func (t *TabExpander) IsTabStop(col int) bool {
	return col%t.tabWidth == 0
}

// Expand returns raw with every tab replaced by the spaces needed to reach
// the next tab stop. A tab always produces at least one space.
func (t *TabExpander) Expand(raw []byte) []byte {
	tabs := 0
	for _, b := range raw {
		if b == '\t' {
			tabs++
		}
	}

	out := make([]byte, 0, len(raw)+tabs*(t.tabWidth-1))
	for _, b := range raw {
		if b != '\t' {
			out = append(out, b)
			continue
		}
		out = append(out, ' ')
		for len(out)%t.tabWidth != 0 {
			out = append(out, ' ')
		}
	}
	return out
}

// ExpandedWidth returns the visual width of raw after tab expansion.
func (t *TabExpander) ExpandedWidth(raw []byte) int {
	return t.LogicalToVisual(raw, len(raw))
}

// LogicalToVisual converts a logical column (byte offset into raw) into the
// visual column it occupies in the expanded form. Columns past the end of
// raw are clamped to the row length.
func (t *TabExpander) LogicalToVisual(raw []byte, cx int) int {
	if cx > len(raw) {
		cx = len(raw)
	}
	rx := 0
	for i := 0; i < cx; i++ {
		if raw[i] == '\t' {
			rx = t.NextTabStop(rx)
		} else {
			rx++
		}
	}
	return rx
}

// VisualToLogical converts a visual column back into a logical column. It
// returns the first logical column whose cumulative visual width exceeds rx,
// or len(raw) when rx lies at or beyond the end of the row.
func (t *TabExpander) VisualToLogical(raw []byte, rx int) int {
	cur := 0
	for cx, b := range raw {
		if b == '\t' {
			cur = t.NextTabStop(cur)
		} else {
			cur++
		}
		if cur > rx {
			return cx
		}
	}
	return len(raw)
}
