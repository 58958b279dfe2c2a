package layout

import (
	"bytes"
	"testing"
)

func TestNewTabExpander(t *testing.T) {
	te := NewTabExpander(4)
	if te.TabWidth() != 4 {
		t.Errorf("expected tab width 4, got %d", te.TabWidth())
	}

	// Invalid width falls back to the default
	te = NewTabExpander(0)
	if te.TabWidth() != DefaultTabStop {
		t.Errorf("expected default tab width %d, got %d", DefaultTabStop, te.TabWidth())
	}

	te = NewTabExpander(-1)
	if te.TabWidth() != DefaultTabStop {
		t.Errorf("expected default tab width %d for negative, got %d", DefaultTabStop, te.TabWidth())
	}
}

func TestNextTabStop(t *testing.T) {
	te := DefaultTabExpander()

	tests := []struct {
		col      int
		expected int
	}{
		{0, 8},
		{1, 8},
		{7, 8},
		{8, 16},
		{9, 16},
		{15, 16},
	}

	for _, tt := range tests {
		got := te.NextTabStop(tt.col)
		if got != tt.expected {
			t.Errorf("NextTabStop(%d): expected %d, got %d", tt.col, tt.expected, got)
		}
	}
}

func TestExpand(t *testing.T) {
	te := DefaultTabExpander()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"no tabs", "hello", "hello"},
		{"leading tab", "\tx", "        x"},
		{"tab after text", "ab\tc", "ab      c"},
		{"tab at stop minus one", "1234567\tx", "1234567 x"},
		{"tab on stop", "12345678\tx", "12345678        x"},
		{"two tabs", "\t\t", "                "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := te.Expand([]byte(tt.raw))
			if string(got) != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExpandAlwaysAtLeastOneSpace(t *testing.T) {
	te := NewTabExpander(4)
	for prefix := 0; prefix < 12; prefix++ {
		raw := append(bytes.Repeat([]byte{'a'}, prefix), '\t')
		got := te.Expand(raw)
		if len(got)-prefix < 1 {
			t.Errorf("prefix %d: tab produced %d spaces", prefix, len(got)-prefix)
		}
		if len(got)%4 != 0 {
			t.Errorf("prefix %d: expanded length %d not on a tab stop", prefix, len(got))
		}
	}
}

func TestTabInsertGrowth(t *testing.T) {
	te := DefaultTabExpander()

	// Inserting a tab at column k grows the display by 8 - (k mod 8).
	for k := 0; k < 20; k++ {
		raw := bytes.Repeat([]byte{'x'}, k)
		before := len(te.Expand(raw))
		after := len(te.Expand(append(raw, '\t')))
		if got, want := after-before, 8-(k%8); got != want {
			t.Errorf("k=%d: growth = %d, want %d", k, got, want)
		}
	}
}

func TestLogicalToVisual(t *testing.T) {
	te := DefaultTabExpander()
	raw := []byte("a\tb\t\tc")

	tests := []struct {
		cx   int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 8},
		{3, 9},
		{4, 16},
		{5, 24},
		{6, 25},
		{100, 25}, // clamped
	}

	for _, tt := range tests {
		if got := te.LogicalToVisual(raw, tt.cx); got != tt.want {
			t.Errorf("LogicalToVisual(%d) = %d, want %d", tt.cx, got, tt.want)
		}
	}
}

func TestVisualToLogical(t *testing.T) {
	te := DefaultTabExpander()
	raw := []byte("a\tb")

	tests := []struct {
		rx   int
		want int
	}{
		{0, 0},
		{1, 1}, // start of the tab
		{4, 1}, // inside the tab
		{7, 1},
		{8, 2},
		{9, 3},
		{50, 3},
	}

	for _, tt := range tests {
		if got := te.VisualToLogical(raw, tt.rx); got != tt.want {
			t.Errorf("VisualToLogical(%d) = %d, want %d", tt.rx, got, tt.want)
		}
	}
}

func TestColumnRoundTrip(t *testing.T) {
	te := DefaultTabExpander()
	rows := []string{
		"",
		"plain text",
		"\t",
		"\t\tindented",
		"x\ty\tz",
		"1234567\t8\t\t9",
		"mixed \t tabs\t and\tspaces \t",
	}

	for _, row := range rows {
		raw := []byte(row)
		for cx := 0; cx <= len(raw); cx++ {
			rx := te.LogicalToVisual(raw, cx)
			if got := te.VisualToLogical(raw, rx); got != cx {
				t.Errorf("row %q: VisualToLogical(LogicalToVisual(%d)=%d) = %d", row, cx, rx, got)
			}
		}
	}
}

func TestExpandedWidth(t *testing.T) {
	te := DefaultTabExpander()
	raw := []byte("ab\tcd")
	if got, want := te.ExpandedWidth(raw), len(te.Expand(raw)); got != want {
		t.Errorf("ExpandedWidth = %d, want %d", got, want)
	}
}
