// Package search implements incremental find over a document.
//
// A Searcher is driven one keystroke at a time by the prompt that collects
// the query. Typing restarts the search from the top; arrow keys step to
// the next or previous occurrence, wrapping around the document. The
// current match is tagged with the match class and untagged on the next
// step.
package search

import (
	"bytes"

	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// Document is the row store as seen by the searcher.
type Document interface {
	NumRows() int
	Row(at int) *buffer.Row
	VisualToLogical(row, rx int) int
	OverlayHighlight(row, start, n int, c highlight.Class) []highlight.Class
	RestoreHighlight(row int, saved []highlight.Class)
}

// Mode is the searcher state.
type Mode uint8

const (
	ModeIdle Mode = iota
	ModeSearching
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeSearching {
		return "searching"
	}
	return "idle"
}

// Position is a cursor position: document row and logical column.
type Position struct {
	Row int
	Col int
}

// Snapshot is the cursor and view to return to when a search is cancelled.
type Snapshot struct {
	Cursor Position
	View   viewport.State
}

// Searcher is the incremental search state machine.
type Searcher struct {
	doc  Document
	mode Mode
	snap Snapshot

	lastMatch int
	forward   bool

	// Highlight replaced by the current match overlay.
	savedRow int
	saved    []highlight.Class
}

// New creates an idle searcher over doc.
func New(doc Document) *Searcher {
	return &Searcher{doc: doc, lastMatch: -1, forward: true}
}

// Mode returns the current mode.
func (s *Searcher) Mode() Mode {
	return s.mode
}

// Begin enters search mode, remembering where the cursor and view were.
func (s *Searcher) Begin(snap Snapshot) {
	s.restore()
	s.mode = ModeSearching
	s.snap = snap
	s.lastMatch = -1
	s.forward = true
}

// Snapshot returns the state saved by Begin.
func (s *Searcher) Snapshot() Snapshot {
	return s.snap
}

// Step handles one keystroke typed at the search prompt, with query being
// the prompt's content after the key was applied. It returns the new cursor
// position when the step found a match.
//
// Enter and Escape end the search; the caller restores Snapshot after an
// Escape. Right and Down search forward from the last match, Left and Up
// backward. Any other key edits the query, so the search restarts from the
// top going forward.
func (s *Searcher) Step(query string, ev key.Event) (Position, bool) {
	s.restore()

	switch ev.Key {
	case key.KeyEnter, key.KeyEscape:
		s.mode = ModeIdle
		s.lastMatch = -1
		s.forward = true
		return Position{}, false
	case key.KeyRight, key.KeyDown:
		s.forward = true
	case key.KeyLeft, key.KeyUp:
		s.forward = false
	default:
		s.lastMatch = -1
		s.forward = true
	}
	if s.lastMatch == -1 {
		s.forward = true
	}
	if query == "" {
		return Position{}, false
	}

	return s.scan([]byte(query))
}

// scan visits every row once, starting after the last match in the current
// direction and wrapping at either end.
func (s *Searcher) scan(query []byte) (Position, bool) {
	n := s.doc.NumRows()
	current := s.lastMatch
	for i := 0; i < n; i++ {
		if s.forward {
			current++
		} else {
			current--
		}
		if current < 0 {
			current = n - 1
		} else if current >= n {
			current = 0
		}

		row := s.doc.Row(current)
		idx := bytes.Index(row.Render(), query)
		if idx < 0 {
			continue
		}

		s.lastMatch = current
		s.savedRow = current
		s.saved = s.doc.OverlayHighlight(current, idx, len(query), highlight.ClassMatch)
		return Position{Row: current, Col: s.doc.VisualToLogical(current, idx)}, true
	}
	return Position{}, false
}

// restore removes the current match overlay, if any.
func (s *Searcher) restore() {
	if s.saved == nil {
		return
	}
	s.doc.RestoreHighlight(s.savedRow, s.saved)
	s.saved = nil
}
