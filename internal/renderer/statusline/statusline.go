// Package statusline provides the status bar and message line text.
package statusline

import (
	"fmt"
	"strings"
	"time"
)

// Placeholders used when the document has no name or no file type.
const (
	NoName     = "[No Name]"
	NoFileType = "no ft"
)

// maxNameWidth is the longest filename prefix shown on the status bar.
const maxNameWidth = 20

// StatusLine holds what the status bar displays.
type StatusLine struct {
	filename   string // Current filename (empty for a new document)
	fileType   string // File type name (empty when unknown)
	modified   bool   // Document has unsaved changes
	line       int    // Current line (1-indexed for display)
	totalLines int    // Total lines in the document
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{}
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetFileType updates the displayed file type.
func (s *StatusLine) SetFileType(fileType string) {
	s.fileType = fileType
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the cursor line (1-indexed) and line count.
func (s *StatusLine) SetPosition(line, total int) {
	s.line = line
	s.totalLines = total
}

// Left returns the left part: filename, line count and modified marker.
func (s *StatusLine) Left() string {
	name := s.filename
	if name == "" {
		name = NoName
	}
	if len(name) > maxNameWidth {
		name = name[:maxNameWidth]
	}
	modified := ""
	if s.modified {
		modified = "(modified)"
	}
	return fmt.Sprintf("%s - %d lines %s", name, s.totalLines, modified)
}

// Right returns the right part: file type and cursor line.
func (s *StatusLine) Right() string {
	ft := s.fileType
	if ft == "" {
		ft = NoFileType
	}
	return fmt.Sprintf("%s | %d/%d", ft, s.line, s.totalLines)
}

// Render lays the bar out in exactly width columns: the left part clipped
// to width, then spaces, with the right part ending flush at the right edge
// when it fits in what remains.
func (s *StatusLine) Render(width int) string {
	if width <= 0 {
		return ""
	}
	left, right := s.Left(), s.Right()
	if len(left) > width {
		left = left[:width]
	}

	var sb strings.Builder
	sb.Grow(width)
	sb.WriteString(left)
	n := len(left)
	for n < width {
		if width-n == len(right) {
			sb.WriteString(right)
			break
		}
		sb.WriteByte(' ')
		n++
	}
	return sb.String()
}

// DefaultMessageTimeout is how long a status message stays on screen.
const DefaultMessageTimeout = 5 * time.Second

// Message is a transient status message.
type Message struct {
	Text string
	Time time.Time
}

// NewMessage creates a message stamped with the current time.
func NewMessage(format string, args ...any) Message {
	return Message{Text: fmt.Sprintf(format, args...), Time: time.Now()}
}

// Visible returns the text to show at now, clipped to width, or "" once the
// message is older than timeout.
func (m Message) Visible(now time.Time, timeout time.Duration, width int) string {
	if m.Text == "" || now.Sub(m.Time) >= timeout {
		return ""
	}
	text := m.Text
	if width >= 0 && len(text) > width {
		text = text[:width]
	}
	return text
}
