package renderer

import (
	"bytes"
	"strconv"
)

// VT100 sequences used by the compositor.
const (
	seqHideCursor   = "\x1b[?25l"
	seqShowCursor   = "\x1b[?25h"
	seqClearScreen  = "\x1b[2J"
	seqCursorHome   = "\x1b[H"
	seqClearLine    = "\x1b[K"
	seqInverse      = "\x1b[7m"
	seqResetAttrs   = "\x1b[m"
	seqDefaultColor = "\x1b[39m"
	seqNewline      = "\r\n"
)

// writeSGR appends ESC [ code m.
func writeSGR(buf *bytes.Buffer, code int) {
	buf.WriteString("\x1b[")
	buf.WriteString(strconv.Itoa(code))
	buf.WriteByte('m')
}

// writeCursorTo appends ESC [ row ; col H with 1-based coordinates.
func writeCursorTo(buf *bytes.Buffer, row, col int) {
	buf.WriteString("\x1b[")
	buf.WriteString(strconv.Itoa(row))
	buf.WriteByte(';')
	buf.WriteString(strconv.Itoa(col))
	buf.WriteByte('H')
}

// isControl reports whether b is an ASCII control byte.
func isControl(b byte) bool {
	return b < 32 || b == 127
}

// controlSymbol is the printable stand-in for a control byte: '@'+b for
// NUL through Ctrl-Z, '?' otherwise.
func controlSymbol(b byte) byte {
	if b <= 26 {
		return '@' + b
	}
	return '?'
}
