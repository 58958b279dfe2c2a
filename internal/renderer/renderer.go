package renderer

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/statusline"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// DefaultVersion is shown in the welcome banner.
const DefaultVersion = "0.0.1"

// RowSource provides read access to document rows.
// This interface abstracts the row store for rendering.
type RowSource interface {
	// NumRows returns the number of rows in the document.
	NumRows() int

	// Row returns the row at index at, or nil when out of range.
	Row(at int) *buffer.Row
}

// Frame is the state one screen update draws.
type Frame struct {
	Rows RowSource
	View *viewport.Viewport

	// Cursor position as document row and render column.
	CursorRow int
	CursorCol int

	Status  *statusline.StatusLine
	Message statusline.Message
}

// Options configures the renderer.
type Options struct {
	Theme          *highlight.Theme
	Version        string
	MessageTimeout time.Duration

	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Theme:          highlight.DefaultTheme(),
		Version:        DefaultVersion,
		MessageTimeout: statusline.DefaultMessageTimeout,
		Now:            time.Now,
	}
}

// Renderer composes full-screen frames and writes each one to its output in
// a single Write call.
type Renderer struct {
	out  io.Writer
	opts Options
	buf  bytes.Buffer
}

// New creates a renderer writing to out.
func New(out io.Writer, opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Theme == nil {
		opts.Theme = def.Theme
	}
	if opts.Version == "" {
		opts.Version = def.Version
	}
	if opts.MessageTimeout <= 0 {
		opts.MessageTimeout = def.MessageTimeout
	}
	if opts.Now == nil {
		opts.Now = def.Now
	}
	return &Renderer{out: out, opts: opts}
}

// SetTheme replaces the color theme.
func (r *Renderer) SetTheme(t *highlight.Theme) {
	if t != nil {
		r.opts.Theme = t
	}
}

// Render composes f and writes it out.
func (r *Renderer) Render(f Frame) error {
	frame := r.Compose(f)
	if _, err := r.out.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Compose builds the byte stream for f. The returned slice is reused by the
// next call.
func (r *Renderer) Compose(f Frame) []byte {
	buf := &r.buf
	buf.Reset()

	buf.WriteString(seqHideCursor)
	buf.WriteString(seqClearScreen)
	buf.WriteString(seqCursorHome)

	r.drawRows(buf, f)
	r.drawStatusBar(buf, f)
	r.drawMessage(buf, f)

	sr, sc := f.View.RowToScreen(f.CursorRow, f.CursorCol)
	writeCursorTo(buf, sr+1, sc+1)
	buf.WriteString(seqShowCursor)

	return buf.Bytes()
}

func (r *Renderer) drawRows(buf *bytes.Buffer, f Frame) {
	rows, cols := f.View.Height(), f.View.Width()
	numRows := f.Rows.NumRows()

	for y := 0; y < rows; y++ {
		fileRow := f.View.RowOff + y
		if fileRow >= numRows {
			if numRows == 0 && y == rows/3 {
				r.drawWelcome(buf, cols)
			} else {
				buf.WriteByte('~')
			}
		} else {
			r.drawRow(buf, f.Rows.Row(fileRow), f.View.ColOff, cols)
		}
		buf.WriteString(seqClearLine)
		buf.WriteString(seqNewline)
	}
}

func (r *Renderer) drawWelcome(buf *bytes.Buffer, cols int) {
	welcome := "Kilo editor -- version " + r.opts.Version
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		buf.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		buf.WriteByte(' ')
	}
	buf.WriteString(welcome)
}

// drawRow writes the visible slice of row, switching foreground color only
// when the class changes.
func (r *Renderer) drawRow(buf *bytes.Buffer, row *buffer.Row, colOff, cols int) {
	render, hl := row.Render(), row.Highlight()
	n := len(render) - colOff
	if n < 0 {
		n = 0
	}
	if n > cols {
		n = cols
	}

	current := -1
	for j := colOff; j < colOff+n; j++ {
		c := render[j]
		switch {
		case isControl(c):
			buf.WriteString(seqInverse)
			buf.WriteByte(controlSymbol(c))
			buf.WriteString(seqResetAttrs)
			if current != -1 {
				writeSGR(buf, current)
			}
		case hl[j] == highlight.ClassNormal:
			if current != -1 {
				buf.WriteString(seqDefaultColor)
				current = -1
			}
			buf.WriteByte(c)
		default:
			color := r.opts.Theme.Code(hl[j])
			if color != current {
				current = color
				writeSGR(buf, color)
			}
			buf.WriteByte(c)
		}
	}
	buf.WriteString(seqDefaultColor)
}

func (r *Renderer) drawStatusBar(buf *bytes.Buffer, f Frame) {
	buf.WriteString(seqClearLine)
	buf.WriteString(seqInverse)
	if f.Status != nil {
		buf.WriteString(f.Status.Render(f.View.Width()))
	}
	buf.WriteString(seqResetAttrs)
	buf.WriteString(seqNewline)
}

func (r *Renderer) drawMessage(buf *bytes.Buffer, f Frame) {
	buf.WriteString(seqClearLine)
	buf.WriteString(f.Message.Visible(r.opts.Now(), r.opts.MessageTimeout, f.View.Width()))
}
