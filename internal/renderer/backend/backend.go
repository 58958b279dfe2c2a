// Package backend provides the terminal abstraction the editor draws on.
//
// A Backend is a byte-oriented terminal: the renderer composes complete
// VT100 frames and hands each one to Write in a single call, and the key
// reader pulls raw input bytes through ReadByte.
package backend

import (
	"errors"
	"time"
)

// Backend errors.
var (
	// ErrNotInitialized is returned when the backend is used before Init.
	ErrNotInitialized = errors.New("backend not initialized")

	// ErrNoSize is returned when the terminal size cannot be determined.
	ErrNoSize = errors.New("cannot determine terminal size")
)

// Escape sequences the backend itself emits.
const (
	seqClearScreen = "\x1b[2J"
	seqCursorHome  = "\x1b[H"
)

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init puts the terminal into raw mode and starts reading input.
	// Must be called before any other methods.
	Init() error

	// Shutdown clears the screen, homes the cursor and restores the
	// terminal state. Safe to call more than once.
	Shutdown()

	// Size returns the current terminal dimensions in cells.
	Size() (width, height int, err error)

	// Resized reports whether the terminal changed size since the last
	// call, and clears the flag.
	Resized() bool

	// Write sends bytes to the terminal.
	Write(p []byte) (int, error)

	// ReadByte waits at most timeout for one input byte. ok is false with
	// a nil error when the timeout expired.
	ReadByte(timeout time.Duration) (b byte, ok bool, err error)
}
