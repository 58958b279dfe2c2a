package backend

import (
	"bytes"
	"io"
	"time"
)

// idleTick marks a scripted read that times out.
const idleTick = -1

// NullBackend is an in-memory backend for testing. Input is scripted with
// Type and Idle; every Write is recorded as one frame.
type NullBackend struct {
	width, height int
	input         []int
	frames        [][]byte
	resized       bool
	initialized   bool
	shutdown      bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
	}
}

func (b *NullBackend) Init() error {
	b.initialized = true
	return nil
}

func (b *NullBackend) Shutdown() {
	if b.shutdown {
		return
	}
	b.shutdown = true
	b.frames = append(b.frames, []byte(seqClearScreen+seqCursorHome))
}

func (b *NullBackend) Size() (int, int, error) {
	if b.width <= 0 || b.height <= 0 {
		return 0, 0, ErrNoSize
	}
	return b.width, b.height, nil
}

func (b *NullBackend) Resized() bool {
	r := b.resized
	b.resized = false
	return r
}

func (b *NullBackend) Write(p []byte) (int, error) {
	if !b.initialized {
		return 0, ErrNotInitialized
	}
	b.frames = append(b.frames, bytes.Clone(p))
	return len(p), nil
}

// ReadByte returns the next scripted byte. Once the script is exhausted it
// returns io.EOF, which ends an editor loop under test.
func (b *NullBackend) ReadByte(time.Duration) (byte, bool, error) {
	if len(b.input) == 0 {
		return 0, false, io.EOF
	}
	next := b.input[0]
	b.input = b.input[1:]
	if next == idleTick {
		return 0, false, nil
	}
	return byte(next), true, nil
}

// Type queues s as keyboard input.
func (b *NullBackend) Type(s string) {
	for i := 0; i < len(s); i++ {
		b.input = append(b.input, int(s[i]))
	}
}

// Idle queues a read that times out with no input.
func (b *NullBackend) Idle() {
	b.input = append(b.input, idleTick)
}

// Resize simulates a terminal resize for testing.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.resized = true
}

// Frames returns every Write recorded so far.
func (b *NullBackend) Frames() [][]byte {
	return b.frames
}

// LastFrame returns the most recent Write, or nil.
func (b *NullBackend) LastFrame() []byte {
	if len(b.frames) == 0 {
		return nil
	}
	return b.frames[len(b.frames)-1]
}

// IsShutdown reports whether Shutdown has been called.
func (b *NullBackend) IsShutdown() bool {
	return b.shutdown
}
