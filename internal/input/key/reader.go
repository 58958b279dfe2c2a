package key

import (
	"time"
)

// DefaultSequenceTimeout is how long the reader waits for the rest of an
// escape sequence before treating what it has as a lone Escape.
const DefaultSequenceTimeout = 100 * time.Millisecond

// Source supplies raw bytes from the terminal. ReadByte waits at most
// timeout for a byte; ok is false with a nil error when none arrived.
type Source interface {
	ReadByte(timeout time.Duration) (b byte, ok bool, err error)
}

// Reader reads key events from a Source.
type Reader struct {
	src     Source
	dec     Decoder
	timeout time.Duration
}

// NewReader creates a reader over src using DefaultSequenceTimeout.
func NewReader(src Source) *Reader {
	return &Reader{src: src, timeout: DefaultSequenceTimeout}
}

// SetSequenceTimeout changes the escape sequence timeout.
func (r *Reader) SetSequenceTimeout(d time.Duration) {
	if d > 0 {
		r.timeout = d
	}
}

// ReadEvent waits up to wait for a key. ok is false when no key arrived in
// time, which lets the caller do periodic work between keys. Once the first
// byte of an escape sequence arrives the rest is read with the shorter
// sequence timeout.
func (r *Reader) ReadEvent(wait time.Duration) (ev Event, ok bool, err error) {
	b, ok, err := r.src.ReadByte(wait)
	if err != nil || !ok {
		return Event{}, false, err
	}

	for {
		if ev, done := r.dec.Feed(b); done {
			return ev, true, nil
		}
		b, ok, err = r.src.ReadByte(r.timeout)
		if err != nil {
			r.dec.Reset()
			return Event{}, false, err
		}
		if !ok {
			ev, _ := r.dec.Flush()
			return ev, true, nil
		}
	}
}
