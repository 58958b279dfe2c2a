package backend

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Escape sequences for the cursor position size query.
const (
	seqCursorFarCorner = "\x1b[999C\x1b[999B"
	seqCursorReport    = "\x1b[6n"
)

// replyTimeout bounds the wait for a cursor position report.
const replyTimeout = time.Second

// Terminal implements Backend on a tcell.Tty. tcell owns raw mode, window
// size queries and resize notification; drawing is the caller's VT100
// byte stream.
type Terminal struct {
	tty tcell.Tty

	mu      sync.Mutex
	started bool
	stopped bool

	in      chan byte
	errc    chan error
	done    chan struct{}
	resized atomic.Bool
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, fmt.Errorf("open tty: %w", err)
	}
	return NewTerminalFromTty(tty), nil
}

// NewTerminalFromDev creates a terminal backend on the named device.
func NewTerminalFromDev(dev string) (*Terminal, error) {
	tty, err := tcell.NewDevTtyFromDev(dev)
	if err != nil {
		return nil, fmt.Errorf("open tty %s: %w", dev, err)
	}
	return NewTerminalFromTty(tty), nil
}

// NewTerminalFromTty wraps an existing tty.
func NewTerminalFromTty(tty tcell.Tty) *Terminal {
	return &Terminal{
		tty:  tty,
		in:   make(chan byte, 1024),
		errc: make(chan error, 1),
		done: make(chan struct{}),
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}
	if err := t.tty.Start(); err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.tty.NotifyResize(func() {
		t.resized.Store(true)
	})
	t.started = true

	go t.readLoop()
	return nil
}

// readLoop forwards input bytes until Shutdown.
func (t *Terminal) readLoop() {
	buf := make([]byte, 128)
	for {
		n, err := t.tty.Read(buf)
		for _, b := range buf[:n] {
			select {
			case t.in <- b:
			case <-t.done:
				return
			}
		}
		if err != nil {
			select {
			case <-t.done:
			case t.errc <- err:
			}
			return
		}
		select {
		case <-t.done:
			return
		default:
		}
	}
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started || t.stopped {
		return
	}
	t.stopped = true

	_, _ = t.tty.Write([]byte(seqClearScreen + seqCursorHome))
	close(t.done)
	_ = t.tty.Drain()
	_ = t.tty.Stop()
	_ = t.tty.Close()
}

// Size returns the window size reported by the tty. Some terminals report
// zero; then the cursor is pushed to the bottom right corner and its
// position is read back.
func (t *Terminal) Size() (int, int, error) {
	ws, err := t.tty.WindowSize()
	if err == nil && ws.Width > 0 && ws.Height > 0 {
		return ws.Width, ws.Height, nil
	}

	rows, cols, qerr := t.queryCursor()
	if qerr != nil {
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrNoSize, err)
		}
		return 0, 0, fmt.Errorf("%w: %v", ErrNoSize, qerr)
	}
	return cols, rows, nil
}

func (t *Terminal) Resized() bool {
	return t.resized.Swap(false)
}

func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started || t.stopped {
		return 0, ErrNotInitialized
	}
	return t.tty.Write(p)
}

func (t *Terminal) ReadByte(timeout time.Duration) (byte, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case b := <-t.in:
		return b, true, nil
	case err := <-t.errc:
		return 0, false, err
	case <-timer.C:
		return 0, false, nil
	case <-t.done:
		return 0, false, ErrNotInitialized
	}
}

// queryCursor moves the cursor to the far corner and asks the terminal
// where it ended up.
func (t *Terminal) queryCursor() (rows, cols int, err error) {
	if _, err := t.Write([]byte(seqCursorFarCorner + seqCursorReport)); err != nil {
		return 0, 0, err
	}

	var reply []byte
	deadline := time.Now().Add(replyTimeout)
	for len(reply) < 32 {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		b, ok, err := t.ReadByte(remaining)
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			break
		}
		reply = append(reply, b)
		if b == 'R' {
			break
		}
	}
	return ParseCursorReply(reply)
}

// ParseCursorReply parses a cursor position report of the form
// ESC [ rows ; cols R.
func ParseCursorReply(reply []byte) (rows, cols int, err error) {
	if len(reply) < 6 || reply[0] != 0x1b || reply[1] != '[' || reply[len(reply)-1] != 'R' {
		return 0, 0, fmt.Errorf("malformed cursor report %q", reply)
	}
	body := reply[2 : len(reply)-1]
	sep := bytes.IndexByte(body, ';')
	if sep < 0 {
		return 0, 0, fmt.Errorf("malformed cursor report %q", reply)
	}
	rows, err = strconv.Atoi(string(body[:sep]))
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report rows: %w", err)
	}
	cols, err = strconv.Atoi(string(body[sep+1:]))
	if err != nil {
		return 0, 0, fmt.Errorf("cursor report cols: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, errors.New("cursor report out of range")
	}
	return rows, cols, nil
}
