package backend

import (
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
)

// openPty returns a terminal backend on the slave side of a new
// pseudo-terminal, and the master side for the test to drive.
func openPty(t *testing.T, rows, cols uint16) (*Terminal, *os.File) {
	t.Helper()

	ptmx, tts, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tts.Close()
	})

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: rows, Cols: cols}); err != nil {
		t.Skipf("cannot size pty: %v", err)
	}

	term, err := NewTerminalFromDev(tts.Name())
	if err != nil {
		t.Skipf("cannot open %s: %v", tts.Name(), err)
	}
	if err := term.Init(); err != nil {
		t.Skipf("cannot start raw mode on pty: %v", err)
	}
	t.Cleanup(term.Shutdown)
	return term, ptmx
}

func TestPtyTerminalSize(t *testing.T) {
	term, _ := openPty(t, 30, 100)

	w, h, err := term.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if w != 100 || h != 30 {
		t.Errorf("Size() = (%d, %d), want (100, 30)", w, h)
	}
}

func TestPtyTerminalInputIsRaw(t *testing.T) {
	term, ptmx := openPty(t, 24, 80)

	// Ctrl-Q and a bare escape arrive untranslated in raw mode.
	if _, err := ptmx.Write([]byte{17, 'x', 27}); err != nil {
		t.Fatal(err)
	}

	for _, want := range []byte{17, 'x', 27} {
		b, ok, err := term.ReadByte(2 * time.Second)
		if err != nil {
			t.Fatalf("ReadByte failed: %v", err)
		}
		if !ok {
			t.Fatalf("timed out waiting for %d", want)
		}
		if b != want {
			t.Errorf("ReadByte() = %d, want %d", b, want)
		}
	}
}

func TestPtyTerminalOutput(t *testing.T) {
	term, ptmx := openPty(t, 24, 80)

	if _, err := term.Write([]byte("\x1b[Hframe")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got := make(chan string, 1)
	go func() {
		var out []byte
		buf := make([]byte, 64)
		for len(out) < len("\x1b[Hframe") {
			n, err := ptmx.Read(buf)
			out = append(out, buf[:n]...)
			if err != nil {
				break
			}
		}
		got <- string(out)
	}()

	select {
	case s := <-got:
		if s != "\x1b[Hframe" {
			t.Errorf("pty master read %q, want %q", s, "\x1b[Hframe")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out reading pty master")
	}
}
