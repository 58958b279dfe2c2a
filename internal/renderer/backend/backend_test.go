package backend

import (
	"errors"
	"io"
	"testing"
	"time"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h, err := b.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendNoSize(t *testing.T) {
	b := NewNullBackend(0, 0)
	if _, _, err := b.Size(); !errors.Is(err, ErrNoSize) {
		t.Errorf("Size() error = %v, want ErrNoSize", err)
	}
}

func TestNullBackendWriteRecordsFrames(t *testing.T) {
	b := NewNullBackend(80, 24)

	if _, err := b.Write([]byte("x")); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Write before Init error = %v, want ErrNotInitialized", err)
	}

	b.Init()
	buf := []byte("frame one")
	b.Write(buf)
	buf[0] = 'X'
	b.Write([]byte("frame two"))

	if len(b.Frames()) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(b.Frames()))
	}
	if string(b.Frames()[0]) != "frame one" {
		t.Errorf("frame 0 = %q, want a private copy", b.Frames()[0])
	}
	if string(b.LastFrame()) != "frame two" {
		t.Errorf("LastFrame() = %q, want %q", b.LastFrame(), "frame two")
	}
}

func TestNullBackendScriptedInput(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Type("ab")
	b.Idle()
	b.Type("c")

	want := []struct {
		b  byte
		ok bool
	}{
		{'a', true},
		{'b', true},
		{0, false},
		{'c', true},
	}
	for i, w := range want {
		got, ok, err := b.ReadByte(time.Millisecond)
		if err != nil {
			t.Fatalf("read %d: unexpected error %v", i, err)
		}
		if got != w.b || ok != w.ok {
			t.Errorf("read %d = (%q, %v), want (%q, %v)", i, got, ok, w.b, w.ok)
		}
	}

	if _, _, err := b.ReadByte(time.Millisecond); !errors.Is(err, io.EOF) {
		t.Errorf("exhausted script error = %v, want io.EOF", err)
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	if b.Resized() {
		t.Fatal("new backend should not report a resize")
	}

	b.Resize(100, 30)
	if !b.Resized() {
		t.Fatal("Resized() = false after Resize")
	}
	if b.Resized() {
		t.Error("Resized() should clear the flag")
	}
	w, h, _ := b.Size()
	if w != 100 || h != 30 {
		t.Errorf("size after resize = (%d, %d), want (100, 30)", w, h)
	}
}

func TestNullBackendShutdownClearsScreen(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()
	b.Shutdown()
	b.Shutdown()

	if !b.IsShutdown() {
		t.Error("IsShutdown() = false")
	}
	if len(b.Frames()) != 1 {
		t.Fatalf("expected one clear frame, got %d", len(b.Frames()))
	}
	if got := string(b.LastFrame()); got != "\x1b[2J\x1b[H" {
		t.Errorf("shutdown frame = %q", got)
	}
}

func TestParseCursorReply(t *testing.T) {
	tests := []struct {
		reply    string
		rows     int
		cols     int
		wantFail bool
	}{
		{"\x1b[24;80R", 24, 80, false},
		{"\x1b[1;1R", 1, 1, false},
		{"\x1b[100;250R", 100, 250, false},
		{"", 0, 0, true},
		{"\x1b[24;80", 0, 0, true},
		{"[24;80R", 0, 0, true},
		{"\x1b[2480R", 0, 0, true},
		{"\x1b[a;80R", 0, 0, true},
		{"\x1b[0;80R", 0, 0, true},
	}

	for _, tt := range tests {
		rows, cols, err := ParseCursorReply([]byte(tt.reply))
		if tt.wantFail {
			if err == nil {
				t.Errorf("ParseCursorReply(%q) succeeded, want error", tt.reply)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCursorReply(%q) error: %v", tt.reply, err)
			continue
		}
		if rows != tt.rows || cols != tt.cols {
			t.Errorf("ParseCursorReply(%q) = (%d, %d), want (%d, %d)", tt.reply, rows, cols, tt.rows, tt.cols)
		}
	}
}
