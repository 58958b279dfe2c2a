package statusline

import (
	"strings"
	"testing"
	"time"
)

func TestStatusLineParts(t *testing.T) {
	tests := []struct {
		name      string
		filename  string
		fileType  string
		modified  bool
		line      int
		total     int
		wantLeft  string
		wantRight string
	}{
		{"new document", "", "", false, 1, 0, "[No Name] - 0 lines ", "no ft | 1/0"},
		{"named", "main.c", "c", false, 3, 10, "main.c - 10 lines ", "c | 3/10"},
		{"modified", "main.c", "c", true, 1, 2, "main.c - 2 lines (modified)", "c | 1/2"},
		{"long name", "a_very_long_file_name_indeed.go", "go", false, 1, 1, "a_very_long_file_nam - 1 lines ", "go | 1/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.SetFilename(tt.filename)
			s.SetFileType(tt.fileType)
			s.SetModified(tt.modified)
			s.SetPosition(tt.line, tt.total)

			if got := s.Left(); got != tt.wantLeft {
				t.Errorf("Left() = %q, want %q", got, tt.wantLeft)
			}
			if got := s.Right(); got != tt.wantRight {
				t.Errorf("Right() = %q, want %q", got, tt.wantRight)
			}
		})
	}
}

func TestStatusLineRender(t *testing.T) {
	s := New()
	s.SetFilename("f.c")
	s.SetFileType("c")
	s.SetPosition(2, 5)

	got := s.Render(40)
	if len(got) != 40 {
		t.Fatalf("len(Render(40)) = %d, want 40", len(got))
	}
	if !strings.HasPrefix(got, "f.c - 5 lines ") {
		t.Errorf("Render(40) = %q, want left part first", got)
	}
	if !strings.HasSuffix(got, "c | 2/5") {
		t.Errorf("Render(40) = %q, want right part flush right", got)
	}
}

func TestStatusLineRenderNarrow(t *testing.T) {
	s := New()
	s.SetFilename("f.c")
	s.SetPosition(1, 1)

	// Too narrow for the right part: left part clipped, no right part.
	got := s.Render(8)
	if got != "f.c - 1 " {
		t.Errorf("Render(8) = %q, want %q", got, "f.c - 1 ")
	}
	if s.Render(0) != "" {
		t.Error("Render(0) should be empty")
	}
}

func TestMessageVisible(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := Message{Text: "HELP: Ctrl-S = save", Time: base}

	tests := []struct {
		name  string
		now   time.Time
		width int
		want  string
	}{
		{"fresh", base.Add(time.Second), 80, "HELP: Ctrl-S = save"},
		{"clipped", base, 4, "HELP"},
		{"just before expiry", base.Add(4999 * time.Millisecond), 80, "HELP: Ctrl-S = save"},
		{"expired", base.Add(5 * time.Second), 80, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Visible(tt.now, DefaultMessageTimeout, tt.width); got != tt.want {
				t.Errorf("Visible() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewMessage(t *testing.T) {
	m := NewMessage("%d bytes written to disk", 42)
	if m.Text != "42 bytes written to disk" {
		t.Errorf("Text = %q", m.Text)
	}
	if m.Visible(time.Now(), DefaultMessageTimeout, 80) == "" {
		t.Error("new message should be visible")
	}
}
