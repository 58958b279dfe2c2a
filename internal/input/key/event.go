package key

import (
	"fmt"
	"time"
)

// Event represents a single decoded key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events. For control combinations
	// it is the character typed together with Ctrl ('q' for Ctrl-Q).
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event was decoded.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key) Event {
	return Event{
		Key:       key,
		Timestamp: time.Now(),
	}
}

// Ctrl returns the event produced by typing r with Control held.
func Ctrl(r rune) Event {
	return NewRuneEvent(r, ModCtrl)
}

// FromByte decodes a single byte that is not part of an escape sequence.
func FromByte(b byte) Event {
	switch {
	case b == '\r':
		return NewSpecialEvent(KeyEnter)
	case b == '\t':
		return NewSpecialEvent(KeyTab)
	case b == 27:
		return NewSpecialEvent(KeyEscape)
	case b == 127:
		return NewSpecialEvent(KeyBackspace)
	case b >= 1 && b <= 26:
		return NewRuneEvent(rune('a'+b-1), ModCtrl)
	case b < 32:
		return NewRuneEvent(rune(b|0x40), ModCtrl)
	default:
		return NewRuneEvent(rune(b), ModNone)
	}
}

// IsRune returns true if this is a character key event without modifiers.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && !e.Modifiers.HasCtrl()
}

// IsCtrl reports whether e is Ctrl together with r.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyRune && e.Modifiers.HasCtrl() && e.Rune == r
}

// Is reports whether e and other name the same key, ignoring timestamps.
func (e Event) Is(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Modifiers == other.Modifiers
}

// Byte returns the byte the terminal sent for a character event, which is
// what gets inserted into the document. Special keys other than Tab and
// Enter have no byte and return 0.
func (e Event) Byte() byte {
	switch e.Key {
	case KeyRune:
		if e.Modifiers.HasCtrl() {
			return byte(e.Rune) & 0x1f
		}
		return byte(e.Rune)
	case KeyTab:
		return '\t'
	case KeyEnter:
		return '\r'
	case KeyEscape:
		return 27
	case KeyBackspace:
		return 127
	}
	return 0
}

// String returns a canonical string representation.
// Examples: "a", "Ctrl+q", "Enter", "PageDown".
func (e Event) String() string {
	if e.Key != KeyRune {
		return e.Key.String()
	}
	if e.Modifiers.HasCtrl() {
		return fmt.Sprintf("Ctrl+%c", e.Rune)
	}
	if e.Rune < 32 || e.Rune > 126 {
		return fmt.Sprintf("0x%02x", e.Rune)
	}
	return string(e.Rune)
}
