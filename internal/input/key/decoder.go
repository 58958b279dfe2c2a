package key

// decodeState is the position of the decoder inside an escape sequence.
type decodeState uint8

const (
	stateStart   decodeState = iota
	stateEsc                 // saw ESC
	stateBracket             // saw ESC [
	stateDigit               // saw ESC [ <digit>
	stateO                   // saw ESC O
)

// Decoder turns raw terminal bytes into key events.
//
// Recognized sequences:
//
//	ESC [ A|B|C|D          arrows
//	ESC [ H, ESC [ F       Home, End
//	ESC [ <d> ~            1/7 Home, 4/8 End, 3 Delete, 5 PageUp, 6 PageDown
//	ESC O H, ESC O F       Home, End
//	\r                     Enter
//	127                    Backspace
//
// Any sequence that goes wrong part way decodes as Escape, and so does a
// sequence cut short, once the caller gives up waiting and calls Flush.
type Decoder struct {
	state decodeState
	digit byte
}

// Feed advances the decoder by one byte. It returns the decoded event and
// true when b completes one; otherwise the decoder is waiting for more.
func (d *Decoder) Feed(b byte) (Event, bool) {
	switch d.state {
	case stateStart:
		if b == 27 {
			d.state = stateEsc
			return Event{}, false
		}
		return FromByte(b), true

	case stateEsc:
		switch b {
		case '[':
			d.state = stateBracket
			return Event{}, false
		case 'O':
			d.state = stateO
			return Event{}, false
		}
		return d.escape()

	case stateBracket:
		if b >= '0' && b <= '9' {
			d.state = stateDigit
			d.digit = b
			return Event{}, false
		}
		switch b {
		case 'A':
			return d.emit(KeyUp)
		case 'B':
			return d.emit(KeyDown)
		case 'C':
			return d.emit(KeyRight)
		case 'D':
			return d.emit(KeyLeft)
		case 'H':
			return d.emit(KeyHome)
		case 'F':
			return d.emit(KeyEnd)
		}
		return d.escape()

	case stateDigit:
		if b != '~' {
			return d.escape()
		}
		switch d.digit {
		case '1', '7':
			return d.emit(KeyHome)
		case '4', '8':
			return d.emit(KeyEnd)
		case '3':
			return d.emit(KeyDelete)
		case '5':
			return d.emit(KeyPageUp)
		case '6':
			return d.emit(KeyPageDown)
		}
		return d.escape()

	case stateO:
		switch b {
		case 'H':
			return d.emit(KeyHome)
		case 'F':
			return d.emit(KeyEnd)
		}
		return d.escape()
	}

	d.Reset()
	return Event{}, false
}

// Pending reports whether the decoder is inside an unfinished sequence.
func (d *Decoder) Pending() bool {
	return d.state != stateStart
}

// Flush ends an unfinished sequence, which decodes as Escape. It returns
// false if no sequence was in progress.
func (d *Decoder) Flush() (Event, bool) {
	if !d.Pending() {
		return Event{}, false
	}
	return d.escape()
}

// Reset discards any partial sequence.
func (d *Decoder) Reset() {
	d.state = stateStart
	d.digit = 0
}

func (d *Decoder) emit(k Key) (Event, bool) {
	d.Reset()
	return NewSpecialEvent(k), true
}

func (d *Decoder) escape() (Event, bool) {
	return d.emit(KeyEscape)
}
