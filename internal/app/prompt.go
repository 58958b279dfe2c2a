package app

import (
	"github.com/dshills/kilo/internal/input/key"
)

// PromptHook is called after every key typed at a prompt, with the input
// as it stands after the key.
type PromptHook func(input string, ev key.Event)

// prompt shows format (with one %s for the input) on the message line and
// collects a line of input, redrawing after every key. Enter accepts a
// non-empty input; Escape cancels with ErrPromptCancelled. Only printable
// ASCII is added to the input. Any other error is fatal.
func (app *Application) prompt(format string, hook PromptHook) (string, error) {
	buf := make([]byte, 0, 128)

	for {
		app.setMessage(format, string(buf))
		if err := app.refreshScreen(); err != nil {
			return "", err
		}

		ev, ok, err := app.readKey()
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		app.metrics.RecordKey()

		switch {
		case ev.Key == key.KeyDelete, ev.Key == key.KeyBackspace, ev.IsCtrl('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case ev.Key == key.KeyEscape:
			app.setMessage("")
			if hook != nil {
				hook(string(buf), ev)
			}
			return "", ErrPromptCancelled

		case ev.Key == key.KeyEnter:
			if len(buf) > 0 {
				app.setMessage("")
				if hook != nil {
					hook(string(buf), ev)
				}
				return string(buf), nil
			}

		case ev.IsRune() && ev.Rune >= ' ' && ev.Rune < 127:
			buf = append(buf, byte(ev.Rune))
		}

		if hook != nil {
			hook(string(buf), ev)
		}
	}
}
