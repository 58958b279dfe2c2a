package app

import (
	"github.com/dshills/kilo/internal/input/key"
)

// processKey handles one key in normal editing mode.
func (app *Application) processKey(ev key.Event) error {
	switch {
	case ev.Key == key.KeyEnter:
		app.insertNewline()

	case ev.IsCtrl('q'):
		if app.doc.Dirty() > 0 && app.quitTimes > 0 {
			app.setMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", app.quitTimes)
			app.quitTimes--
			return nil
		}
		return ErrQuit

	case ev.IsCtrl('s'):
		if err := app.save(); err != nil {
			return err
		}

	case ev.IsCtrl('f'):
		if err := app.find(); err != nil {
			return err
		}

	case ev.Key == key.KeyBackspace, ev.IsCtrl('h'), ev.Key == key.KeyDelete:
		if ev.Key == key.KeyDelete {
			app.moveCursor(key.KeyRight)
		}
		app.deleteChar()

	case ev.Key == key.KeyPageUp, ev.Key == key.KeyPageDown:
		app.pageMove(ev.Key)

	case ev.Key == key.KeyHome:
		app.cx = 0

	case ev.Key == key.KeyEnd:
		if row := app.doc.Row(app.cy); row != nil {
			app.cx = row.Len()
		}

	case ev.Key.IsArrowKey():
		app.moveCursor(ev.Key)

	case ev.IsCtrl('l'), ev.Key == key.KeyEscape:
		// Nothing to do.

	default:
		if b := ev.Byte(); b != 0 {
			app.insertChar(b)
		}
	}

	app.quitTimes = app.config.Editor.QuitTimes
	return nil
}

// moveCursor moves one step in the arrow's direction. Left at column 0
// goes to the end of the previous row and Right at the end of a row goes to
// the start of the next. After the move the column is clamped to the row.
func (app *Application) moveCursor(k key.Key) {
	row := app.doc.Row(app.cy)

	switch k {
	case key.KeyLeft:
		if app.cx != 0 {
			app.cx--
		} else if app.cy > 0 {
			app.cy--
			app.cx = app.doc.Row(app.cy).Len()
		}
	case key.KeyRight:
		if row != nil && app.cx < row.Len() {
			app.cx++
		} else if row != nil && app.cx == row.Len() {
			app.cy++
			app.cx = 0
		}
	case key.KeyUp:
		if app.cy != 0 {
			app.cy--
		}
	case key.KeyDown:
		if app.cy < app.doc.NumRows() {
			app.cy++
		}
	}

	rowLen := 0
	if row := app.doc.Row(app.cy); row != nil {
		rowLen = row.Len()
	}
	if app.cx > rowLen {
		app.cx = rowLen
	}
}

// pageMove puts the cursor on the top or bottom screen row, then moves a
// full screen up or down.
func (app *Application) pageMove(k key.Key) {
	if k == key.KeyPageUp {
		app.cy = app.view.RowOff
	} else {
		app.cy = app.view.RowOff + app.view.Height() - 1
		if app.cy > app.doc.NumRows() {
			app.cy = app.doc.NumRows()
		}
	}

	dir := key.KeyDown
	if k == key.KeyPageUp {
		dir = key.KeyUp
	}
	for i := app.view.Height(); i > 0; i-- {
		app.moveCursor(dir)
	}
}

func (app *Application) insertChar(b byte) {
	app.doc.InsertChar(app.cy, app.cx, b)
	app.cx++
}

func (app *Application) insertNewline() {
	app.cy, app.cx = app.doc.InsertNewline(app.cy, app.cx)
}

func (app *Application) deleteChar() {
	app.cy, app.cx = app.doc.DeleteChar(app.cy, app.cx)
}
