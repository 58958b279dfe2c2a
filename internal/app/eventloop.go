package app

import (
	"errors"
	"time"

	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/renderer"
)

// eventLoop renders a frame, waits for one key and handles it, until a
// handler returns ErrQuit or the terminal fails.
func (app *Application) eventLoop() error {
	for {
		if err := app.refreshScreen(); err != nil {
			return err
		}

		ev, ok, err := app.readKey()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		app.metrics.RecordKey()
		if err := app.processKey(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("quit")
				return nil
			}
			return err
		}
	}
}

// readKey waits up to the idle interval for a key. When none arrives the
// idle work runs and ok is false.
func (app *Application) readKey() (key.Event, bool, error) {
	ev, ok, err := app.keys.ReadEvent(app.opts.IdleInterval)
	if err != nil {
		return key.Event{}, false, NewOperationError("read", "keyboard", err)
	}
	if !ok {
		app.metrics.RecordIdle()
		app.idle()
		return key.Event{}, false, nil
	}
	if app.logger.Enabled(LogLevelDebug) {
		app.logger.Debug("key %s", ev)
	}
	return ev, true, nil
}

// refreshScreen scrolls the cursor into view and draws one frame.
func (app *Application) refreshScreen() error {
	if app.backend.Resized() {
		if err := app.updateSize(); err != nil {
			app.logger.Warn("resize: %v", err)
		}
	}

	app.scroll()

	start := time.Now()
	if err := app.renderer.Render(app.frame()); err != nil {
		return NewOperationError("render", "", err)
	}
	app.metrics.RecordFrame(time.Since(start))
	return nil
}

// frame collects the state for one screen update.
func (app *Application) frame() renderer.Frame {
	app.status.SetFilename(app.filename)
	app.status.SetFileType(app.fileType)
	app.status.SetModified(app.doc.Dirty() > 0)
	app.status.SetPosition(app.cy+1, app.doc.NumRows())

	return renderer.Frame{
		Rows:      app.doc,
		View:      app.view,
		CursorRow: app.cy,
		CursorCol: app.renderX(),
		Status:    app.status,
		Message:   app.message,
	}
}

// updateSize reads the terminal size. Two rows are kept for the status bar
// and the message line.
func (app *Application) updateSize() error {
	width, height, err := app.backend.Size()
	if err != nil {
		return err
	}
	app.view.Resize(width, height-2)
	app.logger.Debug("terminal size %dx%d", width, height)
	return nil
}

// renderX is the cursor's render column. Past the last row it is 0.
func (app *Application) renderX() int {
	if app.cy >= app.doc.NumRows() {
		return 0
	}
	return app.doc.LogicalToVisual(app.cy, app.cx)
}

func (app *Application) scroll() {
	app.view.Scroll(app.cy, app.renderX())
}
