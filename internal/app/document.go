package app

import (
	"errors"
	"io/fs"

	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/viewport"
)

// Open loads path into the document, replacing its content, and selects
// the syntax definition for it.
func (app *Application) Open(path string) error {
	lines, err := buffer.ReadFile(path)
	if err != nil {
		return NewOperationError("open", path, err)
	}

	app.filename = path
	app.selectSyntax()
	app.doc.Load(lines)
	app.cx, app.cy = 0, 0
	app.view.Restore(viewport.State{})

	app.watch()
	app.logger.Info("opened %s: %d lines, file type %q", path, app.doc.NumRows(), app.fileType)
	return nil
}

// selectSyntax picks the syntax for the current filename. When none
// matches, the file type shown is chroma's name for the file, if any, and
// the document is not highlighted.
func (app *Application) selectSyntax() {
	syn := app.syntaxes.Select(app.filename)
	app.doc.SetSyntax(syn)
	if syn != nil {
		app.fileType = syn.FileType
		return
	}
	app.fileType = highlight.DetectFileType(app.filename)
}

// save writes the document, asking for a filename first when there is
// none. Write failures are reported on the message line and leave the
// document dirty.
func (app *Application) save() error {
	if app.filename == "" {
		name, err := app.prompt("Save as: %s (ESC to cancel)", nil)
		if errors.Is(err, ErrPromptCancelled) {
			app.setMessage("Save aborted")
			return nil
		}
		if err != nil {
			return err
		}
		app.filename = name
		app.selectSyntax()
		app.watch()
	}

	content := app.doc.Serialize()
	n, err := buffer.WriteFile(app.filename, content)
	if err != nil {
		app.setMessage("Can't save! I/O error: %s", ioReason(err))
		app.logger.Error("%v", NewOperationError("save", app.filename, err))
		return nil
	}

	app.doc.MarkClean()
	app.metrics.RecordSave()
	if app.watcher != nil {
		app.watcher.MarkSynced()
	}
	app.setMessage("%d bytes written to disk", n)
	app.logger.Info("saved %s: %d bytes", app.filename, n)

	app.runSaveHooks(content)
	return nil
}

// runSaveHooks lets plugins react to a save. A hook's message replaces the
// byte count.
func (app *Application) runSaveHooks(content []byte) {
	if app.plugins == nil || !app.plugins.HasSaveHooks() {
		return
	}
	msg, err := app.plugins.OnSave(app.filename, content)
	if err != nil {
		app.logger.WithComponent("plugin").Warn("%v", err)
	}
	if msg != "" {
		app.setMessage("%s", msg)
	}
}

// ioReason returns the operating system's description of err without the
// operation and path.
func ioReason(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
