package app

import (
	"github.com/dshills/kilo/internal/watcher"
)

// watch points the file watcher at the current filename.
func (app *Application) watch() {
	if app.watcher == nil || app.filename == "" {
		return
	}
	if err := app.watcher.Watch(app.filename); err != nil {
		app.logger.Warn("watch %s: %v", app.filename, err)
	}
}

// idle runs between keys: it reports changes made to the file by other
// programs.
func (app *Application) idle() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Err(); err != nil {
		app.logger.Warn("file watcher: %v", err)
	}

	change, ok := app.watcher.Poll()
	if !ok {
		return
	}
	app.metrics.RecordDiskChange()
	app.logger.Info("%s %s on disk", change.Path, change.Op)

	switch change.Op {
	case watcher.OpRemoved:
		app.setMessage("File removed from disk")
	default:
		app.setMessage("File changed on disk")
	}
}
