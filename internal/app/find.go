package app

import (
	"errors"

	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/search"
)

// find runs an incremental search prompt. Escape puts the cursor and view
// back where they were; Enter leaves the cursor on the current match.
func (app *Application) find() error {
	app.metrics.RecordSearch()
	app.searcher.Begin(search.Snapshot{
		Cursor: search.Position{Row: app.cy, Col: app.cx},
		View:   app.view.Save(),
	})

	query, err := app.prompt("Search: %s (Use ESC/Arrows/Enter)", app.findStep)
	switch {
	case errors.Is(err, ErrPromptCancelled):
		snap := app.searcher.Snapshot()
		app.cy, app.cx = snap.Cursor.Row, snap.Cursor.Col
		app.view.Restore(snap.View)
		return nil
	case err != nil:
		return err
	}

	app.logger.Debug("search %q ended at %d:%d", query, app.cy, app.cx)
	return nil
}

// findStep feeds one prompt key to the searcher and moves to its match.
func (app *Application) findStep(query string, ev key.Event) {
	pos, found := app.searcher.Step(query, ev)
	if !found {
		return
	}
	app.cy, app.cx = pos.Row, pos.Col
	app.view.ScrollTo(pos.Row)
}
