// Package app is the editing session: it owns the document, the cursor, the
// viewport and the status message, and runs the loop that turns key
// presses into edits and frames.
package app

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dshills/kilo/internal/config"
	"github.com/dshills/kilo/internal/engine/buffer"
	"github.com/dshills/kilo/internal/input/key"
	"github.com/dshills/kilo/internal/plugin/lua"
	"github.com/dshills/kilo/internal/renderer"
	"github.com/dshills/kilo/internal/renderer/backend"
	"github.com/dshills/kilo/internal/renderer/highlight"
	"github.com/dshills/kilo/internal/renderer/statusline"
	"github.com/dshills/kilo/internal/renderer/viewport"
	"github.com/dshills/kilo/internal/search"
	"github.com/dshills/kilo/internal/watcher"
)

// HelpMessage is shown when the editor starts.
const HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// DefaultIdleInterval is how long the loop waits for a key before doing
// periodic work such as checking the file on disk.
const DefaultIdleInterval = 250 * time.Millisecond

// Application is one editing session.
type Application struct {
	opts   Options
	config *config.Config
	logger *Logger

	// Terminal
	backend  backend.Backend
	keys     *key.Reader
	renderer *renderer.Renderer

	// Document and view
	doc      *buffer.Document
	view     *viewport.Viewport
	status   *statusline.StatusLine
	syntaxes *highlight.Registry
	theme    *highlight.Theme
	searcher *search.Searcher

	// Collaborators; either may be nil.
	plugins *lua.Host
	watcher *watcher.FileWatcher

	// Cursor: document row and logical column.
	cx, cy int

	filename  string
	fileType  string
	message   statusline.Message
	quitTimes int

	metrics *Metrics
	now     func() time.Time
	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Config is the loaded configuration. Nil means config.Default().
	Config *config.Config

	// Logger receives diagnostics. Nil means NullLogger.
	Logger *Logger

	// Filename is opened on startup when set.
	Filename string

	// Version is shown in the welcome banner.
	Version string

	// IdleInterval is how long to wait for a key before idle work.
	IdleInterval time.Duration

	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// New creates a session. Syntax definitions from the configuration and from
// plugins are registered ahead of the built-in table. Plugin and watcher
// failures are logged and leave those features off; failing to open
// Options.Filename is an error.
func New(opts Options) (*Application, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.IdleInterval <= 0 {
		opts.IdleInterval = DefaultIdleInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cfg := opts.Config
	theme, err := cfg.BuildTheme()
	if err != nil {
		return nil, &InitError{Component: "theme", Err: err}
	}

	app := &Application{
		opts:      opts,
		config:    cfg,
		logger:    opts.Logger.WithComponent("app"),
		doc:       buffer.New(buffer.WithTabStop(cfg.Editor.TabStop)),
		view:      viewport.NewViewport(1, 1),
		status:    statusline.New(),
		syntaxes:  highlight.DefaultRegistry(),
		theme:     theme,
		quitTimes: cfg.Editor.QuitTimes,
		now:       opts.Now,
	}
	app.searcher = search.New(app.doc)
	app.metrics = NewMetrics(app.now())

	app.loadPlugins()
	app.registerSyntaxes(cfg.Syntaxes())
	app.startWatcher()

	if opts.Filename != "" {
		if err := app.Open(opts.Filename); err != nil {
			app.Close()
			return nil, err
		}
	}
	return app, nil
}

// registerSyntaxes puts syns ahead of everything registered so far,
// keeping their relative order.
func (app *Application) registerSyntaxes(syns []*highlight.Syntax) {
	for i := len(syns) - 1; i >= 0; i-- {
		app.syntaxes.Prepend(syns[i])
	}
}

func (app *Application) loadPlugins() {
	dir := app.config.PluginDir()
	if dir == "" {
		return
	}
	log := app.opts.Logger.WithComponent("plugin")
	host := lua.NewHost(lua.WithPrint(func(s string) {
		log.Info("%s", s)
	}))
	if err := host.LoadDir(dir); err != nil {
		log.Warn("loading plugins from %s: %v", dir, err)
	}
	if len(host.Loaded()) == 0 {
		host.Close()
		return
	}
	log.Info("loaded %d plugins from %s", len(host.Loaded()), dir)
	app.plugins = host
	app.registerSyntaxes(host.Syntaxes())
}

func (app *Application) startWatcher() {
	if !app.config.Editor.Watch {
		return
	}
	w, err := watcher.New()
	if err != nil {
		app.logger.Warn("file watcher unavailable: %v", err)
		return
	}
	app.watcher = w
}

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend and runs the editor until the user quits,
// which returns nil. Any other return is a fatal terminal error; the
// terminal has been restored either way.
func (app *Application) Run() error {
	if app.backend == nil {
		return &InitError{Component: "backend", Err: ErrNoBackend}
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	if err := app.updateSize(); err != nil {
		return &InitError{Component: "terminal size", Err: err}
	}

	app.renderer = renderer.New(app.backend, renderer.Options{
		Theme:          app.theme,
		Version:        app.opts.Version,
		MessageTimeout: app.config.Editor.MessageTimeout.Duration,
		Now:            app.now,
	})
	app.keys = key.NewReader(app.backend)

	app.setMessage(HelpMessage)
	app.logger.Info("session started: %s", app.displayName())

	err := app.eventLoop()

	s := app.Metrics()
	app.logger.Info("session ended: %d keys, %d frames (avg %v, max %v), %d saves, uptime %v",
		s.Keys, s.Frames, s.AvgFrame, s.MaxFrame, s.Saves, s.Uptime.Round(time.Second))
	return err
}

// Close releases the plugin host and the file watcher.
func (app *Application) Close() {
	if app.plugins != nil {
		app.plugins.Close()
		app.plugins = nil
	}
	if app.watcher != nil {
		app.watcher.Close()
		app.watcher = nil
	}
}

// IsRunning returns true while Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Document returns the row store being edited.
func (app *Application) Document() *buffer.Document {
	return app.doc
}

// Cursor returns the cursor row and logical column.
func (app *Application) Cursor() (row, col int) {
	return app.cy, app.cx
}

// Filename returns the open file's name, or "".
func (app *Application) Filename() string {
	return app.filename
}

// FileType returns the name shown for the file type, or "".
func (app *Application) FileType() string {
	return app.fileType
}

// StatusMessage returns the current status message text.
func (app *Application) StatusMessage() string {
	return app.message.Text
}

// setMessage sets the status message and stamps it with the current time.
func (app *Application) setMessage(format string, args ...any) {
	app.message = statusline.Message{Text: fmt.Sprintf(format, args...), Time: app.now()}
}

func (app *Application) displayName() string {
	if app.filename == "" {
		return statusline.NoName
	}
	return app.filename
}
