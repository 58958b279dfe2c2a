// Package watcher notices when the file being edited changes on disk.
//
// A FileWatcher watches the file's directory with fsnotify, since editors
// and version control tools often replace files by rename, which a watch on
// the file itself would lose. Events for the file only mark it as possibly
// changed; Poll then compares the file's modification time and size with
// the values recorded by the last MarkSynced, so the editor's own saves are
// not reported.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Watch after Close.
var ErrWatcherClosed = errors.New("watcher is closed")

// Op is the kind of change Poll reports.
type Op uint8

const (
	// OpModified indicates the file's content or timestamp changed.
	OpModified Op = iota + 1
	// OpRemoved indicates the file no longer exists.
	OpRemoved
	// OpCreated indicates the file appeared after being absent.
	OpCreated
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpModified:
		return "MODIFIED"
	case OpRemoved:
		return "REMOVED"
	case OpCreated:
		return "CREATED"
	default:
		return "UNKNOWN"
	}
}

// Change describes a change to the watched file.
type Change struct {
	Path    string
	Op      Op
	ModTime time.Time
}

// stamp is what MarkSynced records about the file.
type stamp struct {
	exists  bool
	modTime time.Time
	size    int64
}

func statStamp(path string) stamp {
	info, err := os.Stat(path)
	if err != nil {
		return stamp{}
	}
	return stamp{exists: true, modTime: info.ModTime(), size: info.Size()}
}

// FileWatcher watches a single file.
type FileWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher

	path   string
	dir    string
	synced stamp

	pending atomic.Bool

	lastErr error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New creates a watcher that is not yet watching anything.
func New() (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &FileWatcher{
		watcher: fsw,
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts watching path, replacing any previous file, and records the
// file's current state as synced. The file need not exist yet, but its
// directory must.
func (w *FileWatcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if dir != w.dir {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir)
		}
		w.dir = dir
	}
	w.path = absPath
	w.synced = statStamp(absPath)
	w.pending.Store(false)
	return nil
}

// Path returns the absolute path being watched, or "".
func (w *FileWatcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// MarkSynced records the file's current state as matching the editor's
// view of it. Call after every load and save.
func (w *FileWatcher) MarkSynced() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.path == "" {
		return
	}
	w.synced = statStamp(w.path)
	w.pending.Store(false)
}

// Poll reports a change to the watched file since the last MarkSynced or
// Poll. It never blocks. Each change is reported once.
func (w *FileWatcher) Poll() (Change, bool) {
	if !w.pending.Swap(false) {
		return Change{}, false
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.path == "" {
		return Change{}, false
	}

	now := statStamp(w.path)
	prev := w.synced
	w.synced = now

	change := Change{Path: w.path, ModTime: now.modTime}
	switch {
	case prev.exists && !now.exists:
		change.Op = OpRemoved
	case !prev.exists && now.exists:
		change.Op = OpCreated
	case now.exists && (!now.modTime.Equal(prev.modTime) || now.size != prev.size):
		change.Op = OpModified
	default:
		return Change{}, false
	}
	return change, true
}

// Err returns and clears the last error reported by fsnotify.
func (w *FileWatcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.lastErr
	w.lastErr = nil
	return err
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.closedWg.Wait()
	return err
}

// processLoop handles incoming fsnotify events.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			w.lastErr = err
			w.mu.Unlock()
		}
	}
}

// handleEvent marks the file pending when an event names it. Chmod alone
// does not change content.
func (w *FileWatcher) handleEvent(ev fsnotify.Event) {
	if ev.Op == fsnotify.Chmod {
		return
	}
	w.mu.Lock()
	target := w.path
	w.mu.Unlock()

	if target != "" && filepath.Clean(ev.Name) == target {
		w.pending.Store(true)
	}
}
