// Package watcher provides recursive filesystem watching with quiet-period
// event coalescing, used to invalidate the change-tracking ledger.
package watcher

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Skipper mirrors the resolver's enumeration filter so watched directories
// and reported files obey the same ignore rules.
type Skipper interface {
	SkipDir(absPath string) bool
	SkipFile(absPath string) bool
}

// Watcher watches a project tree recursively and delivers coalesced event
// batches on Events().
type Watcher struct {
	fsw    *fsnotify.Watcher
	co     *coalescer
	skip   Skipper
	root   string
	logger *slog.Logger
}

// New creates a watcher over root, registering every non-skipped directory.
func New(root string, skip Skipper, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:    fsw,
		co:     newCoalescer(defaultQuietPeriod),
		skip:   skip,
		root:   root,
		logger: logger,
	}

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil // unreadable entries are not fatal to watching
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && skip != nil && skip.SkipDir(p) {
			return filepath.SkipDir
		}
		if addErr := fsw.Add(p); addErr != nil {
			logger.Warn("failed to watch directory", "path", p, "error", addErr)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Events returns the channel delivering coalesced event batches.
func (w *Watcher) Events() <-chan []Event {
	return w.co.batches()
}

// Run consumes raw fsnotify events until the watcher is closed. Call in a
// goroutine.
func (w *Watcher) Run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	p := ev.Name

	// A freshly created directory must be registered before events inside
	// it can be seen; the creation itself is not reported downstream.
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			if w.skip == nil || !w.skip.SkipDir(p) {
				if err := w.fsw.Add(p); err != nil {
					w.logger.Warn("failed to watch new directory", "path", p, "error", err)
				}
			}
			return
		}
	}

	if w.skip != nil && w.skip.SkipFile(p) {
		return
	}

	var op Op
	switch {
	case ev.Has(fsnotify.Create):
		op = OpCreate
	case ev.Has(fsnotify.Write):
		op = OpWrite
	case ev.Has(fsnotify.Remove):
		op = OpRemove
	case ev.Has(fsnotify.Rename):
		op = OpRename
	default:
		return
	}
	w.co.add(p, op)
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
