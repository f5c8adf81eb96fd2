// Package watch re-runs the populate pipeline when the document file
// changes on disk. Events are debounced so an editor's write-then-rename
// dance triggers one run, and the pipeline's own save does not re-trigger.
package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Logger is the minimal logging interface the watcher needs.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// stamp identifies a file version well enough to recognize our own saves.
type stamp struct {
	mod  time.Time
	size int64
}

func statStamp(path string) (stamp, bool) {
	fi, err := os.Stat(path)
	if err != nil {
		return stamp{}, false
	}
	return stamp{mod: fi.ModTime(), size: fi.Size()}, true
}

// Watcher monitors one document file and fires a debounced callback on
// external changes. Run blocks until the context is cancelled.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(context.Context) error
	log      Logger
	verbose  bool

	fsw  *fsnotify.Watcher
	last stamp
}

// New builds a watcher for path. The parent directory is watched, not the
// file itself: saves that go through a temp file plus rename would
// otherwise detach the watch.
func New(path string, debounce time.Duration, verbose bool, log Logger, onChange func(context.Context) error) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		log:      log,
		verbose:  verbose,
		fsw:      fsw,
	}, nil
}

// Run processes events until ctx is cancelled. Callback errors are logged
// and watching continues; only watcher-level failures end the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	// The caller has usually just run the pipeline, so the current file
	// version counts as seen.
	w.last, _ = statStamp(w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	w.log.Info("Watching %s (debounce %s)", w.path, w.debounce)
	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch event channel closed")
			}
			if filepath.Clean(evt.Name) != w.path {
				continue
			}
			if !evt.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			w.log.Debug(w.verbose, "event %s, debouncing", evt.Op)
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch error channel closed")
			}
			w.log.Warn("Watcher error: %v", err)

		case <-timer.C:
			w.fire(ctx)
		}
	}
}

// fire runs the callback unless the file's current version is the one the
// last run produced (self-write suppression).
func (w *Watcher) fire(ctx context.Context) {
	cur, ok := statStamp(w.path)
	if !ok {
		w.log.Warn("Document vanished: %s", w.path)
		return
	}
	if cur == w.last {
		w.log.Debug(w.verbose, "own save, skipping")
		return
	}

	w.log.Info("Change detected, re-running")
	if err := w.onChange(ctx); err != nil {
		w.log.Error("Run failed: %v", err)
	}
	w.last, _ = statStamp(w.path)
}
