// Package watch re-runs a render callback whenever the source file
// changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDelay = 250 * time.Millisecond

// Watcher watches a single file and invokes a callback after each
// change, debounced so editors that write in several steps trigger one
// rebuild.
type Watcher struct {
	path   string
	logger *zap.Logger
}

// New creates a watcher for the given file.
func New(path string, logger *zap.Logger) *Watcher {
	return &Watcher{path: path, logger: logger}
}

// Run blocks until the context is cancelled, calling onChange after
// every settled modification of the watched file. Callback errors are
// logged, not fatal: a half-saved file should not kill the watch loop.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory, not the file: most editors replace the file
	// on save, which would drop a direct watch.
	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.logger.Info("Watching for changes", zap.String("file", w.path))

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			w.logger.Debug("Change detected", zap.String("file", w.path))
			if err := onChange(); err != nil {
				w.logger.Warn("Rebuild failed", zap.Error(err))
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}
