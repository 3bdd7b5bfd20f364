// Package watch re-runs an action whenever a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/primespiral/internal/logging"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher observes one file. The parent directory is watched so that
// atomic rename-on-save editors keep triggering.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   logging.Logger
}

// New returns a Watcher for path. debounce ≤ 0 uses DefaultDebounce.
func New(path string, debounce time.Duration, log logging.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = logging.NewNopLogger()
	}

	return &Watcher{path: filepath.Clean(path), debounce: debounce, logger: log}
}

// Run blocks until ctx is done, calling onChange after every settled
// change of the file. onChange errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch: add %q: %w", filepath.Dir(w.path), err)
	}
	w.logger.Info("watching", logging.String("path", w.path))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !relevant(ev.Op) {
				continue
			}
			w.logger.Debug("file event", logging.String("op", ev.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", logging.Err(err))

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				w.logger.Error("reload failed", logging.String("path", w.path), logging.Err(err))
			}
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
