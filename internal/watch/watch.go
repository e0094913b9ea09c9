// Package watch re-runs an export whenever a notes file changes on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"sdk-formatter/internal/textutil"
)

// DefaultSettle is how long a file must be quiet before it is re-exported.
const DefaultSettle = 200 * time.Millisecond

// Handler is called after the watched file settles with new content.
type Handler func(ctx context.Context) error

// Watcher watches a single file through its parent directory, so editors
// that save by rename are still seen.
type Watcher struct {
	path    string
	settle  time.Duration
	handle  Handler
	lastSum string
}

// New creates a watcher for path. A settle of zero uses DefaultSettle.
func New(path string, settle time.Duration, h Handler) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Watcher{path: abs, settle: settle, handle: h}, nil
}

// Run calls the handler once, then after every settled change until ctx is
// done. Handler errors are logged and do not stop the watch.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.fire(ctx)
	log.Info().Str("path", w.path).Msg("Watching notes file")

	timer := time.NewTimer(w.settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(w.settle)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Str("path", w.path).Msg("Watcher error")
		case <-timer.C:
			w.fire(ctx)
		}
	}
}

// fire runs the handler unless the file content is unchanged since the last run.
func (w *Watcher) fire(ctx context.Context) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		log.Warn().Err(err).Str("path", w.path).Msg("Read watched file")
		return
	}
	sum := textutil.Hash(string(data))
	if sum == w.lastSum {
		return
	}
	w.lastSum = sum

	if err := w.handle(ctx); err != nil {
		log.Error().Err(err).Str("path", w.path).Msg("Export after change failed")
	}
}
