// Package watch regenerates template files when they change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"either-generator/internal/logger"
)

// DefaultDebounce is the quiet period after the last change before the
// handler runs.
const DefaultDebounce = 300 * time.Millisecond

// Handler is called with the changed paths of one debounce period, sorted.
type Handler func(ctx context.Context, paths []string) error

// Filter reports whether a change to path should trigger the handler.
type Filter func(path string) bool

// Watcher watches directories for template file changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	filter   Filter
	handler  Handler
	log      *zap.SugaredLogger
}

// New creates a Watcher over dirs. A non-positive debounce selects
// DefaultDebounce.
func New(dirs []string, debounce time.Duration, filter Filter, handler Handler) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		watcher:  watcher,
		debounce: debounce,
		filter:   filter,
		handler:  handler,
		log:      logger.ComponentLogger("watch"),
	}, nil
}

// Run dispatches changes until ctx is done. Handler errors are logged and do
// not stop the loop. Run closes the underlying watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	pending := make(map[string]struct{})

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			// Only regenerate on Write or Create events
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			path := filepath.Clean(event.Name)
			if !w.filter(path) {
				continue
			}

			w.log.Debugw("change detected",
				logger.FieldFile, path,
				"op", event.Op.String())

			pending[path] = struct{}{}

			timer.Reset(w.debounce)

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}

			slices.Sort(paths)
			clear(pending)

			start := time.Now()

			if err := w.handler(ctx, paths); err != nil {
				w.log.Errorw("regeneration failed", logger.FieldError, err)
				continue
			}

			w.log.Infow("regenerated",
				logger.FieldCount, len(paths),
				logger.FieldDuration, time.Since(start).Milliseconds())

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.log.Warnw("watcher error", logger.FieldError, err)
		}
	}
}

// Close stops watching without waiting for Run.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
