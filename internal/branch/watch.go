package branch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a table file into a Resolver whenever the file changes.
type Watcher struct {
	path     string
	resolver *Resolver
	debounce time.Duration

	// OnReload is called after each successful swap.
	OnReload func(*Table)
}

// NewWatcher creates a watcher for the table file at path.
func NewWatcher(path string, r *Resolver, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: path, resolver: r, debounce: debounce}
}

// Run watches until ctx is cancelled. The parent directory is watched so
// that editors which replace the file by rename are still seen. A file that
// fails to load leaves the current table in place.
func (w *Watcher) Run(ctx context.Context) error {
	log := zap.L().With(zap.String("component", "branch.watch"), zap.String("path", w.path))

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return eris.Wrap(err, "branch: create watcher")
	}
	defer fw.Close() //nolint:errcheck

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return eris.Wrapf(err, "branch: watch %s", dir)
	}
	target := filepath.Clean(w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	log.Info("watching branch table")
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))

		case <-timer.C:
			w.reload(log)
		}
	}
}

func (w *Watcher) reload(log *zap.Logger) {
	t, err := LoadTable(w.path)
	if err != nil {
		log.Error("reload failed, keeping current table", zap.Error(err))
		return
	}
	w.resolver.Swap(t)
	log.Info("branch table reloaded", zap.Int("branches", len(t.Branches)))
	if w.OnReload != nil {
		w.OnReload(t)
	}
}
