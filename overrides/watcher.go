package overrides

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tokenkit/tokenkit/tokens"
)

// pollInterval is the fallback polling cadence when fsnotify is
// unavailable.
const pollInterval = time.Second

// Watcher follows an override file and publishes a freshly built table
// whenever the file changes. Published tables are immutable; consumers
// swap the reference and concurrent readers of the previous table are
// unaffected. Load errors are reported and watching continues with the
// last good table in place.
type Watcher struct {
	path string
	maps chan *tokens.TokenMap
	errs chan error
}

// NewWatcher creates a watcher for the given override file.
func NewWatcher(path string) *Watcher {
	return &Watcher{
		path: path,
		maps: make(chan *tokens.TokenMap, 1),
		errs: make(chan error, 1),
	}
}

// Maps returns the channel of freshly loaded tables.
func (w *Watcher) Maps() <-chan *tokens.TokenMap {
	return w.maps
}

// Errors returns the channel of load and watch errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Start loads the file once, publishes the initial table, and follows
// changes until the context is cancelled. Both channels are closed on
// return. Uses fsnotify with a polling fallback.
func (w *Watcher) Start(ctx context.Context) error {
	m, err := Load(w.path)
	if err != nil {
		return err
	}

	go func() {
		defer close(w.maps)
		defer close(w.errs)

		w.publish(ctx, m)

		// Watch the directory; editors and atomic writers replace the
		// file rather than writing in place.
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			w.poll(ctx)
			return
		}
		defer watcher.Close()

		if err := watcher.Add(filepath.Dir(w.path)); err != nil {
			watcher.Close()
			w.poll(ctx)
			return
		}

		w.watch(ctx, watcher)
	}()

	return nil
}

func (w *Watcher) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.report(ctx, err)
		}
	}
}

// poll is the fallback when fsnotify is unavailable: reload when the
// file's modification time advances.
func (w *Watcher) poll(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastMod time.Time
	if info, err := os.Stat(w.path); err == nil {
		lastMod = info.ModTime()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.ModTime().After(lastMod) {
				lastMod = info.ModTime()
				w.reload(ctx)
			}
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	m, err := Load(w.path)
	if err != nil {
		w.report(ctx, err)
		return
	}
	w.publish(ctx, m)
}

func (w *Watcher) publish(ctx context.Context, m *tokens.TokenMap) {
	select {
	case w.maps <- m:
	case <-ctx.Done():
	}
}

func (w *Watcher) report(ctx context.Context, err error) {
	select {
	case w.errs <- err:
	case <-ctx.Done():
	}
}
