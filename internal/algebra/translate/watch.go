package translate

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/algebralab/algebralab/pkg/core/logging"
)

// DefaultDebounce is the quiet period after the last event before a reload.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a Translator when its pattern file changes. The directory
// is watched rather than the file so that editors replacing the file on
// save are seen.
type Watcher struct {
	translator *Translator
	path       string
	debounce   time.Duration
	logger     *logging.Logger

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	onReload func(Stats, error)
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewWatcher creates a watcher for path. Call Start to begin watching.
func NewWatcher(t *Translator, path string) *Watcher {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Watcher{
		translator: t,
		path:       filepath.Clean(abs),
		debounce:   DefaultDebounce,
		logger:     logging.New("translate-watcher"),
	}
}

// SetDebounce changes the debounce window.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// SetOnReload registers a callback run after every reload attempt.
func (w *Watcher) SetOnReload(fn func(Stats, error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = fn
}

// Start loads the file once and watches it until ctx is done or Stop is
// called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.translator.LoadFile(w.path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	w.watcher = watcher
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true
	w.logger.Info("Watching pattern file", "path", w.path)

	go w.loop(ctx, watcher, w.stopCh, w.doneCh)
	return nil
}

// Stop ends watching and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	close(w.stopCh)
	done := w.doneCh
	w.mu.Unlock()
	<-done
}

func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher, stopCh, doneCh chan struct{}) {
	defer func() {
		watcher.Close()
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(doneCh)
	}()

	var pending <-chan time.Time
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping pattern watcher (context cancelled)")
			return

		case <-stopCh:
			w.logger.Info("Stopping pattern watcher (stop signal)")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	err := w.translator.LoadFile(w.path)
	stats := w.translator.Stats()
	if err != nil {
		w.logger.Warn("Pattern reload failed, keeping previous set", "path", w.path, "error", err)
	} else {
		w.logger.Info("Patterns reloaded", "path", w.path, "patterns", stats.Patterns)
	}

	w.mu.Lock()
	fn := w.onReload
	w.mu.Unlock()
	if fn != nil {
		fn(stats, err)
	}
}
