package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the database must be quiet before the handler
// runs.
const DefaultDebounce = 500 * time.Millisecond

// Handler is invoked after the database settles.
type Handler func(ctx context.Context) error

// Watcher runs a Handler when the sales database changes.
type Watcher struct {
	matcher  *matcher
	handler  Handler
	debounce time.Duration
	logger   *zap.Logger

	fsw    *fsnotify.Watcher
	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
	runs   chan struct{} // signalled after each handler run, for tests
}

// New creates a Watcher for the database at dbPath.
func New(dbPath string, handler Handler, logger *zap.Logger) (*Watcher, error) {
	if dbPath == "" || dbPath == ":memory:" {
		return nil, fmt.Errorf("cannot watch database %q", dbPath)
	}
	if handler == nil {
		return nil, errors.New("handler cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m, err := newMatcher(dbPath)
	if err != nil {
		return nil, err
	}

	return &Watcher{
		matcher:  m,
		handler:  handler,
		debounce: DefaultDebounce,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}, nil
}

// SetDebounce overrides the quiet period. Must be called before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start subscribes to the database directory and begins dispatching. The
// loop ends when ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fs watcher: %w", err)
	}
	if err := fsw.Add(w.matcher.dir); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", w.matcher.dir, err)
	}
	w.fsw = fsw

	w.logger.Info("watching database", zap.String("dir", w.matcher.dir), zap.String("db", filepath.Base(w.matcher.db)))

	w.wg.Add(1)
	go w.loop(ctx)

	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	// Reset and Stop discard stale ticks since Go 1.23, so no draining.
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.matcher.matches(ev.Name) || ev.Op == fsnotify.Chmod {
				continue
			}
			w.logger.Debug("database event", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("fs watcher error", zap.Error(err))

		case <-timer.C:
			w.dispatch(ctx)

		case <-ctx.Done():
			timer.Stop()
			return

		case <-w.stopCh:
			timer.Stop()
			return
		}
	}
}

func (w *Watcher) dispatch(ctx context.Context) {
	if err := w.handler(ctx); err != nil {
		w.logger.Error("change handler failed", zap.Error(err))
	}
	if w.runs != nil {
		select {
		case w.runs <- struct{}{}:
		default:
		}
	}
}

// Stop halts the watcher and waits for an in-flight handler to return.
func (w *Watcher) Stop() error {
	var err error
	w.once.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		if w.fsw != nil {
			err = w.fsw.Close()
		}
	})
	return err
}
