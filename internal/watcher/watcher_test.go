package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T, handler Handler) (*Watcher, string) {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "menuwise.db")
	if err := os.WriteFile(dbPath, nil, 0644); err != nil {
		t.Fatalf("failed to create db file: %v", err)
	}

	w, err := New(dbPath, handler, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.SetDebounce(50 * time.Millisecond)
	w.runs = make(chan struct{}, 1)
	return w, dbPath
}

func appendTo(t *testing.T, path string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString("x"); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestNew_Validation(t *testing.T) {
	noop := func(context.Context) error { return nil }

	if _, err := New("", noop, nil); err == nil {
		t.Error("New(\"\") expected error")
	}
	if _, err := New(":memory:", noop, nil); err == nil {
		t.Error("New(:memory:) expected error")
	}
	if _, err := New(filepath.Join(t.TempDir(), "db"), nil, nil); err == nil {
		t.Error("New with nil handler expected error")
	}
}

func TestMatcher(t *testing.T) {
	dir := t.TempDir()
	m, err := newMatcher(filepath.Join(dir, "menuwise.db"))
	if err != nil {
		t.Fatalf("newMatcher() error = %v", err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"menuwise.db", true},
		{"menuwise.db-wal", true},
		{"menuwise.db-journal", true},
		{"menuwise.db-shm", false},
		{"other.db", false},
		{"config.yaml", false},
	}
	for _, tt := range tests {
		if got := m.matches(filepath.Join(m.dir, tt.name)); got != tt.want {
			t.Errorf("matches(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	var calls atomic.Int32
	w, dbPath := newTestWatcher(t, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	for i := 0; i < 5; i++ {
		appendTo(t, dbPath)
		appendTo(t, dbPath+"-wal")
	}

	select {
	case <-w.runs:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not invoked after database writes")
	}

	time.Sleep(200 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("handler called %d times for one burst, want 1", got)
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	var calls atomic.Int32
	w, dbPath := newTestWatcher(t, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	appendTo(t, filepath.Join(filepath.Dir(dbPath), "notes.txt"))

	select {
	case <-w.runs:
		t.Fatal("handler ran for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
	if calls.Load() != 0 {
		t.Errorf("handler called %d times, want 0", calls.Load())
	}
}

func TestWatcher_HandlerErrorKeepsWatching(t *testing.T) {
	var calls atomic.Int32
	w, dbPath := newTestWatcher(t, func(context.Context) error {
		calls.Add(1)
		return errors.New("ledger unavailable")
	})

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	for round := 0; round < 2; round++ {
		appendTo(t, dbPath)
		select {
		case <-w.runs:
		case <-time.After(5 * time.Second):
			t.Fatalf("round %d: handler not invoked", round)
		}
	}
	if calls.Load() < 2 {
		t.Errorf("handler called %d times, want at least 2", calls.Load())
	}
}

func TestWatcher_ContextCancelStopsLoop(t *testing.T) {
	w, _ := newTestWatcher(t, func(context.Context) error { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop() did not return after context cancel")
	}

	// Second Stop is a no-op.
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}
