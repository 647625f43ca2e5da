package tui

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsDatabaseWrites(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "lifeos.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	w, err := newWatcher(dbPath, logger)
	if err != nil {
		t.Fatalf("newWatcher() error = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	msgs := make(chan any, 1)
	go func() { msgs <- w.wait()() }()

	// unrelated files in the directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case msg := <-msgs:
		t.Fatalf("unexpected message for unrelated file: %#v", msg)
	case <-time.After(2 * reloadDebounce):
	}

	if err := os.WriteFile(dbPath+"-wal", []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case msg := <-msgs:
		if _, ok := msg.(dataChangedMsg); !ok {
			t.Errorf("wait() = %#v, want dataChangedMsg", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for a write to the WAL file")
	}
}

func TestWatcherCloseUnblocksWait(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := newWatcher(filepath.Join(t.TempDir(), "lifeos.db"), logger)
	if err != nil {
		t.Fatalf("newWatcher() error = %v", err)
	}

	done := make(chan any, 1)
	go func() { done <- w.wait()() }()

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	select {
	case msg := <-done:
		if msg != nil {
			t.Errorf("wait() after Close = %#v, want nil", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("wait() still blocked after Close")
	}
}

func TestNilWatcherWaitIsNoop(t *testing.T) {
	var w *watcher
	if cmd := w.wait(); cmd != nil {
		t.Error("nil watcher should not produce a command")
	}
}
