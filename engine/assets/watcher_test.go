package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()

	fired := make(chan struct{}, 1)
	w, err := NewWatcher(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Shutdown()

	if err := w.Initialize(dir); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "upload.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not fire after a write")
	}
}

func TestWatcherShutdownIdempotent(t *testing.T) {
	w, err := NewWatcher(func() {})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Shutdown(); err != nil {
		t.Errorf("first shutdown: %v", err)
	}
	if err := w.Shutdown(); err != nil {
		t.Errorf("second shutdown: %v", err)
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	w, err := NewWatcher(func() {})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Shutdown()
	if err := w.Initialize(filepath.Join(os.TempDir(), "photomesh-does-not-exist")); err == nil {
		t.Error("expected error watching missing directory")
	}
}
