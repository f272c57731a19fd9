package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()
	if err := w.SetPaths(dir); err != nil {
		t.Fatalf("set paths: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected error event: %v", evt.Err)
		}
		if filepath.Dir(evt.Path) != dir {
			t.Fatalf("expected event under %s, got %s", dir, evt.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change event")
	}
}

func TestSetPathsReplacesWatchedSet(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	w, err := NewWatcher(0)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Stop()
	if err := w.SetPaths(a, a, b); err != nil {
		t.Fatalf("set paths: %v", err)
	}
	if n := len(w.watched()); n != 2 {
		t.Fatalf("expected 2 watched paths, got %d", n)
	}
	if err := w.SetPaths(b); err != nil {
		t.Fatalf("set paths: %v", err)
	}
	got := w.watched()
	if len(got) != 1 || got[0] != filepath.Clean(b) {
		t.Fatalf("expected only %s, got %v", b, got)
	}
}

func TestSetPathsReportsMissingDirectory(t *testing.T) {
	w, err := NewWatcher(0)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Stop()
	if err := w.SetPaths(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestStopClosesEvents(t *testing.T) {
	w, err := NewWatcher(0)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	w.Stop()
	w.Wait()
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatalf("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatalf("events channel not closed")
	}
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt := <-w.Events():
		return evt
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for change event")
	}
	return Event{}
}

func TestWatcherSkipsIgnoredFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(0)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Stop()
	w.Ignore(filepath.Join(dir, "app.log"))
	if err := w.SetPaths(dir); err != nil {
		t.Fatalf("set paths: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.log"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if evt := nextEvent(t, w); filepath.Base(evt.Path) != "other.txt" {
		t.Fatalf("expected other.txt event first, got %+v", evt)
	}
}

func TestWatcherSkipsContentWrites(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.txt")
	if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(0)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Stop()
	if err := w.SetPaths(dir); err != nil {
		t.Fatalf("set paths: %v", err)
	}
	f, err := os.OpenFile(existing, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("more"); err != nil {
		t.Fatalf("append: %v", err)
	}
	_ = f.Close()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if evt := nextEvent(t, w); filepath.Base(evt.Path) != "sub" {
		t.Fatalf("expected sub event first, got %+v", evt)
	}
}
