package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/dualpane/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

// Event reports that something changed in a watched directory.
type Event struct {
	Path string
	Op   string
	Err  error
}

// Watcher follows the directories shown in the panes and publishes a
// throttled stream of change events.
type Watcher struct {
	fs       *fsnotify.Watcher
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	paths   map[string]struct{}
	ignored map[string]struct{}

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts a watcher that emits at most one event per interval.
func NewWatcher(interval time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fs:       fsw,
		throttle: newThrottle(interval),
		ctx:      ctx,
		cancel:   cancel,
		paths:    map[string]struct{}{},
		ignored:  map[string]struct{}{},
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.loop()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns a channel of change events. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// SetPaths replaces the watched set. Paths that cannot be watched are
// skipped and the first such error is returned.
func (w *Watcher) SetPaths(paths ...string) error {
	want := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		want[filepath.Clean(p)] = struct{}{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for p := range w.paths {
		if _, ok := want[p]; !ok {
			_ = w.fs.Remove(p)
			delete(w.paths, p)
		}
	}
	var firstErr error
	for p := range want {
		if _, ok := w.paths[p]; ok {
			continue
		}
		if err := w.fs.Add(p); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("watch %s: %w", p, err)
			}
			continue
		}
		w.paths[p] = struct{}{}
	}
	events.Watch.Paths(w.watched())
	return firstErr
}

// Ignore suppresses events for the given files, such as the program's own
// log file.
func (w *Watcher) Ignore(paths ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range paths {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		w.ignored[filepath.Clean(p)] = struct{}{}
	}
}

// relevant reports whether ev can change a directory listing. Content writes
// and permission changes cannot.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Create | fsnotify.Remove | fsnotify.Rename) {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, skip := w.ignored[filepath.Clean(ev.Name)]
	return !skip
}

func (w *Watcher) watched() []string {
	out := make([]string, 0, len(w.paths))
	for p := range w.paths {
		out = append(out, p)
	}
	return out
}

// Stop cancels the watcher and releases the fsnotify handle.
func (w *Watcher) Stop() {
	w.cancel()
	_ = w.fs.Close()
}

// Wait blocks until the event loop has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.throttle.add(ev.Name, ev.Op.String())
			if !w.throttle.wait(w.ctx) {
				return
			}
			w.collect()
			for _, evt := range w.throttle.flush() {
				events.Watch.Change(evt.Path, evt.Op)
				if !w.emit(evt) {
					return
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Watch.Error(err)
			if !w.emit(Event{Err: err}) {
				return
			}
		}
	}
}

// collect moves events queued while the throttle was waiting into the
// pending set.
func (w *Watcher) collect() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.relevant(ev) {
				w.throttle.add(ev.Name, ev.Op.String())
			}
		default:
			return
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
