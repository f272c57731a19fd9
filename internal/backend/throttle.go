package backend

import (
	"context"
	"path/filepath"
	"sync"
	"time"
)

// throttle spaces out deliveries and collects the changes seen in between,
// keeping the latest change per directory.
type throttle struct {
	interval time.Duration

	mu      sync.Mutex
	next    time.Time
	pending map[string]Event
	order   []string
}

func newThrottle(interval time.Duration) *throttle {
	if interval < 0 {
		interval = 0
	}
	return &throttle{interval: interval, pending: map[string]Event{}}
}

// add records a change to path. A later change in the same directory
// replaces the earlier one.
func (t *throttle) add(path, op string) {
	dir := filepath.Dir(path)
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.pending[dir]; !ok {
		t.order = append(t.order, dir)
	}
	t.pending[dir] = Event{Path: path, Op: op}
}

// wait blocks until the next delivery slot. The first call returns at once.
// It reports false when ctx ends first.
func (t *throttle) wait(ctx context.Context) bool {
	if t.interval == 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	delay := time.Until(t.next)
	if delay < 0 {
		delay = 0
	}
	t.next = time.Now().Add(delay + t.interval)
	t.mu.Unlock()
	if delay == 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// flush returns one event per changed directory in first-seen order and
// clears the pending set.
func (t *throttle) flush() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, 0, len(t.order))
	for _, dir := range t.order {
		out = append(out, t.pending[dir])
	}
	t.pending = map[string]Event{}
	t.order = nil
	return out
}
