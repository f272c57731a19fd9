package events

import "github.com/atomicstack/dualpane/internal/logging"

type WatchTracer struct{}

var Watch = WatchTracer{}

func (WatchTracer) Paths(paths []string) {
	logging.Trace("watch.paths", map[string]interface{}{"paths": paths})
}

func (WatchTracer) Change(path, op string) {
	logging.Trace("watch.change", map[string]interface{}{"path": path, "op": op})
}

func (WatchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("watch.error", map[string]interface{}{"error": err.Error()})
}
