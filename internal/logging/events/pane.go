package events

import "github.com/atomicstack/dualpane/internal/logging"

type PaneTracer struct{}

var Pane = PaneTracer{}

func (PaneTracer) List(path string, entries, dropped int) {
	logging.Trace("pane.list", map[string]interface{}{"path": path, "entries": entries, "dropped": dropped})
}

func (PaneTracer) ListFailed(path string, err error) {
	logging.Trace("pane.list.error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (PaneTracer) Refresh(path string, before, after int) {
	logging.Trace("pane.refresh", map[string]interface{}{"path": path, "before": before, "after": after})
}

func (PaneTracer) Cursor(path string, selection int) {
	logging.Trace("pane.cursor", map[string]interface{}{"path": path, "selection": selection})
}

func (PaneTracer) Mark(path, entry string, marked bool) {
	logging.Trace("pane.mark", map[string]interface{}{"path": path, "entry": entry, "marked": marked})
}

func (PaneTracer) MarkGlob(path, pattern string, matched int) {
	logging.Trace("pane.mark.glob", map[string]interface{}{"path": path, "pattern": pattern, "matched": matched})
}

func (PaneTracer) Search(path, pattern string, selection int, hit bool) {
	logging.Trace("pane.search", map[string]interface{}{"path": path, "pattern": pattern, "selection": selection, "hit": hit})
}

func (PaneTracer) Mkdir(path string) {
	logging.Trace("pane.mkdir", map[string]interface{}{"path": path})
}

func (PaneTracer) Rename(from, to string) {
	logging.Trace("pane.rename", map[string]interface{}{"from": from, "to": to})
}

func (PaneTracer) Switch(src int) {
	logging.Trace("pane.switch", map[string]interface{}{"src": src})
}

func (PaneTracer) Replace(src int, path string) {
	logging.Trace("pane.replace", map[string]interface{}{"src": src, "path": path})
}
