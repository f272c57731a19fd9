package events

import "github.com/atomicstack/dualpane/internal/logging"

type OverlayTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type OverlayReason string

const (
	OverlayReasonSubmit OverlayReason = "submit"
	OverlayReasonCancel OverlayReason = "cancel"
	OverlayReasonEmpty  OverlayReason = "empty"
)

var (
	Overlay = OverlayTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (OverlayTracer) Open(kind string) {
	logging.Trace("overlay.open", map[string]interface{}{"kind": kind})
}

func (OverlayTracer) Close(kind string, reason OverlayReason) {
	logging.Trace("overlay.close", map[string]interface{}{"kind": kind, "reason": string(reason)})
}

func (ActionTracer) Dispatch(name string, src int) {
	logging.Trace("action.dispatch", map[string]interface{}{"action": name, "src": src})
}

func (ActionTracer) Unhandled(name string) {
	logging.Trace("action.unhandled", map[string]interface{}{"action": name})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (CommandTracer) Queue(id, path string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "path": path})
}

func (CommandTracer) Skip(id, path string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "path": path})
}

func (CommandTracer) Result(id, path string, err error) {
	payload := map[string]interface{}{"id": id, "path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}
