package events

import "github.com/atomicstack/dualpane/internal/logging"

type JobTracer struct{}

var Job = JobTracer{}

func (JobTracer) Submit(id, op, source, dest string) {
	logging.Trace("job.submit", map[string]interface{}{"id": id, "op": op, "source": source, "dest": dest})
}

func (JobTracer) Done(id, op, source string, err error) {
	payload := map[string]interface{}{"id": id, "op": op, "source": source}
	if err != nil {
		payload["error"] = err.Error()
		logging.Trace("job.fail", payload)
		return
	}
	logging.Trace("job.done", payload)
}

func (JobTracer) Drain(id, status string) {
	logging.Trace("job.drain", map[string]interface{}{"id": id, "status": status})
}
