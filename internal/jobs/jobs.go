// Package jobs runs copy, move and delete off the UI goroutine. Each source
// gets its own goroutine and reports exactly one Result on the runner's
// completion channel. Jobs are never joined or cancelled; they capture their
// paths by value at submission and touch no UI state.
package jobs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atomicstack/dualpane/internal/logging/events"
	"github.com/google/uuid"
)

type Op string

const (
	OpCopy   Op = "copy"
	OpMove   Op = "move"
	OpDelete Op = "delete"
)

// Source is one entry captured at submission time.
type Source struct {
	Path string
	Dir  bool
}

// Result reports the outcome of a single job.
type Result struct {
	ID     string
	Op     Op
	Source string
	Err    error
}

// Status renders the result for the status row: empty on success,
// "Err: <cause>" on failure.
func (r Result) Status() string {
	if r.Err == nil {
		return ""
	}
	return "Err: " + r.Err.Error()
}

// Runner owns the completion channel shared by all jobs.
type Runner struct {
	results chan Result
}

func NewRunner() *Runner {
	return &Runner{results: make(chan Result, 64)}
}

// Results is drained by the UI one message at a time.
func (r *Runner) Results() <-chan Result {
	return r.results
}

// Submit starts one job per source and returns their IDs. destDir is ignored
// for OpDelete.
func (r *Runner) Submit(op Op, sources []Source, destDir string) []string {
	ids := make([]string, 0, len(sources))
	for _, src := range sources {
		id := uuid.NewString()
		ids = append(ids, id)
		events.Job.Submit(id, string(op), src.Path, destDir)
		go r.run(id, op, src, destDir)
	}
	return ids
}

func (r *Runner) run(id string, op Op, src Source, destDir string) {
	err := execute(op, src, destDir)
	events.Job.Done(id, string(op), src.Path, err)
	r.results <- Result{ID: id, Op: op, Source: src.Path, Err: err}
}

func execute(op Op, src Source, destDir string) error {
	target := filepath.Join(destDir, filepath.Base(src.Path))
	switch op {
	case OpCopy:
		if src.Dir {
			return copyTree(src.Path, target)
		}
		return copyFile(src.Path, target)
	case OpMove:
		return os.Rename(src.Path, target)
	case OpDelete:
		if src.Dir {
			return os.RemoveAll(src.Path)
		}
		return os.Remove(src.Path)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}
