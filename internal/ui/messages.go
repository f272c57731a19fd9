package ui

import (
	"path/filepath"

	"github.com/atomicstack/dualpane/internal/action"
	"github.com/atomicstack/dualpane/internal/backend"
	"github.com/atomicstack/dualpane/internal/jobs"
	"github.com/atomicstack/dualpane/internal/logging"
	"github.com/atomicstack/dualpane/internal/logging/events"
	"github.com/atomicstack/dualpane/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

type jobResultMsg struct {
	result jobs.Result
}

// waitForJobResult delivers a single completion. The handler re-arms it, so
// at most one result is drained per update.
func waitForJobResult(r *jobs.Runner) tea.Cmd {
	return func() tea.Msg {
		return jobResultMsg{result: <-r.Results()}
	}
}

func (m *Model) handleJobResultMsg(msg tea.Msg) tea.Cmd {
	resMsg, ok := msg.(jobResultMsg)
	if !ok {
		return nil
	}
	m.status = resMsg.result.Status()
	if resMsg.result.Err != nil {
		logging.Error(resMsg.result.Err)
	}
	events.Job.Drain(resMsg.result.ID, m.status)
	cmd := m.Apply(action.Refresh{})
	if m.listening {
		return tea.Batch(cmd, waitForJobResult(m.runner))
	}
	return cmd
}

type watchEventMsg struct {
	event backend.Event
}

type watchDoneMsg struct{}

func waitForWatchEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return watchDoneMsg{}
		}
		return watchEventMsg{event: evt}
	}
}

func (m *Model) handleWatchEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(watchEventMsg)
	if !ok {
		return nil
	}
	m.applyWatchEvent(eventMsg.event)
	if m.listening && m.watcher != nil {
		return waitForWatchEvent(m.watcher)
	}
	return nil
}

// applyWatchEvent re-lists the panes showing the changed directory.
func (m *Model) applyWatchEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		return
	}
	dir := filepath.Dir(evt.Path)
	for _, p := range m.panes {
		if p.Path() == dir || p.Path() == evt.Path {
			m.refresh(p)
		}
	}
}

func (m *Model) handleWatchDoneMsg(msg tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.Result)
	if !ok || res.Err == nil {
		return nil
	}
	m.fail(res.Err)
	return nil
}
