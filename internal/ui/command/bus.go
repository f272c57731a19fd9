package command

import (
	"errors"

	"github.com/atomicstack/dualpane/internal/config"
	"github.com/atomicstack/dualpane/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Request asks for an external program to be run on Target from Dir.
type Request struct {
	Kind   config.CommandKind
	Target string
	Dir    string
}

// Result is delivered back to the UI once the program has been started (or
// has exited, for programs that take over the terminal).
type Result struct {
	ID     string
	Kind   config.CommandKind
	Target string
	Err    error
}

// Bus coordinates the execution of external commands.
type Bus struct {
	launcher *config.Launcher
}

// New initialises a command bus instance.
func New(launcher *config.Launcher) *Bus {
	return &Bus{launcher: launcher}
}

// Execute wraps a launch into a Bubble Tea command while emitting trace logs.
// An unconfigured command yields nil.
func (b *Bus) Execute(req Request) tea.Cmd {
	id := uuid.NewString()
	events.Command.Queue(id, req.Target)
	launch, err := b.launcher.Prepare(req.Kind, req.Target, req.Dir)
	if errors.Is(err, config.ErrNoCommand) {
		events.Command.Skip(id, req.Target)
		return nil
	}
	result := func(err error) tea.Msg {
		events.Command.Result(id, req.Target, err)
		return Result{ID: id, Kind: req.Kind, Target: req.Target, Err: err}
	}
	if err != nil {
		return func() tea.Msg { return result(err) }
	}
	if launch.Terminal {
		return tea.ExecProcess(launch.Cmd, result)
	}
	return func() tea.Msg {
		if err := launch.Cmd.Start(); err != nil {
			return result(err)
		}
		go func() { _ = launch.Cmd.Wait() }()
		return result(nil)
	}
}
