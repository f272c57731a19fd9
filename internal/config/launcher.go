package config

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrNoCommand is returned when the requested command is not configured.
var ErrNoCommand = errors.New("no command configured")

type CommandKind int

const (
	KindExec CommandKind = iota
	KindEdit
)

func (k CommandKind) String() string {
	if k == KindEdit {
		return "edit"
	}
	return "exec"
}

// Launch is a prepared external process.
type Launch struct {
	Cmd      *exec.Cmd
	Terminal bool
}

// Launcher turns Execute and Edit requests into processes using the
// configured commands.
type Launcher struct {
	settings *Settings
}

func NewLauncher(settings *Settings) *Launcher {
	return &Launcher{settings: settings}
}

// Prepare builds the process for kind with target substituted for %p and dir
// as the working directory.
func (l *Launcher) Prepare(kind CommandKind, target, dir string) (Launch, error) {
	var c *Command
	if l != nil && l.settings != nil {
		if kind == KindEdit {
			c = l.settings.EditCommand
		} else {
			c = l.settings.ExecCommand
		}
	}
	if c == nil || strings.TrimSpace(c.Program) == "" {
		return Launch{}, ErrNoCommand
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = strings.ReplaceAll(a, "%p", target)
	}
	cmd := exec.Command(c.Program, args...)
	cmd.Dir = dir
	return Launch{Cmd: cmd, Terminal: c.Terminal}, nil
}
