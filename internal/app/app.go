package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/dualpane/internal/backend"
	"github.com/atomicstack/dualpane/internal/config"
	"github.com/atomicstack/dualpane/internal/jobs"
	"github.com/atomicstack/dualpane/internal/logging"
	"github.com/atomicstack/dualpane/internal/logging/events"
	"github.com/atomicstack/dualpane/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg config.App) (err error) {
	defer func() { events.App.Stop(err) }()

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	var watcher *backend.Watcher
	if cfg.Watch {
		w, werr := backend.NewWatcher(settings.PollInterval)
		if werr != nil {
			// Browsing still works without live refresh.
			logging.Warnf("filesystem watch disabled: %v", werr)
		} else {
			watcher = w
			defer watcher.Stop()
		}
	}

	model, err := ui.NewModel(ui.Options{
		StartDir: cfg.StartDir,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Settings: settings,
		Runner:   jobs.NewRunner(),
		Watcher:  watcher,
	})
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
