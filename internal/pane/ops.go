package pane

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/dualpane/internal/logging/events"
	"github.com/gobwas/glob"
)

// CreateDir creates name inside the pane's directory.
func (p *Pane) CreateDir(name string) error {
	target, err := p.child(name)
	if err != nil {
		return err
	}
	if err := os.Mkdir(target, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	events.Pane.Mkdir(target)
	return nil
}

// Rename moves the selected entry to name inside the pane's directory.
func (p *Pane) Rename(name string) error {
	e, ok := p.Selected()
	if !ok {
		return ErrParentRow
	}
	target, err := p.child(name)
	if err != nil {
		return err
	}
	if err := os.Rename(e.Path, target); err != nil {
		return fmt.Errorf("rename %s: %w", e.Name, err)
	}
	events.Pane.Rename(e.Path, target)
	return nil
}

// MarkGlob marks every entry whose name matches pattern and returns how many
// matched. Existing marks are kept.
func (p *Pane) MarkGlob(pattern string) (int, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	matched := 0
	for i := range p.entries {
		if g.Match(p.entries[i].Name) {
			p.entries[i].Marked = true
			matched++
		}
	}
	events.Pane.MarkGlob(p.path, pattern, matched)
	return matched, nil
}

func (p *Pane) child(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	return filepath.Join(p.path, name), nil
}
