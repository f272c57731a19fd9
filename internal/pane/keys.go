package pane

import (
	"github.com/atomicstack/dualpane/internal/action"
	"github.com/atomicstack/dualpane/internal/keymap"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HandleKey maps msg to a pane-level action. It returns nil when the key is
// not a pane binding or the binding does not apply to the current row.
func (p *Pane) HandleKey(km keymap.Pane, msg tea.KeyMsg) action.Action {
	switch {
	case key.Matches(msg, km.Down):
		return action.CursorDown{}
	case key.Matches(msg, km.Up):
		return action.CursorUp{}
	case key.Matches(msg, km.Parent):
		return action.ChangeDirToParent{Path: p.path}
	case key.Matches(msg, km.Descend):
		if e, ok := p.Selected(); ok && e.Dir {
			return action.ChangeDir{Path: e.Path}
		}
		return nil
	case key.Matches(msg, km.First):
		return action.CursorToFirst{}
	case key.Matches(msg, km.Last):
		return action.CursorToLast{}
	case key.Matches(msg, km.Mark):
		return action.ToggleMark{}
	case key.Matches(msg, km.Activate):
		return p.activate()
	case key.Matches(msg, km.Edit):
		if e, ok := p.Selected(); ok {
			return action.Edit{Path: e.Path}
		}
		return action.Edit{Path: p.path}
	case key.Matches(msg, km.Rename):
		if e, ok := p.Selected(); ok {
			return action.StartRename{Entry: e.Name}
		}
		return nil
	}
	return nil
}

func (p *Pane) activate() action.Action {
	e, ok := p.Selected()
	switch {
	case !ok:
		return action.ChangeDirToParent{Path: p.path}
	case e.Dir:
		return action.ChangeDir{Path: e.Path}
	default:
		return action.Execute{Path: e.Path}
	}
}
