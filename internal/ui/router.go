package ui

import (
	"github.com/atomicstack/dualpane/internal/action"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Route resolves a key to at most one action. An open overlay owns every
// key; otherwise the source pane is asked first and the global table last.
func (m *Model) Route(msg tea.KeyMsg) action.Action {
	if m.overlay != nil {
		return m.overlay.Update(msg)
	}
	if a := m.srcPane().HandleKey(m.keys.Pane, msg); a != nil {
		return a
	}
	return m.globalAction(msg)
}

func (m *Model) globalAction(msg tea.KeyMsg) action.Action {
	g := m.keys.Global
	switch {
	case key.Matches(msg, g.Quit):
		return action.Quit{}
	case key.Matches(msg, g.Switch):
		return action.SwitchSrc{}
	case key.Matches(msg, g.Duplicate):
		return action.DuplicateDir{}
	case key.Matches(msg, g.Search):
		return action.StartSearch{}
	case key.Matches(msg, g.Copy):
		return action.Copy{}
	case key.Matches(msg, g.Move):
		return action.Move{}
	case key.Matches(msg, g.Delete):
		return action.Delete{}
	case key.Matches(msg, g.CreateDir):
		return action.StartCreateDir{}
	case key.Matches(msg, g.Bookmarks):
		return action.OpenBookmarks{}
	case key.Matches(msg, g.MarkPattern):
		return action.StartMarkPattern{}
	case key.Matches(msg, g.Refresh):
		return action.Refresh{}
	}
	return nil
}
