package ui

import (
	"path/filepath"

	"github.com/atomicstack/dualpane/internal/action"
	"github.com/atomicstack/dualpane/internal/config"
	"github.com/atomicstack/dualpane/internal/jobs"
	"github.com/atomicstack/dualpane/internal/logging"
	"github.com/atomicstack/dualpane/internal/logging/events"
	"github.com/atomicstack/dualpane/internal/overlay"
	"github.com/atomicstack/dualpane/internal/pane"
	"github.com/atomicstack/dualpane/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// Apply dispatches a in two phases. The source pane handles its local part
// first (cursor, marks, search); the global part then runs against the same
// pane, so both phases see the pane that was active before any switch.
func (m *Model) Apply(a action.Action) tea.Cmd {
	events.Action.Dispatch(a.Name(), m.src)
	src, dest := m.srcPane(), m.destPane()
	taken := src.Apply(a)

	var cmd tea.Cmd
	switch a := a.(type) {
	case action.Quit:
		m.quitting = true
		cmd = tea.Quit
	case action.Refresh:
		m.refresh(m.panes[0], m.panes[1])
	case action.SwitchSrc:
		m.src = 1 - m.src
		events.Pane.Switch(m.src)
	case action.DuplicateDir:
		m.replaceSource(func() (*pane.Pane, error) { return pane.New(dest.Path()) })
	case action.ChangeDir:
		m.replaceSource(func() (*pane.Pane, error) { return pane.New(a.Path) })
	case action.ChangeDirToParent:
		parent := filepath.Dir(a.Path)
		if parent != a.Path {
			m.replaceSource(func() (*pane.Pane, error) { return pane.NewWithSelection(parent, a.Path) })
		}
	case action.CursorUp, action.CursorDown, action.CursorToFirst, action.CursorToLast, action.ToggleMark:
	case action.Copy:
		m.submit(jobs.OpCopy, taken, dest.Path())
		m.refresh(src)
	case action.Move:
		m.submit(jobs.OpMove, taken, dest.Path())
		m.refresh(src, dest)
	case action.Delete:
		m.submit(jobs.OpDelete, taken, "")
		m.refresh(src)
	case action.Execute:
		cmd = m.launch(config.KindExec, a.Path, src.Path())
	case action.Edit:
		cmd = m.launch(config.KindEdit, a.Path, src.Path())
	case action.StartCreateDir:
		m.openOverlay(overlay.NewTextInput(overlay.ModeCreateDir, ""))
	case action.StartMarkPattern:
		m.openOverlay(overlay.NewTextInput(overlay.ModeMarkPattern, ""))
	case action.StartRename:
		m.openOverlay(overlay.NewTextInput(overlay.ModeRename, a.Entry))
	case action.InputChanged:
	case action.EndInputText:
		m.endInput(src, a)
	case action.StartSearch:
		m.openOverlay(overlay.NewSearchLine())
	case action.EndSearch:
		m.closeOverlay(events.OverlayReasonCancel)
	case action.Search:
		if line, ok := m.overlay.(*overlay.SearchLine); ok {
			hint := ""
			if src.Match(a.Pattern) < 0 {
				hint = src.Suggest(a.Pattern)
			}
			line.SetHint(hint)
		}
	case action.OpenBookmarks:
		m.openOverlay(overlay.NewBookmarkList(m.settings.Bookmarks))
	case action.CloseBookmarks:
		if a.Path == "" {
			m.closeOverlay(events.OverlayReasonCancel)
			break
		}
		m.closeOverlay(events.OverlayReasonSubmit)
		m.replaceSource(func() (*pane.Pane, error) { return pane.New(a.Path) })
	default:
		events.Action.Unhandled(a.Name())
	}
	m.syncWatch()
	return cmd
}

// replaceSource swaps in a freshly listed pane. A failed listing keeps the
// current pane.
func (m *Model) replaceSource(open func() (*pane.Pane, error)) {
	p, err := open()
	if err != nil {
		m.fail(err)
		return
	}
	m.panes[m.src] = p
	m.views[m.src].Reset()
	events.Pane.Replace(m.src, p.Path())
}

func (m *Model) refresh(panes ...*pane.Pane) {
	for _, p := range panes {
		if err := p.Refresh(); err != nil {
			logging.Error(err)
		}
	}
}

func (m *Model) submit(op jobs.Op, entries []pane.Entry, destDir string) {
	if len(entries) == 0 {
		return
	}
	sources := make([]jobs.Source, len(entries))
	for i, e := range entries {
		sources[i] = jobs.Source{Path: e.Path, Dir: e.Dir}
	}
	m.runner.Submit(op, sources, destDir)
}

func (m *Model) launch(kind config.CommandKind, target, dir string) tea.Cmd {
	return m.bus.Execute(command.Request{Kind: kind, Target: target, Dir: dir})
}

func (m *Model) endInput(src *pane.Pane, a action.EndInputText) {
	input, ok := m.overlay.(*overlay.TextInput)
	switch {
	case !a.Submitted:
		m.closeOverlay(events.OverlayReasonCancel)
	case a.Text == "":
		m.closeOverlay(events.OverlayReasonEmpty)
	default:
		m.closeOverlay(events.OverlayReasonSubmit)
	}
	if !ok || !a.Submitted || a.Text == "" {
		return
	}
	var err error
	switch input.Mode() {
	case overlay.ModeCreateDir:
		err = src.CreateDir(a.Text)
		m.refresh(src)
	case overlay.ModeRename:
		err = src.Rename(a.Text)
		m.refresh(src)
	case overlay.ModeMarkPattern:
		_, err = src.MarkGlob(a.Text)
	}
	if err != nil {
		m.fail(err)
	}
}

func (m *Model) openOverlay(o overlay.Overlay) {
	m.overlay = o
	events.Overlay.Open(o.Kind().String())
}

func (m *Model) closeOverlay(reason events.OverlayReason) {
	if m.overlay == nil {
		return
	}
	events.Overlay.Close(m.overlay.Kind().String(), reason)
	m.overlay = nil
}

// fail logs err and shows it on the status row.
func (m *Model) fail(err error) {
	logging.Error(err)
	events.Action.Error(err)
	m.status = jobs.Result{Err: err}.Status()
}

func (m *Model) syncWatch() {
	if m.watcher == nil {
		return
	}
	paths := [2]string{m.panes[0].Path(), m.panes[1].Path()}
	if paths == m.watched {
		return
	}
	m.watched = paths
	if err := m.watcher.SetPaths(paths[0], paths[1]); err != nil {
		logging.Error(err)
	}
}
