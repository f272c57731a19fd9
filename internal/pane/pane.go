// Package pane implements a single directory view: a sorted listing, a
// cursor over a synthetic ".." row followed by the entries, per-entry marks
// and the filesystem mutations that act on the current directory.
//
// Row 0 is always the parent row. Rows 1..Len() map to Entries()[row-1], so
// the selection never leaves [0, Len()].
package pane

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atomicstack/dualpane/internal/action"
	"github.com/atomicstack/dualpane/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	// ErrParentRow is returned by operations that need a real entry while
	// the cursor sits on the parent row.
	ErrParentRow = errors.New("parent row selected")
	// ErrEmptyName is returned when a create or rename is given a blank name.
	ErrEmptyName = errors.New("empty name")
)

// Pane is a directory listing with a cursor. It is owned by a single
// goroutine and is not safe for concurrent use.
type Pane struct {
	path      string
	entries   []Entry
	selection int
}

// New lists path with the cursor on the parent row.
func New(path string) (*Pane, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	entries, err := list(abs)
	if err != nil {
		return nil, err
	}
	return &Pane{path: abs, entries: entries}, nil
}

// NewWithSelection lists path and puts the cursor on the entry whose path
// equals selectPath, falling back to the parent row.
func NewWithSelection(path, selectPath string) (*Pane, error) {
	p, err := New(path)
	if err != nil {
		return nil, err
	}
	target := filepath.Clean(selectPath)
	for i, e := range p.entries {
		if e.Path == target {
			p.selection = i + 1
			break
		}
	}
	return p, nil
}

func (p *Pane) Path() string   { return p.path }
func (p *Pane) Len() int       { return len(p.entries) }
func (p *Pane) Selection() int { return p.selection }

// Entries returns a copy of the current listing.
func (p *Pane) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Selected returns the entry under the cursor. It reports false on the
// parent row.
func (p *Pane) Selected() (Entry, bool) {
	if p.selection <= 0 || p.selection > len(p.entries) {
		return Entry{}, false
	}
	return p.entries[p.selection-1], true
}

// Apply runs the pane-local half of a dispatched action. Bulk operations
// return the entries that were marked; their marks are cleared before Apply
// returns.
func (p *Pane) Apply(a action.Action) []Entry {
	switch a := a.(type) {
	case action.CursorUp:
		p.CursorUp()
	case action.CursorDown:
		p.CursorDown()
	case action.CursorToFirst:
		p.CursorToFirst()
	case action.CursorToLast:
		p.CursorToLast()
	case action.ToggleMark:
		p.ToggleMark()
	case action.Search:
		p.Search(a.Pattern)
	case action.Copy, action.Move, action.Delete:
		return p.TakeMarked()
	}
	return nil
}

func (p *Pane) CursorUp() {
	if p.selection > 0 {
		p.selection--
	}
	events.Pane.Cursor(p.path, p.selection)
}

func (p *Pane) CursorDown() {
	if p.selection < len(p.entries) {
		p.selection++
	}
	events.Pane.Cursor(p.path, p.selection)
}

func (p *Pane) CursorToFirst() {
	p.selection = 0
	events.Pane.Cursor(p.path, p.selection)
}

func (p *Pane) CursorToLast() {
	p.selection = len(p.entries)
	events.Pane.Cursor(p.path, p.selection)
}

// ToggleMark flips the mark on the selected entry and advances the cursor.
// On the parent row it only advances.
func (p *Pane) ToggleMark() {
	if e, ok := p.Selected(); ok {
		p.entries[p.selection-1].Marked = !e.Marked
		events.Pane.Mark(p.path, e.Name, !e.Marked)
	}
	p.CursorDown()
}

// Marked returns the marked entries in listing order.
func (p *Pane) Marked() []Entry {
	var out []Entry
	for _, e := range p.entries {
		if e.Marked {
			out = append(out, e)
		}
	}
	return out
}

// TakeMarked returns the marked entries and clears their marks.
func (p *Pane) TakeMarked() []Entry {
	out := p.Marked()
	for i := range p.entries {
		p.entries[i].Marked = false
	}
	return out
}

// Match returns the row of the first entry whose name starts with pattern,
// ignoring case, or -1.
func (p *Pane) Match(pattern string) int {
	needle := strings.ToLower(pattern)
	for i, e := range p.entries {
		if strings.HasPrefix(strings.ToLower(e.Name), needle) {
			return i + 1
		}
	}
	return -1
}

// Search moves the cursor to Match(pattern) and reports whether anything
// matched. On a miss the cursor stays put.
func (p *Pane) Search(pattern string) bool {
	row := p.Match(pattern)
	if row < 0 {
		events.Pane.Search(p.path, pattern, p.selection, false)
		return false
	}
	p.selection = row
	events.Pane.Search(p.path, pattern, p.selection, true)
	return true
}

// Suggest returns the entry name closest to pattern by fuzzy rank, or "" if
// nothing is close.
func (p *Pane) Suggest(pattern string) string {
	if strings.TrimSpace(pattern) == "" || len(p.entries) == 0 {
		return ""
	}
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(pattern, names)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.Target
}

// Refresh re-lists the directory. The cursor is clamped to the new listing
// and all marks are dropped. A failed listing leaves the pane empty.
func (p *Pane) Refresh() error {
	before := p.selection
	entries, err := list(p.path)
	p.entries = entries
	if p.selection > len(p.entries) {
		p.selection = len(p.entries)
	}
	events.Pane.Refresh(p.path, before, p.selection)
	return err
}
