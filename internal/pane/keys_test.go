package pane

import (
	"path/filepath"
	"testing"

	"github.com/atomicstack/dualpane/internal/action"
	"github.com/atomicstack/dualpane/internal/keymap"
	"github.com/atomicstack/dualpane/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandleKeyOnParentRow(t *testing.T) {
	root := testutil.MakeTree(t, map[string]string{"sub/": "", "f.txt": ""})
	p, err := New(root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	km := keymap.Default().Pane

	if got := p.HandleKey(km, tea.KeyMsg{Type: tea.KeyEnter}); got != (action.ChangeDirToParent{Path: root}) {
		t.Fatalf("expected parent on enter, got %#v", got)
	}
	if got := p.HandleKey(km, runes("h")); got != (action.ChangeDirToParent{Path: root}) {
		t.Fatalf("expected parent on h, got %#v", got)
	}
	if got := p.HandleKey(km, runes("l")); got != nil {
		t.Fatalf("expected l to decline on parent row, got %#v", got)
	}
	if got := p.HandleKey(km, runes("r")); got != nil {
		t.Fatalf("expected rename to decline on parent row, got %#v", got)
	}
	if got := p.HandleKey(km, runes("e")); got != (action.Edit{Path: root}) {
		t.Fatalf("expected edit of pane dir, got %#v", got)
	}
}

func TestHandleKeyOnEntries(t *testing.T) {
	root := testutil.MakeTree(t, map[string]string{"sub/": "", "f.txt": ""})
	p, err := New(root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	km := keymap.Default().Pane
	sub := filepath.Join(root, "sub")
	file := filepath.Join(root, "f.txt")

	p.CursorDown()
	if got := p.HandleKey(km, runes("l")); got != (action.ChangeDir{Path: sub}) {
		t.Fatalf("expected descend into sub, got %#v", got)
	}
	if got := p.HandleKey(km, tea.KeyMsg{Type: tea.KeyEnter}); got != (action.ChangeDir{Path: sub}) {
		t.Fatalf("expected enter to descend, got %#v", got)
	}

	p.CursorDown()
	if got := p.HandleKey(km, runes("l")); got != nil {
		t.Fatalf("expected l to decline on a file, got %#v", got)
	}
	if got := p.HandleKey(km, tea.KeyMsg{Type: tea.KeyEnter}); got != (action.Execute{Path: file}) {
		t.Fatalf("expected execute, got %#v", got)
	}
	if got := p.HandleKey(km, runes("e")); got != (action.Edit{Path: file}) {
		t.Fatalf("expected edit of file, got %#v", got)
	}
	if got := p.HandleKey(km, runes("r")); got != (action.StartRename{Entry: "f.txt"}) {
		t.Fatalf("expected rename seeded with name, got %#v", got)
	}
}

func TestHandleKeySimpleBindings(t *testing.T) {
	p, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	km := keymap.Default().Pane
	cases := map[string]action.Action{
		"j": action.CursorDown{},
		"k": action.CursorUp{},
		"g": action.CursorToFirst{},
		"G": action.CursorToLast{},
	}
	for k, want := range cases {
		if got := p.HandleKey(km, runes(k)); got != want {
			t.Fatalf("key %q: expected %#v, got %#v", k, want, got)
		}
	}
	if got := p.HandleKey(km, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}); got != (action.ToggleMark{}) {
		t.Fatalf("expected toggle mark on space, got %#v", got)
	}
	if got := p.HandleKey(km, runes("c")); got != nil {
		t.Fatalf("expected global key to be declined, got %#v", got)
	}
}
