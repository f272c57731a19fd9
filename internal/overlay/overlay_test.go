package overlay

import (
	"testing"

	"github.com/atomicstack/dualpane/internal/action"
	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTextInputAccumulatesAndSubmits(t *testing.T) {
	in := NewTextInput(ModeCreateDir, "")
	if got := in.Update(runes("a")); got != (action.InputChanged{Text: "a"}) {
		t.Fatalf("expected InputChanged a, got %#v", got)
	}
	in.Update(runes("b"))
	in.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	in.Update(runes("c"))
	if got := in.Update(tea.KeyMsg{Type: tea.KeyBackspace}); got != (action.InputChanged{Text: "ab "}) {
		t.Fatalf("expected backspace to drop last rune, got %#v", got)
	}
	if got := in.Update(tea.KeyMsg{Type: tea.KeyEnter}); got != (action.EndInputText{Text: "ab ", Submitted: true}) {
		t.Fatalf("expected submit, got %#v", got)
	}
}

func TestTextInputCancelsOnOtherKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyTab},
		{Type: tea.KeyUp},
		{Type: tea.KeyCtrlC},
	} {
		in := NewTextInput(ModeRename, "x")
		if got := in.Update(msg); got != (action.EndInputText{}) {
			t.Fatalf("key %q: expected cancel, got %#v", msg.String(), got)
		}
	}
}

func TestTextInputRenameIsSeeded(t *testing.T) {
	in := NewTextInput(ModeRename, "old.txt")
	if in.Value() != "old.txt" {
		t.Fatalf("expected seeded value, got %q", in.Value())
	}
	if got := in.Update(runes("2")); got != (action.InputChanged{Text: "old.txt2"}) {
		t.Fatalf("expected append at end, got %#v", got)
	}
	if in.Mode().Prompt() != "Rename: " {
		t.Fatalf("unexpected prompt %q", in.Mode().Prompt())
	}
}

func TestTextInputEnterOnEmptyValue(t *testing.T) {
	in := NewTextInput(ModeCreateDir, "")
	if got := in.Update(tea.KeyMsg{Type: tea.KeyEnter}); got != (action.EndInputText{Submitted: true}) {
		t.Fatalf("expected empty submit, got %#v", got)
	}
}

func TestSearchLineEmitsPatternPerKey(t *testing.T) {
	s := NewSearchLine()
	if got := s.Update(runes("F")); got != (action.Search{Pattern: "F"}) {
		t.Fatalf("expected Search F, got %#v", got)
	}
	if got := s.Update(runes("o")); got != (action.Search{Pattern: "Fo"}) {
		t.Fatalf("expected Search Fo, got %#v", got)
	}
	if got := s.Update(tea.KeyMsg{Type: tea.KeyBackspace}); got != (action.Search{Pattern: "F"}) {
		t.Fatalf("expected Search F after backspace, got %#v", got)
	}
	s.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := s.Update(tea.KeyMsg{Type: tea.KeyBackspace}); got != (action.Search{Pattern: ""}) {
		t.Fatalf("expected empty pattern, got %#v", got)
	}
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeyEsc}, {Type: tea.KeyDown}} {
		if got := s.Update(msg); got != (action.EndSearch{}) {
			t.Fatalf("key %q: expected EndSearch, got %#v", msg.String(), got)
		}
	}
}

func TestBookmarkListSelectsByLetter(t *testing.T) {
	b := NewBookmarkList([]string{"/home/u", "/tmp"})
	if got := b.Update(runes("b")); got != (action.CloseBookmarks{Path: "/tmp"}) {
		t.Fatalf("expected /tmp, got %#v", got)
	}
	if got := b.Update(runes("a")); got != (action.CloseBookmarks{Path: "/home/u"}) {
		t.Fatalf("expected /home/u, got %#v", got)
	}
	for _, msg := range []tea.KeyMsg{runes("c"), runes("A"), runes("1"), {Type: tea.KeyEnter}, {Type: tea.KeyEsc}} {
		if got := b.Update(msg); got != (action.CloseBookmarks{}) {
			t.Fatalf("key %q: expected close without path, got %#v", msg.String(), got)
		}
	}
}

func TestBookmarkListWithoutBookmarksAlwaysCloses(t *testing.T) {
	b := NewBookmarkList(nil)
	if got := b.Update(runes("a")); got != (action.CloseBookmarks{}) {
		t.Fatalf("expected close without path, got %#v", got)
	}
}

func TestBookmarkListCapsAtAlphabet(t *testing.T) {
	paths := make([]string, 30)
	for i := range paths {
		paths[i] = "/p" + Letter(i%26)
	}
	b := NewBookmarkList(paths)
	if n := len(b.Paths()); n != MaxBookmarks {
		t.Fatalf("expected %d addressable bookmarks, got %d", MaxBookmarks, n)
	}
	if got := b.Update(runes("z")); got != (action.CloseBookmarks{Path: "/pz"}) {
		t.Fatalf("expected last letter to map to 26th path, got %#v", got)
	}
}

func TestOverlayKinds(t *testing.T) {
	overlays := []Overlay{NewTextInput(ModeCreateDir, ""), NewSearchLine(), NewBookmarkList(nil)}
	want := []Kind{KindTextInput, KindSearch, KindBookmarks}
	for i, o := range overlays {
		if o.Kind() != want[i] {
			t.Fatalf("overlay %d: expected %s, got %s", i, want[i], o.Kind())
		}
	}
}
