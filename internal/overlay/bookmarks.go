package overlay

import (
	"github.com/atomicstack/dualpane/internal/action"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxBookmarks is the number of addressable letters.
const MaxBookmarks = 26

// BookmarkList picks one of the configured paths by letter.
type BookmarkList struct {
	paths []string
}

func NewBookmarkList(paths []string) *BookmarkList {
	return &BookmarkList{paths: append([]string(nil), paths...)}
}

func (b *BookmarkList) Kind() Kind { return KindBookmarks }

// Paths returns the addressable bookmarks, at most MaxBookmarks.
func (b *BookmarkList) Paths() []string {
	if len(b.paths) > MaxBookmarks {
		return b.paths[:MaxBookmarks]
	}
	return b.paths
}

// Letter returns the key that selects bookmark i.
func Letter(i int) string {
	return string(rune('a' + i))
}

// Update closes the list. A lowercase letter within range carries the
// matching path; everything else closes with no path.
func (b *BookmarkList) Update(msg tea.KeyMsg) action.Action {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return action.CloseBookmarks{}
	}
	r := msg.Runes[0]
	if r < 'a' || r > 'z' {
		return action.CloseBookmarks{}
	}
	idx := int(r - 'a')
	paths := b.Paths()
	if idx >= len(paths) {
		return action.CloseBookmarks{}
	}
	return action.CloseBookmarks{Path: paths[idx]}
}
