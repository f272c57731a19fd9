// Package overlay holds the modal sub-states that take over key handling
// while they are open. At most one overlay is active at a time; the UI keeps
// it in a single Overlay field so that exclusivity holds by construction.
//
// Every Update call returns a non-nil action: an overlay never lets a key
// fall through to the pane or the global bindings.
package overlay

import (
	"github.com/atomicstack/dualpane/internal/action"
	tea "github.com/charmbracelet/bubbletea"
)

type Kind int

const (
	KindTextInput Kind = iota + 1
	KindSearch
	KindBookmarks
)

func (k Kind) String() string {
	switch k {
	case KindTextInput:
		return "text-input"
	case KindSearch:
		return "search"
	case KindBookmarks:
		return "bookmarks"
	default:
		return "unknown"
	}
}

// Overlay is implemented by *TextInput, *SearchLine and *BookmarkList only.
type Overlay interface {
	Kind() Kind
	Update(msg tea.KeyMsg) action.Action
	overlay()
}

func (*TextInput) overlay()    {}
func (*SearchLine) overlay()   {}
func (*BookmarkList) overlay() {}
