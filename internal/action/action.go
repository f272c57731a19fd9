// Package action defines the closed vocabulary of intents produced by input
// handling and consumed by the dispatcher. Actions are plain values: they
// never point into live pane or overlay state, so they stay valid after the
// state that produced them has changed.
package action

// Action is implemented only by the types in this package.
type Action interface {
	Name() string
	sealed()
}

type closed struct{}

func (closed) sealed() {}

// Lifecycle.
type (
	Quit    struct{ closed }
	Refresh struct{ closed }
)

// Cursor movement inside the source pane.
type (
	CursorUp      struct{ closed }
	CursorDown    struct{ closed }
	CursorToFirst struct{ closed }
	CursorToLast  struct{ closed }
)

// Pane management.
type (
	SwitchSrc    struct{ closed }
	DuplicateDir struct{ closed }

	// ChangeDir replaces the source pane with a listing of Path.
	ChangeDir struct {
		closed
		Path string
	}

	// ChangeDirToParent lists the parent of Path and preselects Path.
	ChangeDirToParent struct {
		closed
		Path string
	}
)

// Selection and activation.
type (
	ToggleMark struct{ closed }

	Execute struct {
		closed
		Path string
	}

	Edit struct {
		closed
		Path string
	}
)

// Bulk operations over marked entries.
type (
	Copy   struct{ closed }
	Move   struct{ closed }
	Delete struct{ closed }
)

// Text input.
type (
	StartCreateDir   struct{ closed }
	StartMarkPattern struct{ closed }

	// StartRename seeds the input with the current entry name.
	StartRename struct {
		closed
		Entry string
	}

	// InputChanged is emitted on every keystroke the text input consumes.
	InputChanged struct {
		closed
		Text string
	}

	// EndInputText closes the text input. Submitted is false on cancel.
	EndInputText struct {
		closed
		Text      string
		Submitted bool
	}
)

// Search.
type (
	StartSearch struct{ closed }
	EndSearch   struct{ closed }

	Search struct {
		closed
		Pattern string
	}
)

// Bookmarks.
type (
	OpenBookmarks struct{ closed }

	// CloseBookmarks closes the list. An empty Path means nothing was picked.
	CloseBookmarks struct {
		closed
		Path string
	}
)

func (Quit) Name() string              { return "quit" }
func (Refresh) Name() string           { return "refresh" }
func (CursorUp) Name() string          { return "cursor.up" }
func (CursorDown) Name() string        { return "cursor.down" }
func (CursorToFirst) Name() string     { return "cursor.first" }
func (CursorToLast) Name() string      { return "cursor.last" }
func (SwitchSrc) Name() string         { return "pane.switch" }
func (DuplicateDir) Name() string      { return "pane.duplicate" }
func (ChangeDir) Name() string         { return "dir.change" }
func (ChangeDirToParent) Name() string { return "dir.parent" }
func (ToggleMark) Name() string        { return "mark.toggle" }
func (Execute) Name() string           { return "entry.execute" }
func (Edit) Name() string              { return "entry.edit" }
func (Copy) Name() string              { return "marks.copy" }
func (Move) Name() string              { return "marks.move" }
func (Delete) Name() string            { return "marks.delete" }
func (StartCreateDir) Name() string    { return "input.mkdir" }
func (StartMarkPattern) Name() string  { return "input.mark-pattern" }
func (StartRename) Name() string       { return "input.rename" }
func (InputChanged) Name() string      { return "input.changed" }
func (EndInputText) Name() string      { return "input.end" }
func (StartSearch) Name() string       { return "search.start" }
func (EndSearch) Name() string         { return "search.end" }
func (Search) Name() string            { return "search" }
func (OpenBookmarks) Name() string     { return "bookmarks.open" }
func (CloseBookmarks) Name() string    { return "bookmarks.close" }

// All returns one zero value of every action type. Tests use it to check that
// handlers cover the whole vocabulary.
func All() []Action {
	return []Action{
		Quit{}, Refresh{},
		CursorUp{}, CursorDown{}, CursorToFirst{}, CursorToLast{},
		SwitchSrc{}, DuplicateDir{}, ChangeDir{}, ChangeDirToParent{},
		ToggleMark{}, Execute{}, Edit{},
		Copy{}, Move{}, Delete{},
		StartCreateDir{}, StartMarkPattern{}, StartRename{}, InputChanged{}, EndInputText{},
		StartSearch{}, EndSearch{}, Search{},
		OpenBookmarks{}, CloseBookmarks{},
	}
}
