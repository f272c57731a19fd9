// Package keymap holds the key bindings for normal mode. Overlays consume
// keys directly and do not consult these tables.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Pane lists the bindings offered to the active directory pane.
type Pane struct {
	Down     key.Binding
	Up       key.Binding
	Parent   key.Binding
	Descend  key.Binding
	Activate key.Binding
	First    key.Binding
	Last     key.Binding
	Mark     key.Binding
	Edit     key.Binding
	Rename   key.Binding
}

// Global lists the bindings consulted when the pane declines a key.
type Global struct {
	Quit        key.Binding
	Switch      key.Binding
	Duplicate   key.Binding
	Search      key.Binding
	Copy        key.Binding
	Move        key.Binding
	Delete      key.Binding
	CreateDir   key.Binding
	Bookmarks   key.Binding
	MarkPattern key.Binding
	Refresh     key.Binding
}

// Map bundles both tables.
type Map struct {
	Pane   Pane
	Global Global
}

// Default returns the stock bindings.
func Default() Map {
	return Map{
		Pane: Pane{
			Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
			Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
			Parent:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "parent")),
			Descend:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "open dir")),
			Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
			First:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first")),
			Last:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last")),
			Mark:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "mark")),
			Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
			Rename:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		},
		Global: Global{
			Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
			Switch:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
			Duplicate:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "same dir")),
			Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
			Copy:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
			Move:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
			Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
			CreateDir:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "mkdir")),
			Bookmarks:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bookmarks")),
			MarkPattern: key.NewBinding(key.WithKeys("*"), key.WithHelp("*", "mark glob")),
			Refresh:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
		},
	}
}

// Help returns the short help line for the global table.
func (g Global) Help() []key.Binding {
	return []key.Binding{g.Switch, g.Search, g.Copy, g.Move, g.Delete, g.CreateDir, g.Bookmarks, g.Quit}
}
