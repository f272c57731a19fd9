package overlay

import (
	"github.com/atomicstack/dualpane/internal/action"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects what a submitted TextInput value is used for.
type Mode int

const (
	ModeCreateDir Mode = iota
	ModeRename
	ModeMarkPattern
)

// Prompt is the status row label shown before the value.
func (m Mode) Prompt() string {
	switch m {
	case ModeRename:
		return "Rename: "
	case ModeMarkPattern:
		return "Mark: "
	default:
		return "Dir: "
	}
}

func (m Mode) String() string {
	switch m {
	case ModeRename:
		return "rename"
	case ModeMarkPattern:
		return "mark-pattern"
	default:
		return "create-dir"
	}
}

// TextInput edits a single line for create-directory, rename and glob
// marking.
type TextInput struct {
	mode  Mode
	input textinput.Model
}

// NewTextInput opens an input in mode, pre-filled with initial.
func NewTextInput(mode Mode, initial string) *TextInput {
	ti := textinput.New()
	ti.Prompt = mode.Prompt()
	ti.Cursor.SetMode(cursor.CursorStatic)
	if initial != "" {
		ti.SetValue(initial)
		ti.CursorEnd()
	}
	ti.Focus()
	return &TextInput{mode: mode, input: ti}
}

func (t *TextInput) Kind() Kind    { return KindTextInput }
func (t *TextInput) Mode() Mode    { return t.mode }
func (t *TextInput) Value() string { return t.input.Value() }
func (t *TextInput) View() string  { return t.input.View() }

// Update edits the value on printable keys and backspace. Enter submits;
// any other key cancels.
func (t *TextInput) Update(msg tea.KeyMsg) action.Action {
	switch msg.Type {
	case tea.KeySpace:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
		fallthrough
	case tea.KeyRunes, tea.KeyBackspace:
		t.input, _ = t.input.Update(msg)
		return action.InputChanged{Text: t.input.Value()}
	case tea.KeyEnter:
		return action.EndInputText{Text: t.input.Value(), Submitted: true}
	}
	return action.EndInputText{}
}
