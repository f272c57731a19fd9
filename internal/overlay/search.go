package overlay

import (
	"github.com/atomicstack/dualpane/internal/action"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchLine collects an incremental search pattern. It has no submit key:
// anything other than a printable key or backspace closes it.
type SearchLine struct {
	pattern []rune
	hint    string
}

func NewSearchLine() *SearchLine {
	return &SearchLine{}
}

func (s *SearchLine) Kind() Kind       { return KindSearch }
func (s *SearchLine) Pattern() string  { return string(s.pattern) }
func (s *SearchLine) Hint() string     { return s.hint }
func (s *SearchLine) SetHint(h string) { s.hint = h }

func (s *SearchLine) Update(msg tea.KeyMsg) action.Action {
	switch msg.Type {
	case tea.KeyRunes:
		s.pattern = append(s.pattern, msg.Runes...)
	case tea.KeySpace:
		s.pattern = append(s.pattern, ' ')
	case tea.KeyBackspace:
		if len(s.pattern) > 0 {
			s.pattern = s.pattern[:len(s.pattern)-1]
		}
	default:
		return action.EndSearch{}
	}
	return action.Search{Pattern: string(s.pattern)}
}
