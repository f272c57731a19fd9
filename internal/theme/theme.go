package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	PaneBorder       *lipgloss.Style
	ActivePaneBorder *lipgloss.Style
	Title            *lipgloss.Style
	ActiveTitle      *lipgloss.Style
	Row              *lipgloss.Style
	DirRow           *lipgloss.Style
	MarkedRow        *lipgloss.Style
	Cursor           *lipgloss.Style
	InactiveCursor   *lipgloss.Style
	Meta             *lipgloss.Style
	Status           *lipgloss.Style
	Error            *lipgloss.Style
	Prompt           *lipgloss.Style
	Hint             *lipgloss.Style
	BookmarkBox      *lipgloss.Style
	BookmarkKey      *lipgloss.Style
}

var defaultStyles = Styles{
	PaneBorder: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")),
	),
	ActivePaneBorder: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	ActiveTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Row: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	DirRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	),
	MarkedRow: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Underline(true).Bold(true),
	),
	InactiveCursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Meta: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	BookmarkBox: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("34")),
	),
	BookmarkKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
