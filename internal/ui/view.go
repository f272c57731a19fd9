package ui

import (
	"os"
	"strings"
	"time"

	"github.com/atomicstack/dualpane/internal/format/table"
	"github.com/atomicstack/dualpane/internal/overlay"
	"github.com/atomicstack/dualpane/internal/pane"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
)

const (
	timeLayout  = "2006-01-02 15:04:05"
	missingTime = "-------- --:--:--"
	// border rows plus the title row
	paneChrome = 3
)

var rowAlignments = []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignLeft}

type styledLine struct {
	text  string
	style *lipgloss.Style
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	leftW, rightW := 0, 0
	if m.width > 0 {
		leftW = m.width / 2
		rightW = m.width - leftW
	}
	paneH := 0
	if m.height > 1 {
		paneH = m.height - 1
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPane(0, leftW, paneH),
		m.renderPane(1, rightW, paneH),
	)
	return body + "\n" + m.statusLine()
}

func (m *Model) renderPane(i, width, height int) string {
	active := i == m.src
	innerW := 0
	if width > 2 {
		innerW = width - 2
	}
	box := *styles.PaneBorder
	if active {
		box = *styles.ActivePaneBorder
	}
	var lines []styledLine
	if bookmarks, ok := m.overlay.(*overlay.BookmarkList); ok && active {
		box = *styles.BookmarkBox
		lines = bookmarkLines(bookmarks, innerW)
	} else {
		lines = m.paneLines(i, innerW)
	}
	if innerW > 0 {
		box = box.Width(innerW)
	}
	if height > 2 {
		box = box.Height(height - 2)
	}
	lines = applyWidth(lines, innerW)
	return box.Render(renderLines(lines))
}

func (m *Model) paneLines(i, width int) []styledLine {
	p := m.panes[i]
	active := i == m.src
	titleStyle := styles.Title
	if active {
		titleStyle = styles.ActiveTitle
	}
	lines := []styledLine{{text: p.Path(), style: titleStyle}}

	entries := p.Entries()
	rows := formatRows(entries, dirModTime(p.Path()), width)
	start, end := m.views[i].Window(len(rows), m.visibleRows())
	for r := start; r < end; r++ {
		lines = append(lines, styledLine{text: rows[r], style: rowStyle(entries, r, p.Selection(), active)})
	}
	return lines
}

func rowStyle(entries []pane.Entry, row, selection int, active bool) *lipgloss.Style {
	switch {
	case row == selection && active:
		return styles.Cursor
	case row == selection:
		return styles.InactiveCursor
	case row == 0:
		return styles.DirRow
	}
	e := entries[row-1]
	switch {
	case e.Marked:
		return styles.MarkedRow
	case e.Dir:
		return styles.DirRow
	default:
		return styles.Row
	}
}

// formatRows renders the ".." row followed by one row per entry: mark, name,
// size and modification time.
func formatRows(entries []pane.Entry, dirMod time.Time, width int) []string {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, []string{" ", "..", "-", formatTime(dirMod)})
	for _, e := range entries {
		mark := " "
		if e.Marked {
			mark = "*"
		}
		name, size := e.Name, "-"
		if e.Dir {
			name += "/"
		} else {
			size = humanize.Bytes(uint64(e.Size))
		}
		rows = append(rows, []string{mark, name, size, formatTime(e.ModTime)})
	}
	return table.Fit(rows, rowAlignments, width, 1)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return missingTime
	}
	return t.Format(timeLayout)
}

func dirModTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func bookmarkLines(b *overlay.BookmarkList, width int) []styledLine {
	lines := []styledLine{{text: "Bookmarks", style: styles.ActiveTitle}}
	paths := b.Paths()
	if len(paths) == 0 {
		return append(lines, styledLine{text: "(no bookmarks)", style: styles.Meta})
	}
	rows := make([][]string, len(paths))
	for i, p := range paths {
		rows[i] = []string{styles.BookmarkKey.Render(overlay.Letter(i)), p}
	}
	for _, row := range table.Fit(rows, nil, width, 1) {
		lines = append(lines, styledLine{text: row, style: styles.Row})
	}
	return lines
}

func (m *Model) statusLine() string {
	var line string
	switch o := m.overlay.(type) {
	case *overlay.TextInput:
		line = o.View()
	case *overlay.SearchLine:
		line = styles.Prompt.Render("/") + o.Pattern()
		if hint := o.Hint(); hint != "" {
			line += styles.Hint.Render("  ~ " + hint)
		}
	case *overlay.BookmarkList:
		line = styles.Prompt.Render("Bookmarks: ") + "press a letter"
	default:
		style := styles.Status
		if strings.HasPrefix(m.status, "Err:") {
			style = styles.Error
		}
		line = style.Render(m.status)
	}
	if m.width > 0 && ansi.StringWidth(line) > m.width {
		line = truncate.StringWithTail(line, uint(m.width-1), "…")
	}
	return line
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{text: truncateText(line.text, width), style: line.style}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
