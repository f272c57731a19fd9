package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const gap = "  "

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	return Fit(rows, alignments, 0, -1)
}

// Fit pads rows like Format and, when width > 0, shrinks column flex so each
// row fits in width cells. Cells cut short end in "…".
func Fit(rows [][]string, alignments []Alignment, width, flex int) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	if width > 0 && flex >= 0 && flex < len(widths) {
		total := len(gap) * (len(widths) - 1)
		for _, w := range widths {
			total += w
		}
		if over := total - width; over > 0 {
			widths[flex] -= over
			if widths[flex] < 1 {
				widths[flex] = 1
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(gap)
			}
			if cellWidth(cell) > widths[c] {
				cell = ansi.Truncate(cell, widths[c], "…")
			}
			pad := widths[c] - cellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				writeSpaces(&b, pad)
			}
		}
		out[i] = b.String()
	}
	return out
}

func columnWidths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := cellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
