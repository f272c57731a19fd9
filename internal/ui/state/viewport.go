// Package state holds presentation-only state that the panes themselves do
// not track.
package state

// Viewport is the first visible row of a scrolled list.
type Viewport struct {
	Offset int
}

// EnsureVisible adjusts the offset so cursor stays inside a window of
// maxVisible rows over a list of total rows.
func (v *Viewport) EnsureVisible(cursor, total, maxVisible int) {
	if total <= 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if cursor < v.Offset {
		v.Offset = cursor
	}
	upper := v.Offset + maxVisible - 1
	if cursor > upper {
		v.Offset = cursor - maxVisible + 1
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
}

// Window returns the half-open row range currently visible.
func (v *Viewport) Window(total, maxVisible int) (start, end int) {
	if maxVisible <= 0 || total <= maxVisible {
		return 0, total
	}
	start = v.Offset
	if start+maxVisible > total {
		start = total - maxVisible
	}
	if start < 0 {
		start = 0
	}
	return start, start + maxVisible
}

// Reset scrolls back to the top.
func (v *Viewport) Reset() {
	v.Offset = 0
}
