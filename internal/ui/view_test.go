package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/dualpane/internal/pane"
	"github.com/atomicstack/dualpane/internal/testutil"
)

func sampleEntries() []pane.Entry {
	return []pane.Entry{
		{Name: "docs", Dir: true, ModTime: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{Name: "notes.txt", Size: 1234, Marked: true, ModTime: time.Date(2024, 3, 2, 18, 5, 7, 0, time.UTC)},
		{Name: "zero.bin"},
	}
}

func TestFormatRows(t *testing.T) {
	dirMod := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	rows := formatRows(sampleEntries(), dirMod, 0)
	testutil.AssertGolden(t, "pane_rows.txt", strings.Join(rows, "\n")+"\n")
}

func TestFormatRowsShrinksNameColumn(t *testing.T) {
	dirMod := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	rows := formatRows(sampleEntries(), dirMod, 38)
	testutil.AssertGolden(t, "pane_rows_narrow.txt", strings.Join(rows, "\n")+"\n")
}

func TestFormatTimePlaceholder(t *testing.T) {
	if got := formatTime(time.Time{}); got != "-------- --:--:--" {
		t.Fatalf("unexpected placeholder %q", got)
	}
}

func TestTruncateText(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated", 5, "trun…"},
		{"x", 1, "x"},
		{"\x1b[1ma\x1b[0m  /srv", 7, "\x1b[1ma\x1b[0m  /srv"},
		{"any", 0, "any"},
	}
	for _, tc := range cases {
		if got := truncateText(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncateText(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestStatusLineShowsErrors(t *testing.T) {
	root := testutil.MakeTree(t, map[string]string{"file.txt": "x"})
	h := newTestHarness(t, root, nil)
	h.Model().status = "Err: boom"

	lines := strings.Split(h.View(), "\n")
	if last := lines[len(lines)-1]; !strings.Contains(last, "Err: boom") {
		t.Fatalf("expected error on last row, got %q", last)
	}
}

func TestBookmarkOverlayWithoutBookmarks(t *testing.T) {
	root := testutil.MakeTree(t, map[string]string{"file.txt": "x"})
	h := newTestHarness(t, root, nil)
	h.Press("b")
	if !strings.Contains(h.View(), "(no bookmarks)") {
		t.Fatalf("expected empty bookmark notice:\n%s", h.View())
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	layout := map[string]string{}
	for _, name := range []string{"f00", "f01", "f02", "f03", "f04", "f05", "f06", "f07", "f08", "f09"} {
		layout[name+".txt"] = ""
	}
	root := testutil.MakeTree(t, layout)
	m, err := NewModel(Options{StartDir: root, Width: 120, Height: 8})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	h := NewHarness(m)

	h.Press("G")
	if got := h.Model().views[0].Offset; got != 7 {
		t.Fatalf("expected offset 7 after jumping to the last row, got %d", got)
	}
	before := h.Model().views[0]
	view := h.View()
	if h.Model().views[0] != before {
		t.Fatalf("rendering changed the viewport")
	}
	if !strings.Contains(view, "f09.txt") || strings.Contains(view, "f00.txt") {
		t.Fatalf("expected the window to follow the cursor:\n%s", view)
	}

	h.Press("g")
	if got := h.Model().views[0].Offset; got != 0 {
		t.Fatalf("expected offset 0 after jumping to the first row, got %d", got)
	}
}
