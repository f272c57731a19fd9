package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"a", "1"},
		{"bbb", "22"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"a     1",
		"bbb  22",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFitShrinksFlexColumn(t *testing.T) {
	rows := [][]string{
		{"*", "very-long-name.txt", "10 B"},
		{" ", "x", "2 kB"},
	}
	got := Fit(rows, []Alignment{AlignLeft, AlignLeft, AlignRight}, 16, 1)
	for i, row := range got {
		if w := cellWidth(row); w != 16 {
			t.Fatalf("row %d: expected width 16, got %d (%q)", i, w, row)
		}
	}
	if got[0] != "*  very-…  10 B" && got[0] != "*  very-l…  10 B" {
		t.Fatalf("unexpected truncated row %q", got[0])
	}
}

func TestFitWithoutWidthMatchesFormat(t *testing.T) {
	rows := [][]string{{"ab", "c"}, {"d", "efg"}}
	a := Format(rows, nil)
	b := Fit(rows, nil, 0, 0)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}
