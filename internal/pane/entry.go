package pane

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/atomicstack/dualpane/internal/logging/events"
)

// Entry is one child of a listed directory.
type Entry struct {
	Name    string
	Path    string
	Dir     bool
	Size    int64
	ModTime time.Time
	Marked  bool
}

// list reads dir and returns its entries directories first, then by path.
// Entries whose metadata cannot be read are dropped.
func list(dir string) ([]Entry, error) {
	raw, err := os.ReadDir(dir)
	if err != nil {
		events.Pane.ListFailed(dir, err)
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	entries := make([]Entry, 0, len(raw))
	dropped := 0
	for _, d := range raw {
		info, err := d.Info()
		if err != nil {
			dropped++
			continue
		}
		entries = append(entries, Entry{
			Name:    d.Name(),
			Path:    filepath.Join(dir, d.Name()),
			Dir:     d.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sortEntries(entries)
	events.Pane.List(dir, len(entries), dropped)
	return entries, nil
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Dir != b.Dir {
			return a.Dir
		}
		return a.Path < b.Path
	})
}
