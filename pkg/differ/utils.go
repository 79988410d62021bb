package differ

import (
	"fmt"
	"strings"
)

// Summarize counts the changed lines across hunks.
func Summarize(hunks []Hunk) Stats {
	stats := Stats{Hunks: len(hunks)}
	for _, h := range hunks {
		for _, op := range h.Ops {
			switch op.Tag {
			case OpDelete:
				stats.Removed += op.OldLen
			case OpInsert:
				stats.Added += op.NewLen
			case OpReplace:
				stats.Removed += op.OldLen
				stats.Added += op.NewLen
			}
		}
	}
	return stats
}

func (s Stats) HasChanges() bool {
	return s.Added > 0 || s.Removed > 0
}

func (s Stats) String() string {
	if !s.HasChanges() {
		return "no semantic differences found"
	}

	parts := []string{}
	if s.Added > 0 {
		parts = append(parts, plural(s.Added, "line")+" added")
	}
	if s.Removed > 0 {
		parts = append(parts, plural(s.Removed, "line")+" removed")
	}

	return fmt.Sprintf("%s: %s", plural(s.Hunks, "hunk"), strings.Join(parts, ", "))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
