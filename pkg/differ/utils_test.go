package differ

import (
	"testing"
)

func TestSummarize(t *testing.T) {
	hunks := []Hunk{
		{Ops: []Op{
			{Tag: OpEqual, OldLen: 3, NewLen: 3},
			{Tag: OpReplace, OldIndex: 3, OldLen: 2, NewIndex: 3, NewLen: 1},
		}},
		{Ops: []Op{
			{Tag: OpDelete, OldIndex: 9, OldLen: 1, NewIndex: 8},
			{Tag: OpInsert, OldIndex: 12, NewIndex: 10, NewLen: 4},
		}},
	}

	got := Summarize(hunks)
	expected := Stats{Hunks: 2, Added: 5, Removed: 3}
	if got != expected {
		t.Errorf("Summarize() = %+v, want %+v", got, expected)
	}
}

func TestStatsString(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected string
	}{
		{"No changes", Stats{}, "no semantic differences found"},
		{"Singular", Stats{Hunks: 1, Added: 1, Removed: 1}, "1 hunk: 1 line added, 1 line removed"},
		{"Plural", Stats{Hunks: 2, Added: 3, Removed: 4}, "2 hunks: 3 lines added, 4 lines removed"},
		{"Only additions", Stats{Hunks: 1, Added: 2}, "1 hunk: 2 lines added"},
		{"Only removals", Stats{Hunks: 3, Removed: 1}, "3 hunks: 1 line removed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.String(); got != tt.expected {
				t.Errorf("String() = '%s', want '%s'", got, tt.expected)
			}
		})
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, "0 hunks"},
		{1, "1 hunk"},
		{7, "7 hunks"},
	}

	for _, tt := range tests {
		if got := plural(tt.n, "hunk"); got != tt.expected {
			t.Errorf("plural(%d) = '%s', want '%s'", tt.n, got, tt.expected)
		}
	}
}
