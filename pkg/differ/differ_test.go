package differ

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		oldLines []string
		newLines []string
		expected []Op
	}{
		{
			name:     "Both empty",
			expected: nil,
		},
		{
			name:     "Identical",
			oldLines: []string{"a", "b"},
			newLines: []string{"a", "b"},
			expected: []Op{
				{Tag: OpEqual, OldIndex: 0, OldLen: 2, NewIndex: 0, NewLen: 2},
			},
		},
		{
			name:     "Changed middle line",
			oldLines: []string{"a", "b", "c"},
			newLines: []string{"a", "x", "c"},
			expected: []Op{
				{Tag: OpEqual, OldIndex: 0, OldLen: 1, NewIndex: 0, NewLen: 1},
				{Tag: OpReplace, OldIndex: 1, OldLen: 1, NewIndex: 1, NewLen: 1},
				{Tag: OpEqual, OldIndex: 2, OldLen: 1, NewIndex: 2, NewLen: 1},
			},
		},
		{
			name:     "Appended line",
			oldLines: []string{"a"},
			newLines: []string{"a", "b"},
			expected: []Op{
				{Tag: OpEqual, OldIndex: 0, OldLen: 1, NewIndex: 0, NewLen: 1},
				{Tag: OpInsert, OldIndex: 1, OldLen: 0, NewIndex: 1, NewLen: 1},
			},
		},
		{
			name:     "Removed first line",
			oldLines: []string{"a", "b"},
			newLines: []string{"b"},
			expected: []Op{
				{Tag: OpDelete, OldIndex: 0, OldLen: 1, NewIndex: 0, NewLen: 0},
				{Tag: OpEqual, OldIndex: 1, OldLen: 1, NewIndex: 0, NewLen: 1},
			},
		},
		{
			name:     "From nothing",
			newLines: []string{"a", "b"},
			expected: []Op{
				{Tag: OpInsert, OldIndex: 0, OldLen: 0, NewIndex: 0, NewLen: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.oldLines, tt.newLines)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Compare() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompareCoversBothSides(t *testing.T) {
	before := []string{"{", `  "a": 1,`, `  "b": [`, "    1,", "    2", "  ]", "}"}
	after := []string{"{", `  "a": 2,`, `  "b": [`, "    2", "  ],", `  "c": null`, "}"}

	var oldLines, newLines int
	for _, op := range Compare(before, after) {
		oldLines += op.OldLen
		newLines += op.NewLen
	}

	if oldLines != len(before) || newLines != len(after) {
		t.Errorf("ops cover %d/%d lines, want %d/%d", oldLines, newLines, len(before), len(after))
	}
}

func TestLinesIgnoresTrailingNewline(t *testing.T) {
	got := Lines("a\nb\n", "a\nb")
	expected := []Op{{Tag: OpEqual, OldIndex: 0, OldLen: 2, NewIndex: 0, NewLen: 2}}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Empty", "", nil},
		{"Single line", "null", []string{"null"}},
		{"Trailing newline", "a\nb\n", []string{"a", "b"}},
		{"Blank line kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, SplitLines(tt.input)); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		name     string
		ops      []Op
		context  int
		expected []Hunk
	}{
		{
			name:     "No ops",
			context:  3,
			expected: nil,
		},
		{
			name:     "Only equal",
			ops:      []Op{{Tag: OpEqual, OldLen: 10, NewLen: 10}},
			context:  3,
			expected: nil,
		},
		{
			name: "Context trimmed around one change",
			ops: []Op{
				{Tag: OpEqual, OldIndex: 0, OldLen: 5, NewIndex: 0, NewLen: 5},
				{Tag: OpReplace, OldIndex: 5, OldLen: 1, NewIndex: 5, NewLen: 1},
				{Tag: OpEqual, OldIndex: 6, OldLen: 9, NewIndex: 6, NewLen: 9},
			},
			context: 3,
			expected: []Hunk{{Ops: []Op{
				{Tag: OpEqual, OldIndex: 2, OldLen: 3, NewIndex: 2, NewLen: 3},
				{Tag: OpReplace, OldIndex: 5, OldLen: 1, NewIndex: 5, NewLen: 1},
				{Tag: OpEqual, OldIndex: 6, OldLen: 3, NewIndex: 6, NewLen: 3},
			}}},
		},
		{
			name: "Distant changes split",
			ops: []Op{
				{Tag: OpEqual, OldIndex: 0, OldLen: 1, NewIndex: 0, NewLen: 1},
				{Tag: OpDelete, OldIndex: 1, OldLen: 1, NewIndex: 1, NewLen: 0},
				{Tag: OpEqual, OldIndex: 2, OldLen: 10, NewIndex: 1, NewLen: 10},
				{Tag: OpInsert, OldIndex: 12, OldLen: 0, NewIndex: 11, NewLen: 1},
				{Tag: OpEqual, OldIndex: 12, OldLen: 2, NewIndex: 12, NewLen: 2},
			},
			context: 1,
			expected: []Hunk{
				{Ops: []Op{
					{Tag: OpEqual, OldIndex: 0, OldLen: 1, NewIndex: 0, NewLen: 1},
					{Tag: OpDelete, OldIndex: 1, OldLen: 1, NewIndex: 1, NewLen: 0},
					{Tag: OpEqual, OldIndex: 2, OldLen: 1, NewIndex: 1, NewLen: 1},
				}},
				{Ops: []Op{
					{Tag: OpEqual, OldIndex: 11, OldLen: 1, NewIndex: 10, NewLen: 1},
					{Tag: OpInsert, OldIndex: 12, OldLen: 0, NewIndex: 11, NewLen: 1},
					{Tag: OpEqual, OldIndex: 12, OldLen: 1, NewIndex: 12, NewLen: 1},
				}},
			},
		},
		{
			name: "Close changes merged",
			ops: []Op{
				{Tag: OpDelete, OldIndex: 0, OldLen: 1, NewIndex: 0, NewLen: 0},
				{Tag: OpEqual, OldIndex: 1, OldLen: 4, NewIndex: 0, NewLen: 4},
				{Tag: OpInsert, OldIndex: 5, OldLen: 0, NewIndex: 4, NewLen: 1},
			},
			context: 2,
			expected: []Hunk{{Ops: []Op{
				{Tag: OpDelete, OldIndex: 0, OldLen: 1, NewIndex: 0, NewLen: 0},
				{Tag: OpEqual, OldIndex: 1, OldLen: 4, NewIndex: 0, NewLen: 4},
				{Tag: OpInsert, OldIndex: 5, OldLen: 0, NewIndex: 4, NewLen: 1},
			}}},
		},
		{
			name: "Zero context",
			ops: []Op{
				{Tag: OpEqual, OldIndex: 0, OldLen: 2, NewIndex: 0, NewLen: 2},
				{Tag: OpReplace, OldIndex: 2, OldLen: 1, NewIndex: 2, NewLen: 1},
				{Tag: OpEqual, OldIndex: 3, OldLen: 2, NewIndex: 3, NewLen: 2},
			},
			context: 0,
			expected: []Hunk{{Ops: []Op{
				{Tag: OpEqual, OldIndex: 2, OldLen: 0, NewIndex: 2, NewLen: 0},
				{Tag: OpReplace, OldIndex: 2, OldLen: 1, NewIndex: 2, NewLen: 1},
				{Tag: OpEqual, OldIndex: 3, OldLen: 0, NewIndex: 3, NewLen: 0},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Group(tt.ops, tt.context)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Group() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupDoesNotModifyInput(t *testing.T) {
	ops := []Op{
		{Tag: OpEqual, OldIndex: 0, OldLen: 8, NewIndex: 0, NewLen: 8},
		{Tag: OpInsert, OldIndex: 8, OldLen: 0, NewIndex: 8, NewLen: 1},
	}
	before := append([]Op(nil), ops...)

	Group(ops, 1)

	if diff := cmp.Diff(before, ops); diff != "" {
		t.Errorf("Group() modified its input (-before +after):\n%s", diff)
	}
}
