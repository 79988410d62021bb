package differ

type OpTag string

const (
	OpEqual   OpTag = "equal"
	OpDelete  OpTag = "delete"
	OpInsert  OpTag = "insert"
	OpReplace OpTag = "replace"
)

// Op is one edit over a range of lines. Indices are 0-based positions in the
// old and new texts; a Delete has NewLen 0 and an Insert has OldLen 0.
type Op struct {
	Tag      OpTag `json:"tag"`
	OldIndex int   `json:"old_index"`
	OldLen   int   `json:"old_len"`
	NewIndex int   `json:"new_index"`
	NewLen   int   `json:"new_len"`
}

// Hunk is a run of changes together with its surrounding context lines.
type Hunk struct {
	Ops []Op `json:"ops"`
}

type Stats struct {
	Hunks   int `json:"hunks"`
	Added   int `json:"added"`
	Removed int `json:"removed"`
}
