package renderer

import (
	"fmt"
	"strings"

	"github.com/wonderfulspam/jsondiff/pkg/differ"
)

// ChangeTag marks a rendered line as unchanged, added or removed
type ChangeTag string

const (
	TagKept    ChangeTag = "kept"
	TagAdded   ChangeTag = "added"
	TagRemoved ChangeTag = "removed"
)

// HunkSeparator terminates every rendered hunk
const HunkSeparator = "----"

// Marker returns the single character written between the index and the
// line text.
func (t ChangeTag) Marker() string {
	switch t {
	case TagAdded:
		return "+"
	case TagRemoved:
		return "-"
	default:
		return " "
	}
}

// Line is one rendered line of a hunk. Index refers to the old text for kept
// and removed lines and to the new text for added lines.
type Line struct {
	Index int       `json:"index"`
	Tag   ChangeTag `json:"tag"`
	Text  string    `json:"text"`
}

func (l Line) String() string {
	return fmt.Sprintf("%d: %s %s", l.Index, l.Tag.Marker(), l.Text)
}

// Hunk holds the rendered lines of one differ.Hunk
type Hunk struct {
	Lines []Line `json:"lines"`
}

// Result is the outcome of diffing two documents
type Result struct {
	// Left and Right are the canonical pretty-printed documents that were
	// compared, exposed so callers can persist them.
	Left  string `json:"-"`
	Right string `json:"-"`

	Hunks []Hunk       `json:"hunks"`
	Stats differ.Stats `json:"stats"`
}

// HasChanges reports whether the documents differ once canonicalized
func (r *Result) HasChanges() bool {
	return len(r.Hunks) > 0
}

// String renders the plain text report: every line followed by a newline and
// every hunk followed by the separator line. Equal documents render as "".
func (r *Result) String() string {
	var sb strings.Builder
	for _, h := range r.Hunks {
		for _, l := range h.Lines {
			sb.WriteString(l.String())
			sb.WriteByte('\n')
		}
		sb.WriteString(HunkSeparator)
		sb.WriteByte('\n')
	}
	return sb.String()
}
