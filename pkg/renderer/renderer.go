package renderer

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/wonderfulspam/jsondiff/pkg/differ"
	"github.com/wonderfulspam/jsondiff/pkg/normalizer"
)

// DefaultContext is the number of unchanged lines shown around each change
const DefaultContext = 3

// Renderer canonicalizes documents, diffs their pretty-printed forms and
// renders the resulting hunks. A Renderer is immutable once created and may
// be shared between goroutines.
type Renderer struct {
	context         int
	normalizeArrays bool
	logger          *log.Logger
	styles          *lipgloss.Renderer
}

// Option adjusts a Renderer created by New
type Option func(r *Renderer)

// WithContext sets the number of context lines per hunk. Negative values are
// treated as zero.
func WithContext(n int) Option {
	return func(r *Renderer) {
		if n < 0 {
			n = 0
		}
		r.context = n
	}
}

// WithNormalizeArrays controls whether array elements are put in canonical
// order before diffing. Enabled by default.
func WithNormalizeArrays(enabled bool) Option {
	return func(r *Renderer) {
		r.normalizeArrays = enabled
	}
}

// WithLogger sets the logger used for debug output. Defaults to discarding.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithStyleRenderer sets the lipgloss renderer used by the "color" format,
// which decides the colour profile of the output.
func WithStyleRenderer(lr *lipgloss.Renderer) Option {
	return func(r *Renderer) {
		if lr != nil {
			r.styles = lr
		}
	}
}

// New creates a Renderer with DefaultContext and array normalization enabled
func New(opts ...Option) *Renderer {
	r := &Renderer{
		context:         DefaultContext,
		normalizeArrays: true,
		logger:          log.New(io.Discard),
		styles:          lipgloss.DefaultRenderer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderDiff returns the text report for v1 and v2 using contextLines lines of
// context. It is empty when both documents canonicalize identically.
func RenderDiff(v1, v2 any, contextLines int) string {
	return New(WithContext(contextLines)).Diff(v1, v2).String()
}

// Diff canonicalizes both documents, diffs their pretty-printed text and
// renders every hunk.
func (r *Renderer) Diff(v1, v2 any) *Result {
	left := Pretty(normalizer.Normalize(v1, r.normalizeArrays))
	right := Pretty(normalizer.Normalize(v2, r.normalizeArrays))

	oldLines := differ.SplitLines(left)
	newLines := differ.SplitLines(right)

	ops := differ.Compare(oldLines, newLines)
	hunks := differ.Group(ops, r.context)

	result := &Result{
		Left:  left,
		Right: right,
		Hunks: make([]Hunk, 0, len(hunks)),
		Stats: differ.Summarize(hunks),
	}
	for _, h := range hunks {
		result.Hunks = append(result.Hunks, renderHunk(h, oldLines, newLines))
	}

	r.logger.Debug("diffed documents",
		"old_lines", len(oldLines),
		"new_lines", len(newLines),
		"ops", len(ops),
		"hunks", result.Stats.Hunks,
		"added", result.Stats.Added,
		"removed", result.Stats.Removed,
	)

	return result
}

// renderHunk expands the ops of a hunk into lines. Removed lines carry the
// old start index of their op and added lines the new start index; kept lines
// count up from the old start index.
func renderHunk(h differ.Hunk, oldLines, newLines []string) Hunk {
	var out Hunk
	for _, op := range h.Ops {
		switch op.Tag {
		case differ.OpEqual:
			for k := 0; k < op.OldLen; k++ {
				out.Lines = append(out.Lines, Line{Index: op.OldIndex + k, Tag: TagKept, Text: oldLines[op.OldIndex+k]})
			}
		case differ.OpDelete:
			out.Lines = append(out.Lines, removed(op, oldLines)...)
		case differ.OpInsert:
			out.Lines = append(out.Lines, added(op, newLines)...)
		case differ.OpReplace:
			out.Lines = append(out.Lines, removed(op, oldLines)...)
			out.Lines = append(out.Lines, added(op, newLines)...)
		}
	}
	return out
}

func removed(op differ.Op, oldLines []string) []Line {
	lines := make([]Line, 0, op.OldLen)
	for k := 0; k < op.OldLen; k++ {
		lines = append(lines, Line{Index: op.OldIndex, Tag: TagRemoved, Text: oldLines[op.OldIndex+k]})
	}
	return lines
}

func added(op differ.Op, newLines []string) []Line {
	lines := make([]Line, 0, op.NewLen)
	for k := 0; k < op.NewLen; k++ {
		lines = append(lines, Line{Index: op.NewIndex, Tag: TagAdded, Text: newLines[op.NewIndex+k]})
	}
	return lines
}

// Pretty encodes v as indented JSON: two spaces per level, sorted object
// keys, no HTML escaping and no trailing newline.
func Pretty(v any) string {
	return normalizer.Encode(v, "  ")
}
