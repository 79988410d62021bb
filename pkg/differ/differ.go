package differ

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Lines computes the line operations that turn text a into text b.
func Lines(a, b string) []Op {
	return Compare(SplitLines(a), SplitLines(b))
}

// Compare computes the operations that turn the lines of a into the lines of
// b. Consecutive deletions and insertions are reported as a single Replace.
func Compare(a, b []string) []Op {
	ra, rb := encodeLines(a, b)

	dmp := diffmatchpatch.New()
	// zero disables the deadline; output depends only on the input
	dmp.DiffTimeout = 0

	return collectOps(dmp.DiffMainRunes(ra, rb, false))
}

// SplitLines breaks s on newlines. A trailing newline does not start an
// extra empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// encodeLines maps every distinct line to its own rune so the character
// differ can work on whole lines. Surrogates are skipped because they do not
// survive a round trip through a Go string.
func encodeLines(a, b []string) ([]rune, []rune) {
	index := make(map[string]rune)
	next := rune(1)

	encode := func(lines []string) []rune {
		out := make([]rune, len(lines))
		for i, line := range lines {
			r, ok := index[line]
			if !ok {
				r = next
				index[line] = r
				next++
				if next == surrogateMin {
					next = surrogateMax + 1
				}
			}
			out[i] = r
		}
		return out
	}

	return encode(a), encode(b)
}

func collectOps(diffs []diffmatchpatch.Diff) []Op {
	var (
		ops               []Op
		oldPos, newPos    int
		deleted, inserted int
	)

	flush := func() {
		switch {
		case deleted > 0 && inserted > 0:
			ops = append(ops, Op{Tag: OpReplace, OldIndex: oldPos, OldLen: deleted, NewIndex: newPos, NewLen: inserted})
		case deleted > 0:
			ops = append(ops, Op{Tag: OpDelete, OldIndex: oldPos, OldLen: deleted, NewIndex: newPos})
		case inserted > 0:
			ops = append(ops, Op{Tag: OpInsert, OldIndex: oldPos, NewIndex: newPos, NewLen: inserted})
		}
		oldPos += deleted
		newPos += inserted
		deleted, inserted = 0, 0
	}

	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		if n == 0 {
			continue
		}

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			deleted += n
		case diffmatchpatch.DiffInsert:
			inserted += n
		case diffmatchpatch.DiffEqual:
			flush()
			if last := len(ops) - 1; last >= 0 && ops[last].Tag == OpEqual {
				ops[last].OldLen += n
				ops[last].NewLen += n
			} else {
				ops = append(ops, Op{Tag: OpEqual, OldIndex: oldPos, OldLen: n, NewIndex: newPos, NewLen: n})
			}
			oldPos += n
			newPos += n
		}
	}
	flush()

	return ops
}

// Group splits ops into hunks carrying at most context lines of unchanged
// text before and after each run of changes. Changes separated by no more
// than 2*context unchanged lines share a hunk. Inputs without changes yield
// no hunks.
func Group(ops []Op, context int) []Hunk {
	if len(ops) == 0 {
		return nil
	}
	if context < 0 {
		context = 0
	}

	ops = append([]Op(nil), ops...)

	if first := &ops[0]; first.Tag == OpEqual {
		offset := max(first.OldLen-context, 0)
		first.OldIndex += offset
		first.NewIndex += offset
		first.OldLen -= offset
		first.NewLen -= offset
	}
	if last := &ops[len(ops)-1]; last.Tag == OpEqual {
		trim := max(last.OldLen-context, 0)
		last.OldLen -= trim
		last.NewLen -= trim
	}

	var (
		hunks   []Hunk
		pending []Op
	)
	for _, op := range ops {
		if op.Tag == OpEqual && op.OldLen > context*2 {
			pending = append(pending, Op{Tag: OpEqual, OldIndex: op.OldIndex, OldLen: context, NewIndex: op.NewIndex, NewLen: context})
			hunks = append(hunks, Hunk{Ops: pending})

			offset := op.OldLen - context
			pending = []Op{{
				Tag:      OpEqual,
				OldIndex: op.OldIndex + offset,
				OldLen:   op.OldLen - offset,
				NewIndex: op.NewIndex + offset,
				NewLen:   op.NewLen - offset,
			}}
			continue
		}
		pending = append(pending, op)
	}

	if len(pending) > 1 || (len(pending) == 1 && pending[0].Tag != OpEqual) {
		hunks = append(hunks, Hunk{Ops: pending})
	}

	return hunks
}
