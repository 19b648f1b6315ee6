package libdiff

import (
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"dirmerge/debug"
)

type OpKind int

const (
	OpEqual OpKind = iota
	OpDelete
	OpInsert
	OpReplace
)

func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpReplace:
		return "replace"
	}
	return "unknown"
}

// EditOp is one unit of the line alignment between two texts, over
// 0-based line indices. Counts are zero for the side an operation
// does not touch; starts are always valid as insertion points.
type EditOp struct {
	Kind       OpKind
	LeftStart  int
	LeftCount  int
	RightStart int
	RightCount int
}

// Ops computes the ordered edit operations aligning left with right.
// Operations are contiguous, non-overlapping and jointly cover both
// texts. The result is deterministic for a given input pair: Extract
// and Reconcile each recompute it and rely on identical operation
// indices across separate calls.
func Ops(left, right string) []EditOp {
	dmp := diffpatch.New()
	// A diff timeout would make the edit script depend on wall-clock
	// load; the same two texts must always yield the same ops.
	dmp.DiffTimeout = 0
	leftRunes, rightRunes, _ := dmp.DiffLinesToRunes(left, right)
	diffs := dmp.DiffMainRunes(leftRunes, rightRunes, false)

	ops := make([]EditOp, 0, len(diffs))
	li, ri := 0, 0
	for i := 0; i < len(diffs); i++ {
		d := &diffs[i]
		n := utf8.RuneCountInString(d.Text)
		if n == 0 {
			continue
		}
		switch d.Type {
		case diffpatch.DiffEqual:
			ops = append(ops, EditOp{Kind: OpEqual, LeftStart: li, LeftCount: n, RightStart: ri, RightCount: n})
			li += n
			ri += n
		case diffpatch.DiffDelete:
			// delete immediately followed by insert is a replacement
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				m := utf8.RuneCountInString(diffs[i+1].Text)
				ops = append(ops, EditOp{Kind: OpReplace, LeftStart: li, LeftCount: n, RightStart: ri, RightCount: m})
				li += n
				ri += m
				i++
				continue
			}
			ops = append(ops, EditOp{Kind: OpDelete, LeftStart: li, LeftCount: n, RightStart: ri})
			li += n
		case diffpatch.DiffInsert:
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffDelete {
				m := utf8.RuneCountInString(diffs[i+1].Text)
				ops = append(ops, EditOp{Kind: OpReplace, LeftStart: li, LeftCount: m, RightStart: ri, RightCount: n})
				li += m
				ri += n
				i++
				continue
			}
			ops = append(ops, EditOp{Kind: OpInsert, LeftStart: li, RightStart: ri, RightCount: n})
			ri += n
		}
	}
	if debug.Ops() {
		debug.Logf("libdiff: %d ops\n%s\n", len(ops), debug.JSON(ops))
	}
	return ops
}
