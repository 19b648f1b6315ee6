package display

import (
	"fmt"
	"strings"

	"dirmerge/libdiff"
)

// Preview renders a read-only unified-style diff of a whole file
// pair, with up to context equal lines kept around each change and
// an ellipsis where equal runs are elided.
func Preview(path, left, right string, context int) string {
	ops := libdiff.Ops(left, right)
	leftLines := libdiff.SplitLines(left)
	rightLines := libdiff.SplitLines(right)

	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", delC.Sprintf("--- left/%s", path))
	fmt.Fprintf(&b, "  %s\n", insC.Sprintf("+++ right/%s", path))

	for i, op := range ops {
		switch op.Kind {
		case libdiff.OpEqual:
			writeEqual(&b, leftLines, op, context, i == 0, i == len(ops)-1)
		case libdiff.OpDelete:
			writeSpan(&b, delC, "-", leftLines, op.LeftStart, op.LeftCount)
		case libdiff.OpInsert:
			writeSpan(&b, insC, "+", rightLines, op.RightStart, op.RightCount)
		case libdiff.OpReplace:
			writeSpan(&b, delC, "-", leftLines, op.LeftStart, op.LeftCount)
			writeSpan(&b, insC, "+", rightLines, op.RightStart, op.RightCount)
		}
	}
	return b.String()
}

// writeEqual keeps only the equal lines adjacent to a change: the
// tail before a following change, the head after a preceding one,
// both in the middle of the file.
func writeEqual(b *strings.Builder, lines []string, op libdiff.EditOp, context int, first, last bool) {
	start, end := op.LeftStart, op.LeftStart+op.LeftCount

	headEnd := start
	if !first {
		headEnd = min(start+context, end)
	}
	tailStart := end
	if !last {
		tailStart = max(end-context, headEnd)
	}
	writeSpan(b, faintC, " ", lines, start, headEnd-start)
	if tailStart > headEnd {
		fmt.Fprintf(b, "  %s\n", faintC.Sprint("..."))
	}
	writeSpan(b, faintC, " ", lines, tailStart, end-tailStart)
}

func writeSpan(b *strings.Builder, c colorizer, sign string, lines []string, start, count int) {
	for i := start; i < start+count && i < len(lines); i++ {
		if i < 0 {
			continue
		}
		fmt.Fprintf(b, "  %s\n", c.Sprint(sign+strings.TrimRight(lines[i], "\r")))
	}
}

type colorizer interface {
	Sprint(a ...interface{}) string
}
