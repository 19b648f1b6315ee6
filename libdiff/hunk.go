package libdiff

// Choice is one decision about a hunk. The zero value is ChoiceSkip
// so that a missing decision is never destructive.
type Choice int

const (
	ChoiceSkip Choice = iota
	ChoiceLeft
	ChoiceRight
)

func (c Choice) String() string {
	switch c {
	case ChoiceLeft:
		return "left"
	case ChoiceRight:
		return "right"
	case ChoiceSkip:
		return "skip"
	}
	return "unknown"
}

// Hunk is a contiguous block of line-level differences between two
// texts, with optional surrounding context. Every line carries its
// trailing '\n' except the final line of a source whose raw bytes
// lacked one, so concatenating all lines of a text reproduces the
// source exactly. Hunks are created once per changed edit operation
// and never mutated.
type Hunk struct {
	LeftStart  int
	LeftCount  int
	RightStart int
	RightCount int

	LeftLines  []string
	RightLines []string

	// Context is always taken from the left text; a pure insertion is
	// anchored at a position in the left text.
	ContextBefore []string
	ContextAfter  []string
}

// Extract produces one Hunk per non-equal edit operation, in
// operation order, with up to context lines of surrounding left text.
// A second call with the same inputs yields the same hunks in the
// same order.
func Extract(left, right string, context int) []Hunk {
	leftLines := SplitLines(left)
	rightLines := SplitLines(right)
	leftNL := EndsWithNewline(left)
	rightNL := EndsWithNewline(right)

	var hunks []Hunk
	for _, op := range Ops(left, right) {
		if op.Kind == OpEqual {
			continue
		}
		before := op.LeftStart - context
		if before < 0 {
			before = 0
		}
		end := op.LeftStart + op.LeftCount
		after := end + context
		if after > len(leftLines) {
			after = len(leftLines)
		}
		hunks = append(hunks, Hunk{
			LeftStart:     op.LeftStart,
			LeftCount:     op.LeftCount,
			RightStart:    op.RightStart,
			RightCount:    op.RightCount,
			LeftLines:     renderSpan(leftLines, op.LeftStart, op.LeftCount, leftNL),
			RightLines:    renderSpan(rightLines, op.RightStart, op.RightCount, rightNL),
			ContextBefore: renderSpan(leftLines, before, op.LeftStart-before, leftNL),
			ContextAfter:  renderSpan(leftLines, end, after-end, leftNL),
		})
	}
	return hunks
}
