package libdiff

// Reconcile replays the edit operations for left and right, applying
// one choice per non-equal operation, and returns the new contents of
// both sides. Choices are matched to operations by index, in the
// order Extract produced the corresponding hunks; a missing choice is
// a skip.
//
// Per operation:
//
//	equal    both sides get the shared lines
//	delete   left wins: keep in both; skip: keep in left only;
//	         right wins: drop from both
//	insert   right wins: add to both; skip: keep in right only;
//	         left wins: drop from both
//	replace  winner's lines go to both; skip keeps each side's own
//
// The trailing newline of both outputs follows the last non-skip
// choice: once either side wins any hunk the two files are converging
// to one shape, and the decision closest to end-of-file is the best
// predictor of the intended final formatting. With no decisive choice
// each side keeps its own.
func Reconcile(left, right string, choices []Choice) (string, string) {
	leftLines := SplitLines(left)
	rightLines := SplitLines(right)

	var outLeft, outRight []string
	hunkIdx := 0
	for _, op := range Ops(left, right) {
		if op.Kind == OpEqual {
			outLeft = appendSpan(outLeft, leftLines, op.LeftStart, op.LeftCount)
			outRight = appendSpan(outRight, leftLines, op.LeftStart, op.LeftCount)
			continue
		}
		choice := ChoiceSkip
		if hunkIdx < len(choices) {
			choice = choices[hunkIdx]
		}
		hunkIdx++

		switch op.Kind {
		case OpDelete:
			switch choice {
			case ChoiceLeft:
				outLeft = appendSpan(outLeft, leftLines, op.LeftStart, op.LeftCount)
				outRight = appendSpan(outRight, leftLines, op.LeftStart, op.LeftCount)
			case ChoiceSkip:
				outLeft = appendSpan(outLeft, leftLines, op.LeftStart, op.LeftCount)
			case ChoiceRight:
				// deleted from both
			}
		case OpInsert:
			switch choice {
			case ChoiceRight:
				outLeft = appendSpan(outLeft, rightLines, op.RightStart, op.RightCount)
				outRight = appendSpan(outRight, rightLines, op.RightStart, op.RightCount)
			case ChoiceSkip:
				outRight = appendSpan(outRight, rightLines, op.RightStart, op.RightCount)
			case ChoiceLeft:
				// not inserted anywhere
			}
		case OpReplace:
			switch choice {
			case ChoiceLeft:
				outLeft = appendSpan(outLeft, leftLines, op.LeftStart, op.LeftCount)
				outRight = appendSpan(outRight, leftLines, op.LeftStart, op.LeftCount)
			case ChoiceRight:
				outLeft = appendSpan(outLeft, rightLines, op.RightStart, op.RightCount)
				outRight = appendSpan(outRight, rightLines, op.RightStart, op.RightCount)
			case ChoiceSkip:
				outLeft = appendSpan(outLeft, leftLines, op.LeftStart, op.LeftCount)
				outRight = appendSpan(outRight, rightLines, op.RightStart, op.RightCount)
			}
		}
	}

	leftNL := EndsWithNewline(left)
	rightNL := EndsWithNewline(right)
	leftTrail, rightTrail := leftNL, rightNL
	for i := len(choices) - 1; i >= 0; i-- {
		if choices[i] == ChoiceLeft {
			leftTrail, rightTrail = leftNL, leftNL
			break
		}
		if choices[i] == ChoiceRight {
			leftTrail, rightTrail = rightNL, rightNL
			break
		}
	}
	return JoinLines(outLeft, leftTrail), JoinLines(outRight, rightTrail)
}

// appendSpan appends lines[start:start+count] to dst, skipping
// out-of-range indices from a malformed op sequence.
func appendSpan(dst, lines []string, start, count int) []string {
	for i := start; i < start+count; i++ {
		if i < 0 || i >= len(lines) {
			continue
		}
		dst = append(dst, lines[i])
	}
	return dst
}
