// Package libdiff decomposes two texts into a deterministic sequence
// of line-level edit operations, materializes the changed spans as
// reviewable hunks, and replays per-hunk decisions to produce the
// final contents of both sides.
//
// Texts are treated byte-exactly: lines are split on '\n' only, and
// whether each text's raw bytes end with a newline is tracked so that
// re-joining lines reproduces the source verbatim.
package libdiff

import "strings"

// SplitLines splits text on '\n' boundaries, dropping the newline
// characters. The empty text has no lines; a lone "\n" is a single
// empty line. A '\r' before the newline stays part of its line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// EndsWithNewline reports whether the raw text ends with '\n'.
func EndsWithNewline(text string) bool {
	return strings.HasSuffix(text, "\n")
}

// JoinLines is the inverse of SplitLines: it joins lines with '\n'
// and appends one trailing newline iff trailing is set and there is
// at least one line.
func JoinLines(lines []string, trailing bool) string {
	s := strings.Join(lines, "\n")
	if trailing && len(lines) > 0 {
		s += "\n"
	}
	return s
}

// renderLine returns lines[i] with its newline reattached. Only the
// final line of a text that did not end with a newline is rendered
// bare.
func renderLine(lines []string, i int, trailing bool) string {
	if i == len(lines)-1 && !trailing {
		return lines[i]
	}
	return lines[i] + "\n"
}

// renderSpan renders the half-open line range [start, start+count).
// Indices outside lines are skipped: the op sequence is external
// input and may be malformed.
func renderSpan(lines []string, start, count int, trailing bool) []string {
	var out []string
	for i := start; i < start+count; i++ {
		if i < 0 || i >= len(lines) {
			continue
		}
		out = append(out, renderLine(lines, i, trailing))
	}
	return out
}
