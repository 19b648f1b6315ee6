package display

import (
	"fmt"
	"strings"
	"unicode"

	"dirmerge/libdiff"
)

// FormatHunk renders one hunk with context, a unified-style range
// header and colored change lines. Whitespace-only hunks get their
// whitespace made visible, since the difference would otherwise not
// show at all.
func FormatHunk(h *libdiff.Hunk, index, total int, path string) string {
	wsOnly := whitespaceOnly(h)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s in %s",
		headC.Sprintf("[%d/%d]", index+1, total),
		fileC.Sprint("Hunk"),
		path)
	if wsOnly {
		fmt.Fprintf(&b, " %s", noteC.Sprint("(whitespace only)"))
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "  @@ -%d,%d +%d,%d @@\n",
		h.LeftStart+1, h.LeftCount, h.RightStart+1, h.RightCount)

	for _, line := range h.ContextBefore {
		fmt.Fprintf(&b, "  %s\n", faintC.Sprint(" "+displayLine(line, wsOnly)))
	}
	for _, line := range h.LeftLines {
		fmt.Fprintf(&b, "  %s\n", delC.Sprint("-"+displayLine(line, wsOnly)))
	}
	for _, line := range h.RightLines {
		fmt.Fprintf(&b, "  %s\n", insC.Sprint("+"+displayLine(line, wsOnly)))
	}
	for _, line := range h.ContextAfter {
		fmt.Fprintf(&b, "  %s\n", faintC.Sprint(" "+displayLine(line, wsOnly)))
	}
	return b.String()
}

func displayLine(line string, visible bool) string {
	if visible {
		return visualizeWhitespace(line)
	}
	return strings.TrimRight(line, "\r\n")
}

// whitespaceOnly reports whether both sides of the hunk are equal
// once all whitespace is removed.
func whitespaceOnly(h *libdiff.Hunk) bool {
	return stripWhitespace(h.LeftLines) == stripWhitespace(h.RightLines)
}

func stripWhitespace(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		for _, r := range line {
			if !unicode.IsSpace(r) {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func visualizeWhitespace(line string) string {
	var b strings.Builder
	for _, r := range line {
		switch r {
		case ' ':
			b.WriteRune('·')
		case '\t':
			b.WriteRune('→')
		case '\n':
			b.WriteRune('↵')
		case '\r':
			b.WriteRune('␍')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
