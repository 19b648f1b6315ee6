// Package display renders diff entries and hunks as terminal
// strings. Rendering is pure: a function from an entry or hunk to a
// description string, with no state beyond the process-wide color
// enablement the CLI configures once.
package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5"

	"dirmerge/treediff"
)

var (
	headC   = color.New(color.FgCyan, color.Bold)
	fileC   = color.New(color.FgWhite, color.Bold)
	labelC  = color.New(color.FgCyan)
	noteC   = color.New(color.FgYellow)
	badC    = color.New(color.FgRed, color.Bold)
	delC    = color.New(color.FgRed)
	insC    = color.New(color.FgGreen)
	faintC  = color.New(color.Faint)
)

// FormatEntry renders the header and classification of one entry.
func FormatEntry(e treediff.Entry, index, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		headC.Sprintf("[%d/%d]", index+1, total),
		fileC.Sprintf("File: %s", e.Path))
	switch e.Kind {
	case treediff.LeftOnly:
		fmt.Fprintf(&b, "  %s (only in left)\n", noteC.Sprint(typeName(e.LeftIsDir)))
	case treediff.RightOnly:
		fmt.Fprintf(&b, "  %s (only in right)\n", noteC.Sprint(typeName(e.RightIsDir)))
	case treediff.Modified:
		fmt.Fprintf(&b, "  %s\n", noteC.Sprint("content differs"))
	case treediff.TypeMismatch:
		fmt.Fprintf(&b, "  %s Left is %s, Right is %s\n",
			badC.Sprint("Type mismatch:"),
			noteC.Sprint(typeName(e.LeftIsDir)),
			noteC.Sprint(typeName(e.RightIsDir)))
	}
	return b.String()
}

func typeName(isDir *bool) string {
	if isDir != nil && *isDir {
		return "directory"
	}
	return "file"
}

// FileInfo renders one side's size and modification time, or "" when
// the path cannot be stat'ed.
func FileInfo(fs billy.Filesystem, path, side string) string {
	fi, err := fs.Stat(path)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("  %s: modified %s, %s\n",
		labelC.Sprint(side),
		fi.ModTime().Format("2006-01-02 15:04"),
		FormatSize(fi.Size()))
}

// FormatSize renders a byte count in human units.
func FormatSize(size int64) string {
	switch {
	case size < 1<<10:
		return fmt.Sprintf("%dB", size)
	case size < 1<<20:
		return fmt.Sprintf("%.1fKB", float64(size)/(1<<10))
	case size < 1<<30:
		return fmt.Sprintf("%.1fMB", float64(size)/(1<<20))
	default:
		return fmt.Sprintf("%.1fGB", float64(size)/(1<<30))
	}
}
