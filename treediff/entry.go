// Package treediff classifies path-level differences between two
// directory trees.
package treediff

import "fmt"

type Kind int

const (
	// LeftOnly marks a path present only under the left root.
	LeftOnly Kind = iota
	// RightOnly marks a path present only under the right root.
	RightOnly
	// Modified marks a file present on both sides with differing
	// content.
	Modified
	// TypeMismatch marks a path that is a directory on one side and a
	// regular file on the other.
	TypeMismatch
)

func (k Kind) String() string {
	switch k {
	case LeftOnly:
		return "leftOnly"
	case RightOnly:
		return "rightOnly"
	case Modified:
		return "modified"
	case TypeMismatch:
		return "typeMismatch"
	}
	return "unknown"
}

// Entry is one path-level difference between the two trees. Paths are
// slash-separated and relative to the roots. LeftIsDir and RightIsDir
// are nil for a side on which the path does not exist.
type Entry struct {
	Path       string
	Kind       Kind
	LeftIsDir  *bool
	RightIsDir *bool
}

// PathError records an I/O failure scoped to a single path. It is
// fatal to that entry only: other entries of the same comparison stay
// valid, and abort-vs-continue policy belongs to the caller.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func ptr(b bool) *bool {
	return &b
}
