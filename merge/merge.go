// Package merge applies reconciliation decisions back to the two
// directory trees.
package merge

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"dirmerge/debug"
	"dirmerge/treediff"
)

// Action is a file-level decision for a LeftOnly/RightOnly entry.
type Action int

const (
	ActionSkip Action = iota
	ActionCopy
	ActionDelete
)

// Side names the winning side of a type-mismatch decision.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// ApplyAction executes a file-level action for a LeftOnly or
// RightOnly entry: copy to the other tree, or delete from the tree
// that has it. Skip and entries of other kinds are no-ops.
func ApplyAction(e treediff.Entry, action Action, leftFS, rightFS billy.Filesystem) error {
	if debug.Merge() {
		debug.Logf("merge: %s %s on %s\n", actionName(action), e.Kind, e.Path)
	}
	switch {
	case e.Kind == treediff.LeftOnly && action == ActionCopy:
		return copyEntry(leftFS, rightFS, e.Path)
	case e.Kind == treediff.LeftOnly && action == ActionDelete:
		return removeEntry(leftFS, e.Path)
	case e.Kind == treediff.RightOnly && action == ActionCopy:
		return copyEntry(rightFS, leftFS, e.Path)
	case e.Kind == treediff.RightOnly && action == ActionDelete:
		return removeEntry(rightFS, e.Path)
	}
	return nil
}

// ResolveTypeMismatch makes both sides agree on the winning side's
// entry: the losing side's file or directory is removed and the
// winner's is copied across. This is explicit two-sided logic; a
// mismatch entry is never relabeled into a one-sided copy.
func ResolveTypeMismatch(e treediff.Entry, winner Side, leftFS, rightFS billy.Filesystem) error {
	src, dst := leftFS, rightFS
	if winner == SideRight {
		src, dst = rightFS, leftFS
	}
	if err := removeEntry(dst, e.Path); err != nil {
		return fmt.Errorf("removing %s: %w", e.Path, err)
	}
	return copyEntry(src, dst, e.Path)
}

// WriteMerged rewrites both sides of a file pair verbatim. It is
// called with a complete from-scratch reconciliation after every
// individual hunk decision, so each on-disk state is a full valid
// snapshot of all decisions made so far.
func WriteMerged(leftFS, rightFS billy.Filesystem, path, leftText, rightText string) error {
	if err := util.WriteFile(leftFS, path, []byte(leftText), 0o644); err != nil {
		return fmt.Errorf("writing left %s: %w", path, err)
	}
	if err := util.WriteFile(rightFS, path, []byte(rightText), 0o644); err != nil {
		return fmt.Errorf("writing right %s: %w", path, err)
	}
	return nil
}

func copyEntry(src, dst billy.Filesystem, path string) error {
	fi, err := src.Stat(path)
	if err != nil {
		return err
	}
	if parent := parentOf(path); parent != "" {
		if err := dst.MkdirAll(parent, 0o755); err != nil {
			return err
		}
	}
	if fi.IsDir() {
		return copyDir(src, dst, path)
	}
	return copyFile(src, dst, path, fi.Mode())
}

func copyDir(src, dst billy.Filesystem, path string) error {
	if err := dst.MkdirAll(path, 0o755); err != nil {
		return err
	}
	infos, err := src.ReadDir(path)
	if err != nil {
		return err
	}
	for _, fi := range infos {
		child := path + "/" + fi.Name()
		if fi.IsDir() {
			if err := copyDir(src, dst, child); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(src, dst, child, fi.Mode()); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst billy.Filesystem, path string, mode os.FileMode) error {
	d, err := util.ReadFile(src, path)
	if err != nil {
		return err
	}
	return util.WriteFile(dst, path, d, mode)
}

func removeEntry(fs billy.Filesystem, path string) error {
	fi, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if fi.IsDir() {
		return util.RemoveAll(fs, path)
	}
	return fs.Remove(path)
}

func parentOf(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[:i]
		}
	}
	return ""
}

func actionName(a Action) string {
	switch a {
	case ActionCopy:
		return "copy"
	case ActionDelete:
		return "delete"
	case ActionSkip:
		return "skip"
	}
	return "unknown"
}
