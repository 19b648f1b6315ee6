package treediff

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"dirmerge/debug"
	"dirmerge/filecmp"
)

// collectPaths indexes every relative path under the filesystem root,
// recording whether it is a directory. Any walkable entry counts:
// files, directories, and anything else the filesystem yields. An
// unwalkable root is fatal; failures below it are per-path errors.
func collectPaths(fs billy.Filesystem) (map[string]bool, []PathError, error) {
	paths := map[string]bool{}
	var pathErrs []PathError
	err := util.Walk(fs, ".", func(path string, info os.FileInfo, err error) error {
		rel := filepath.ToSlash(path)
		if rel == "." || rel == "" {
			return err
		}
		if err != nil {
			pathErrs = append(pathErrs, PathError{Path: rel, Err: err})
			return nil
		}
		paths[rel] = info.IsDir()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return paths, pathErrs, nil
}

// Compare walks both roots and returns the ordered differences. The
// order is lexicographic on the path, independent of filesystem
// enumeration order, so repeated runs over the same trees produce
// identical output. Per-path I/O failures are returned alongside the
// entries rather than aborting the comparison; only an unwalkable
// root is fatal.
func Compare(leftFS, rightFS billy.Filesystem) ([]Entry, []PathError, error) {
	leftPaths, pathErrs, err := collectPaths(leftFS)
	if err != nil {
		return nil, nil, fmt.Errorf("walking left tree: %w", err)
	}
	rightPaths, rightErrs, err := collectPaths(rightFS)
	if err != nil {
		return nil, nil, fmt.Errorf("walking right tree: %w", err)
	}
	pathErrs = append(pathErrs, rightErrs...)
	if debug.Walk() {
		debug.Logf("treediff: %d left paths, %d right paths\n", len(leftPaths), len(rightPaths))
	}

	all := make([]string, 0, len(leftPaths)+len(rightPaths))
	for p := range leftPaths {
		all = append(all, p)
	}
	for p := range rightPaths {
		if _, ok := leftPaths[p]; !ok {
			all = append(all, p)
		}
	}
	sort.Strings(all)

	var entries []Entry
	for _, p := range all {
		leftDir, inLeft := leftPaths[p]
		rightDir, inRight := rightPaths[p]
		switch {
		case inLeft && !inRight:
			entries = append(entries, Entry{Path: p, Kind: LeftOnly, LeftIsDir: ptr(leftDir)})
		case !inLeft && inRight:
			entries = append(entries, Entry{Path: p, Kind: RightOnly, RightIsDir: ptr(rightDir)})
		case leftDir != rightDir:
			entries = append(entries, Entry{
				Path:       p,
				Kind:       TypeMismatch,
				LeftIsDir:  ptr(leftDir),
				RightIsDir: ptr(rightDir),
			})
		case !leftDir:
			same, err := filecmp.Identical(leftFS, p, rightFS, p)
			if err != nil {
				pathErrs = append(pathErrs, PathError{Path: p, Err: err})
				continue
			}
			if !same {
				entries = append(entries, Entry{
					Path:       p,
					Kind:       Modified,
					LeftIsDir:  ptr(false),
					RightIsDir: ptr(false),
				})
			}
			// both directories: no entry for the directory itself
		}
	}
	return suppressNested(entries), pathErrs, nil
}

// suppressNested drops every LeftOnly/RightOnly entry whose path lies
// strictly under a LeftOnly/RightOnly directory entry of the same
// kind. Suppression is checked against every ancestor level, so a
// suppressed grandparent silently suppresses all deeper descendants
// even through an intermediate directory that was itself suppressed.
func suppressNested(entries []Entry) []Entry {
	onlyDirs := map[string]Kind{}
	for _, e := range entries {
		if e.Kind != LeftOnly && e.Kind != RightOnly {
			continue
		}
		isDir := (e.LeftIsDir != nil && *e.LeftIsDir) || (e.RightIsDir != nil && *e.RightIsDir)
		if isDir {
			onlyDirs[e.Path] = e.Kind
		}
	}
	out := entries[:0]
	for _, e := range entries {
		if (e.Kind == LeftOnly || e.Kind == RightOnly) && underSameKindDir(onlyDirs, e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func underSameKindDir(dirs map[string]Kind, e Entry) bool {
	for p := parentPath(e.Path); p != ""; p = parentPath(p) {
		if k, ok := dirs[p]; ok && k == e.Kind {
			return true
		}
	}
	return false
}

func parentPath(p string) string {
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return ""
	}
	return p[:i]
}
