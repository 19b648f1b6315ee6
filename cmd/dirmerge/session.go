package main

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5"

	"dirmerge/display"
	"dirmerge/filecmp"
	"dirmerge/filter"
	"dirmerge/libdiff"
	"dirmerge/merge"
	"dirmerge/treediff"
)

// session drives one interactive run over a pair of trees. A failure
// on one entry is reported and the walk moves on; only an unreadable
// root aborts the session.
type session struct {
	cfg          *MainConfig
	leftFS       billy.Filesystem
	rightFS      billy.Filesystem
	excludeLeft  *regexp.Regexp
	excludeRight *regexp.Regexp
	filter       *filter.Filter
	in           *bufio.Reader
	out          io.Writer

	quit    bool
	applied int
	skipped int
	failed  int
}

func (s *session) run() error {
	fmt.Fprintln(s.out, color.CyanString("Comparing directories..."))
	entries, pathErrs, err := treediff.Compare(s.leftFS, s.rightFS)
	if err != nil {
		return err
	}
	for i := range pathErrs {
		fmt.Fprintln(s.out, color.RedString("warning: %s", pathErrs[i].Error()))
	}
	entries, err = s.selectEntries(entries)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(s.out, color.GreenString("Directories are identical!"))
		return nil
	}
	fmt.Fprintln(s.out, color.YellowString("Found %d difference(s).", len(entries)))

	for i := range entries {
		if s.quit {
			break
		}
		if err := s.handleEntry(entries[i], i, len(entries)); err != nil {
			s.failed++
			fmt.Fprintln(s.out, color.RedString("  error: %v", err))
		}
	}
	s.printSummary()
	return nil
}

// selectEntries drops entries matched by the side exclusion patterns
// and keeps those selected by the filter expression.
func (s *session) selectEntries(entries []treediff.Entry) ([]treediff.Entry, error) {
	kept := entries[:0]
	for _, e := range entries {
		if s.excluded(e) {
			continue
		}
		ok, err := s.filter.Match(e)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

func (s *session) excluded(e treediff.Entry) bool {
	left := s.excludeLeft != nil && s.excludeLeft.MatchString(e.Path)
	right := s.excludeRight != nil && s.excludeRight.MatchString(e.Path)
	switch e.Kind {
	case treediff.LeftOnly:
		return left
	case treediff.RightOnly:
		return right
	default:
		return left || right
	}
}

func (s *session) handleEntry(e treediff.Entry, index, total int) error {
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, display.FormatEntry(e, index, total))
	switch e.Kind {
	case treediff.LeftOnly, treediff.RightOnly:
		return s.handleOneSided(e)
	case treediff.Modified:
		return s.handleModified(e)
	case treediff.TypeMismatch:
		return s.handleTypeMismatch(e)
	}
	return nil
}

func (s *session) handleOneSided(e treediff.Entry) error {
	fs, side, other := s.leftFS, "left", "right"
	isDir := e.LeftIsDir != nil && *e.LeftIsDir
	if e.Kind == treediff.RightOnly {
		fs, side, other = s.rightFS, "right", "left"
		isDir = e.RightIsDir != nil && *e.RightIsDir
	}
	if !isDir {
		if s.cfg.SkipBinary {
			if bin, err := filecmp.IsBinary(fs, e.Path); err == nil && bin {
				s.skipped++
				return nil
			}
		}
		fmt.Fprint(s.out, display.FileInfo(fs, e.Path, side))
	}

	c, err := s.promptChar(oneSidedPrompt(other, side), "cdsq")
	if err != nil {
		return err
	}
	switch c {
	case 'c':
		if s.cfg.DryRun {
			fmt.Fprintln(s.out, color.CyanString("  would copy to %s", other))
			return nil
		}
		if err := merge.ApplyAction(e, merge.ActionCopy, s.leftFS, s.rightFS); err != nil {
			return err
		}
		s.applied++
		fmt.Fprintln(s.out, color.GreenString("  copied to %s", other))
	case 'd':
		if s.cfg.DryRun {
			fmt.Fprintln(s.out, color.CyanString("  would delete from %s", side))
			return nil
		}
		if err := merge.ApplyAction(e, merge.ActionDelete, s.leftFS, s.rightFS); err != nil {
			return err
		}
		s.applied++
		fmt.Fprintln(s.out, color.GreenString("  deleted from %s", side))
	case 's':
		s.skipped++
	case 'q':
		s.quit = true
	}
	return nil
}

func (s *session) handleModified(e treediff.Entry) error {
	left, leftOK, err := filecmp.ReadText(s.leftFS, e.Path)
	if err != nil {
		return err
	}
	right, rightOK, err := filecmp.ReadText(s.rightFS, e.Path)
	if err != nil {
		return err
	}
	if !leftOK || !rightOK {
		if !s.cfg.SkipBinary {
			fmt.Fprintln(s.out, color.YellowString("  binary file, skipping"))
		}
		s.skipped++
		return nil
	}
	fmt.Fprint(s.out, display.FileInfo(s.leftFS, e.Path, "left"))
	fmt.Fprint(s.out, display.FileInfo(s.rightFS, e.Path, "right"))

	hunks := libdiff.Extract(left, right, s.cfg.Context)
	if len(hunks) == 0 {
		s.skipped++
		return nil
	}
	fmt.Fprintln(s.out, color.CyanString("  %d hunk(s)", len(hunks)))
	if s.cfg.Preview {
		fmt.Fprint(s.out, display.Preview(e.Path, left, right, s.cfg.Context))
	}

	var choices []libdiff.Choice
	for i := range hunks {
		fmt.Fprintln(s.out)
		fmt.Fprint(s.out, display.FormatHunk(&hunks[i], i, len(hunks), e.Path))
		c, err := s.promptChar(hunkPrompt(), "lrsfq")
		if err != nil {
			return err
		}
		switch c {
		case 'l':
			choices = append(choices, libdiff.ChoiceLeft)
		case 'r':
			choices = append(choices, libdiff.ChoiceRight)
		case 's':
			choices = append(choices, libdiff.ChoiceSkip)
			s.skipped++
			continue
		case 'f':
			s.skipped += len(hunks) - i
			return nil
		case 'q':
			s.quit = true
			return nil
		}
		// Each accepted choice triggers a full reconciliation and
		// rewrite, so the files on disk never hold a partial hunk.
		if s.cfg.DryRun {
			fmt.Fprintln(s.out, color.CyanString("  would apply"))
			continue
		}
		mergedLeft, mergedRight := libdiff.Reconcile(left, right, choices)
		if err := merge.WriteMerged(s.leftFS, s.rightFS, e.Path, mergedLeft, mergedRight); err != nil {
			return err
		}
		s.applied++
		fmt.Fprintln(s.out, color.GreenString("  applied"))
	}
	return nil
}

func (s *session) handleTypeMismatch(e treediff.Entry) error {
	c, err := s.promptChar(mismatchPrompt(), "lrsq")
	if err != nil {
		return err
	}
	winner := merge.SideLeft
	name := "left"
	switch c {
	case 's':
		s.skipped++
		return nil
	case 'q':
		s.quit = true
		return nil
	case 'r':
		winner = merge.SideRight
		name = "right"
	}
	if s.cfg.DryRun {
		fmt.Fprintln(s.out, color.CyanString("  would keep %s version on both sides", name))
		return nil
	}
	if err := merge.ResolveTypeMismatch(e, winner, s.leftFS, s.rightFS); err != nil {
		return err
	}
	s.applied++
	fmt.Fprintln(s.out, color.GreenString("  kept %s version on both sides", name))
	return nil
}

func (s *session) printSummary() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, color.CyanString("Done: %d applied, %d skipped, %d failed.",
		s.applied, s.skipped, s.failed))
}
