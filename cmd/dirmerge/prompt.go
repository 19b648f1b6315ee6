package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

func oneSidedPrompt(other, side string) string {
	return fmt.Sprintf("  %s to %s / %s from %s / %s / %s > ",
		color.CyanString("(c)opy"), other,
		color.RedString("(d)elete"), side,
		color.YellowString("(s)kip"),
		color.MagentaString("(q)uit"))
}

func hunkPrompt() string {
	return fmt.Sprintf("  keep %s / keep %s / %s / skip %s / %s > ",
		color.CyanString("(l)eft"),
		color.CyanString("(r)ight"),
		color.YellowString("(s)kip"),
		color.YellowString("(f)ile"),
		color.MagentaString("(q)uit"))
}

func mismatchPrompt() string {
	return fmt.Sprintf("  keep %s / keep %s / %s / %s > ",
		color.CyanString("(l)eft"),
		color.CyanString("(r)ight"),
		color.YellowString("(s)kip"),
		color.MagentaString("(q)uit"))
}

// promptChar reads lines until one is a single character from valid,
// case-insensitively. EOF on input answers 'q' so a closed stdin ends
// the session cleanly.
func (s *session) promptChar(prompt string, valid string) (byte, error) {
	for {
		fmt.Fprint(s.out, prompt)
		line, err := s.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if len(answer) == 1 && strings.IndexByte(valid, answer[0]) >= 0 {
			return answer[0], nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 'q', nil
			}
			return 0, err
		}
		fmt.Fprintln(s.out, color.YellowString("  please answer one of: %s", strings.Join(strings.Split(valid, ""), ", ")))
	}
}
