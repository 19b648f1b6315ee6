package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

const mainDescription = `dirmerge interactively reconciles two directory trees.

It walks both trees, classifies every differing path and prompts for a
decision: copy or delete one-sided entries, pick a winner for paths
whose type disagrees, and merge modified files hunk by hunk. Every
hunk decision is written out immediately, so an interrupted session
leaves both trees reflecting all decisions made so far.`

func MainCommand() *cli.Command {
	cfg := &MainConfig{Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "dirmerge").
		WithSynopsis("dirmerge [opts] <left-dir> <right-dir>").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dirmergeMain(cfg, cc, args)
		}).
		WithSubs(VersionCommand())
}

func VersionCommand() *cli.Command {
	return cli.NewCommand("version").
		WithSynopsis("version").
		WithDescription("print the dirmerge version").
		WithRun(func(cc *cli.Context, args []string) error {
			fmt.Fprintln(cc.Out, "dirmerge", version)
			return nil
		})
}
