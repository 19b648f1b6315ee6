package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"dirmerge/config"
	"dirmerge/filter"
)

func dirmergeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			return sub.Run(cc, nil)
		}
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: dirmerge takes exactly 2 directories, got %d args", cli.ErrUsage, len(args))
	}
	for _, dir := range args {
		fi, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if !fi.IsDir() {
			return fmt.Errorf("%w: %q is not a directory", cli.ErrUsage, dir)
		}
	}
	fileCfg, err := config.Load(osfs.New("."), cfg.ConfigFile)
	if err != nil {
		return err
	}
	cfg.applyConfig(fileCfg)
	if cfg.Context < 0 {
		return fmt.Errorf("%w: context must be >= 0", cli.ErrUsage)
	}
	if err := setupColor(cfg.Color); err != nil {
		return err
	}

	excludeLeft, err := compileExclude(cfg.ExcludeLeft, "exclude-left")
	if err != nil {
		return err
	}
	excludeRight, err := compileExclude(cfg.ExcludeRight, "exclude-right")
	if err != nil {
		return err
	}
	flt, err := filter.Compile(cfg.Filter)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	s := &session{
		cfg:          cfg,
		leftFS:       osfs.New(args[0]),
		rightFS:      osfs.New(args[1]),
		excludeLeft:  excludeLeft,
		excludeRight: excludeRight,
		filter:       flt,
		in:           bufio.NewReader(cc.In),
		out:          cc.Out,
	}
	return s.run()
}

func compileExclude(expr, name string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s pattern: %w", cli.ErrUsage, name, err)
	}
	return re, nil
}

func setupColor(mode string) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "", "auto":
		color.NoColor = !isatty.IsTerminal(os.Stdout.Fd())
	default:
		return fmt.Errorf("%w: color must be on, off or auto, got %q", cli.ErrUsage, mode)
	}
	return nil
}
