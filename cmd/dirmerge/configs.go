package main

import (
	"github.com/scott-cotton/cli"

	"dirmerge/config"
)

type MainConfig struct {
	DryRun       bool   `cli:"name=n aliases=dry-run desc='describe actions without touching either tree'"`
	SkipBinary   bool   `cli:"name=skip-binary desc='pass over binary files without prompting'"`
	Context      int    `cli:"name=context aliases=C desc='equal lines shown around each hunk (default 3)'"`
	ExcludeLeft  string `cli:"name=exclude-left desc='regex of left-only paths to pass over'"`
	ExcludeRight string `cli:"name=exclude-right desc='regex of right-only paths to pass over'"`
	Filter       string `cli:"name=filter desc='expression selecting entries to visit'"`
	Preview      bool   `cli:"name=preview aliases=p desc='show the whole file diff before prompting per hunk'"`
	Color        string `cli:"name=color desc='color output: on, off or auto'"`
	ConfigFile   string `cli:"name=config desc='config file (default .dirmerge.yaml)'"`

	Main *cli.Command
}

// applyConfig fills in session defaults from the config file for every
// option the command line left unset. String options treat "" as
// unset; context and skip-binary consult the parsed opt values, as ""
// is not a usable sentinel for them.
func (cfg *MainConfig) applyConfig(file *config.Config) {
	if file.Context > 0 && !cfg.optSet("context") {
		cfg.Context = file.Context
	}
	if file.SkipBinary && !cfg.optSet("skip-binary") {
		cfg.SkipBinary = true
	}
	if cfg.ExcludeLeft == "" {
		cfg.ExcludeLeft = file.ExcludeLeft
	}
	if cfg.ExcludeRight == "" {
		cfg.ExcludeRight = file.ExcludeRight
	}
	if cfg.Filter == "" {
		cfg.Filter = file.Filter
	}
	if cfg.Color == "" {
		cfg.Color = file.Color
	}
}

func (cfg *MainConfig) optSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}
