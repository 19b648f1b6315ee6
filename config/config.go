// Package config loads optional session defaults from a dotfile.
package config

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/goccy/go-yaml"
)

// Config holds defaults for a merge session. Command-line flags win
// over config values.
type Config struct {
	Context      int    `yaml:"context"`
	SkipBinary   bool   `yaml:"skipBinary"`
	ExcludeLeft  string `yaml:"excludeLeft"`
	ExcludeRight string `yaml:"excludeRight"`
	Filter       string `yaml:"filter"`
	Color        string `yaml:"color"`
}

// Probed in order when no explicit path is given. JSON parses as a
// YAML subset, so one decoder covers all of them.
var names = []string{".dirmerge.yaml", ".dirmerge.yml", ".dirmerge.json"}

// Load reads the config at path, or probes the default names when
// path is empty. A missing default file yields a zero config; a
// missing explicit path is an error.
func Load(fs billy.Filesystem, path string) (*Config, error) {
	if path != "" {
		return load(fs, path)
	}
	for _, name := range names {
		cfg, err := load(fs, name)
		if err == nil {
			return cfg, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return &Config{}, nil
}

func load(fs billy.Filesystem, path string) (*Config, error) {
	d, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	return cfg, nil
}
