package config

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

func TestLoadExplicitPath(t *testing.T) {
	fs := memfs.New()
	data := []byte("context: 5\nskipBinary: true\nexcludeLeft: '\\.o$'\nfilter: kind == \"modified\"\n")
	if err := util.WriteFile(fs, "custom.yaml", data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(fs, "custom.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Context != 5 {
		t.Errorf("Context = %d, want 5", cfg.Context)
	}
	if !cfg.SkipBinary {
		t.Error("SkipBinary = false, want true")
	}
	if cfg.ExcludeLeft != `\.o$` {
		t.Errorf("ExcludeLeft = %q", cfg.ExcludeLeft)
	}
	if cfg.Filter != `kind == "modified"` {
		t.Errorf("Filter = %q", cfg.Filter)
	}
}

func TestLoadExplicitMissingIsError(t *testing.T) {
	if _, err := Load(memfs.New(), "no-such.yaml"); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadProbesDefaults(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, ".dirmerge.yml", []byte("context: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(fs, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Context != 7 {
		t.Errorf("Context = %d, want 7", cfg.Context)
	}
}

func TestLoadNoConfigIsZero(t *testing.T) {
	cfg, err := Load(memfs.New(), "")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != (Config{}) {
		t.Errorf("got %+v, want zero config", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, ".dirmerge.json", []byte(`{"context": 2, "color": "off"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(fs, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Context != 2 || cfg.Color != "off" {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, ".dirmerge.yaml", []byte("context: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fs, ""); err == nil {
		t.Error("expected decode error")
	}
}

func TestLoadProbeOrder(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, ".dirmerge.yaml", []byte("context: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := util.WriteFile(fs, ".dirmerge.yml", []byte("context: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(fs, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Context != 1 {
		t.Errorf("Context = %d, want 1 from .dirmerge.yaml", cfg.Context)
	}
}
