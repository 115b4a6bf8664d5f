package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	radint "github.com/shabbyrobe/go-radint"
)

const configFileName = "radint.toml"

type config struct {
	Defaults defaultsConfig `toml:"defaults"`
}

type defaultsConfig struct {
	Radix  int    `toml:"radix"`
	Strict bool   `toml:"strict"`
	Jobs   int    `toml:"jobs"`
	Color  string `toml:"color"`
}

func defaultConfig() config {
	return config{Defaults: defaultsConfig{
		Radix: radint.DefaultRadix,
		Jobs:  runtime.NumCPU(),
		Color: "auto",
	}}
}

// findConfig looks for radint.toml in startDir and each of its parents.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig reads path over the defaults. Keys the file leaves out keep their
// default values; unknown keys are an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c config) validate() error {
	if err := checkRadix("defaults.radix", c.Defaults.Radix); err != nil {
		return err
	}
	if err := checkJobs("defaults.jobs", c.Defaults.Jobs); err != nil {
		return err
	}
	switch strings.ToLower(c.Defaults.Color) {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("defaults.color must be auto, on or off, found %q", c.Defaults.Color)
	}
	return nil
}
