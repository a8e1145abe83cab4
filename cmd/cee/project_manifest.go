package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"cee/internal/diag"
)

const manifestName = "cee.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

// projectConfig mirrors cee.toml. Every key is optional; command line
// flags win over the file.
type projectConfig struct {
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
	Trace       traceConfig       `toml:"trace"`
	Check       checkConfig       `toml:"check"`
}

type diagnosticsConfig struct {
	Max         int    `toml:"max"`
	Color       string `toml:"color"`
	MinSeverity string `toml:"min-severity"`
}

type traceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

type checkConfig struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
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

// loadProjectManifest returns nil without error when no cee.toml exists
// between startDir and the filesystem root.
func loadProjectManifest(startDir string) (*projectManifest, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return projectConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("diagnostics", "max") && cfg.Diagnostics.Max <= 0 {
		return projectConfig{}, fmt.Errorf("%s: [diagnostics].max must be positive", path)
	}
	if meta.IsDefined("diagnostics", "color") {
		if _, err := readColorMode(cfg.Diagnostics.Color); err != nil {
			return projectConfig{}, fmt.Errorf("%s: [diagnostics].color: %w", path, err)
		}
	}
	if meta.IsDefined("diagnostics", "min-severity") {
		if _, err := diag.ParseSeverity(cfg.Diagnostics.MinSeverity); err != nil {
			return projectConfig{}, fmt.Errorf("%s: [diagnostics].min-severity: %w", path, err)
		}
	}
	if meta.IsDefined("check", "jobs") && cfg.Check.Jobs < 0 {
		return projectConfig{}, fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	return cfg, nil
}
