package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cee/internal/diag"
	"cee/internal/diagfmt"
	"cee/internal/driver"
	"cee/internal/observ"
)

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on", "always":
		return colorOn, nil
	case "off", "never":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid color value %q (expected auto|on|off)", value)
	}
}

// settings is the merged view of flags and cee.toml for one command.
type settings struct {
	manifest       *projectManifest
	maxDiagnostics int
	minSeverity    diag.Severity
	color          colorMode
	quiet          bool
	timings        bool
	ui             uiMode
}

var currentSettings settings

func resolveSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Root().PersistentFlags()
	var s settings

	wd, err := os.Getwd()
	if err != nil {
		return s, err
	}
	if s.manifest, err = loadProjectManifest(wd); err != nil {
		return s, err
	}

	if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return s, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return s, fmt.Errorf("failed to get color flag: %w", err)
	}
	if s.manifest != nil {
		cfg := s.manifest.Config.Diagnostics
		if !flags.Changed("max-diagnostics") && cfg.Max > 0 {
			s.maxDiagnostics = cfg.Max
		}
		if !flags.Changed("color") && cfg.Color != "" {
			colorFlag = cfg.Color
		}
		if cfg.MinSeverity != "" {
			// уже проверено при загрузке cee.toml
			s.minSeverity, _ = diag.ParseSeverity(cfg.MinSeverity)
		}
	}
	if s.maxDiagnostics <= 0 {
		return s, fmt.Errorf("--max-diagnostics must be positive, got %d", s.maxDiagnostics)
	}
	if s.color, err = readColorMode(colorFlag); err != nil {
		return s, err
	}

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	uiFlag, err := flags.GetString("ui")
	if err != nil {
		return s, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if s.ui, err = readUIMode(uiFlag); err != nil {
		return s, err
	}

	currentSettings = s
	return s, nil
}

func (s settings) useColor(f *os.File) bool {
	switch s.color {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		return isTerminal(f)
	}
}

func (s settings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:     s.useColor(os.Stderr),
		Context:   2,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
	}
}

func (s settings) driverOptions() driver.Options {
	opts := driver.Options{MaxDiagnostics: s.maxDiagnostics}
	if s.timings {
		opts.Timer = observ.NewTimer()
	}
	return opts
}

// printTimings writes the timer table to stderr when --timings is set.
func printTimings(opts driver.Options) {
	if opts.Timer == nil {
		return
	}
	fmt.Fprint(os.Stderr, opts.Timer.Summary())
}
