package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cee/internal/diag"
	"cee/internal/diagfmt"
	"cee/internal/driver"
	"cee/internal/ui"
	"cee/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.cee|directory>",
	Short: "Report syntax diagnostics for cee sources",
	Long: `Check parses every *.cee file under the given path in parallel and reports
diagnostics. The exit status is 1 when any error was found.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("cache", false, "reuse results of unchanged files from the disk cache")
	checkCmd.Flags().Bool("drop-cache", false, "clear the disk cache before checking")
	checkCmd.Flags().Bool("no-warnings", false, "hide warnings")
	checkCmd.Flags().Bool("with-fixes", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

type checkFlags struct {
	format     string
	jobs       int
	cache      bool
	dropCache  bool
	noWarnings bool
	withFixes  bool
	fullPath   bool
}

func readCheckFlags(cmd *cobra.Command, manifest *projectManifest) (checkFlags, error) {
	var f checkFlags
	var err error
	flags := cmd.Flags()
	if f.format, err = flags.GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch f.format {
	case "pretty", "json", "sarif", "short":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.cache, err = flags.GetBool("cache"); err != nil {
		return f, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if f.dropCache, err = flags.GetBool("drop-cache"); err != nil {
		return f, fmt.Errorf("failed to get drop-cache flag: %w", err)
	}
	if f.noWarnings, err = flags.GetBool("no-warnings"); err != nil {
		return f, fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	if f.withFixes, err = flags.GetBool("with-fixes"); err != nil {
		return f, fmt.Errorf("failed to get with-fixes flag: %w", err)
	}
	if f.fullPath, err = flags.GetBool("fullpath"); err != nil {
		return f, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if manifest != nil {
		if !flags.Changed("jobs") && manifest.Config.Check.Jobs > 0 {
			f.jobs = manifest.Config.Check.Jobs
		}
		if !flags.Changed("cache") && manifest.Config.Check.Cache {
			f.cache = true
		}
	}
	return f, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]
	s := currentSettings
	cf, err := readCheckFlags(cmd, s.manifest)
	if err != nil {
		return err
	}

	opts := s.driverOptions()
	opts.Jobs = cf.jobs
	defer printTimings(opts)

	if cf.cache || cf.dropCache {
		cache, err := driver.OpenDiskCache("cee")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if cf.dropCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to drop cache: %w", err)
			}
		}
		if cf.cache {
			opts.Cache = cache
		}
	}

	files, err := driver.ListSourceFiles(target)
	if err != nil {
		return err
	}

	var result *driver.CheckResult
	if shouldUseTUI(s.ui, len(files)) {
		result, err = ui.RunWithProgress(os.Stdout, "checking "+target, files, func(sink driver.ProgressSink) (*driver.CheckResult, error) {
			uiOpts := opts
			uiOpts.Progress = sink
			return driver.CheckDir(cmd.Context(), target, uiOpts)
		})
	} else {
		result, err = driver.CheckDir(cmd.Context(), target, opts)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("check failed: %w", err)
	}

	floor := s.minSeverity
	if cf.noWarnings {
		floor = diag.SevError
	}
	bag := result.Bag().AtLeast(floor)

	pathMode := diagfmt.PathModeAuto
	if cf.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	out := cmd.OutOrStdout()
	switch cf.format {
	case "json":
		err = diagfmt.JSON(out, bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     true,
			IncludeFixes:     cf.withFixes,
		})
	case "sarif":
		err = diagfmt.Sarif(out, bag, result.FileSet, diagfmt.SarifRunMeta{
			ToolName:    "cee",
			ToolVersion: version.Version,
		})
	case "short":
		if lines := diag.FormatGolden(bag.Items(), result.FileSet, false); lines != "" {
			_, err = fmt.Fprintln(out, lines)
		}
	default:
		opts := s.prettyOpts()
		opts.PathMode = pathMode
		opts.ShowFixes = cf.withFixes
		diagfmt.Pretty(os.Stderr, bag, result.FileSet, opts)
		if !s.quiet {
			fmt.Fprintln(out, checkSummary(result))
		}
	}
	if err != nil {
		return err
	}
	if result.Errors > 0 {
		return errDiagnostics
	}
	return nil
}

func checkSummary(r *driver.CheckResult) string {
	msg := fmt.Sprintf("%d files: %d errors, %d warnings", len(r.Files), r.Errors, r.Warnings)
	if r.Cached > 0 {
		msg += fmt.Sprintf(" (%d cached)", r.Cached)
	}
	return msg
}
