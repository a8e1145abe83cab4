package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cee/internal/diag"
	"cee/internal/driver"
	"cee/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.cee|directory>",
	Short: "Apply fix suggestions attached to diagnostics",
	Long:  "Check the sources, list the fix suggestions found, and apply them according to the chosen strategy.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every non-conflicting fix")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("id", "", "apply the fix with this identifier")
	fixCmd.Flags().Bool("list", false, "print available fixes without applying them")
	fixCmd.Flags().Bool("dry-run", false, "print the rewritten files instead of writing them")
}

type fixFlags struct {
	opts fix.ApplyOptions
	list bool
}

func readFixFlags(cmd *cobra.Command) (fixFlags, error) {
	var f fixFlags
	flags := cmd.Flags()
	applyAll, err := flags.GetBool("all")
	if err != nil {
		return f, err
	}
	applyOnce, err := flags.GetBool("once")
	if err != nil {
		return f, err
	}
	targetID, err := flags.GetString("id")
	if err != nil {
		return f, err
	}
	if f.list, err = flags.GetBool("list"); err != nil {
		return f, err
	}
	if f.opts.DryRun, err = flags.GetBool("dry-run"); err != nil {
		return f, err
	}

	if targetID != "" && (applyAll || applyOnce) {
		return f, fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnce {
		return f, fmt.Errorf("--all and --once are mutually exclusive")
	}
	f.opts.Mode = fix.ApplyModeOnce
	switch {
	case targetID != "":
		f.opts.Mode = fix.ApplyModeID
		f.opts.TargetID = targetID
	case applyAll:
		f.opts.Mode = fix.ApplyModeAll
	}
	return f, nil
}

func runFix(cmd *cobra.Command, args []string) error {
	ff, err := readFixFlags(cmd)
	if err != nil {
		return err
	}
	opts := currentSettings.driverOptions()
	defer printTimings(opts)

	result, err := driver.CheckDir(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("fix: check failed: %w", err)
	}
	bag := result.Bag()
	bag.Sort()

	out := cmd.OutOrStdout()
	if ff.list {
		return listFixes(out, bag.Items(), result)
	}
	res, applyErr := fix.Apply(result.FileSet, bag.Items(), ff.opts)
	return reportApplyResult(out, res, applyErr, ff.opts.DryRun)
}

func listFixes(out io.Writer, diagnostics []diag.Diagnostic, result *driver.CheckResult) error {
	n := 0
	for _, d := range diagnostics {
		path := result.FileSet.Get(d.Primary.File).FormatPath("auto", result.FileSet.BaseDir())
		start, _ := result.FileSet.Resolve(d.Primary)
		for idx, f := range d.Fixes {
			n++
			if _, err := fmt.Fprintf(out, "%s  %s:%d:%d  %s\n", fix.FixID(d, idx), path, start.Line, start.Col, f.Title); err != nil {
				return err
			}
		}
	}
	if n == 0 {
		_, err := fmt.Fprintln(out, "No fixes available.")
		return err
	}
	return nil
}

func reportApplyResult(out io.Writer, res *fix.ApplyResult, applyErr error, dryRun bool) error {
	if res == nil {
		return applyErr
	}
	verb := "Applied"
	if dryRun {
		verb = "Would apply"
	}
	if len(res.Applied) > 0 {
		fmt.Fprintf(out, "%s %d fix(es):\n", verb, len(res.Applied))
		for _, item := range res.Applied {
			fmt.Fprintf(out, "  %s [%s] %s (%d edits)\n", item.Title, item.ID, item.PrimaryPath, item.EditCount)
		}
	}
	for _, change := range res.FileChanges {
		if dryRun {
			fmt.Fprintf(out, "== %s ==\n%s", change.Path, change.Content)
			continue
		}
		fmt.Fprintf(out, "Updated %s (%d edits)\n", change.Path, change.EditCount)
	}
	if len(res.Skipped) > 0 {
		fmt.Fprintln(out, "Skipped fixes:")
		for _, skip := range res.Skipped {
			if skip.Title != "" {
				fmt.Fprintf(out, "  %s [%s]: %s\n", skip.Title, skip.ID, skip.Reason)
			} else {
				fmt.Fprintf(out, "  [%s]: %s\n", skip.ID, skip.Reason)
			}
		}
	}

	if errors.Is(applyErr, fix.ErrNoFixes) {
		_, err := fmt.Fprintln(out, "No applicable fixes found.")
		return err
	}
	return applyErr
}
