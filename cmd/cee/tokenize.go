package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cee/internal/diagfmt"
	"cee/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.cee",
	Short: "Tokenize a cee source file",
	Long: `Tokenize prints the refined token stream of a file, with inserted semicolons.
With --raw it prints the scanner output instead: comments and newlines kept, no keywords.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("raw", false, "print raw scanner tokens")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return fmt.Errorf("failed to get raw flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	s := currentSettings
	opts := s.driverOptions()
	defer printTimings(opts)

	var result *driver.TokenizeResult
	if raw {
		result, err = driver.TokenizeRaw(cmd.Context(), filePath, opts)
	} else {
		result, err = driver.Tokenize(cmd.Context(), filePath, opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностику в stderr, токены в stdout
	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, s.prettyOpts())
	}

	out := cmd.OutOrStdout()
	switch {
	case raw && format == "json":
		err = diagfmt.FormatRawTokensJSON(out, result.Raw)
	case raw:
		err = diagfmt.FormatRawTokensPretty(out, result.Raw, result.FileSet)
	case format == "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}
