package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cee/internal/ast"
	"cee/internal/diagfmt"
	"cee/internal/driver"
	"cee/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.cee|directory>",
	Short: "Parse a cee source file or directory and output the AST",
	Long:  `Parse analyzes a cee source file or all *.cee files in a directory and outputs their syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func writeAST(w io.Writer, format string, file *ast.File, fs *source.FileSet) error {
	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(w, file, fs)
	case "json":
		return diagfmt.FormatASTJSON(w, file)
	case "yaml":
		return diagfmt.FormatASTYAML(w, file)
	case "tree":
		return diagfmt.FormatASTTree(w, file)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "yaml", "tree":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	s := currentSettings
	opts := s.driverOptions()
	defer printTimings(opts)
	out := cmd.OutOrStdout()

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		result, err := driver.Parse(cmd.Context(), filePath, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if result.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, s.prettyOpts())
		}
		if result.AST != nil {
			if err := writeAST(out, format, result.AST, result.FileSet); err != nil {
				return err
			}
		}
		if result.Bag.HasErrors() {
			return errDiagnostics
		}
		return nil
	}

	// Парсинг директории
	if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	fs, results, err := driver.ParseDir(cmd.Context(), filePath, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	hasErrors := false
	for _, r := range results {
		if r.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, r.Bag, fs, s.prettyOpts())
		}
		hasErrors = hasErrors || r.Bag.HasErrors()
	}

	if format == "json" || format == "yaml" {
		output := make(map[string]*diagfmt.ASTNodeOutput, len(results))
		for _, r := range results {
			displayPath := fs.Get(r.FileID).FormatPath("auto", fs.BaseDir())
			if r.AST == nil {
				output[displayPath] = nil
				continue
			}
			node, err := diagfmt.BuildASTJSON(r.AST)
			if err != nil {
				return err
			}
			output[displayPath] = &node
		}
		if format == "yaml" {
			return finishParse(diagfmt.EncodeYAML(out, output), hasErrors)
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
	} else {
		for idx, r := range results {
			if !s.quiet {
				displayPath := fs.Get(r.FileID).FormatPath("auto", fs.BaseDir())
				if _, err := fmt.Fprintf(out, "== %s ==\n", displayPath); err != nil {
					return err
				}
			}
			if r.AST != nil {
				if err := writeAST(out, format, r.AST, fs); err != nil {
					return err
				}
			}
			if !s.quiet && idx < len(results)-1 {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
		}
	}

	return finishParse(nil, hasErrors)
}

func finishParse(err error, hasErrors bool) error {
	if err != nil {
		return err
	}
	if hasErrors {
		return errDiagnostics
	}
	return nil
}
