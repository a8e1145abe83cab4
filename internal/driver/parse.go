package driver

import (
	"context"
	"fmt"

	"fortio.org/safecast"

	"cee/internal/ast"
	"cee/internal/diag"
	"cee/internal/parser"
	"cee/internal/source"
	"cee/internal/trace"
)

type ParseResult struct {
	FileSet    *source.FileSet
	File       *source.File
	AST        *ast.File // nil when a lexical error stopped the parse
	Namespaces map[string]*ast.ImportDecl
	Bag        *diag.Bag
}

// Parse loads and parses one file.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	span, ctx := trace.BeginCtx(ctx, trace.ScopePhase, "parse")
	defer span.End(path)

	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	res := &ParseResult{FileSet: fs, File: file}
	opts.measure("parse", func() string {
		var out parsed
		out, err = parseSourceFile(ctx, file, opts.maxDiagnostics())
		res.AST, res.Namespaces, res.Bag = out.file, out.namespaces, out.bag
		return fmt.Sprintf("%d diagnostics", out.bag.Len())
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

type parsed struct {
	file       *ast.File
	namespaces map[string]*ast.ImportDecl
	bag        *diag.Bag
}

// parseSourceFile parses one loaded file into its own bag. A lexical error
// becomes the last diagnostic of the bag.
func parseSourceFile(ctx context.Context, file *source.File, maxDiagnostics int) (parsed, error) {
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return parsed{}, err
	}
	// +1: место под фатальную лексическую ошибку
	bag := diag.NewBag(maxDiagnostics + 1)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	res, err := parser.ParseFile(file, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  reporter,
	})
	out := parsed{file: res.File, namespaces: res.Namespaces, bag: bag}
	if bag.Full() {
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "diagnostics-limit", file.Path)
	}
	if n := reporter.Dropped(); n > 0 {
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "dedup", fmt.Sprintf("%d duplicate diagnostics", n))
	}
	if err != nil {
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "lexical-error", err.Error())
		if err := reportLexError(bag, file.ID, err); err != nil {
			return parsed{}, fmt.Errorf("parse %s: %w", file.Path, err)
		}
	}
	return out, nil
}
