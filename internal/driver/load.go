package driver

import (
	"fmt"

	"cee/internal/diag"
	"cee/internal/lexer"
	"cee/internal/source"
)

// loadFile reads path into a fresh FileSet.
func loadFile(path string) (*source.FileSet, *source.File, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	return fs, fs.Get(id), nil
}

// reportLexError turns a lexical error into a diagnostic in bag. Errors that
// do not come from the scanner are returned unchanged.
func reportLexError(bag *diag.Bag, file source.FileID, err error) error {
	d, ok := lexer.AsDiagnostic(file, err)
	if !ok {
		return err
	}
	bag.Add(d)
	return nil
}
