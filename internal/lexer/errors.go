package lexer

import (
	"errors"
	"fmt"

	"cee/internal/diag"
	"cee/internal/source"
)

var (
	// ErrEndOfInput matches every *EOFError.
	ErrEndOfInput = errors.New("end of input")
	// ErrFormat matches every *FormatError.
	ErrFormat = errors.New("format error")
	// ErrUnknownDelimiter means a configured delimiter has no entry in the keyword table.
	ErrUnknownDelimiter = errors.New("delimiter missing from keyword table")
)

// EOFError reports that no further character could be read, or that the
// character at Pos cannot start any token (Unexpected != 0).
// Boundary is set when input ended cleanly between two tokens.
type EOFError struct {
	Pos        source.Position
	Unexpected rune
	Boundary   bool
}

func (e *EOFError) Error() string {
	if e.Unexpected != 0 {
		return fmt.Sprintf("%s: unexpected character %q", e.Pos, e.Unexpected)
	}
	return fmt.Sprintf("%s: unexpected end of input", e.Pos)
}

func (e *EOFError) Is(target error) bool { return target == ErrEndOfInput }

// Code classifies the error for diagnostics.
func (e *EOFError) Code() diag.Code {
	if e.Unexpected != 0 {
		return diag.LexUnknownChar
	}
	return diag.LexUnexpectedEOF
}

// FormatError reports a malformed literal or comment.
type FormatError struct {
	Span   source.Span
	Kind   diag.Code
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Code classifies the error for diagnostics.
func (e *FormatError) Code() diag.Code { return e.Kind }

// AsDiagnostic converts a lexical error into a diagnostic located in file.
// ok is false for errors that did not come from the lexer.
func AsDiagnostic(file source.FileID, err error) (diag.Diagnostic, bool) {
	var eof *EOFError
	if errors.As(err, &eof) {
		sp := source.At(file, eof.Pos)
		if eof.Unexpected != 0 {
			sp.End = eof.Pos.Advance(eof.Unexpected)
		}
		return diag.NewError(eof.Code(), sp, eof.Error()), true
	}
	var ferr *FormatError
	if errors.As(err, &ferr) {
		sp := ferr.Span
		sp.File = file
		return diag.NewError(ferr.Code(), sp, ferr.Reason), true
	}
	return diag.Diagnostic{}, false
}
