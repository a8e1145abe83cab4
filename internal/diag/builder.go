package diag

import (
	"fmt"

	"cee/internal/source"
)

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// Unexpected builds the parser's "expected X, found Y" error.
func Unexpected(code Code, primary source.Span, expected, found string) Diagnostic {
	d := NewError(code, primary, fmt.Sprintf("expected %s, found %s", expected, found))
	d.Expected = expected
	d.Found = found
	return d
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
