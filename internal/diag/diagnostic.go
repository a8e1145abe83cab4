package diag

import (
	"cee/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type FixEdit struct {
	Span    source.Span
	NewText string
}

type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is one finding. Expected and Found describe the grammar node
// the parser wanted and what it saw instead; both are empty for other kinds.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Expected string
	Found    string
	Notes    []Note
	Fixes    []Fix
}

// IsUnexpected reports whether d is an "expected X, found Y" syntax error.
func (d Diagnostic) IsUnexpected() bool {
	return d.Expected != ""
}
