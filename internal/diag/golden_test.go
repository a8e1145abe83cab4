package diag

import (
	"testing"

	"cee/internal/source"
)

func span(file source.FileID, off, line, col, n uint32) source.Span {
	begin := source.Position{Offset: off, Line: line, Column: col}
	end := source.Position{Offset: off + n, Line: line, Column: col + n}
	return source.Span{File: file, Begin: begin, End: end}
}

func TestFormatGolden(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")
	userFile := fs.Add("/workspace/testdata/golden/sample.cee", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SynDuplicateImport,
			Message:  "another",
			Primary:  span(userFile, 2, 1, 0, 1),
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  span(userFile, 0, 0, 0, 1),
			Notes: []Note{
				{Span: span(userFile, 2, 1, 0, 1), Msg: "note line"},
			},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.cee:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.cee:2:1 note line\n" +
		"warning SYN2104 testdata/golden/sample.cee:2:1 another"

	if got := FormatGolden(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatGoldenSkipsUnknownFiles(t *testing.T) {
	fs := source.NewFileSet()
	diags := []Diagnostic{NewError(SynUnexpectedToken, span(7, 0, 0, 0, 1), "x")}
	if got := FormatGolden(diags, fs, false); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
