package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"cee/internal/diag"
	"cee/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.cee", []byte("struct S { bad bad bad }\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Unexpected(diag.SynUnexpectedToken, lineSpan(fileID, 0, 0, 19, 3), "';' or '}'", "Ident 'bad'").
		WithNote(lineSpan(fileID, 0, 0, 9, 1), "block opened here"))

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename, IncludeNotes: true})
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "SYN2001" {
		t.Errorf("severity/code = %s/%s", d.Severity, d.Code)
	}
	if d.Expected != "';' or '}'" || d.Found != "Ident 'bad'" {
		t.Errorf("expected/found = %q/%q", d.Expected, d.Found)
	}
	loc := d.Location
	if loc.File != "test.cee" || loc.StartOffset != 19 || loc.EndOffset != 22 {
		t.Errorf("location = %+v", loc)
	}
	if loc.StartLine != 1 || loc.StartCol != 20 || loc.EndCol != 23 {
		t.Errorf("positions = %+v", loc)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "block opened here" {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestJSONMaxAndOmissions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.cee", []byte("a b c\n"))

	bag := diag.NewBag(10)
	for i := range uint32(3) {
		bag.Add(diag.NewError(diag.SynUnexpectedTopLevel, lineSpan(fileID, 0, 0, i*2, 1), "unexpected").
			WithFix("drop", diag.FixEdit{Span: lineSpan(fileID, 0, 0, i*2, 1)}))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("count = %d, want 2", out.Count)
	}
	for _, d := range out.Diagnostics {
		if d.Location.StartLine != 0 {
			t.Errorf("positions included without IncludePositions: %+v", d.Location)
		}
		if d.Fixes != nil || d.Notes != nil {
			t.Errorf("fixes/notes included without opts: %+v", d)
		}
	}

	out = BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludeFixes: true})
	if out.Count != 3 || len(out.Diagnostics[2].Fixes) != 1 {
		t.Fatalf("fixes = %+v", out.Diagnostics)
	}
}
