package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"cee/internal/diag"
	"cee/internal/source"
)

func TestSarif(t *testing.T) {
	fs := source.NewFileSetWithBase("/src")
	id := fs.AddVirtual("/src/pkg/a.cee", []byte("import io \"a\"\nimport io \"b\"\n"))

	bag := diag.NewBag(4)
	second := source.Span{
		File:  id,
		Begin: source.Position{Offset: 14, Line: 1, Column: 0},
		End:   source.Position{Offset: 27, Line: 1, Column: 13},
	}
	bag.Add(diag.New(diag.SevWarning, diag.SynDuplicateImport, second, "import name 'io' is already bound").
		WithNote(lineSpan(id, 0, 0, 0, 13), "previous import here").
		WithFix("remove duplicate import", diag.FixEdit{Span: second}))
	bag.Add(diag.NewError(diag.SynUnexpectedToken, lineSpan(id, 0, 0, 7, 2), "x"))
	bag.Add(diag.NewError(diag.SynUnexpectedToken, lineSpan(id, 0, 0, 10, 3), "y"))

	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "cee", ToolVersion: "1.0"}); err != nil {
		t.Fatal(err)
	}
	var log sarifLog
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("log = %+v", log)
	}
	run := log.Runs[0]
	if run.Tool.Driver.Name != "cee" || len(run.Tool.Driver.Rules) != 2 {
		t.Fatalf("driver = %+v", run.Tool.Driver)
	}
	if len(run.Results) != 3 || run.Results[2].RuleIndex != 1 || run.Results[2].Level != "error" {
		t.Fatalf("results = %+v", run.Results)
	}

	warn := run.Results[0]
	loc := warn.Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != "pkg/a.cee" || loc.Region.StartLine != 2 || loc.Region.StartColumn != 1 || loc.Region.EndColumn != 14 {
		t.Errorf("location = %+v", loc)
	}
	if warn.Level != "warning" || len(warn.RelatedLocations) != 1 || warn.RelatedLocations[0].Message.Text != "previous import here" {
		t.Errorf("warning = %+v", warn)
	}
	if len(warn.Fixes) != 1 {
		t.Fatalf("fixes = %+v", warn.Fixes)
	}
	rep := warn.Fixes[0].ArtifactChanges[0].Replacements[0]
	if rep.InsertedContent != nil || rep.DeletedRegion.StartLine != 2 {
		t.Errorf("replacement = %+v", rep)
	}
}
