package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cee/internal/diag"
	"cee/internal/parser"
	"cee/internal/source"
)

func at(file source.FileID, begin, end uint32) source.Span {
	return source.Span{
		File:  file,
		Begin: source.Position{Offset: begin, Column: begin},
		End:   source.Position{Offset: end, Column: end},
	}
}

func TestGatherCandidatesSkipsEmptyFixes(t *testing.T) {
	d := diag.NewError(diag.SynUnexpectedToken, at(0, 1, 2), "x").
		WithFix("nothing").
		WithFix("insert", diag.FixEdit{Span: at(0, 1, 1), NewText: ";"})

	cands, skips := gatherCandidates([]diag.Diagnostic{d, d})
	if len(cands) != 1 {
		t.Fatalf("candidates = %d", len(cands))
	}
	if cands[0].id != "SYN2001-0-1-1" {
		t.Errorf("id = %q", cands[0].id)
	}
	// пустой fix дважды и дубликат id
	if len(skips) != 3 || skips[0].Reason != "fix has no edits" || skips[2].Reason != "duplicate fix id" {
		t.Fatalf("skips = %+v", skips)
	}
}

func TestConflicts(t *testing.T) {
	tests := []struct {
		a, b edit
		want bool
	}{
		{edit{begin: 1, end: 1}, edit{begin: 1, end: 1}, false},
		{edit{begin: 2, end: 2}, edit{begin: 1, end: 3}, true},
		{edit{begin: 3, end: 3}, edit{begin: 1, end: 3}, false},
		{edit{begin: 0, end: 2}, edit{begin: 1, end: 4}, true},
		{edit{begin: 0, end: 2}, edit{begin: 2, end: 4}, false},
	}
	for _, tt := range tests {
		if got := conflicts(tt.a, tt.b); got != tt.want {
			t.Errorf("conflicts(%v, %v) = %v", tt.a, tt.b, got)
		}
	}
}

func TestRewriteRunes(t *testing.T) {
	text := []rune("ä b ü")
	got := rewrite(text, []edit{{begin: 0, end: 1, text: "a"}, {begin: 4, end: 5, text: "u!"}, {begin: 2, end: 2, text: "+"}})
	if got != "a +b u!" {
		t.Errorf("rewrite = %q", got)
	}
}

func TestApplyParserFixes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.cee")
	src := "import io \"a\"\nimport io \"b\"\nfunc f() {} func g() {}\n"
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	res, err := parser.ParseFile(fs.Get(id), parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 2 {
		t.Fatalf("diagnostics = %d", res.Bag.Len())
	}

	dry, err := Apply(fs, res.Bag.Items(), ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	want := "import io \"a\"\n\nfunc f() {} \nfunc g() {}\n"
	if len(dry.FileChanges) != 1 || string(dry.FileChanges[0].Content) != want {
		t.Fatalf("dry run = %+v", dry.FileChanges)
	}
	if data, _ := os.ReadFile(path); string(data) != src {
		t.Fatal("dry run wrote the file")
	}

	once, err := Apply(fs, res.Bag.Items(), ApplyOptions{Mode: ApplyModeOnce})
	if err != nil {
		t.Fatal(err)
	}
	if len(once.Applied) != 1 || once.Applied[0].Code != diag.SynDuplicateImport {
		t.Fatalf("applied = %+v", once.Applied)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "import io \"a\"\n\nfunc f() {} func g() {}\n" {
		t.Errorf("file = %q", data)
	}
}

func TestApplyByID(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("v.cee", []byte("ab"))
	d := diag.NewError(diag.SynUnexpectedToken, at(id, 1, 2), "x").
		WithFix("insert", diag.FixEdit{Span: at(id, 1, 1), NewText: ";"})

	_, err := Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeID, TargetID: "nope"})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("err = %v", err)
	}
	// виртуальный файл нельзя записать
	res, err := Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeID, TargetID: FixID(d, 0)})
	if !errors.Is(err, ErrNoFixes) || len(res.Skipped) != 1 || res.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("res = %+v, err = %v", res, err)
	}
	res, err = Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeID, TargetID: FixID(d, 0), DryRun: true})
	if err != nil || string(res.FileChanges[0].Content) != "a;b" {
		t.Fatalf("res = %+v, err = %v", res, err)
	}
}

func TestApplyKeepsCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "w.cee")
	if err := os.WriteFile(path, []byte("import io \"a\"\r\nimport io \"b\"\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	res, _ := parser.ParseFile(fs.Get(id), parser.Options{})
	out, err := Apply(fs, res.Bag.Items(), ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(out.FileChanges[0].Content); got != "import io \"a\"\r\n\r\n" {
		t.Errorf("content = %q", got)
	}
}
