package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"cee/internal/diag"
	"cee/internal/observ"
	"cee/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.cee", "val x Int = 1\n")
	timer := observ.NewTimer()

	res, err := Tokenize(context.Background(), path, Options{Timer: timer})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("diagnostics: %+v", res.Bag.Items())
	}
	want := []token.Kind{token.Val, token.Ident, token.Ident, token.Assign, token.Int, token.Semicolon, token.EOF}
	if len(res.Tokens) != len(want) {
		t.Fatalf("tokens = %v", res.Tokens)
	}
	for i, k := range want {
		if res.Tokens[i].Kind != k {
			t.Errorf("token %d = %v, want %v", i, res.Tokens[i].Kind, k)
		}
	}
	if phases := timer.Report().Phases; len(phases) != 1 || phases[0].Note != "7 tokens" {
		t.Errorf("timer phases = %+v", phases)
	}
}

func TestTokenizeLexicalError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.cee", "val s Str = \"abc")
	res, err := Tokenize(context.Background(), path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 1 || !res.Bag.HasErrors() {
		t.Fatalf("diagnostics = %+v", res.Bag.Items())
	}
	if n := len(res.Tokens); n == 0 || res.Tokens[n-1].Kind == token.EOF {
		t.Errorf("stream should stop before EOF: %v", res.Tokens)
	}
}

func TestTokenizeRawKeepsComments(t *testing.T) {
	path := writeFile(t, t.TempDir(), "raw.cee", "// hi\nval\n")
	res, err := TokenizeRaw(context.Background(), path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Raw) == 0 || res.Raw[0].Kind != token.RawComment {
		t.Fatalf("raw = %+v", res.Raw)
	}
	for _, raw := range res.Raw {
		// сканер не знает ключевых слов
		if raw.Text == "val" && raw.Kind != token.RawIdent {
			t.Errorf("val scanned as %v", raw.Kind)
		}
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "nope.cee"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v", err)
	}
}

func TestParse(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.cee", "import io \"std/io\"\nfunc main() {\n\treturn\n}\n")
	res, err := Parse(context.Background(), path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.AST == nil || len(res.AST.Decls) != 2 {
		t.Fatalf("ast = %+v", res.AST)
	}
	if _, ok := res.Namespaces["io"]; !ok {
		t.Errorf("namespaces = %v", res.Namespaces)
	}
}

func TestParseLexicalErrorBecomesDiagnostic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		total int
	}{
		{"in body", "func f() {\n\tval x Int = 0x\n}\n", 1},
		// val вне функции: сначала SYN, лексическая ошибка последней
		{"after syntax error", "val x Int = 0x\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "p.cee", tt.input)
			res, err := Parse(context.Background(), path, Options{})
			if err != nil {
				t.Fatal(err)
			}
			if res.AST != nil {
				t.Error("tree returned after a lexical error")
			}
			items := res.Bag.Items()
			if len(items) != tt.total || items[len(items)-1].Code != diag.LexBadNumber {
				t.Fatalf("diagnostics = %+v", items)
			}
		})
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func TestParseDirOrderAndProgress(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.cee", "func b() {}\n")
	writeFile(t, dir, "a.cee", "func a() {}\nfunc a2() {}\n")
	writeFile(t, dir, "sub/c.cee", "struct C { x Int }\n")
	writeFile(t, dir, "notes.txt", "ignored")

	sink := &recordingSink{}
	fileSet, results, err := ParseDir(context.Background(), dir, Options{Jobs: 2, Progress: sink})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.cee", "b.cee", filepath.Join("sub", "c.cee")}
	if len(results) != len(want) {
		t.Fatalf("results = %d", len(results))
	}
	for i, r := range results {
		if r.Path != filepath.Join(dir, want[i]) {
			t.Errorf("result %d = %s", i, r.Path)
		}
		if r.AST == nil || r.Bag.Len() != 0 {
			t.Errorf("%s: ast=%v diags=%d", r.Path, r.AST, r.Bag.Len())
		}
		if fileSet.Get(r.FileID).Hash == [32]byte{} {
			t.Errorf("%s: file not registered", r.Path)
		}
	}
	if results[0].Decls != 2 {
		t.Errorf("a.cee decls = %d", results[0].Decls)
	}

	done := 0
	for _, ev := range sink.events {
		if ev.Stage == StageParse && ev.Status == StatusDone {
			done++
		}
	}
	if done != 3 {
		t.Errorf("done events = %d of %d", done, len(sink.events))
	}
}

func TestParseDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.cee", "func a() {}\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := ParseDir(ctx, dir, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestCheckDirUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.cee", "import io \"std/io\"\n")
	writeFile(t, dir, "bad.cee", "struct S { bad bad bad }\n")

	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache}

	first, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached != 0 || first.Errors == 0 {
		t.Fatalf("first run = %+v", first)
	}

	second, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if second.Cached != 2 {
		t.Fatalf("cached = %d", second.Cached)
	}
	if second.Errors != first.Errors || second.Warnings != first.Warnings {
		t.Errorf("counts differ: %+v vs %+v", second, first)
	}
	a, b := first.Bag().Items(), second.Bag().Items()
	if len(a) != len(b) {
		t.Fatalf("bags differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Code != b[i].Code || a[i].Primary != b[i].Primary || a[i].Message != b[i].Message {
			t.Errorf("diag %d: %+v vs %+v", i, a[i], b[i])
		}
	}
	if got := second.Files[1].Imports; len(got) != 1 || got[0] != "std/io" {
		t.Errorf("imports = %v", got)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := [32]byte{1, 2, 3}
	bag := diag.NewBag(4)
	bag.Add(diag.Unexpected(diag.SynUnexpectedToken, spanAt(3, 5), "';'", "Ident 'x'").WithNote(spanAt(0, 1), "here"))

	if err := cache.Put(key, &DiskPayload{Path: "x.cee", Hash: key, Decls: 3, Diagnostics: cachedDiagnostics(bag)}); err != nil {
		t.Fatal(err)
	}
	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil || !hit {
		t.Fatalf("hit=%v err=%v", hit, err)
	}
	restored := diag.NewBag(4)
	got.restore(7, restored)
	d := restored.Items()[0]
	if d.Primary.File != 7 || d.Primary.Begin.Offset != 3 || d.Expected != "';'" || len(d.Notes) != 1 {
		t.Errorf("restored = %+v", d)
	}

	// другой ключ с тем же содержимым файла не совпадает по хэшу
	if hit, _ := cache.Get([32]byte{9}, &got); hit {
		t.Error("unexpected hit")
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if hit, _ := cache.Get(key, &got); hit {
		t.Error("hit after DropAll")
	}
}

func TestListSourceFilesSingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.txt", "")
	files, err := ListSourceFiles(path)
	if err != nil || len(files) != 1 || files[0] != path {
		t.Fatalf("files = %v, %v", files, err)
	}
}
