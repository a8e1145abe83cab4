package parser

import (
	"strings"
	"testing"

	"cee/internal/ast"
	"cee/internal/diag"
	"cee/internal/lexer"
	"cee/internal/source"
	"cee/internal/testkit"
)

// parseSource парсит строку и падает на лексической ошибке.
func parseSource(t *testing.T, input string) (*ast.File, *diag.Bag, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cee", []byte(input))
	file := fs.Get(id)
	res, err := ParseFile(file, Options{})
	if err != nil {
		t.Fatalf("unexpected lexical error: %v", err)
	}
	return res.File, res.Bag, file
}

// parseClean requires zero diagnostics and valid spans.
func parseClean(t *testing.T, input string) *ast.File {
	t.Helper()
	f, bag, file := parseSource(t, input)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", diagnosticsSummary(bag))
	}
	if err := testkit.CheckSpanInvariants(f, file); err != nil {
		t.Fatalf("span invariants: %v", err)
	}
	return f
}

// newTestParser builds a parser positioned on the first token of input.
func newTestParser(t *testing.T, input string) *Parser {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cee", []byte(input))
	file := fs.Get(id)
	return New(file, lexer.New(file), Options{})
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	var sb strings.Builder
	for _, d := range bag.Items() {
		sb.WriteString(d.Code.String())
		sb.WriteString(" ")
		sb.WriteString(d.Message)
		sb.WriteString(" @ ")
		sb.WriteString(d.Primary.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func expectCodes(t *testing.T, bag *diag.Bag, want ...diag.Code) {
	t.Helper()
	items := bag.Items()
	if len(items) != len(want) {
		t.Fatalf("got %d diagnostics, want %d:\n%s", len(items), len(want), diagnosticsSummary(bag))
	}
	for i, code := range want {
		if items[i].Code != code {
			t.Errorf("diagnostic %d: code %v, want %v\n%s", i, items[i].Code, code, diagnosticsSummary(bag))
		}
	}
}
