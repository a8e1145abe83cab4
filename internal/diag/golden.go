package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"cee/internal/source"
)

// goldenLine is one rendered row: a diagnostic or one of its notes.
type goldenLine struct {
	sev  string
	code string
	path string
	at   source.LineCol
	msg  string
}

func (l goldenLine) String() string {
	return fmt.Sprintf("%s %s %s:%d:%d %s", l.sev, l.code, l.path, l.at.Line, l.at.Col, l.msg)
}

// FormatGolden renders diags one per line as "sev CODE path:line:col message".
// Paths are relative to the FileSet base and use forward slashes, so the
// output is stable across machines. Lines are sorted by position; spans in
// files the FileSet does not know are dropped.
func FormatGolden(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil {
		return ""
	}
	var lines []goldenLine
	for _, d := range diags {
		code := d.Code.ID()
		if l, ok := goldenAt(fs, d.Primary); ok {
			l.sev, l.code, l.msg = strings.ToLower(d.Severity.String()), code, oneLine(d.Message)
			lines = append(lines, l)
		}
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			if l, ok := goldenAt(fs, n.Span); ok {
				l.sev, l.code, l.msg = "note", code, oneLine(n.Msg)
				lines = append(lines, l)
			}
		}
	}

	slices.SortStableFunc(lines, func(a, b goldenLine) int {
		return cmp.Or(
			cmp.Compare(a.path, b.path),
			cmp.Compare(a.at.Line, b.at.Line),
			cmp.Compare(a.at.Col, b.at.Col),
			cmp.Compare(a.sev, b.sev),
			cmp.Compare(a.code, b.code),
			cmp.Compare(a.msg, b.msg),
		)
	})

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return strings.Join(out, "\n")
}

func goldenAt(fs *source.FileSet, sp source.Span) (goldenLine, bool) {
	if int(sp.File) >= fs.Len() {
		return goldenLine{}, false
	}
	path := filepath.ToSlash(fs.Get(sp.File).FormatPath("relative", fs.BaseDir()))
	start, _ := fs.Resolve(sp)
	return goldenLine{path: strings.TrimPrefix(path, "./"), at: start}, true
}

func oneLine(msg string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(msg), " "))
}
