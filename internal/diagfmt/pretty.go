package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"cee/internal/diag"
	"cee/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	code, path      *color.Color
	gutter, caret   *color.Color
	note            *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		path:   color.New(color.FgWhite, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.path.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), start.Line, start.Col),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message,
	)
	if f != nil {
		writeSnippet(w, f, d.Primary, opts, pal)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"), formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
		}
	}
	if opts.ShowFixes {
		for i, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.note.Sprintf("fix #%d:", i+1), fix.Title)
			for _, e := range fix.Edits {
				es, ee := fs.Resolve(e.Span)
				fmt.Fprintf(w, "    %d:%d-%d:%d apply=%q\n", es.Line, es.Col, ee.Line, ee.Col, e.NewText)
			}
		}
	}
}

// writeSnippet prints the primary line with opts.Context lines around it and
// underlines the span on the first line it touches.
func writeSnippet(w io.Writer, f *source.File, span source.Span, opts PrettyOpts, pal palette) {
	line := span.Begin.Line + 1
	ctx := uint32(max(opts.Context, 0)) // #nosec G115 -- non-negative int8
	first := uint32(1)
	if line > ctx {
		first = line - ctx
	}
	last := line + ctx
	lines := uint32(len(f.LineIdx)) + 1 // #nosec G115 -- line index is built from a uint32-sized text

	gutterWidth := len(fmt.Sprint(min(last, lines)))
	blank := strings.Repeat(" ", gutterWidth)

	for n := first; n <= last && n <= lines; n++ {
		text := f.GetLine(n)
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		fmt.Fprintf(w, " %s %s %s\n", pal.gutter.Sprintf("%*d", gutterWidth, n), pal.gutter.Sprint("|"), text)
		if n != line {
			continue
		}
		pad, width := caretPosition(f.GetLine(n), span)
		fmt.Fprintf(w, " %s %s %s%s\n", blank, pal.gutter.Sprint("|"), pad, pal.caret.Sprint("^"+strings.Repeat("~", width-1)))
	}
}

// caretPosition returns the indentation before the caret and the display
// width of the underline. Tabs are kept so the caret lines up with the source.
func caretPosition(line string, span source.Span) (string, int) {
	runes := []rune(line)
	col := min(int(span.Begin.Column), len(runes))

	var pad strings.Builder
	for _, r := range runes[:col] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	end := len(runes)
	if span.End.Line == span.Begin.Line {
		end = min(int(span.End.Column), len(runes))
	}
	width := 0
	if end > col {
		width = runewidth.StringWidth(string(runes[col:end]))
	}
	return pad.String(), max(width, 1)
}
