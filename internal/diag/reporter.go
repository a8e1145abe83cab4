package diag

import "cee/internal/source"

// Reporter — минимальный контракт получения диагностик от фаз.
// Реализации: BagReporter, DedupReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter stores diagnostics in Bag; extra ones past the limit are lost.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// ReportBuilder lets a phase attach notes and fixes before the diagnostic
// reaches the Reporter. A nil Reporter makes Emit a no-op.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// ReportError starts an error at primary.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{reporter: r, diag: NewError(code, primary, msg)}
}

// ReportWarning starts a warning at primary.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{reporter: r, diag: New(SevWarning, code, primary, msg)}
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	b.diag = b.diag.WithNote(sp, msg)
	return b
}

func (b *ReportBuilder) WithFix(title string, edits ...FixEdit) *ReportBuilder {
	b.diag = b.diag.WithFix(title, edits...)
	return b
}

// Emit sends the diagnostic; calling it again does nothing.
func (b *ReportBuilder) Emit() {
	if b.emitted {
		return
	}
	b.emitted = true
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
}
