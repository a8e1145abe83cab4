package diag

import "cee/internal/source"

// DedupReporter forwards each distinct diagnostic once. Two diagnostics are
// the same when code, severity, primary span and message match; notes and
// fixes are ignored. Recovery at one spot can otherwise report a mismatch twice.
type DedupReporter struct {
	next    Reporter
	seen    map[dedupKey]struct{}
	dropped int
}

type dedupKey struct {
	code    Code
	sev     Severity
	primary source.Span
	msg     string
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[dedupKey]struct{})}
}

func (r *DedupReporter) Report(d Diagnostic) {
	key := dedupKey{code: d.Code, sev: d.Severity, primary: d.Primary, msg: d.Message}
	if _, dup := r.seen[key]; dup {
		r.dropped++
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(d)
	}
}

// Dropped is the number of duplicates swallowed so far.
func (r *DedupReporter) Dropped() int {
	return r.dropped
}
