package trace

import (
	"errors"
	"io"
)

// MultiTracer fans out trace events to multiple tracers.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{tracers: tracers, level: level}
}

// Emit hands each tracer its own copy; tracers stamp Seq on the event.
func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		cp := *ev
		tr.Emit(&cp)
	}
}

func (t *MultiTracer) Flush() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Close() error {
	var errs []error
	for _, tr := range t.tracers {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level  { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }

// DumpRing writes the ring buffer of t, if it has one, to w. It is used to
// show the last events after a failed run.
func DumpRing(t Tracer, w io.Writer, format Format) error {
	switch tr := t.(type) {
	case *RingTracer:
		return tr.Dump(w, format)
	case *MultiTracer:
		for _, inner := range tr.tracers {
			if ring, ok := inner.(*RingTracer); ok {
				return ring.Dump(w, format)
			}
		}
	}
	return nil
}
