package driver

import (
	"cee/internal/observ"
)

// DefaultMaxDiagnostics is used when Options.MaxDiagnostics is not positive.
const DefaultMaxDiagnostics = 100

// Options configure one driver run.
type Options struct {
	MaxDiagnostics int
	Jobs           int           // <= 0: GOMAXPROCS
	Cache          *DiskCache    // nil disables caching
	Progress       ProgressSink  // nil: no events
	Timer          *observ.Timer // nil: no timings
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// measure runs fn as a timer phase when a timer is configured.
func (o Options) measure(name string, fn func() string) {
	if o.Timer == nil {
		fn()
		return
	}
	o.Timer.Measure(name, fn)
}
