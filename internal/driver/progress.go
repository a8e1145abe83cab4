package driver

// Stage is the step a file is in during a directory run.
type Stage uint8

const (
	StageQueued Stage = iota
	StageTokenize
	StageParse
	StageCache // результат взят из дискового кэша
)

// Status reports progress within a Stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is a progress notification for one file. File is empty for events
// about the whole run.
type Event struct {
	File        string
	Stage       Stage
	Status      Status
	Diagnostics int
	Err         error
}

// ProgressSink receives progress events. Implementations must be safe for
// concurrent use; ParseDir calls OnEvent from worker goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events to a channel, as the terminal UI expects.
type ChannelSink chan<- Event

func (c ChannelSink) OnEvent(ev Event) { c <- ev }

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
