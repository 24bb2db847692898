package runner

import (
	"fmt"
	"time"
)

// Kind classifies a run report.
type Kind int

const (
	// Extinct means every cell died.
	Extinct Kind = iota + 1
	// Static means a generation matched its predecessor.
	Static
	// Cyclic means a generation matched one retained in history. It does not
	// end the run.
	Cyclic
	// Failed means the run was aborted by an error inside a tick.
	Failed
	// Stopped is sent once whenever a run loop exits, for any reason.
	Stopped
)

func (k Kind) String() string {
	switch k {
	case Extinct:
		return "extinct"
	case Static:
		return "static"
	case Cyclic:
		return "cyclic"
	case Failed:
		return "failed"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Report describes a condition observed by the run loop.
type Report struct {
	Kind        Kind
	Generations int64
	Period      int
	Elapsed     time.Duration
	Err         error
}

// FirstSeen returns the generation at which a detected cycle started.
func (r Report) FirstSeen() int64 { return r.Generations - int64(r.Period) }

func (r Report) String() string {
	switch r.Kind {
	case Extinct:
		return fmt.Sprintf("extinct after %d generations", r.Generations)
	case Static:
		return fmt.Sprintf("static after %d generations", r.Generations)
	case Cyclic:
		return fmt.Sprintf("cyclic, period %d, first seen after %d generations", r.Period, r.FirstSeen())
	case Failed:
		return fmt.Sprintf("failed after %d generations: %v", r.Generations, r.Err)
	case Stopped:
		return fmt.Sprintf("stopped after %s (%d generations)", r.Elapsed.Round(time.Millisecond), r.Generations)
	default:
		return r.Kind.String()
	}
}

// Reporter receives run reports on the run goroutine. Implementations may call
// Start or Stop but must not call Reset or Wait on the controller that reports
// to them: both wait for the run goroutine to exit.
type Reporter interface {
	Report(Report)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Report)

// Report calls f.
func (f ReporterFunc) Report(r Report) { f(r) }
