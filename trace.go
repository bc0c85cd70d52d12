package kix

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/vutung2311/kix/internal/config"
)

// TraceStatus tells whether a Trace holds frames and, if not, why.
type TraceStatus uint8

const (
	// TraceUnsupported means the runtime returned no frames.
	TraceUnsupported TraceStatus = iota
	// TraceDisabled means capture is turned off by the environment.
	TraceDisabled
	// TraceCaptured means the trace holds frames.
	TraceCaptured
)

func (s TraceStatus) String() string {
	switch s {
	case TraceUnsupported:
		return "unsupported"
	case TraceDisabled:
		return "disabled"
	case TraceCaptured:
		return "captured"
	default:
		return fmt.Sprintf("TraceStatus(%d)", uint8(s))
	}
}

// Trace is a snapshot of the call stack taken when an Error was created.
type Trace struct {
	status TraceStatus
	frames errors.StackTrace
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

var errTraceMarker = errors.New("trace")

// captureTrace must only be called from the constructors: the innermost
// frames it records belong to this package.
func captureTrace() Trace {
	if !config.TraceEnabled() {
		return Trace{status: TraceDisabled}
	}
	st, ok := errors.WithStack(errTraceMarker).(stackTracer)
	if !ok {
		return Trace{status: TraceUnsupported}
	}
	frames := st.StackTrace()
	if len(frames) == 0 {
		return Trace{status: TraceUnsupported}
	}
	return Trace{status: TraceCaptured, frames: frames}
}

// Status reports whether frames were captured.
func (t Trace) Status() TraceStatus {
	return t.status
}

// Frames returns the captured frames, innermost first. It is empty unless
// Status is TraceCaptured.
func (t Trace) Frames() errors.StackTrace {
	return t.frames
}

// String renders one numbered entry per frame: the function name, then the
// file and line on the next line.
func (t Trace) String() string {
	var b strings.Builder
	for i, f := range t.frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%4d: %+v", i, f)
	}
	return b.String()
}

func (t Trace) describe() string {
	switch t.status {
	case TraceCaptured:
		return "\n" + t.String()
	case TraceUnsupported:
		return "Unsupported."
	case TraceDisabled:
		return "Disabled. Turn on by environment variable 'RUST_BACKTRACE=1'."
	default:
		return "Unknown."
	}
}

// ForceTrace turns capture on or off regardless of the environment until
// restore is called. Meant for tests that assert on the rendered trace.
func ForceTrace(enabled bool) (restore func()) {
	return config.Override(enabled)
}
