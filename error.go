package kix

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

var errNilSource = errors.New("nil error")

// Error wraps exactly one underlying error together with the stack trace
// captured when it was wrapped. It intentionally has no Error method.
type Error struct {
	inner *innerError
}

type innerError struct {
	source error
	trace  Trace
}

// From wraps err and captures a stack trace at the call.
// A nil err is replaced by an opaque cause so that an Error is never empty.
func From(err error) Error {
	return wrap(err)
}

// New wraps anything that can describe a failure: errors are wrapped as is,
// strings and fmt.Stringer values become the message, anything else is
// formatted with fmt.Sprint.
func New(v any) Error {
	switch x := v.(type) {
	case error:
		return wrap(x)
	case string:
		return wrap(errors.New(x))
	case fmt.Stringer:
		return wrap(errors.New(x.String()))
	default:
		return wrap(errors.New(fmt.Sprint(x)))
	}
}

// Errorf formats a message with fmt.Errorf semantics, %w included, and wraps it.
func Errorf(format string, args ...any) Error {
	return wrap(fmt.Errorf(format, args...))
}

func wrap(err error) Error {
	if err == nil {
		err = errNilSource
	}
	return Error{inner: &innerError{
		source: err,
		trace:  captureTrace(),
	}}
}

// AsStdError returns a view of e that implements error. Its Error method
// returns the wrapped error's message and Unwrap returns the wrapped error,
// so errors.Is and errors.As see through it. Formatting the view with %+v
// prints the same report as e; %v and %s print the message only.
func (e Error) AsStdError() error {
	return e.view()
}

// IntoStdError hands the wrapped error over as an owned error value. e must
// not be used afterwards. There is deliberately no way back from the
// returned error to an Error; wrapping it again captures a new trace.
func (e Error) IntoStdError() error {
	return e.view()
}

func (e Error) view() *innerError {
	if e.inner == nil {
		return &innerError{source: errNilSource, trace: Trace{status: TraceUnsupported}}
	}
	return e.inner
}

// Trace returns the stack trace captured when e was created.
func (e Error) Trace() Trace {
	return e.view().trace
}

// String renders the wrapped message followed by the trace or, when no
// trace was captured, the reason why.
func (e Error) String() string {
	return e.view().report()
}

// GoString is identical to String.
func (e Error) GoString() string {
	return e.String()
}

// Format prints the same report for every verb; %q quotes it.
func (e Error) Format(s fmt.State, verb rune) {
	if verb == 'q' {
		fmt.Fprintf(s, "%q", e.String())
		return
	}
	io.WriteString(s, e.String())
}

func (ie *innerError) Error() string {
	return ie.source.Error()
}

func (ie *innerError) Unwrap() error {
	return ie.source
}

func (ie *innerError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, ie.report())
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, ie.Error())
	case 'q':
		fmt.Fprintf(s, "%q", ie.Error())
	}
}

func (ie *innerError) report() string {
	return ie.source.Error() + "\nBacktrace: " + ie.trace.describe()
}
