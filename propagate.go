package kix

import "testing"

// propagation is the panic value used to unwind from Check to Catch.
type propagation struct {
	err Error
}

// Check converts a non-nil err into an Error, capturing the trace here, and
// unwinds to the nearest enclosing Catch. It does nothing when err is nil.
func Check(err error) {
	if err != nil {
		panic(propagation{err: wrap(err)})
	}
}

// Try is Check for calls that also return a value.
func Try[T any](v T, err error) T {
	if err != nil {
		panic(propagation{err: wrap(err)})
	}
	return v
}

// Catch runs fn and turns an unwind started by Check or Try into a failed
// result. Any other panic is re-raised.
func Catch[T any](fn func() Of[T]) (r Of[T]) {
	defer func() {
		if p := recover(); p != nil {
			prop, ok := p.(propagation)
			if !ok {
				panic(p)
			}
			r = Of[T]{err: prop.err}
		}
	}()
	return fn()
}

// Test runs a test body under Catch and fails t with the body's Error,
// rendered with its trace, when the body fails.
func Test(t testing.TB, fn func() Result) {
	t.Helper()
	if e, failed := Catch(fn).Err(); failed {
		t.Fatalf("%v", e)
	}
}
