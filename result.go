package kix

import "fmt"

// Unit is the payload of a Result that carries no value.
type Unit = struct{}

// Of is either a value of type T or an Error.
type Of[T any] struct {
	value T
	err   Error
}

// Result is the return type of a test body that has no value to return.
type Result = Of[Unit]

// Ok returns a successful result carrying v.
func Ok[T any](v T) Of[T] {
	return Of[T]{value: v}
}

// Err converts err into an Error, capturing the trace here, and returns it
// as a failed result.
func Err[T any](err error) Of[T] {
	return Of[T]{err: wrap(err)}
}

// Fail returns a failed result carrying an existing Error.
func Fail[T any](e Error) Of[T] {
	if e.inner == nil {
		e = wrap(nil)
	}
	return Of[T]{err: e}
}

// Success is the successful Result.
func Success() Result {
	return Result{}
}

// Failure converts err into an Error, capturing the trace here, and returns
// it as a failed Result.
func Failure(err error) Result {
	return Result{err: wrap(err)}
}

func (r Of[T]) IsOk() bool {
	return r.err.inner == nil
}

func (r Of[T]) IsErr() bool {
	return r.err.inner != nil
}

// Value returns the carried value; it is the zero value for a failed result.
func (r Of[T]) Value() T {
	return r.value
}

// Err returns the carried Error and true for a failed result.
func (r Of[T]) Err() (Error, bool) {
	return r.err, r.err.inner != nil
}

// Get returns the value together with the Error, if any, so that a caller
// can switch on the outcome in one statement.
func (r Of[T]) Get() (T, *Error) {
	if r.err.inner == nil {
		return r.value, nil
	}
	e := r.err
	return r.value, &e
}

func (r Of[T]) String() string {
	if r.err.inner != nil {
		return "Err(" + r.err.String() + ")"
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
