// Package kix provides a result type for tests that removes the need for
// unwrapping or panicking on every fallible call in a test body.
//
// A test body returns a Result and converts any error it meets into an Error
// at the point where it gives up:
//
//	func TestConfigFile(t *testing.T) {
//		kix.Test(t, func() kix.Result {
//			content := kix.Try(os.ReadFile("/dev/null"))
//			require.Empty(t, content)
//			return kix.Success()
//		})
//	}
//
// Set the environment variable RUST_BACKTRACE=1 (or RUST_LIB_BACKTRACE=1,
// which takes precedence) to capture a stack trace on every conversion. The
// first frames of a captured trace point into the conversion path of this
// package rather than at the failing call; the caller shows up a few frames
// further down.
//
// Do not use Error for anything other than testing. Error does not implement
// the error interface, on purpose: a value that is an error and also the
// target of a conversion from any error would let a converted value slip
// through the conversion untouched, losing its trace. Use Error.AsStdError
// to pass an Error to code that expects an error.
package kix
