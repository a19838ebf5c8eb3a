package pyrus

import "errors"

// Fixed messages used by the argument-less unwrapping operations.
const (
	DefaultUnwrapMessage    = "called `Option.Unwrap()` on a `Nothing` value"
	DefaultResultMessage    = "called `Result.Unwrap()` on an `Err` value"
	DefaultUnwrapErrMessage = "called `Result.UnwrapErr()` on an `Ok` value"
)

// UnwrapError signals the extraction of a payload from a variant which does
// not carry one. It is the value of the panic raised by Expect, Unwrap and
// UnwrapErr.
type UnwrapError struct {
	Msg string
}

// Error implements the error interface.
func (e *UnwrapError) Error() string {
	return e.Msg
}

// IsUnwrapError reports whether err, or any error in its chain, is an *UnwrapError.
func IsUnwrapError(err error) bool {
	var uerr *UnwrapError
	return errors.As(err, &uerr)
}

func failUnwrap(msg string) {
	tracer().Errorf("invalid unwrap: %s", msg)
	panic(&UnwrapError{Msg: msg})
}
