package pyrus

import "fmt"

// Result is either a success value of type T or a failure value of type E.
// The zero value is an Err holding the zero value of E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok constructs a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err constructs a failed Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// FromError bridges a Go "(value, error)" return: a nil err yields Ok(v),
// anything else Err(err).
func FromError[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// IsOk reports whether r is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value, the failure value and a flag which is true
// for Ok. The slot not belonging to r's variant holds a zero value.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

// Expect returns the success value or panics with an *UnwrapError carrying msg.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		failUnwrap(msg)
	}
	return r.value
}

// Unwrap returns the success value or panics with an *UnwrapError describing
// the failure value.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		failUnwrap(fmt.Sprintf("%s: %v", DefaultResultMessage, r.err))
	}
	return r.value
}

// UnwrapErr returns the failure value or panics with an *UnwrapError.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		failUnwrap(DefaultUnwrapErrMessage)
	}
	return r.err
}

// UnwrapOr returns the success value or def.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value or computes one from the failure value.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.ok {
		return r.value
	}
	return f(r.err)
}

// OrElse returns r if it is a success, otherwise the result of f applied to
// the failure value.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return f(r.err)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// --- Combinators -----------------------------------------------------------

// MapResult transforms the success value, passing a failure through unchanged.
func MapResult[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.value))
	}
	return Err[U](r.err)
}

// MapErr transforms the failure value, passing a success through unchanged.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](f(r.err))
}

// MapResultOr applies f to the success value, or returns def for a failure.
func MapResultOr[T, U, E any](r Result[T, E], def U, f func(T) U) U {
	if r.ok {
		return f(r.value)
	}
	return def
}

// AndThenResult chains a fallible computation, propagating the first failure.
func AndThenResult[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return f(r.value)
}

// ResultOk returns the success value as an Option, dropping any failure.
func ResultOk[T, E any](r Result[T, E]) Option[T] {
	return FromOk(r.value, r.ok)
}

// ResultErr returns the failure value as an Option, dropping any success.
func ResultErr[T, E any](r Result[T, E]) Option[E] {
	return FromOk(r.err, !r.ok)
}

// ResultEqual reports whether a and b are the same variant with equal payloads.
func ResultEqual[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}
