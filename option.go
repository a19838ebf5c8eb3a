package pyrus

import "fmt"

// Option represents an optional value.
// The zero value is Nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option with a value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// Nothing constructs an empty Option.
func Nothing[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr wraps the value p points to, or returns Nothing for a nil pointer.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Some(*p)
}

// FromOk wraps v if ok is set. This mirrors the common Go "(value, ok)" pattern,
// e.g. for map lookups.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return Nothing[T]()
	}
	return Some(v)
}

// IsSome reports whether the option contains a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNothing reports whether the option is empty.
func (o Option[T]) IsNothing() bool {
	return !o.ok
}

// Get returns the value and a boolean indicating presence.
// For Nothing, the value is the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Expect returns the contained value. It panics with an *UnwrapError carrying
// msg if the option is Nothing.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		failUnwrap(msg)
	}
	return o.value
}

// Unwrap returns the contained value. It panics with an *UnwrapError carrying
// DefaultUnwrapMessage if the option is Nothing.
func (o Option[T]) Unwrap() T {
	return o.Expect(DefaultUnwrapMessage)
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value or calls f.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.ok {
		return o.value
	}
	return f()
}

// Filter returns o if it holds a value for which pred returns true, and Nothing
// otherwise. pred is not called for Nothing.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && !pred(o.value) {
		return Nothing[T]()
	}
	return o
}

// OrElse returns o if it holds a value, otherwise the result of f.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return f()
}

func (o Option[T]) String() string {
	if !o.ok {
		return "Nothing"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// --- Combinators -----------------------------------------------------------

// AndThen returns Nothing if o is Nothing, otherwise f applied to the value.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return Nothing[U]()
	}
	return f(o.value)
}

// Map transforms the value if present.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.ok {
		return Some(f(o.value))
	}
	return Nothing[U]()
}

// MapOr applies f to the value if present, or returns def.
// def is evaluated by the caller in any case; see MapOrElse for a deferred default.
func MapOr[T, U any](o Option[T], def U, f func(T) U) U {
	if o.ok {
		return f(o.value)
	}
	return def
}

// MapOrElse applies f to the value if present, or returns the result of def.
func MapOrElse[T, U any](o Option[T], def func() U, f func(T) U) U {
	if o.ok {
		return f(o.value)
	}
	return def()
}

// Flatten removes one level of nesting.
func Flatten[T any](oo Option[Option[T]]) Option[T] {
	if oo.ok {
		return oo.value
	}
	return Nothing[T]()
}

// Pair is the payload of a zipped option.
type Pair[T, U any] struct {
	First  T
	Second U
}

func (p Pair[T, U]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Zip returns Some(Pair{v, w}) if o is Some(v) and other is Some(w), and
// Nothing otherwise.
func Zip[T, U any](o Option[T], other Option[U]) Option[Pair[T, U]] {
	if o.ok && other.ok {
		return Some(Pair[T, U]{First: o.value, Second: other.value})
	}
	return Nothing[Pair[T, U]]()
}

// Contains reports whether o holds a value equal to item.
func Contains[T comparable](o Option[T], item T) bool {
	return o.ok && o.value == item
}

// Equal reports whether a and b are the same variant and, for Some, hold
// equal values. For comparable T this is the same as a == b.
func Equal[T comparable](a, b Option[T]) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || a.value == b.value
}

// OkOr transforms o into a Result, mapping Some(v) to Ok(v) and Nothing to
// Err(err).
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if o.ok {
		return Ok[T, E](o.value)
	}
	return Err[T](err)
}

// OkOrElse transforms o into a Result, mapping Some(v) to Ok(v) and Nothing to
// Err(f()). f is called on the Nothing branch only.
func OkOrElse[T, E any](o Option[T], f func() E) Result[T, E] {
	if o.ok {
		return Ok[T, E](o.value)
	}
	return Err[T](f())
}
