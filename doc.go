/*
Package pyrus provides two generic container types, Option and Result, together
with a closed set of combinators over them.

▪︎ Option[T] either holds a value of type T (constructed with Some) or holds
nothing (constructed with Nothing).

▪︎ Result[T, E] either holds a success value of type T (constructed with Ok) or
a failure value of type E (constructed with Err). E may be any type, not only
error.

Absence and failure thus become explicit values which may be inspected and
transformed, instead of nil pointers or sentinel returns scattered over
calling code. Both types are immutable values: every combinator returns a new
container. Zero values are valid and never represent a third state: the zero
Option is Nothing, the zero Result is an Err carrying the zero value of E.

Go methods may not introduce additional type parameters. Combinators which
change the payload type (Map, AndThen, Zip, OkOr, …) are therefore plain
functions taking the container as their first argument, while combinators
preserving the payload type (Filter, OrElse, UnwrapOr, …) are methods.

	o := pyrus.Some(21)
	d := pyrus.Map(o, func(n int) int { return 2 * n })   // Some(42)
	r := pyrus.OkOr(d.Filter(isEven), "odd")              // Ok(42)

# Evaluation contract

Functions handed to a combinator are invoked at most once, synchronously, and
only on the branch which needs them. MapOr receives its default already
evaluated, whereas MapOrElse receives a function it calls on the Nothing branch
only; UnwrapOr/UnwrapOrElse and OkOr/OkOrElse behave alike.

# Unwrapping

Extracting a payload from a variant that does not carry one (Expect or Unwrap
on Nothing, Unwrap on Err, UnwrapErr on Ok) is a programming error. These
operations panic with an *UnwrapError. Code preferring ordinary control flow
uses Get instead.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package pyrus

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pyrus'
func tracer() tracing.Trace {
	return tracing.Select("pyrus")
}
