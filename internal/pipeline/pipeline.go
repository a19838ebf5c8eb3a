/*
Package pipeline evaluates small textual pipelines over pyrus containers.

A pipeline is a sequence of stages separated by '|', starting with a source:

	some 6 | map double | filter even | ok_or odd | unwrap_or 0

The value flowing through a pipeline is an Option[int] at first. Stages may
turn it into a Result[int, string], a nested or zipped Option, or a terminal
scalar. Every stage maps onto exactly one pyrus combinator. Stage names are
matched case-insensitively.

Unwrapping an empty container panics inside pyrus; Evaluate recovers these
panics at the stage boundary and reports them as errors wrapping the
*pyrus.UnwrapError.
*/
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/pyrus"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
)

// tracer writes to trace with key 'pyrus.pipeline'
func tracer() tracing.Trace {
	return tracing.Select("pyrus.pipeline")
}

// ErrSyntax is returned for pipelines which cannot be parsed.
var ErrSyntax = errors.New("pipeline syntax error")

// ErrStage is returned for stages not applicable to the current value.
var ErrStage = errors.New("stage not applicable")

// Value is the outcome of a pipeline.
type Value struct {
	v any
}

// Raw returns the underlying Go value, e.g. a pyrus.Option[int], an int or a bool.
func (v Value) Raw() any {
	return v.v
}

func (v Value) String() string {
	if v.v == nil {
		return "<none>"
	}
	return fmt.Sprint(v.v)
}

type stage struct {
	pos  int
	name string
	args []string
}

func (st stage) String() string {
	if len(st.args) == 0 {
		return st.name
	}
	return st.name + " " + strings.Join(st.args, " ")
}

// Evaluate parses and runs a pipeline. Evaluation stops at the first failing
// stage.
func Evaluate(line string) (Value, error) {
	stages, err := parse(line)
	if err != nil {
		return Value{}, err
	}
	r := source(stages[0])
	for _, st := range stages[1:] {
		r = pyrus.AndThenResult(r, func(cur any) pyrus.Result[any, error] {
			return apply(cur, st)
		})
	}
	v, err, ok := r.Get()
	if !ok {
		return Value{}, err
	}
	return Value{v: v}, nil
}

// Stages returns the names of all known stages, sources first.
func Stages() []string {
	return append([]string{"some", "nothing"}, stageNames...)
}

func parse(line string) ([]stage, error) {
	if strings.TrimSpace(line) == "" {
		return nil, fmt.Errorf("%w: empty pipeline", ErrSyntax)
	}
	parts := strings.Split(line, "|")
	stages := make([]stage, 0, len(parts))
	for i, p := range parts {
		fields := strings.Fields(p)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: empty stage at position %d", ErrSyntax, i)
		}
		stages = append(stages, stage{
			pos:  i,
			name: foldName(fields[0]),
			args: fields[1:],
		})
	}
	tracer().Debugf("parsed pipeline %v", stages)
	return stages, nil
}

// foldName normalizes stage and function names for case-insensitive matching.
func foldName(name string) string {
	return cases.Fold().String(name)
}

func source(st stage) pyrus.Result[any, error] {
	switch st.name {
	case "some":
		n, err := oneInt(st)
		if err != nil {
			return pyrus.Err[any](err)
		}
		return pyrus.Ok[any, error](pyrus.Some(n))
	case "nothing":
		if err := arity(st, 0); err != nil {
			return pyrus.Err[any](err)
		}
		return pyrus.Ok[any, error](pyrus.Nothing[int]())
	}
	return pyrus.Err[any](fmt.Errorf("%w: pipeline must start with 'some N' or 'nothing', not %q",
		ErrSyntax, st.name))
}

// apply runs a single stage, converting an unwrap panic into an error.
func apply(cur any, st stage) (r pyrus.Result[any, error]) {
	defer func() {
		if x := recover(); x != nil {
			uerr, ok := x.(*pyrus.UnwrapError)
			if !ok {
				panic(x)
			}
			r = pyrus.Err[any, error](fmt.Errorf("stage %d (%s): %w", st.pos, st.name, uerr))
		}
	}()
	tracer().Debugf("%v | %s", cur, st)
	var v any
	var err error
	switch c := cur.(type) {
	case pyrus.Option[int]:
		v, err = applyOption(c, st)
	case pyrus.Option[pyrus.Option[int]]:
		v, err = applyNested(c, st)
	case pyrus.Option[pyrus.Pair[int, int]]:
		v, err = basicTerminal(c, st)
	case pyrus.Option[string]:
		v, err = applyStringOption(c, st)
	case pyrus.Result[int, string]:
		v, err = applyResult(c, st)
	default:
		err = fmt.Errorf("%w: %q after terminal value %v", ErrStage, st.name, cur)
	}
	return pyrus.FromError(v, err)
}
