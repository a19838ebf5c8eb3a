package pipeline

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/pyrus"
)

var stageNames = []string{
	"map", "and_then", "filter", "or_else", "zip", "wrap", "flatten",
	"ok_or", "ok_or_else", "unwrap_or", "unwrap_or_else", "map_or", "map_or_else",
	"contains", "expect", "unwrap", "unwrap_err", "is_some", "is_nothing",
	"is_ok", "is_err", "ok", "err",
}

var functions = map[string]func(int) int{
	"inc":    func(n int) int { return n + 1 },
	"dec":    func(n int) int { return n - 1 },
	"double": func(n int) int { return 2 * n },
	"square": func(n int) int { return n * n },
	"neg":    func(n int) int { return -n },
}

var predicates = map[string]func(int) bool{
	"even": func(n int) bool { return n%2 == 0 },
	"odd":  func(n int) bool { return n%2 != 0 },
	"pos":  func(n int) bool { return n > 0 },
	"neg":  func(n int) bool { return n < 0 },
}

var binders = map[string]func(int) pyrus.Option[int]{
	"half": func(n int) pyrus.Option[int] {
		if n%2 != 0 {
			return pyrus.Nothing[int]()
		}
		return pyrus.Some(n / 2)
	},
	"sqrt": func(n int) pyrus.Option[int] {
		if n < 0 {
			return pyrus.Nothing[int]()
		}
		r := int(math.Sqrt(float64(n)))
		return pyrus.Some(r).Filter(func(r int) bool { return r*r == n })
	},
}

// FunctionNames lists the names usable with map, map_or and map_or_else.
func FunctionNames() []string {
	return keys(functions)
}

// PredicateNames lists the names usable with filter.
func PredicateNames() []string {
	return keys(predicates)
}

// BinderNames lists the names usable with and_then.
func BinderNames() []string {
	return keys(binders)
}

// --- Option[int] -----------------------------------------------------------

func applyOption(o pyrus.Option[int], st stage) (any, error) {
	switch st.name {
	case "map":
		f, err := oneFn(functions, st)
		if err != nil {
			return nil, err
		}
		return pyrus.Map(o, f), nil
	case "and_then":
		g, err := oneFn(binders, st)
		if err != nil {
			return nil, err
		}
		return pyrus.AndThen(o, g), nil
	case "filter":
		p, err := oneFn(predicates, st)
		if err != nil {
			return nil, err
		}
		return o.Filter(p), nil
	case "or_else":
		alt, err := oneOpt(st)
		if err != nil {
			return nil, err
		}
		return o.OrElse(func() pyrus.Option[int] {
			tracer().Debugf("or_else: falling back to %v", alt)
			return alt
		}), nil
	case "zip":
		other, err := oneOpt(st)
		if err != nil {
			return nil, err
		}
		return pyrus.Zip(o, other), nil
	case "wrap":
		if err := arity(st, 0); err != nil {
			return nil, err
		}
		return pyrus.Some(o), nil
	case "ok_or":
		msg, err := textArg(st)
		if err != nil {
			return nil, err
		}
		return pyrus.OkOr(o, msg), nil
	case "ok_or_else":
		msg, err := textArg(st)
		if err != nil {
			return nil, err
		}
		return pyrus.OkOrElse(o, func() string {
			return fmt.Sprintf("%s (stage %d)", msg, st.pos)
		}), nil
	case "unwrap_or":
		d, err := oneInt(st)
		if err != nil {
			return nil, err
		}
		return o.UnwrapOr(d), nil
	case "unwrap_or_else":
		d, err := oneInt(st)
		if err != nil {
			return nil, err
		}
		return o.UnwrapOrElse(func() int { return d }), nil
	case "map_or", "map_or_else":
		if err := arity(st, 2); err != nil {
			return nil, err
		}
		d, err := intArg(st, 0)
		if err != nil {
			return nil, err
		}
		f, err := lookup(functions, st, 1)
		if err != nil {
			return nil, err
		}
		if st.name == "map_or" {
			return pyrus.MapOr(o, d, f), nil
		}
		return pyrus.MapOrElse(o, func() int { return d }, f), nil
	case "contains":
		n, err := oneInt(st)
		if err != nil {
			return nil, err
		}
		return pyrus.Contains(o, n), nil
	}
	return basicTerminal(o, st)
}

// --- Option[Option[int]] ---------------------------------------------------

func applyNested(oo pyrus.Option[pyrus.Option[int]], st stage) (any, error) {
	if st.name == "flatten" {
		if err := arity(st, 0); err != nil {
			return nil, err
		}
		return pyrus.Flatten(oo), nil
	}
	return basicTerminal(oo, st)
}

// --- Option[string] --------------------------------------------------------

func applyStringOption(o pyrus.Option[string], st stage) (any, error) {
	if st.name == "unwrap_or" {
		d, err := textArg(st)
		if err != nil {
			return nil, err
		}
		return o.UnwrapOr(d), nil
	}
	return basicTerminal(o, st)
}

// basicTerminal handles the stages every option supports.
func basicTerminal[T any](o pyrus.Option[T], st stage) (any, error) {
	switch st.name {
	case "is_some":
		return o.IsSome(), arity(st, 0)
	case "is_nothing":
		return o.IsNothing(), arity(st, 0)
	case "unwrap":
		if err := arity(st, 0); err != nil {
			return nil, err
		}
		return o.Unwrap(), nil
	case "expect":
		msg, err := textArg(st)
		if err != nil {
			return nil, err
		}
		return o.Expect(msg), nil
	}
	return nil, fmt.Errorf("%w: %q on %T", ErrStage, st.name, o)
}

// --- Result[int, string] ---------------------------------------------------

func applyResult(r pyrus.Result[int, string], st stage) (any, error) {
	switch st.name {
	case "map":
		f, err := oneFn(functions, st)
		if err != nil {
			return nil, err
		}
		return pyrus.MapResult(r, f), nil
	case "and_then":
		g, err := oneFn(binders, st)
		if err != nil {
			return nil, err
		}
		return pyrus.AndThenResult(r, func(n int) pyrus.Result[int, string] {
			return pyrus.OkOr(g(n), fmt.Sprintf("%s(%d) is nothing", st.args[0], n))
		}), nil
	case "map_or":
		if err := arity(st, 2); err != nil {
			return nil, err
		}
		d, err := intArg(st, 0)
		if err != nil {
			return nil, err
		}
		f, err := lookup(functions, st, 1)
		if err != nil {
			return nil, err
		}
		return pyrus.MapResultOr(r, d, f), nil
	case "or_else":
		n, err := oneInt(st)
		if err != nil {
			return nil, err
		}
		return r.OrElse(func(string) pyrus.Result[int, string] {
			return pyrus.Ok[int, string](n)
		}), nil
	case "unwrap_or":
		d, err := oneInt(st)
		if err != nil {
			return nil, err
		}
		return r.UnwrapOr(d), nil
	case "unwrap_or_else":
		d, err := oneInt(st)
		if err != nil {
			return nil, err
		}
		return r.UnwrapOrElse(func(e string) int {
			tracer().Debugf("unwrap_or_else: recovering from %q", e)
			return d
		}), nil
	case "unwrap":
		if err := arity(st, 0); err != nil {
			return nil, err
		}
		return r.Unwrap(), nil
	case "unwrap_err":
		if err := arity(st, 0); err != nil {
			return nil, err
		}
		return r.UnwrapErr(), nil
	case "expect":
		msg, err := textArg(st)
		if err != nil {
			return nil, err
		}
		return r.Expect(msg), nil
	case "is_ok":
		return r.IsOk(), arity(st, 0)
	case "is_err":
		return r.IsErr(), arity(st, 0)
	case "ok":
		return pyrus.ResultOk(r), arity(st, 0)
	case "err":
		return pyrus.ResultErr(r), arity(st, 0)
	}
	return nil, fmt.Errorf("%w: %q on %T", ErrStage, st.name, r)
}

// --- Arguments -------------------------------------------------------------

func arity(st stage, n int) error {
	if len(st.args) != n {
		return fmt.Errorf("%w: stage %q takes %d argument(s), has %d", ErrSyntax, st.name, n, len(st.args))
	}
	return nil
}

// oneInt parses the single integer argument of a stage.
func oneInt(st stage) (int, error) {
	if err := arity(st, 1); err != nil {
		return 0, err
	}
	return intArg(st, 0)
}

// oneOpt parses the single "nothing"-or-integer argument of a stage.
func oneOpt(st stage) (pyrus.Option[int], error) {
	if err := arity(st, 1); err != nil {
		return pyrus.Nothing[int](), err
	}
	return optArg(st, 0)
}

// oneFn looks up the single function argument of a stage.
func oneFn[F any](table map[string]F, st stage) (F, error) {
	if err := arity(st, 1); err != nil {
		var f F
		return f, err
	}
	return lookup(table, st, 0)
}

func intArg(st stage, i int) (int, error) {
	if i >= len(st.args) {
		return 0, fmt.Errorf("%w: stage %q needs an integer argument", ErrSyntax, st.name)
	}
	n, err := strconv.Atoi(st.args[i])
	if err != nil {
		return 0, fmt.Errorf("%w: stage %q: %q is not an integer", ErrSyntax, st.name, st.args[i])
	}
	return n, nil
}

// optArg parses "nothing" or an integer N into Nothing or Some(N).
func optArg(st stage, i int) (pyrus.Option[int], error) {
	if i < len(st.args) && foldName(st.args[i]) == "nothing" {
		return pyrus.Nothing[int](), nil
	}
	n, err := intArg(st, i)
	if err != nil {
		return pyrus.Nothing[int](), err
	}
	return pyrus.Some(n), nil
}

// textArg joins all arguments into a message.
func textArg(st stage) (string, error) {
	if len(st.args) == 0 {
		return "", fmt.Errorf("%w: stage %q needs a message", ErrSyntax, st.name)
	}
	return strings.Join(st.args, " "), nil
}

func lookup[F any](table map[string]F, st stage, i int) (F, error) {
	var f F
	if i >= len(st.args) {
		return f, fmt.Errorf("%w: stage %q needs a function name", ErrSyntax, st.name)
	}
	f, ok := table[foldName(st.args[i])]
	if !ok {
		return f, fmt.Errorf("%w: stage %q: unknown function %q", ErrSyntax, st.name, st.args[i])
	}
	return f, nil
}

func keys[F any](table map[string]F) []string {
	names := make([]string, 0, len(table))
	for k := range table {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
