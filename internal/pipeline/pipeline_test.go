package pipeline

import (
	"errors"
	"testing"

	"github.com/npillmayer/pyrus"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pyrus.pipeline")
	defer teardown()
	tracing.Select("pyrus.pipeline").SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		line string
		want any
	}{
		{"some 3 | map double", pyrus.Some(6)},
		{"nothing | map double", pyrus.Nothing[int]()},
		{"some 6 | map double | filter even | ok_or odd | unwrap_or 0", 12},
		{"some 3 | filter even | unwrap_or 9", 9},
		{"some 16 | and_then sqrt | and_then half", pyrus.Some(2)},
		{"some 15 | and_then sqrt", pyrus.Nothing[int]()},
		{"nothing | or_else 4", pyrus.Some(4)},
		{"some 1 | or_else nothing", pyrus.Some(1)},
		{"some 1 | zip 2", pyrus.Some(pyrus.Pair[int, int]{First: 1, Second: 2})},
		{"some 1 | zip nothing | is_nothing", true},
		{"some 5 | wrap | flatten", pyrus.Some(5)},
		{"nothing | wrap | is_some", true},
		{"nothing | wrap | flatten", pyrus.Nothing[int]()},
		{"some 5 | wrap | unwrap | unwrap", 5},
		{"nothing | ok_or missing value", pyrus.Err[int]("missing value")},
		{"nothing | ok_or_else gone", pyrus.Err[int]("gone (stage 1)")},
		{"some 4 | ok_or x | map inc | and_then half", pyrus.Err[int]("half(5) is nothing")},
		{"some 4 | ok_or x | and_then half | map neg", pyrus.Ok[int, string](-2)},
		{"nothing | ok_or x | or_else 3 | unwrap", 3},
		{"nothing | ok_or x | unwrap_or_else 8", 8},
		{"nothing | ok_or x | map_or 1 inc", 1},
		{"nothing | ok_or x | err | unwrap", "x"},
		{"some 2 | ok_or x | err | unwrap_or none", "none"},
		{"some 2 | ok_or x | ok", pyrus.Some(2)},
		{"some 2 | ok_or x | is_ok", true},
		{"some 2 | ok_or x | is_err", false},
		{"some 3 | map_or 0 square", 9},
		{"nothing | map_or_else 7 square", 7},
		{"some 3 | contains 3", true},
		{"some 3 | contains 4", false},
		{"nothing | contains 0", false},
		{"some 3 | unwrap_or_else 0", 3},
		{"some 3 | expect must be there", 3},
		{"SOME 2 | MAP Double", pyrus.Some(4)},
		{"Some 4 | Filter EVEN | And_Then Half | Or_Else NOTHING", pyrus.Some(2)},
	}
	for _, tt := range tests {
		v, err := Evaluate(tt.line)
		if assert.NoError(t, err, tt.line) {
			assert.Equal(t, tt.want, v.Raw(), tt.line)
		}
	}
}

func TestEvaluateString(t *testing.T) {
	v, err := Evaluate("some 1 | zip 2")
	require.NoError(t, err)
	assert.Equal(t, "Some((1, 2))", v.String())
	v, err = Evaluate("nothing | ok_or boom")
	require.NoError(t, err)
	assert.Equal(t, "Err(boom)", v.String())
	assert.Equal(t, "<none>", Value{}.String())
}

func TestEvaluateUnwrapFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pyrus.pipeline")
	defer teardown()
	//
	tests := []struct {
		line string
		msg  string
	}{
		{"nothing | expect no value here", "no value here"},
		{"nothing | unwrap", pyrus.DefaultUnwrapMessage},
		{"some 1 | ok_or e | unwrap_err", pyrus.DefaultUnwrapErrMessage},
		{"nothing | ok_or e | unwrap", pyrus.DefaultResultMessage + ": e"},
		{"nothing | zip 1 | unwrap", pyrus.DefaultUnwrapMessage},
	}
	for _, tt := range tests {
		_, err := Evaluate(tt.line)
		require.Error(t, err, tt.line)
		assert.True(t, pyrus.IsUnwrapError(err), tt.line)
		var uerr *pyrus.UnwrapError
		require.True(t, errors.As(err, &uerr), tt.line)
		assert.Equal(t, tt.msg, uerr.Msg, tt.line)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		line string
		kind error
	}{
		{"", ErrSyntax},
		{"   ", ErrSyntax},
		{"map double", ErrSyntax},
		{"some x", ErrSyntax},
		{"some", ErrSyntax},
		{"nothing 3", ErrSyntax},
		{"some 1 | | map inc", ErrSyntax},
		{"some 1 | map cube", ErrSyntax},
		{"some 1 | map", ErrSyntax},
		{"some 1 | map_or 1", ErrSyntax},
		{"some 1 | ok_or", ErrSyntax},
		{"some 1 | map cube | unwrap", ErrSyntax},
		{"some 3 extra | map double", ErrSyntax},
		{"some 3 | map double triple", ErrSyntax},
		{"some 3 | and_then half sqrt", ErrSyntax},
		{"some 3 | filter even odd", ErrSyntax},
		{"some 3 | or_else 1 2", ErrSyntax},
		{"some 3 | zip 1 2", ErrSyntax},
		{"some 3 | unwrap_or 1 2", ErrSyntax},
		{"some 3 | unwrap_or_else 1 2", ErrSyntax},
		{"some 3 | contains 3 3", ErrSyntax},
		{"some 3 | ok_or e | map double triple", ErrSyntax},
		{"some 3 | ok_or e | and_then half sqrt", ErrSyntax},
		{"some 3 | ok_or e | or_else 1 2", ErrSyntax},
		{"some 3 | ok_or e | unwrap_or 1 2", ErrSyntax},
		{"some 3 | ok_or e | unwrap_or_else 1 2", ErrSyntax},
		{"some 1 | frobnicate", ErrStage},
		{"some 1 | flatten", ErrStage},
		{"some 1 | unwrap | map inc", ErrStage},
		{"some 1 | is_some | unwrap", ErrStage},
		{"some 1 | wrap | wrap", ErrStage},
		{"some 1 | ok_or e | filter even", ErrStage},
	}
	for _, tt := range tests {
		_, err := Evaluate(tt.line)
		require.Error(t, err, tt.line)
		assert.True(t, errors.Is(err, tt.kind), "%q: unexpected error %v", tt.line, err)
		assert.False(t, pyrus.IsUnwrapError(err), tt.line)
	}
}

func TestStageNames(t *testing.T) {
	names := Stages()
	assert.Equal(t, "some", names[0])
	assert.Contains(t, names, "flatten")
	assert.Contains(t, names, "ok_or_else")
	assert.Equal(t, []string{"dec", "double", "inc", "neg", "square"}, FunctionNames())
	assert.Equal(t, []string{"even", "neg", "odd", "pos"}, PredicateNames())
	assert.Equal(t, []string{"half", "sqrt"}, BinderNames())
}
