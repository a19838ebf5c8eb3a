package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/pyrus"
	"github.com/npillmayer/pyrus/internal/pipeline"
	"github.com/pterm/pterm"
)

// variant names the container variant and payload type of a pipeline value.
func variant(v pipeline.Value) (string, string) {
	switch x := v.Raw().(type) {
	case pyrus.Option[int]:
		return optionVariant(x), "int"
	case pyrus.Option[pyrus.Option[int]]:
		return optionVariant(x), "Option[int]"
	case pyrus.Option[pyrus.Pair[int, int]]:
		return optionVariant(x), "Pair[int, int]"
	case pyrus.Option[string]:
		return optionVariant(x), "string"
	case pyrus.Result[int, string]:
		if x.IsOk() {
			return "Ok", "int"
		}
		return "Err", "string"
	case nil:
		return "-", "-"
	}
	return "scalar", fmt.Sprintf("%T", v.Raw())
}

func optionVariant[T any](o pyrus.Option[T]) string {
	if o.IsSome() {
		return "Some"
	}
	return "Nothing"
}

func printValue(v pipeline.Value) {
	tag, typ := variant(v)
	data := [][]string{
		{"Variant", "Payload", "Value"},
		{tag, typ, v.String()},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printError(err error) {
	var uerr *pyrus.UnwrapError
	switch {
	case errors.As(err, &uerr):
		pterm.Error.Printf("invalid unwrap: %s\n", uerr.Msg)
	case errors.Is(err, pipeline.ErrSyntax), errors.Is(err, pipeline.ErrStage):
		pterm.Error.Println(err)
	default:
		pterm.Error.Printf("unexpected error: %v\n", err)
	}
}

func historyOp(intp *Intp, op *Op) (error, bool) {
	if len(intp.history) == 0 {
		pterm.Println("history is empty")
		return nil, false
	}
	data := [][]string{
		{"#", "Pipeline", "Outcome"},
	}
	for i, e := range intp.history {
		outcome := e.value.String()
		if e.err != nil {
			outcome = "error: " + e.err.Error()
		}
		data = append(data, []string{fmt.Sprintf("%d", i+1), e.line, outcome})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
