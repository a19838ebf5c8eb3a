package main

import (
	"strings"

	"github.com/npillmayer/pyrus/internal/pipeline"
	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "stage", "stages":
		pterm.Info.Println("Stages")
		pterm.Println(strings.Join(pipeline.Stages(), ", "))
	case "function", "functions", "fn":
		pterm.Info.Println("Functions")
		pterm.Printf("map, map_or, map_or_else:  %s\n", strings.Join(pipeline.FunctionNames(), ", "))
		pterm.Printf("filter:                    %s\n", strings.Join(pipeline.PredicateNames(), ", "))
		pterm.Printf("and_then:                  %s\n", strings.Join(pipeline.BinderNames(), ", "))
	case "option":
		pterm.Info.Println("Option")
		pterm.Println(`
	A pipeline starts with an Option[int]: 'some N' or 'nothing'.
	+----------------+------------------------+-----------------+
	| Stage          | Some(v)                | Nothing         |
	+----------------+------------------------+-----------------+
	| map F          | Some(F(v))             | Nothing         |
	| and_then G     | G(v)                   | Nothing         |
	| filter P       | Some(v) if P(v)        | Nothing         |
	| or_else N      | Some(v)                | Some(N)         |
	| zip N          | Some((v, N))           | Nothing         |
	| wrap, flatten  | Some(Some(v)), Some(v) | Some(Nothing)   |
	| ok_or MSG      | Ok(v)                  | Err(MSG)        |
	| unwrap_or N    | v                      | N               |
	| map_or N F     | F(v)                   | N               |
	| contains N     | v == N                 | false           |
	| expect MSG     | v                      | invalid unwrap  |
	+----------------+------------------------+-----------------+
	`)
	case "result":
		pterm.Info.Println("Result")
		pterm.Println(`
	'ok_or MSG' turns the pipeline value into a Result[int, string].
	Results support map, and_then, map_or, or_else, unwrap_or, unwrap_or_else,
	unwrap, unwrap_err, expect, is_ok, is_err, and 'ok' / 'err' to get back
	to an Option.
	`)
	default:
		pterm.Info.Println("General Help")
		pterm.Println(`
	Enter a pipeline, e.g.   some 6 | map double | filter even | unwrap_or 0
	Commands: help[:stages|functions|option|result], history, quit
	`)
	}
}
