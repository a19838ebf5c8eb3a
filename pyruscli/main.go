package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pyrus/internal/pipeline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'pyrus.cli'
func tracer() tracing.Trace {
	return tracing.Select("pyrus.cli")
}

// traceKeys are the tracers a -trace level applies to.
var traceKeys = []string{"pyrus", "pyrus.pipeline", "pyrus.cli"}

func main() {
	styleOutput()
	if err := configureTracing(); err != nil {
		fmt.Fprintf(os.Stderr, "pyrus: cannot configure tracing: %v\n", err)
		os.Exit(1)
	}
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	expr := flag.String("e", "", "Evaluate a single pipeline and exit")
	flag.Parse()
	if err := setTraceLevel(*tlevel); err != nil {
		pterm.Error.Println(err)
		os.Exit(5)
	}
	intp := &Intp{history: make([]entry, 0, 100)}
	if *expr != "" {
		if err := intp.eval(*expr); err != nil {
			os.Exit(2)
		}
		return
	}
	repl, err := readline.New("pyrus > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("pyrus pipelines, e.g. 'some 6 | map double | unwrap_or 0'")
	pterm.Info.Println("'help' lists topics, <ctrl>D or 'quit' leaves")
	tracer().Infof("tracing at level %s", *tlevel)
	intp.REPL()
}

// configureTracing routes all pyrus tracers to the Go log adapter.
func configureTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// setTraceLevel applies a level given by name to every key in traceKeys.
func setTraceLevel(name string) error {
	for _, key := range traceKeys {
		switch name {
		case "Debug":
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		case "Info":
			tracing.Select(key).SetTraceLevel(tracing.LevelInfo)
		case "Error":
			tracing.Select(key).SetTraceLevel(tracing.LevelError)
		default:
			return fmt.Errorf("invalid trace level %q, want Debug, Info or Error", name)
		}
	}
	return nil
}

func styleOutput() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " pyrus ",
		Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " failed ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgWhite),
	}
}

// entry is an evaluated line of the session history.
type entry struct {
	line  string
	value pipeline.Value
	err   error
}

// Intp evaluates pipelines and keeps the session history.
type Intp struct {
	repl    *readline.Instance
	history []entry
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op := intp.parseCommand(line)
		err, quit := intp.execute(op)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("bye")
}

type Op struct {
	code int
	arg  string
	line string
}

const (
	QUIT int = iota
	HELP
	HISTORY
	EVAL
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"history": HISTORY,
}

// parseCommand recognizes the REPL commands ("quit", "help:topic", "history").
// Anything else is a pipeline.
func (intp *Intp) parseCommand(line string) *Op {
	c := strings.SplitN(line, ":", 2) // e.g.  "help:stages" or "history"
	code, ok := opMap[strings.ToLower(strings.TrimSpace(c[0]))]
	if !ok {
		return &Op{code: EVAL, line: line}
	}
	op := &Op{code: code, line: line}
	if len(c) > 1 {
		op.arg = strings.TrimSpace(c[1])
	}
	tracer().Debugf("parsed command: %v", c)
	return op
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	HISTORY: historyOp,
	EVAL:    evalOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

func evalOp(intp *Intp, op *Op) (error, bool) {
	intp.eval(op.line)
	return nil, false
}

// eval evaluates a pipeline, records it and prints its outcome.
func (intp *Intp) eval(line string) error {
	v, err := pipeline.Evaluate(line)
	intp.history = append(intp.history, entry{line: line, value: v, err: err})
	if err != nil {
		printError(err)
		return err
	}
	printValue(v)
	return nil
}
