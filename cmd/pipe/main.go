package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/pipe/cmds"
	"github.com/reusee/pipe/debugs"
	"github.com/reusee/pipe/logs"
	"github.com/reusee/pipe/modes"
	"github.com/reusee/pipe/pipeconfigs"
	"github.com/reusee/pipe/pipelang"
)

var replMode = cmds.Switch("-repl")

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [flags] <filename.pipe>\n", os.Args[0])
	fmt.Fprintf(w, "       %s [flags] -repl\n", os.Args[0])
}

func main() {
	args, err := cmds.Execute(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage(os.Stderr)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if *replMode {
		if len(args) != 0 {
			usage(os.Stderr)
			os.Exit(1)
		}
		scope.Call(func(
			newSpan logs.NewSpan,
			newInterpreter pipelang.NewInterpreterFunc,
			tap debugs.Tap,
		) {
			runREPL(ctx, newSpan, newInterpreter, tap)
		})
		return
	}

	if len(args) != 1 {
		usage(os.Stderr)
		os.Exit(1)
	}

	code := 0
	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newInterpreter pipelang.NewInterpreterFunc,
		tap debugs.Tap,
		tapEnabled pipeconfigs.Tap,
	) {
		var interp *pipelang.Interpreter
		interp, code = runFile(ctx, args[0], runEnv{
			logger:         logger,
			newSpan:        newSpan,
			newInterpreter: newInterpreter,
			stdin:          os.Stdin,
			stdout:         os.Stdout,
			stderr:         os.Stderr,
		})
		if bool(tapEnabled) && interp != nil {
			tap(ctx, args[0], tapGlobals(interp))
		}
	})
	cancel()
	os.Exit(code)
}

type runEnv struct {
	logger         logs.Logger
	newSpan        logs.NewSpan
	newInterpreter pipelang.NewInterpreterFunc
	stdin          io.Reader
	stdout         io.Writer
	stderr         io.Writer
}

// runFile executes the program at path and returns the process exit code.
// The interpreter is nil if the source could not be read.
func runFile(ctx context.Context, path string, env runEnv) (*pipelang.Interpreter, int) {
	ctx, _ = env.newSpan(ctx, "")

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(env.stderr, "Failed to read .pipe file: %v\n", err)
		env.logger.ErrorContext(ctx, "read source", "error", wrap(logs.WrapSpan(ctx, err)))
		return nil, 1
	}
	program := pipelang.Parse(path, string(content))

	out := bufio.NewWriter(env.stdout)
	interp := env.newInterpreter(pipelang.NewLineReader(env.stdin), out)

	if err := interp.Execute(ctx, program); err != nil {
		env.logger.ErrorContext(ctx, "execution halted", "error", wrap(logs.WrapSpan(ctx, err)))
		fmt.Fprintf(env.stderr, "Execution halted: %v\n", err)
		return interp, 1
	}
	return interp, 0
}

func tapGlobals(interp *pipelang.Interpreter) map[string]any {
	tape := interp.Tape()
	return map[string]any{
		"position": interp.Position(),
		"steps":    interp.Steps(),
		"cells":    tape.NonZero(),
		"cell": func(i int) int {
			if i < 0 || i >= tape.Len() {
				return 0
			}
			return int(tape.Get(i))
		},
	}
}
