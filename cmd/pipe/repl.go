package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/pipe/debugs"
	"github.com/reusee/pipe/logs"
	"github.com/reusee/pipe/pipelang"
)

const replPrompt = "> "

// readlineInput reads Input lines through the REPL's readline instance,
// showing the interpreter prompt in place of the REPL prompt.
type readlineInput struct {
	rl     *readline.Instance
	prompt string
}

var _ pipelang.LineReader = new(readlineInput)

func (r *readlineInput) ReadLine() (string, error) {
	r.rl.SetPrompt(r.prompt)
	defer r.rl.SetPrompt(replPrompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", fmt.Errorf("input interrupted: %w", err)
	}
	return line, err
}

func runREPL(
	ctx context.Context,
	newSpan logs.NewSpan,
	newInterpreter pipelang.NewInterpreterFunc,
	tap debugs.Tap,
) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".pipe_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      replPrompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	ctx, replSpan := newSpan(ctx, "")

	out := bufio.NewWriter(rl.Stdout())
	input := &readlineInput{
		rl: rl,
	}
	interp := newInterpreter(input, out)
	// the prompt is drawn by readline
	input.prompt = interp.Prompt
	interp.Prompt = ""

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		switch strings.TrimSpace(line) {
		case "":
			continue
		case ":tap":
			tap(ctx, "repl", tapGlobals(interp))
			continue
		case ":cells":
			fmt.Fprintln(rl.Stdout(), interp.Tape().NonZero())
			continue
		}

		lineCtx, _ := newSpan(ctx, replSpan)
		program := pipelang.Parse("<repl>", line)
		if err := interp.Execute(lineCtx, program); err != nil {
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
			if errors.Is(err, context.Canceled) {
				break
			}
		}
		writeLineEnd(rl.Stdout(), program)
	}
}

// writeLineEnd terminates the output of a REPL line that printed cells.
func writeLineEnd(w io.Writer, program *pipelang.Program) {
	if slices.Contains(program.Tokens, pipelang.TokenOutput) {
		fmt.Fprintln(w)
	}
}
