package pipelang

import (
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/pipe/logs"
	"github.com/reusee/pipe/pipeconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs pipeconfigs.Module
}

type NewInterpreterFunc func(input LineReader, output io.Writer) *Interpreter

func (Module) NewInterpreter(
	logger logs.Logger,
	prompt pipeconfigs.Prompt,
	maxSteps pipeconfigs.MaxSteps,
	trace pipeconfigs.Trace,
) NewInterpreterFunc {
	return func(input LineReader, output io.Writer) *Interpreter {
		interp := NewInterpreter(input, output)
		interp.Logger = logger
		interp.Prompt = string(prompt)
		interp.MaxSteps = int(maxSteps)
		interp.Trace = bool(trace)
		return interp
	}
}
