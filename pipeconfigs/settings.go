package pipeconfigs

import (
	"github.com/reusee/pipe/cmds"
	"github.com/reusee/pipe/configs"
	"github.com/reusee/pipe/vars"
)

const defaultPrompt = "Input: "

type Prompt string

var promptFlag = cmds.Var[string]("-prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "prompt"),
		defaultPrompt,
	))
}

// MaxSteps bounds the instructions dispatched per run. Zero means unlimited.
type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	))
}

type Trace bool

var traceFlag = cmds.Switch("-trace")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag || configs.First[bool](loader, "trace"))
}

type Tap bool

var tapFlag = cmds.Switch("-tap")

func (Module) Tap(
	loader configs.Loader,
) Tap {
	return Tap(*tapFlag || configs.First[bool](loader, "tap"))
}
