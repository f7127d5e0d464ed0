package pipeconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pipe/cmds"
	"github.com/reusee/pipe/modes"
)

func TestDefaults(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() ConfigDirs {
			return ConfigDirs{t.TempDir()}
		},
	).Call(func(
		prompt Prompt,
		maxSteps MaxSteps,
		trace Trace,
		tap Tap,
	) {
		if prompt != "Input: " {
			t.Fatalf("got %q", prompt)
		}
		if maxSteps != 0 {
			t.Fatalf("got %v", maxSteps)
		}
		if trace {
			t.Fatal()
		}
		if tap {
			t.Fatal()
		}
	})
}

func TestConfigFile(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() ConfigDirs {
			return ConfigDirs{"testdata"}
		},
	).Call(func(
		prompt Prompt,
		maxSteps MaxSteps,
		trace Trace,
		tap Tap,
	) {
		if prompt != "> " {
			t.Fatalf("got %q", prompt)
		}
		if maxSteps != 1000 {
			t.Fatalf("got %v", maxSteps)
		}
		if trace {
			t.Fatal()
		}
		if !tap {
			t.Fatal()
		}
	})
}

func TestFlagOverridesConfig(t *testing.T) {
	if _, err := cmds.Execute([]string{"-max-steps", "7"}); err != nil {
		t.Fatal(err)
	}
	defer func() {
		*maxStepsFlag = 0
	}()
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() ConfigDirs {
			return ConfigDirs{"testdata"}
		},
	).Call(func(
		maxSteps MaxSteps,
	) {
		if maxSteps != 7 {
			t.Fatalf("got %v", maxSteps)
		}
	})
}
