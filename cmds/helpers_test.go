package cmds

import "testing"

func TestVar(t *testing.T) {
	steps := Var[int]("-TestVar-steps")
	prompt := Var[string]("-TestVar-prompt")
	rest, err := Execute([]string{
		"-TestVar-steps", "42",
		"-TestVar-prompt", "> ",
		"foo.pipe",
	})
	if err != nil {
		t.Fatal(err)
	}
	if *steps != 42 {
		t.Fatal()
	}
	if *prompt != "> " {
		t.Fatal()
	}
	if len(rest) != 1 || rest[0] != "foo.pipe" {
		t.Fatalf("got %v", rest)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("-TestSwitch")
	if _, err := Execute([]string{
		"-TestSwitch",
	}); err != nil {
		t.Fatal(err)
	}
	if *foo != true {
		t.Fatal()
	}
	if _, err := Execute([]string{
		"!-TestSwitch",
	}); err != nil {
		t.Fatal(err)
	}
	if *foo != false {
		t.Fatal()
	}
}

func TestTypedVar(t *testing.T) {
	type Prompt string
	v := Var[Prompt]("-TestTypedVar")
	if _, err := Execute([]string{
		"-TestTypedVar", "? ",
	}); err != nil {
		t.Fatal(err)
	}
	if *v != "? " {
		t.Fatal()
	}
}
