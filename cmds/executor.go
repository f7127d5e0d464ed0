package cmds

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/pipe/vars"
)

type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
	}

	usage := Func(func() {
		ret.PrintUsage(os.Stderr)
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("-help", "--help")
	ret.Define("-h", usage)

	return ret
}

func (p *Executor) Define(name string, command *Command) {
	if _, ok := p.commands[name]; ok {
		panic(fmt.Errorf("duplicated command %s", name))
	}
	p.commands[name] = command
	for _, name := range command.Aliases {
		if _, ok := p.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		p.commands[name] = command
	}
}

var errorType = reflect.TypeFor[error]()

// Execute runs every command in args. Positional arguments are not allowed.
func (p *Executor) Execute(args []string) error {
	rest, err := p.ExecuteArgs(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unknown command: %s", rest[0])
	}
	return nil
}

// ExecuteArgs runs leading commands and returns the arguments starting at the
// first one that is not a command. Unknown names starting with '-' are errors.
func (p *Executor) ExecuteArgs(args []string) ([]string, error) {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])

		command, ok := p.commands[name]
		if !ok {
			if strings.HasPrefix(name, "-") && name != "-" {
				return nil, fmt.Errorf("unknown command: %s", name)
			}
			return args, nil
		}
		args = args[1:]

		var callArgs []reflect.Value
		for i, max := 0, command.Func.Type().NumIn(); i < max; i++ {
			if len(args) == 0 {
				return nil, fmt.Errorf("%s: expecting argument, got nothing", name)
			}
			value, err := getArg(command.Func.Type().In(i), args[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			args = args[1:]
			callArgs = append(callArgs, value)
		}
		rets := command.Func.Call(callArgs)
		if len(rets) > 0 && !rets[0].IsNil() {
			return nil, rets[0].Interface().(error)
		}
	}
	return args, nil
}

func getArg(t reflect.Type, str string) (ret reflect.Value, err error) {
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))
		return ret, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)
		return ret, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)
		return ret, nil

	case reflect.String:
		ret.SetString(str)
		return ret, nil

	}

	return ret, fmt.Errorf("unsupported type: %v", t)
}
