package cmds

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) ([]string, error) {
	return GlobalExecutor.ExecuteArgs(args)
}
