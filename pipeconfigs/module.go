package pipeconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pipe/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
