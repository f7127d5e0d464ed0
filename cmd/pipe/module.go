package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pipe/debugs"
	"github.com/reusee/pipe/pipelang"
)

type Module struct {
	dscope.Module
	Pipelang pipelang.Module
	Debugs   debugs.Module
}
