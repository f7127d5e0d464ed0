package logs

import "errors"

var errFoo = errors.New("foo")
