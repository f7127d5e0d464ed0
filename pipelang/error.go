package pipelang

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnmatchedLoop = errors.New("unmatched loop marker")
	ErrStepLimit     = errors.New("step limit exceeded")
)

type LoopSide uint8

const (
	LoopStart LoopSide = iota + 1
	LoopEnd
)

func (s LoopSide) String() string {
	switch s {
	case LoopStart:
		return "start"
	case LoopEnd:
		return "end"
	}
	return "unknown"
}

// UnmatchedLoopError reports malformed control flow. Position is the
// instruction index where the mismatch was detected.
type UnmatchedLoopError struct {
	Side     LoopSide
	Position int
}

func (u *UnmatchedLoopError) Error() string {
	return fmt.Sprintf("unmatched loop %s '|' at position %d", u.Side, u.Position)
}

func (u *UnmatchedLoopError) Is(target error) bool {
	return target == ErrUnmatchedLoop
}

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	name := p.Pos.Source.Name
	if name == "" {
		name = "<source>"
	}
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), name, p.Pos.Line, p.Pos.Column))

	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(p.Pos.Source.Lines) {
		line := p.Pos.Source.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")
		col := p.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

// WithPos attaches the source location of structural errors.
func (p *Program) WithPos(err error) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	var loopErr *UnmatchedLoopError
	if !errors.As(err, &loopErr) {
		return err
	}
	return PosError{
		Err: err,
		Pos: p.PosOf(loopErr.Position),
	}
}
