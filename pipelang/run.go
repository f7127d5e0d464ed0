package pipelang

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Run executes the loaded program, yielding an Interrupt before every
// instruction regardless of Trace. A non-nil error ends the run.
func (i *Interpreter) Run(yield func(*Interrupt, error) bool) {
	if i.program == nil {
		return
	}
	tokens := i.program.Tokens

	for i.ip < len(tokens) {
		if i.MaxSteps > 0 && i.steps >= i.MaxSteps {
			yield(nil, ErrStepLimit)
			return
		}

		i.interrupt = Interrupt{
			IP:    i.ip,
			Token: tokens[i.ip],
		}
		if !yield(&i.interrupt, nil) {
			return
		}
		i.steps++

		switch tokens[i.ip] {

		case TokenLoop:
			if i.tape.Get(i.position) == 0 {
				// every non-loop token closes one level
				depth := 1
				for depth > 0 {
					i.ip++
					if i.ip >= len(tokens) {
						yield(nil, &UnmatchedLoopError{
							Side:     LoopStart,
							Position: i.ip,
						})
						return
					}
					if tokens[i.ip] == TokenLoop {
						depth++
					} else {
						depth--
					}
				}
			} else {
				i.loops = append(i.loops, i.ip)
			}

		case TokenReset:
			i.reset()
			i.logger().Debug("reset")

		case TokenIncrement:
			i.tape.Increment(i.position)

		case TokenDecrement:
			i.tape.Decrement(i.position)

		case TokenInput:
			if err := i.input(); err != nil {
				yield(nil, err)
				return
			}

		case TokenOutput:
			if err := i.write(renderCell(i.tape.Get(i.position))); err != nil {
				yield(nil, err)
				return
			}

		case TokenNewline:
			if err := i.write("\n"); err != nil {
				yield(nil, err)
				return
			}

		default:
			yield(nil, fmt.Errorf("invalid token at position %d", i.ip))
			return
		}

		i.ip++

		// a following loop marker closes the loop just executed
		if i.ip < len(tokens) && tokens[i.ip] == TokenLoop {
			n := len(i.loops)
			if i.tape.Get(i.position) != 0 {
				if n == 0 {
					yield(nil, &UnmatchedLoopError{
						Side:     LoopEnd,
						Position: i.ip,
					})
					return
				}
				i.ip = i.loops[n-1]
				i.loops = i.loops[:n-1]
				i.logger().Debug("loop jump", "to", i.ip)
			} else if n > 0 {
				i.loops = i.loops[:n-1]
			}
		}
	}
}

// Execute loads program and runs it to completion, stopping at the first error.
func (i *Interpreter) Execute(ctx context.Context, program *Program) error {
	i.Load(program)
	logger := i.logger()
	logger.DebugContext(ctx, "run start",
		"source", program.Name(),
		"tokens", len(program.Tokens),
	)

	err := i.execute(ctx)
	if flushErr := i.flush(); err == nil {
		err = flushErr
	}

	logger.DebugContext(ctx, "run end",
		"steps", i.steps,
		"error", err,
	)
	return program.WithPos(err)
}

func (i *Interpreter) execute(ctx context.Context) error {
	for intr, err := range i.Run {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if i.Trace {
			i.logger().DebugContext(ctx, "step",
				"ip", intr.IP,
				"token", intr.Token,
				"cell", i.tape.Get(i.position),
			)
		}
	}
	return nil
}

func renderCell(c Cell) string {
	if c >= 0 && c <= 127 {
		return string(rune(c))
	}
	return "?"
}

func (i *Interpreter) write(s string) error {
	if _, err := io.WriteString(i.output(), s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (i *Interpreter) input() error {
	if err := i.write(i.Prompt); err != nil {
		return err
	}
	if err := i.flush(); err != nil {
		return err
	}

	var line string
	if i.Input != nil {
		var err error
		line, err = i.Input.ReadLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
	}

	value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil {
		i.logger().Warn("invalid input", "line", line, "error", err)
		i.tape.Set(i.position, 0)
		return i.write(InvalidInputMessage + "\n")
	}
	// stored verbatim, not reduced modulo TapeSize
	i.tape.Set(i.position, Cell(value))
	return nil
}
