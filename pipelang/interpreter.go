package pipelang

import (
	"encoding/gob"
	"fmt"
	"io"
	"log/slog"

	"github.com/reusee/pipe/logs"
)

const (
	DefaultPrompt       = "Input: "
	InvalidInputMessage = "Invalid input, storing 0 in the cell."
)

type Interpreter struct {
	Input    LineReader
	Output   io.Writer
	Logger   logs.Logger
	Prompt   string
	MaxSteps int
	Trace    bool

	tape      *Tape
	position  int
	program   *Program
	ip        int
	loops     []int
	steps     int
	interrupt Interrupt
}

func NewInterpreter(input LineReader, output io.Writer) *Interpreter {
	return &Interpreter{
		Input:  input,
		Output: output,
		Prompt: DefaultPrompt,
		tape:   NewTape(),
	}
}

func (i *Interpreter) Tape() *Tape {
	return i.tape
}

func (i *Interpreter) Position() int {
	return i.position
}

// Steps returns the number of instructions dispatched since the last Load.
func (i *Interpreter) Steps() int {
	return i.steps
}

// Load sets the program to run and rewinds the instruction pointer.
// Tape and position are kept.
func (i *Interpreter) Load(program *Program) {
	i.program = program
	i.ip = 0
	i.loops = i.loops[:0]
	i.steps = 0
}

func (i *Interpreter) reset() {
	i.tape = NewTape()
	i.position = 0
}

func (i *Interpreter) logger() logs.Logger {
	if i.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return i.Logger
}

func (i *Interpreter) output() io.Writer {
	if i.Output == nil {
		return io.Discard
	}
	return i.Output
}

type flusher interface {
	Flush() error
}

func (i *Interpreter) flush() error {
	if f, ok := i.Output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}

type snapshot struct {
	Cells    []Cell
	Position int
}

func (i *Interpreter) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(snapshot{
		Cells:    i.tape.cells,
		Position: i.position,
	}); err != nil {
		return err
	}
	return nil
}

func (i *Interpreter) Restore(r io.Reader) error {
	var s snapshot
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return err
	}
	if len(s.Cells) != TapeSize {
		return fmt.Errorf("bad snapshot: tape length %d", len(s.Cells))
	}
	if s.Position < 0 || s.Position >= TapeSize {
		return fmt.Errorf("bad snapshot: position %d", s.Position)
	}
	i.tape = &Tape{
		cells: s.Cells,
	}
	i.position = s.Position
	return nil
}
