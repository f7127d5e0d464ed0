package pipelang

import "fmt"

const TapeSize = 30000

type Cell int32

// Tape is a fixed-length array of cells. Increment and Decrement wrap
// modulo TapeSize; Set stores values verbatim.
type Tape struct {
	cells []Cell
}

func NewTape() *Tape {
	return &Tape{
		cells: make([]Cell, TapeSize),
	}
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) check(pos int) {
	if pos < 0 || pos >= len(t.cells) {
		panic(fmt.Errorf("tape position out of range: %d", pos))
	}
}

func (t *Tape) Get(pos int) Cell {
	t.check(pos)
	return t.cells[pos]
}

func (t *Tape) Set(pos int, value Cell) {
	t.check(pos)
	t.cells[pos] = value
}

func (t *Tape) Increment(pos int) {
	t.check(pos)
	t.cells[pos] = (t.cells[pos] + 1) % TapeSize
}

func (t *Tape) Decrement(pos int) {
	t.check(pos)
	t.cells[pos] = (t.cells[pos] + TapeSize - 1) % TapeSize
}

// Cells returns a copy of all cells.
func (t *Tape) Cells() []Cell {
	ret := make([]Cell, len(t.cells))
	copy(ret, t.cells)
	return ret
}

// NonZero returns the positions and values of every non-zero cell.
func (t *Tape) NonZero() map[int]Cell {
	ret := make(map[int]Cell)
	for i, c := range t.cells {
		if c != 0 {
			ret[i] = c
		}
	}
	return ret
}
