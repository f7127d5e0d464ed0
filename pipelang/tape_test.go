package pipelang

import (
	"testing"
)

func TestNewTape(t *testing.T) {
	tape := NewTape()
	if tape.Len() != TapeSize {
		t.Fatalf("got %v", tape.Len())
	}
	for i, c := range tape.Cells() {
		if c != 0 {
			t.Fatalf("cell %d: got %v", i, c)
		}
	}
	if len(tape.NonZero()) != 0 {
		t.Fatal()
	}
}

func TestIncrementDecrementInverse(t *testing.T) {
	tape := NewTape()
	for v := Cell(0); v < TapeSize; v++ {
		tape.Set(0, v)
		tape.Increment(0)
		tape.Decrement(0)
		if got := tape.Get(0); got != v {
			t.Fatalf("%d: got %v", v, got)
		}
		tape.Decrement(0)
		tape.Increment(0)
		if got := tape.Get(0); got != v {
			t.Fatalf("%d: got %v", v, got)
		}
	}
}

func TestWraparound(t *testing.T) {
	tape := NewTape()
	tape.Set(0, TapeSize-1)
	tape.Increment(0)
	if got := tape.Get(0); got != 0 {
		t.Fatalf("got %v", got)
	}
	tape.Decrement(0)
	if got := tape.Get(0); got != TapeSize-1 {
		t.Fatalf("got %v", got)
	}
}

func TestCellsIsCopy(t *testing.T) {
	tape := NewTape()
	cells := tape.Cells()
	cells[0] = 42
	if tape.Get(0) != 0 {
		t.Fatal()
	}
}

func TestTapeOutOfRange(t *testing.T) {
	tape := NewTape()
	for _, pos := range []int{-1, TapeSize} {
		func() {
			defer func() {
				if p := recover(); p == nil {
					t.Fatalf("%d: should panic", pos)
				}
			}()
			tape.Get(pos)
		}()
	}
}
