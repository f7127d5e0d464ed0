package pipelang

import (
	"bytes"
	"encoding/gob"
	"strings"
	"testing"
)

func TestSnapshotRestore(t *testing.T) {
	interp := NewInterpreter(nil, nil)
	interp.Tape().Set(0, 42)
	interp.Tape().Set(29999, -7)

	buf := new(bytes.Buffer)
	if err := interp.Snapshot(buf); err != nil {
		t.Fatal(err)
	}

	restored := NewInterpreter(nil, nil)
	if err := restored.Restore(buf); err != nil {
		t.Fatal(err)
	}
	if restored.Tape().Len() != TapeSize {
		t.Fatal()
	}
	if restored.Tape().Get(0) != 42 || restored.Tape().Get(29999) != -7 {
		t.Fatalf("got %v", restored.Tape().NonZero())
	}
	if restored.Position() != 0 {
		t.Fatal()
	}
}

func TestRestoreBadSnapshot(t *testing.T) {
	interp := NewInterpreter(nil, nil)
	if err := interp.Restore(strings.NewReader("garbage")); err == nil {
		t.Fatal("should error")
	}

	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(snapshot{
		Cells: make([]Cell, 10),
	}); err != nil {
		t.Fatal(err)
	}
	err := interp.Restore(buf)
	if err == nil || !strings.Contains(err.Error(), "tape length 10") {
		t.Fatalf("got %v", err)
	}
}
