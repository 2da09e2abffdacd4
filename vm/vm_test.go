// This file is part of ngaro - https://github.com/db47h/ngaro
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oillang/oil/asm"
	"github.com/oillang/oil/tape"
	"github.com/oillang/oil/value"
	"github.com/oillang/oil/vm"
)

func assembleTape(t *testing.T, src string) *tape.Tape {
	t.Helper()
	cells, err := asm.Assemble("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	return tape.New(tape.WithCells(cells))
}

func TestRunHaltsOnAbsentCell(t *testing.T) {
	tp := tape.New()
	interp := vm.New(tp)
	interp.Run() // cell 0 was never written: halts immediately
}

func TestRunQuitHalts(t *testing.T) {
	tp := assembleTape(t, "quit\n")
	interp := vm.New(tp)
	interp.Run()
	if got := tp.Cursor(); got != value.Int(0) {
		t.Fatalf("cursor after quit = %v, want unchanged Int(0)", got)
	}
}

func TestRunOutputWritesDisplay(t *testing.T) {
	tp := assembleTape(t, "write\n$greeting\nquit\n:greeting\n\"hi\n")
	var buf bytes.Buffer
	interp := vm.New(tp, vm.WithOutput(&buf))
	interp.Run()
	if got := buf.String(); got != "hi" {
		t.Fatalf("output = %q, want %q", got, "hi")
	}
}

func TestRunNewlineEmitsLineFeed(t *testing.T) {
	tp := assembleTape(t, "newline\nquit\n")
	var buf bytes.Buffer
	interp := vm.New(tp, vm.WithOutput(&buf))
	interp.Run()
	if got := buf.String(); got != "\n" {
		t.Fatalf("output = %q, want newline", got)
	}
}

func TestRunCopyMovesValue(t *testing.T) {
	tp := assembleTape(t, "copy\n$src\n$dst\nwrite\n$dst\nquit\n:src\n\"42\n:dst\n0\n")
	var buf bytes.Buffer
	interp := vm.New(tp, vm.WithOutput(&buf))
	interp.Run()
	if got := buf.String(); got != "42" {
		t.Fatalf("output = %q, want 42", got)
	}
}

func TestRunIncrementDefaultsAbsentToOne(t *testing.T) {
	// cells 0..4 are increment/5/write/5/quit; cell 5 is never written.
	tp := assembleTape(t, "increment\n5\nwrite\n5\nquit\n")
	var buf bytes.Buffer
	interp := vm.New(tp, vm.WithOutput(&buf))
	interp.Run()
	if got := buf.String(); got != "1" {
		t.Fatalf("output = %q, want 1", got)
	}
}

func TestRunExplodeWritesLengthAndChars(t *testing.T) {
	// explode src dest quit :src :dest -> cells 0..5, :src=4, :dest=5
	tp := assembleTape(t, "explode\n$src\n$dest\nquit\n:src\n\"ab\n:dest\n0\n")
	interp := vm.New(tp)
	interp.Run()
	if got := tp.ReadAt(value.Int(5)); got != value.Int(2) {
		t.Fatalf("dest cell = %v, want Int(2) (length of \"ab\")", got)
	}
	if got := tp.ReadAt(value.Int(6)); got != value.Char('a') {
		t.Fatalf("cell 6 = %v, want Char('a')", got)
	}
	if got := tp.ReadAt(value.Int(7)); got != value.Char('b') {
		t.Fatalf("cell 7 = %v, want Char('b')", got)
	}
}

func TestRunImplodeConcatenates(t *testing.T) {
	// The count operand is read directly off its cell, so it is a literal:
	// cells: 0 implode, 1 src-ref, 2 count (3), 3 dest-ref, 4 quit,
	// :src=5,6,7 ('a','b','c'), :dest=8 (0)
	src := "implode\n$src\n3\n$dest\nquit\n:src\n'a'\n'b'\n'c'\n:dest\n0\n"
	tp := assembleTape(t, src)
	interp := vm.New(tp)
	interp.Run()
	result := tp.ReadStringAt(value.Int(8))
	if result != "abc" {
		t.Fatalf("implode result = %q, want %q (cells: %v)", result, "abc", tp.Snapshot())
	}
}

func TestRunCallLoadsModuleFromRoot(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "double.oil")
	// a raw numeric module image: user_input(5) into cell 2, output(4) cell
	// 2, quit(3) - the same read-then-write shape as stdlib's echo module.
	if err := os.WriteFile(modPath, []byte("5\n2\n0\n4\n2\n3\n"), 0o644); err != nil {
		t.Fatalf("writing module file: %v", err)
	}

	// The module identifier, out-cursor and in-cursor operands of "call" are
	// read directly off their cells (no pointer indirection), so they must
	// be written as literals, not label references: cells 0..4 are
	// call/"double.oil"/5/6/quit, and cells 5 (out, initially 0) and 6 (in,
	// pre-seeded with 42) are the parent-side cursors.
	src := "call\n\"double.oil\n5\n6\nquit\n0\n42\n"
	cells, err := asm.Assemble("caller", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	tp := tape.New(tape.WithCells(cells), tape.WithRoot(dir))
	interp := vm.New(tp)
	interp.Run()

	if got := tp.ReadAt(value.Int(5)); got != value.Int(42) {
		t.Fatalf("out cursor cell = %v, want Int(42)", got)
	}
}

func TestRunCallFallsBackToStdlib(t *testing.T) {
	// no root is set, so "echo" can only resolve via the embedded stdlib.
	src := "call\n\"echo\n5\n6\nquit\n0\n99\n"
	tp := assembleTape(t, src)
	interp := vm.New(tp)
	interp.Run()
	if got := tp.ReadAt(value.Int(5)); got != value.Int(99) {
		t.Fatalf("echo via stdlib call: out cell = %v, want Int(99)", got)
	}
}
