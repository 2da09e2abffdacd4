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

package vm

import (
	"bufio"
	"io"
	"strings"

	"github.com/oillang/oil/internal/ngi"
	"github.com/oillang/oil/tape"
	"github.com/oillang/oil/value"
)

// childLink threads a sub-interpreter's opcodes 4 (output), 5 (input) and 11
// (newline) back to its parent, per the call mechanism: output streams into
// the parent tape at outCursor, input streams out of it at inCursor, and
// newline is ignored entirely in a child.
type childLink struct {
	parent    *Interpreter
	outCursor value.Value
	inCursor  value.Value
}

// Interpreter runs a single tape to completion. Interpreters spawned by
// opcode 14 ("call") share the root interpreter's module cache so a module
// loaded from disk is only parsed once per process, however many times it
// is called.
type Interpreter struct {
	Tape   *tape.Tape
	Output io.Writer
	Input  *bufio.Reader

	cache *ModuleCache
	link  *childLink
}

// Option configures a new Interpreter, mirroring tape.Option's
// functional-options shape.
type Option func(*Interpreter)

// WithOutput sets the writer opcode 4 (output) and opcode 11 (newline)
// write to at the top level. Without one, output is silently discarded. The
// writer is wrapped in an ngi.ErrWriter so a broken pipe fails once instead
// of on every remaining output opcode.
func WithOutput(w io.Writer) Option {
	return func(interp *Interpreter) { interp.Output = ngi.NewErrWriter(w) }
}

// WithInput sets the reader opcode 5 (input) reads lines from at the top
// level. Without one, every read behaves as if at EOF (empty line).
func WithInput(r io.Reader) Option {
	return func(interp *Interpreter) { interp.Input = bufio.NewReader(r) }
}

// New creates an Interpreter over t with a fresh ModuleCache. The call
// mechanism in this package builds child Interpreters directly rather than
// through New, handing each child its parent's cache so a whole call tree
// shares one.
func New(t *tape.Tape, opts ...Option) *Interpreter {
	interp := &Interpreter{Tape: t, cache: NewModuleCache()}
	for _, opt := range opts {
		opt(interp)
	}
	return interp
}

func (interp *Interpreter) writeOutput(s string) {
	if interp.Output != nil {
		io.WriteString(interp.Output, s)
	}
}

func (interp *Interpreter) flushOutput() {
	if f, ok := interp.Output.(interface{ Flush() error }); ok {
		f.Flush()
	}
}

func (interp *Interpreter) readLine() string {
	if interp.Input == nil {
		return ""
	}
	line, _ := interp.Input.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}

// Run executes the fetch-decode-execute loop until the cursor lands on an
// absent cell or opcode 3 (quit) runs.
func (interp *Interpreter) Run() {
	t := interp.Tape
	for {
		cur := t.Cursor()
		if !t.Exists(cur) {
			return
		}
		cell := t.ReadAt(cur)
		op, isInt := cell.IntValue()
		if !isInt {
			t.Step()
			continue
		}
		switch op {
		case OpNop:
			t.Step()
		case OpCopy:
			interp.execCopy()
			t.Step()
		case OpReverse:
			t.ToggleDirection()
			t.Step()
		case OpQuit:
			return
		case OpOutput:
			interp.execOutput()
			t.Step()
		case OpInput:
			interp.execInput()
			t.Step()
		case OpJump:
			t.Step()
			t.SetCursor(t.ReadIntAtCursor())
		case OpRelativeJump:
			interp.execRelativeJump()
		case OpIncrement:
			interp.execIncrement()
			t.Step()
		case OpDecrement:
			interp.execDecrement()
			t.Step()
		case OpCondJump:
			interp.execCondJump()
		case OpNewline:
			interp.execNewline()
			t.Step()
		case OpExplode:
			interp.execExplode()
			t.Step()
		case OpImplode:
			interp.execImplode()
			t.Step()
		case OpCall:
			interp.execCall()
			t.Step()
		case OpRand:
			interp.execRand()
			t.Step()
		case OpOrd:
			interp.execOrd()
			t.Step()
		case OpChr:
			interp.execChr()
			t.Step()
		default:
			t.Step()
		}
	}
}
