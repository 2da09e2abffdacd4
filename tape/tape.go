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

package tape

import "github.com/oillang/oil/value"

// Tape owns the sparse cell store, cursor, direction and root directory
// described in spec §3.2. A cell that was never written reads as Int(0);
// the tape does not distinguish "explicitly stores Int(0)" from "absent" at
// the read_at level, only the run loop's halt condition cares about that
// distinction (a non-existent raw entry versus one that holds Int(0)).
type Tape struct {
	cells     map[value.Value]value.Value
	cursor    value.Value
	direction bool
	root      string
	hasRoot   bool
}

// Option configures a new Tape, mirroring the functional-options pattern
// the reference VM uses for vm.Instance construction.
type Option func(*Tape)

// WithRoot sets the directory used to resolve relative module paths for
// opcode 14 ("call").
func WithRoot(dir string) Option {
	return func(t *Tape) {
		t.root = dir
		t.hasRoot = true
	}
}

// WithCells seeds the tape with a caller-supplied cell mapping (used when
// loading a numeric program file or a cached/standard-library module
// snapshot). The map is adopted, not copied; pass a fresh map if the
// caller still needs the original.
func WithCells(cells map[value.Value]value.Value) Option {
	return func(t *Tape) {
		t.cells = cells
	}
}

// New creates an empty Tape with cursor Int(0) and forward direction.
func New(opts ...Option) *Tape {
	t := &Tape{
		cursor:    value.Zero,
		direction: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.cells == nil {
		t.cells = make(map[value.Value]value.Value)
	}
	return t
}

// Root returns the tape's root directory and whether one is set.
func (t *Tape) Root() (string, bool) {
	return t.root, t.hasRoot
}

// Cursor returns the current cursor position.
func (t *Tape) Cursor() value.Value {
	return t.cursor
}

// SetCursor moves the cursor directly, used by jump/conditional_jump which
// overwrite it absolutely instead of stepping.
func (t *Tape) SetCursor(v value.Value) {
	t.cursor = v
}

// Direction reports the current step direction: true is forward.
func (t *Tape) Direction() bool {
	return t.direction
}

// ToggleDirection flips the step direction (opcode 2, "reverse").
func (t *Tape) ToggleDirection() {
	t.direction = !t.direction
}

// Step advances the cursor by one cell in the current direction, using
// Value arithmetic so the cursor may legitimately leave int64 range and
// continue as a big-integer Str.
func (t *Tape) Step() {
	t.cursor = t.cursor.Advance(t.direction)
}

// ReadAt looks up the cell at i, returning Int(0) if it was never written.
func (t *Tape) ReadAt(i value.Value) value.Value {
	if v, ok := t.cells[i]; ok {
		return v
	}
	return value.Zero
}

// Exists reports whether i has ever been written, distinguishing an
// explicit Int(0) from a cell that was never touched. The run loop uses
// this (rather than ReadAt) to decide whether the cursor has walked off
// into absent territory, per §3.2's halt condition.
func (t *Tape) Exists(i value.Value) bool {
	_, ok := t.cells[i]
	return ok
}

// WriteAt stores v at cell i.
func (t *Tape) WriteAt(i, v value.Value) {
	t.cells[i] = v
}

// ReadIntAtCursor returns the integer-shaped content of the cell under the
// cursor: Int(x) if it holds an Int, the original Str if it holds an
// integer-shaped (overflowed) Str, or Int(0) otherwise.
func (t *Tape) ReadIntAtCursor() value.Value {
	v := t.ReadAt(t.cursor)
	if v.IsNumeric() {
		return v
	}
	return value.Zero
}

// ReadStringAt coerces the cell at i to text: an Int becomes its decimal
// image, a Char its scalar, a Str its body untouched. This is the same text
// form that module paths and explode/implode work on.
func (t *Tape) ReadStringAt(i value.Value) string {
	return t.ReadAt(i).Display()
}

// Snapshot returns an independent copy of the cell store, used to seed the
// module cache and to hand a loaded module's cells to a child tape without
// aliasing the original map.
func (t *Tape) Snapshot() map[value.Value]value.Value {
	out := make(map[value.Value]value.Value, len(t.cells))
	for k, v := range t.cells {
		out[k] = v
	}
	return out
}

// Len reports the number of cells currently stored, mainly for tests and
// diagnostics.
func (t *Tape) Len() int {
	return len(t.cells)
}
