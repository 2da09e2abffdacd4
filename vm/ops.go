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
	"math"
	"math/rand"
	"strings"

	"github.com/oillang/oil/value"
)

// execCopy implements opcode 1: two pre-steps read a source pointer, then a
// destination pointer, and the value stored at the source is copied to the
// destination.
func (interp *Interpreter) execCopy() {
	t := interp.Tape
	t.Step()
	src := t.ReadIntAtCursor()
	val := t.ReadAt(src)
	t.Step()
	dst := t.ReadIntAtCursor()
	t.WriteAt(dst, val)
}

// execOutput implements opcode 4. At the top level it writes the addressed
// cell's display form to Output; inside a sub-interpreter it instead writes
// the raw value into the parent tape at out_cursor and advances out_cursor
// by the parent's direction.
func (interp *Interpreter) execOutput() {
	t := interp.Tape
	t.Step()
	addr := t.ReadIntAtCursor()
	val := t.ReadAt(addr)
	if interp.link != nil {
		link := interp.link
		link.parent.Tape.WriteAt(link.outCursor, val)
		link.outCursor = link.outCursor.Advance(link.parent.Tape.Direction())
		return
	}
	interp.writeOutput(val.Display())
}

// execInput implements opcode 5. At the top level it flushes any pending
// output, reads one line (stripping the trailing newline) and stores it at
// the addressed cell; inside a sub-interpreter it instead reads the parent
// tape at in_cursor (Int(0) if absent) and advances in_cursor by the
// parent's direction.
func (interp *Interpreter) execInput() {
	t := interp.Tape
	if interp.link != nil {
		t.Step()
		addr := t.ReadIntAtCursor()
		link := interp.link
		var val value.Value
		if link.parent.Tape.Exists(link.inCursor) {
			val = link.parent.Tape.ReadAt(link.inCursor)
		} else {
			val = value.Zero
		}
		t.WriteAt(addr, val)
		link.inCursor = link.inCursor.Advance(link.parent.Tape.Direction())
		return
	}
	interp.flushOutput()
	line := interp.readLine()
	t.Step()
	addr := t.ReadIntAtCursor()
	t.WriteAt(addr, value.FromString(line))
}

// execRelativeJump implements opcode 7: the cursor moves by the addressed
// amount, in the direction of travel, with no further post-step.
func (interp *Interpreter) execRelativeJump() {
	t := interp.Tape
	t.Step()
	amount := t.ReadIntAtCursor()
	if t.Direction() {
		t.SetCursor(value.Add(t.Cursor(), amount))
	} else {
		t.SetCursor(value.Sub(t.Cursor(), amount))
	}
}

// execIncrement implements opcode 8. ReadAt already yields Int(0) for an
// absent cell, and Int(0).Incr() is Int(1), so no special-casing of
// "absent" is needed here.
func (interp *Interpreter) execIncrement() {
	t := interp.Tape
	t.Step()
	addr := t.ReadIntAtCursor()
	t.WriteAt(addr, t.ReadAt(addr).Incr())
}

// execDecrement implements opcode 9, symmetric to execIncrement.
func (interp *Interpreter) execDecrement() {
	t := interp.Tape
	t.Step()
	addr := t.ReadIntAtCursor()
	t.WriteAt(addr, t.ReadAt(addr).Decr())
}

// execCondJump implements opcode 10: three unconditional steps land the
// cursor on the jump target, with one extra step inserted in between if the
// two addressed cells hold different values.
func (interp *Interpreter) execCondJump() {
	t := interp.Tape
	t.Step()
	aAddr := t.ReadIntAtCursor()
	aVal := t.ReadAt(aAddr)
	t.Step()
	bAddr := t.ReadIntAtCursor()
	bVal := t.ReadAt(bAddr)
	if aVal != bVal {
		t.Step()
	}
	t.Step()
	t.SetCursor(t.ReadIntAtCursor())
}

// execNewline implements opcode 11: ignored entirely inside a
// sub-interpreter.
func (interp *Interpreter) execNewline() {
	if interp.link != nil {
		return
	}
	interp.writeOutput("\n")
}

// execExplode implements opcode 12: the source cell's display form is
// spread one character per cell starting just past dest, in the direction
// of travel, with dest itself set to the character count.
func (interp *Interpreter) execExplode() {
	t := interp.Tape
	t.Step()
	src := t.ReadIntAtCursor()
	it := t.ReadAt(src).Chars()
	t.Step()
	dst := t.ReadIntAtCursor()
	t.WriteAt(dst, value.Int(int64(it.Len())))
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		dst = dst.Advance(t.Direction())
		t.WriteAt(dst, value.Char(r))
	}
}

// execOrd implements opcode 16: like execExplode, but each character is
// stored as its Unicode scalar value rather than as a Char.
func (interp *Interpreter) execOrd() {
	t := interp.Tape
	t.Step()
	src := t.ReadIntAtCursor()
	it := t.ReadAt(src).Chars()
	t.Step()
	dst := t.ReadIntAtCursor()
	t.WriteAt(dst, value.Int(int64(it.Len())))
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		dst = dst.Advance(t.Direction())
		t.WriteAt(dst, value.Int(int64(r)))
	}
}

// execImplode implements opcode 13: reads a source pointer, then a count
// (which must be a literal Int; anything else aborts with one extra step
// instead of reading the destination), then a destination, concatenates the
// display form of count consecutive cells from source and stores the
// result at destination.
func (interp *Interpreter) execImplode() {
	t := interp.Tape
	t.Step()
	src := t.ReadIntAtCursor()
	t.Step()
	n, isInt := t.ReadIntAtCursor().IntValue()
	if !isInt {
		t.Step()
		return
	}
	t.Step()
	dst := t.ReadIntAtCursor()
	var sb strings.Builder
	cur := src
	for k := int64(0); k < n; k++ {
		sb.WriteString(t.ReadAt(cur).Display())
		cur = cur.Advance(t.Direction())
	}
	t.WriteAt(dst, value.FromString(sb.String()))
}

// execChr implements opcode 17: like execImplode, but each source cell must
// be an Int in [0, 0x10FFFF] to be treated as a code point; anything else
// becomes U+FFFD.
func (interp *Interpreter) execChr() {
	t := interp.Tape
	t.Step()
	src := t.ReadIntAtCursor()
	t.Step()
	n, isInt := t.ReadIntAtCursor().IntValue()
	if !isInt {
		t.Step()
		return
	}
	t.Step()
	dst := t.ReadIntAtCursor()
	var sb strings.Builder
	cur := src
	for k := int64(0); k < n; k++ {
		r := rune(0xFFFD)
		if iv, ok := t.ReadAt(cur).IntValue(); ok && iv >= 0 && iv <= 0x10FFFF {
			r = rune(iv)
		}
		sb.WriteRune(r)
		cur = cur.Advance(t.Direction())
	}
	t.WriteAt(dst, value.FromString(sb.String()))
}

// execRand implements opcode 15. A cell holding Int(MaxInt64) or any other
// positive Int is resampled uniformly in [0, x]. A positive numeric Str (an
// overflowed integer) is resampled to an equal-length decimal with a
// nonzero leading digit, rejecting and resampling while the result exceeds
// the original magnitude. A cell holding a non-positive numeric value is
// reset to Int(0). A non-numeric cell (Char, free-text Str) is left
// untouched. An absent cell is left untouched (no entry is ever created by
// this opcode).
func (interp *Interpreter) execRand() {
	t := interp.Tape
	t.Step()
	addr := t.ReadIntAtCursor()
	if !t.Exists(addr) {
		return
	}
	cur := t.ReadAt(addr)
	switch {
	case cur.Kind() == value.KindInt:
		x, _ := cur.IntValue()
		switch {
		case x == math.MaxInt64:
			t.WriteAt(addr, value.Int(int64(rand.Uint64()>>1)))
		case x > 0:
			t.WriteAt(addr, value.Int(rand.Int63n(x+1)))
		default:
			t.WriteAt(addr, value.Zero)
		}
	case cur.IsPositiveNumeric():
		t.WriteAt(addr, randomBoundedDigits(cur.Display()))
	case cur.IsNumeric():
		t.WriteAt(addr, value.Zero)
	}
}

func randomBoundedDigits(original string) value.Value {
	n := len(original)
	buf := make([]byte, n)
	for {
		buf[0] = byte('1' + rand.Intn(9))
		for i := 1; i < n; i++ {
			buf[i] = byte('0' + rand.Intn(10))
		}
		if string(buf) <= original {
			break
		}
	}
	return value.FromString(string(buf))
}
