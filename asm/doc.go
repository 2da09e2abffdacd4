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

// Package asm assembles oil mnemonic source into a tape cell mapping.
//
// Unlike a traditional Forth-style assembler, oil source is line-oriented:
// each instruction, operand or literal line contributes exactly one tape
// cell (labels, comments and blank lines contribute none), mirroring the
// numeric program file format the assembler ultimately produces (one
// decimal/textual value per line). There is no implicit "lit" and no stack
// to track, so one pass over lines plus one patch pass for label references
// is all name resolution needs.
//
//	mnemonic	opcode	operands (one per following line)
//	--------	------	----------------------------------
//	nop		0
//	copy, mov	1	src dst
//	reverse		2
//	quit, exit,	3
//	  return
//	output, write	4	addr
//	user_input,	5	addr
//	  read
//	jump, jmp	6	target
//	relative_jump,	7	amount
//	  jr
//	increment, +	8	addr
//	decrement, -	9	addr
//	conditional_jump,	10	addr-a addr-b target-if-equal target-if-different
//	  je
//	newline		11
//	explode		12	src dst
//	implode		13	src count dst
//	call		14	path out-cursor in-cursor
//	rand		15	addr
//	ord		16	src dst
//	chr		17	src count dst
//
// A line consisting only of a decimal integer (optionally signed) compiles
// to that number through the value package's canonicalisation (an Int when
// in int64 range; an overflowing literal stays a numeric Str), and a
// single-quoted character literal (e.g. 'a', '\n')
// compiles to a Char. A line beginning with '"' is a literal-text
// instruction: the rest of the line, verbatim, becomes a Str cell (or an Int
// or Char cell if its content happens to canonicalize as one).
//
// A line beginning with '#' is a whole-line comment; a " #" occurring after
// other content truncates the rest of that line as a trailing comment.
//
// Labels are defined with a leading ':' ("label definitions") and referenced
// only with a leading '$'. Any other line that is not a known mnemonic,
// integer, or character literal is emitted verbatim as a value; it is never
// looked up as a label. Forward references are resolved in a second pass
// once every label definition has been seen; an unresolved reference is
// reported once per use and emitted as the literal "$NAME" text, matching
// db47h/ngaro's ErrAsm aggregation style.
package asm
