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

package asm

import (
	"bufio"
	"io"
	"strings"

	"github.com/oillang/oil/value"
)

// Assemble compiles oil mnemonic source read from r into the cell mapping a
// tape.Tape can be seeded with (see tape.WithCells). name identifies the
// source (e.g. its file name); it is not used by the assembler, and the
// returned diagnostics carry only line numbers.
//
// Per spec.md §4.5/§7, the assembler never halts on a diagnostic (duplicate
// label, unknown label reference): the program is always fully assembled
// and returned. A non-nil error is only ever an ErrAsm carrying the
// diagnostics collected along the way; callers that don't care about them
// can still use the returned cells unconditionally. A non-ErrAsm error
// means r itself could not be read.
func Assemble(name string, r io.Reader) (map[value.Value]value.Value, error) {
	p := newParser()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, "\"") {
			line = stripComment(line)
		}
		p.parseLine(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	p.resolve()
	out := make(map[value.Value]value.Value, len(p.cells))
	for i, v := range p.cells {
		out[value.Int(int64(i))] = v
	}
	if len(p.errs) > 0 {
		return out, p.errs
	}
	return out, nil
}

// AssembleString is a convenience wrapper around Assemble for in-memory
// source, used by the standard library loader to turn its embedded mnemonic
// modules into cell snapshots at package init.
func AssembleString(name, src string) (map[value.Value]value.Value, error) {
	return Assemble(name, strings.NewReader(src))
}
