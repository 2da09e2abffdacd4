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
	"fmt"
	"strconv"
	"strings"

	"github.com/oillang/oil/value"
)

// AsmError is a single diagnostic produced while assembling one source line.
type AsmError struct {
	Line int
	Msg  string
}

func (e AsmError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ErrAsm aggregates every diagnostic produced during a single Assemble call,
// mirroring the reference assembler's ErrAsm: a source file can have more
// than one thing wrong with it, and reporting them all in one pass is more
// useful than bailing out on the first.
type ErrAsm []AsmError

func (e ErrAsm) Error() string {
	l := make([]string, len(e))
	for i, err := range e {
		l[i] = err.Error()
	}
	return strings.Join(l, "\n")
}

// label tracks one label's definition site and every cell index that
// references it, wherever that reference sits relative to the definition.
type label struct {
	address int
	defined bool
	defLine int
	uses    []int
}

type parser struct {
	cells  []value.Value
	labels map[string]*label
	errs   ErrAsm
	lineNo int
}

func newParser() *parser {
	return &parser{labels: make(map[string]*label)}
}

func (p *parser) errorf(format string, args ...interface{}) {
	p.errs = append(p.errs, AsmError{Line: p.lineNo, Msg: fmt.Sprintf(format, args...)})
}

func (p *parser) write(v value.Value) int {
	idx := len(p.cells)
	p.cells = append(p.cells, v)
	return idx
}

func (p *parser) labelFor(name string) *label {
	l := p.labels[name]
	if l == nil {
		l = &label{address: -1}
		p.labels[name] = l
	}
	return l
}

func (p *parser) defineLabel(name string) {
	l := p.labelFor(name)
	if l.defined {
		p.errorf("label %q redefined (previously defined at line %d)", name, l.defLine)
	}
	// The later definition always wins, per spec.md §4.5; the diagnostic
	// above is informational only.
	l.address = len(p.cells)
	l.defined = true
	l.defLine = p.lineNo
}

// referenceLabel emits a placeholder cell for a not-yet-necessarily-resolved
// label and records where it needs patching once every definition is known.
func (p *parser) referenceLabel(name string) {
	l := p.labelFor(name)
	idx := p.write(value.Zero)
	l.uses = append(l.uses, idx)
}

var mnemonics = map[string]int{
	"nop":              0,
	"copy":             1,
	"mov":              1,
	"reverse":          2,
	"quit":             3,
	"exit":             3,
	"return":           3,
	"output":           4,
	"write":            4,
	"user_input":       5,
	"read":             5,
	"jump":             6,
	"jmp":              6,
	"relative_jump":    7,
	"jr":               7,
	"increment":        8,
	"+":                8,
	"decrement":        9,
	"-":                9,
	"conditional_jump": 10,
	"je":               10,
	"newline":          11,
	"explode":          12,
	"implode":          13,
	"call":             14,
	"rand":             15,
	"ord":              16,
	"chr":              17,
}

func isDecimal(tok string) bool {
	if tok == "" {
		return false
	}
	i := 0
	if tok[0] == '-' {
		i = 1
	}
	if i >= len(tok) {
		return false
	}
	for ; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

func charLiteral(tok string) (rune, bool) {
	if len(tok) < 3 || tok[0] != '\'' || tok[len(tok)-1] != '\'' {
		return 0, false
	}
	r, _, tail, err := strconv.UnquoteChar(tok[1:len(tok)-1], '\'')
	if err != nil || tail != "" {
		return 0, false
	}
	return r, true
}

// parseLine compiles one line's worth of source, already stripped of leading
// and trailing whitespace and comments, into zero or one cells.
func (p *parser) parseLine(line string) {
	if line == "" {
		return
	}
	if strings.HasPrefix(line, "\"") {
		p.write(value.FromString(line[1:]))
		return
	}
	if strings.HasPrefix(line, ":") {
		name := line[1:]
		if name == "" {
			p.errorf("empty label name")
			return
		}
		p.defineLabel(name)
		return
	}
	if strings.HasPrefix(line, "$") {
		name := line[1:]
		if name == "" {
			p.errorf("empty label reference")
			return
		}
		p.referenceLabel(name)
		return
	}
	if op, ok := mnemonics[line]; ok {
		p.write(value.Int(int64(op)))
		return
	}
	if r, ok := charLiteral(line); ok {
		p.write(value.Char(r))
		return
	}
	if isDecimal(line) {
		p.write(value.FromString(line))
		return
	}
	// Anything else is emitted verbatim, per spec.md §4.5's fallback row;
	// label references only ever come through the explicit $NAME form
	// above.
	p.write(value.FromString(line))
}

func stripComment(line string) string {
	if idx := strings.Index(line, " #"); idx >= 0 {
		return strings.TrimRight(line[:idx], " \t")
	}
	return line
}

func (p *parser) resolve() {
	for name, l := range p.labels {
		if !l.defined {
			// Per spec.md §4.5, an unknown $NAME produces a diagnostic but
			// the literal "$NAME" text is emitted in its place.
			for _, idx := range l.uses {
				p.errorf("undefined label %q", name)
				p.cells[idx] = value.FromString("$" + name)
			}
			continue
		}
		for _, idx := range l.uses {
			p.cells[idx] = value.Int(int64(l.address))
		}
	}
}
