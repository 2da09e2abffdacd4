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
	"os"
	"path/filepath"

	"github.com/oillang/oil/stdlib"
	"github.com/oillang/oil/tape"
	"github.com/oillang/oil/value"
)

// execCall implements opcode 14: three pre-steps read the module
// identifier, the caller's out-cursor and in-cursor, then a child
// Interpreter is built over the resolved module's cells and run to
// completion, linked back to the caller via those two cursors.
func (interp *Interpreter) execCall() {
	t := interp.Tape
	t.Step()
	path := t.ReadAt(t.Cursor())
	t.Step()
	outCursor := t.ReadIntAtCursor()
	t.Step()
	inCursor := t.ReadIntAtCursor()

	cells, root, hasRoot, ok := interp.resolveModule(path)
	if !ok {
		return
	}
	opts := []tape.Option{tape.WithCells(cells)}
	if hasRoot {
		opts = append(opts, tape.WithRoot(root))
	}
	child := &Interpreter{
		Tape:  tape.New(opts...),
		cache: interp.cache,
		link:  &childLink{parent: interp, outCursor: outCursor, inCursor: inCursor},
	}
	child.Run()
}

// resolveModule implements the §4.4 resolution order: a Str identifier
// first tries root/name on disk (if a root is set), then falls back to the
// standard library; an Int or Char identifier only ever tries root/name on
// disk, and is skipped silently if no root is set or the file is missing.
func (interp *Interpreter) resolveModule(path value.Value) (cells map[value.Value]value.Value, childRoot string, hasChildRoot, ok bool) {
	switch path.Kind() {
	case value.KindStr:
		name := path.Display()
		if root, hasRoot := interp.Tape.Root(); hasRoot {
			if c, r, loaded := interp.loadFromFile(root, name); loaded {
				return c, r, true, true
			}
		}
		if mod, found := stdlib.Lookup(name); found {
			return mod, "", false, true
		}
		return nil, "", false, false
	case value.KindInt, value.KindChar:
		name := path.Display()
		root, hasRoot := interp.Tape.Root()
		if !hasRoot {
			return nil, "", false, false
		}
		if c, r, loaded := interp.loadFromFile(root, name); loaded {
			return c, r, true, true
		}
		return nil, "", false, false
	default:
		return nil, "", false, false
	}
}

// loadFromFile resolves name against root, consulting the module cache
// before touching disk, and reports the directory the resulting child
// tape's own root should be set to (the parent directory of the resolved
// file, per §4.4).
func (interp *Interpreter) loadFromFile(root, name string) (cells map[value.Value]value.Value, childRoot string, ok bool) {
	full := filepath.Join(root, name)
	fi, err := os.Stat(full)
	if err != nil || fi.IsDir() {
		return nil, "", false
	}
	abs, err := filepath.Abs(full)
	if err != nil {
		return nil, "", false
	}
	if cached, found := interp.cache.Get(abs); found {
		return cached, filepath.Dir(full), true
	}
	loaded, err := loadModuleFile(full)
	if err != nil {
		return nil, "", false
	}
	interp.cache.Put(abs, loaded)
	return loaded, filepath.Dir(full), true
}

// loadModuleFile reads a numeric program file the same way the top-level
// loader does: one Value per line, indexed from cell 0.
func loadModuleFile(path string) (map[value.Value]value.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cells := make(map[value.Value]value.Value)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	i := int64(0)
	for sc.Scan() {
		cells[value.Int(i)] = value.FromString(sc.Text())
		i++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cells, nil
}
