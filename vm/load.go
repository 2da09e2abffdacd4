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
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/oillang/oil/tape"
)

// LoadImage loads a numeric program file (one Value per line, cell-indexed
// from 0) into a fresh Tape rooted at the file's containing directory, so
// that opcode 14 ("call") can resolve sibling module files by relative
// path.
func LoadImage(path string) (*tape.Tape, error) {
	cells, err := loadModuleFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading program %s", path)
	}
	return tape.New(tape.WithCells(cells), tape.WithRoot(filepath.Dir(path))), nil
}
