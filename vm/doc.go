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

// Package vm implements the oil fetch-decode-execute loop: opcode dispatch,
// I/O channel handling and the sub-interpreter ("call") mechanism, all
// driven over a *tape.Tape. Tape owns the data model; this package only
// knows how to walk it.
//
// An Interpreter halts when the cursor lands on a cell that was never
// written (tape.Exists reports false) or opcode 3 (quit) executes. A cell
// that exists but holds a non-integer value under the cursor, or an integer
// outside the known opcode range, is treated as a no-op and the cursor just
// advances.
package vm
