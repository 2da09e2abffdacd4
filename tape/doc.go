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

// Package tape implements the oil runtime's data model: a sparse cell
// store addressed by Value keys, a cursor, a direction bit, and an optional
// root directory used to resolve relative module paths for the "call"
// opcode.
//
// Tape only knows about the data model (§3.2 of the spec this package
// implements); opcode dispatch and the fetch-decode-execute loop live in
// the sibling vm package, mirroring how the Ngaro reference VM keeps
// memory/stack primitives in one file and the run loop in another.
package tape
