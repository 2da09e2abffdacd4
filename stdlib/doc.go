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

// Package stdlib embeds the oil standard library: a compile-time mapping
// from short module identifiers to the cell snapshot of a pre-assembled
// module, consulted by opcode 14 ("call") whenever a Str identifier does
// not resolve to a file under the caller's root.
//
// Module source lives under modules/ as oil mnemonic assembly (one
// instruction, label, literal or comment per line — see the asm package)
// and is embedded at compile time with go:embed, then assembled once at
// package init. Lookup always hands out a fresh copy of a module's cells,
// so a call that mutates its own tape can never corrupt the next call to
// the same module.
//
// The module bodies themselves only need to exist and behave plausibly:
// per the language's own scope, the standard library's implementation is
// an external collaborator and only this lookup contract is load-bearing.
package stdlib
