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

// Package value implements the oil runtime's tagged value algebra: the
// Int/Char/Str sum type, its canonicalisation rules and its overflow-safe
// arithmetic (falling back to decimal-digit big integers on overflow).
//
// A Value is always constructed in canonical form: callers never need to
// "normalize" one after the fact. Two Values compare equal with == if and
// only if they denote the same variant and contents, which makes Value
// usable directly as a Go map key — the same role FxHashMap<Value, Value>
// plays in the reference implementation, without a custom Hash/Eq impl.
package value
