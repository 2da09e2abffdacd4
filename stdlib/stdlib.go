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

package stdlib

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/oillang/oil/asm"
	"github.com/oillang/oil/value"
)

//go:embed modules/*.oilasm
var moduleFS embed.FS

var modules map[string]map[value.Value]value.Value

func init() {
	entries, err := moduleFS.ReadDir("modules")
	if err != nil {
		panic(fmt.Sprintf("stdlib: reading embedded modules: %v", err))
	}
	modules = make(map[string]map[value.Value]value.Value, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".oilasm")
		src, err := moduleFS.ReadFile("modules/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("stdlib: reading %s: %v", e.Name(), err))
		}
		cells, err := asm.AssembleString(e.Name(), string(src))
		if err != nil {
			panic(fmt.Sprintf("stdlib: assembling %s: %v", e.Name(), err))
		}
		modules[name] = cells
	}
}

// Lookup returns a fresh, independent copy of the named module's cell
// snapshot and true, or (nil, false) if no such module is embedded.
func Lookup(name string) (map[value.Value]value.Value, bool) {
	mod, ok := modules[name]
	if !ok {
		return nil, false
	}
	out := make(map[value.Value]value.Value, len(mod))
	for k, v := range mod {
		out[k] = v
	}
	return out, true
}

// Names returns the sorted set of embedded module identifiers, mainly for
// diagnostics and tests.
func Names() []string {
	out := make([]string, 0, len(modules))
	for name := range modules {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
