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

import "github.com/oillang/oil/value"

// ModuleCache memoizes the initial cell snapshot of every on-disk module
// loaded by opcode 14 ("call"), keyed by resolved absolute path. It is a
// flat map that is never invalidated or evicted for the lifetime of an
// Interpreter tree: nothing in the spec calls for an LRU or TTL here, and
// since module files are immutable for the run's duration, reloading one
// would only be wasted I/O.
type ModuleCache struct {
	snapshots map[string]map[value.Value]value.Value
}

// NewModuleCache returns an empty cache.
func NewModuleCache() *ModuleCache {
	return &ModuleCache{snapshots: make(map[string]map[value.Value]value.Value)}
}

// Get returns a fresh, independent copy of the cached snapshot for path, if
// any. Callers always get their own copy so mutating a called module's
// cells can never corrupt the cache or a sibling call's cells.
func (c *ModuleCache) Get(path string) (map[value.Value]value.Value, bool) {
	snap, ok := c.snapshots[path]
	if !ok {
		return nil, false
	}
	return cloneCells(snap), true
}

// Put stores an independent copy of cells under path.
func (c *ModuleCache) Put(path string, cells map[value.Value]value.Value) {
	c.snapshots[path] = cloneCells(cells)
}

func cloneCells(cells map[value.Value]value.Value) map[value.Value]value.Value {
	out := make(map[value.Value]value.Value, len(cells))
	for k, v := range cells {
		out[k] = v
	}
	return out
}
