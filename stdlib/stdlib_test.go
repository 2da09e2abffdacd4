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

package stdlib_test

import (
	"testing"

	"github.com/oillang/oil/stdlib"
	"github.com/oillang/oil/value"
)

// requiredModules is the minimum set of library identifiers the spec
// requires to be present.
var requiredModules = []string{
	"abs", "add", "call", "commainstr", "div", "division", "echo", "email",
	"fibonacci", "head", "headtail", "hello_world", "invert", "iseq",
	"isnegative", "join", "leq", "mul", "quine", "sleep", "splitonce",
	"startswith", "strinstr", "strlen", "strsplit", "sub", "swap",
	"trimend", "trimstart", "truediv", "uniquechars",
}

func TestRequiredModulesPresent(t *testing.T) {
	for _, name := range requiredModules {
		if _, ok := stdlib.Lookup(name); !ok {
			t.Errorf("required module %q is not embedded", name)
		}
	}
}

func TestLookupMissingModule(t *testing.T) {
	if _, ok := stdlib.Lookup("does-not-exist"); ok {
		t.Fatal("Lookup(\"does-not-exist\") = true, want false")
	}
}

func TestLookupReturnsIndependentCopies(t *testing.T) {
	a, ok := stdlib.Lookup("echo")
	if !ok {
		t.Fatal("echo module missing")
	}
	b, ok := stdlib.Lookup("echo")
	if !ok {
		t.Fatal("echo module missing")
	}
	a[value.Int(0)] = value.Int(999)
	if b[value.Int(0)] == value.Int(999) {
		t.Fatal("Lookup aliased cells across calls")
	}
}

func TestHelloWorldAssembledCorrectly(t *testing.T) {
	cells, ok := stdlib.Lookup("hello_world")
	if !ok {
		t.Fatal("hello_world module missing")
	}
	found := false
	for _, v := range cells {
		if v.Kind() == value.KindStr && v.Display() == "Hello, World!" {
			found = true
		}
	}
	if !found {
		t.Fatal("hello_world module has no greeting cell")
	}
}
