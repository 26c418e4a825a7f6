// Copyright 2015 Google Inc. All rights reserved.
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

package triple

import "testing"

func TestSubstitute(t *testing.T) {
	m := VariableMap{"x": 10}
	p := TriplePattern{NewVariable("x"), NewVariable("y"), NewResource(5)}

	got := m.Substitute(p)
	want := TriplePattern{NewResource(10), NewVariable("y"), NewResource(5)}
	if got != want {
		t.Errorf("Substitute(%v) = %v, want %v", p, got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := VariableMap{"x": 1}
	c := m.Clone()
	c["y"] = 2
	if _, ok := m["y"]; ok {
		t.Error("mutating a clone mutated the original VariableMap")
	}
	if c["x"] != 1 {
		t.Error("clone lost an existing binding")
	}
}
