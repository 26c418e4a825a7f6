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

// VariableMap is a partial function from Variable to Resource representing
// a (possibly incomplete) solution. Insertion order is irrelevant.
type VariableMap map[Variable]Resource

// Clone returns a shallow copy, used by the executor so it can extend a
// solution at one join depth without mutating the caller's map.
func (m VariableMap) Clone() VariableMap {
	c := make(VariableMap, len(m)+1)
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Substitute replaces every variable in p that is already bound in m with
// its bound resource, leaving unbound variables untouched. It is used by
// the executor to specialize the next pattern in the plan before probing
// the index.
func (m VariableMap) Substitute(p TriplePattern) TriplePattern {
	resolve := func(t Term) Term {
		if !t.IsVariable() {
			return t
		}
		if r, ok := m[t.Variable()]; ok {
			return NewResource(r)
		}
		return t
	}
	return TriplePattern{S: resolve(p.S), P: resolve(p.P), O: resolve(p.O)}
}
