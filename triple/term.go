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

import "fmt"

// Variable is the name of a placeholder in a triple pattern, without its
// leading '?'.
type Variable string

// Term is a tagged value that is either a Variable or a Resource. The zero
// Term is not valid; always build one via NewVariable or NewResource.
//
// Term is comparable, so TriplePattern (a struct of three Terms) can be
// used as a map key directly.
type Term struct {
	isVar bool
	v     Variable
	r     Resource
}

// NewVariable builds a Term that holds a variable.
func NewVariable(v Variable) Term {
	return Term{isVar: true, v: v}
}

// NewResource builds a Term that holds a bound resource.
func NewResource(r Resource) Term {
	return Term{isVar: false, r: r}
}

// IsVariable reports whether the term is a variable (as opposed to a bound
// resource).
func (t Term) IsVariable() bool {
	return t.isVar
}

// Variable returns the boxed variable name. It panics if the term does not
// box a variable; callers must check IsVariable first.
func (t Term) Variable() Variable {
	if !t.isVar {
		panic("triple: Variable called on a resource term")
	}
	return t.v
}

// Resource returns the boxed resource. It panics if the term does not box
// a resource; callers must check IsVariable first.
func (t Term) Resource() Resource {
	if t.isVar {
		panic("triple: Resource called on a variable term")
	}
	return t.r
}

// String renders the term for diagnostics, "?name" for variables and the
// numeric resource id prefixed with '#' otherwise.
func (t Term) String() string {
	if t.isVar {
		return "?" + string(t.v)
	}
	return fmt.Sprintf("#%d", t.r)
}
