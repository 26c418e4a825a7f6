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

// TriplePattern is an ordered (subject, predicate, object) triple of terms.
// It is comparable and may be used as a map key. A parsed query holds its
// patterns as a slice in the order written; that order carries no meaning
// until the planner imposes one.
type TriplePattern struct {
	S, P, O Term
}

// String renders the pattern for diagnostics.
func (p TriplePattern) String() string {
	return fmt.Sprintf("%s %s %s", p.S, p.P, p.O)
}

// Variables returns the distinct variables mentioned by the pattern, in
// subject, predicate, object order (duplicates collapsed).
func (p TriplePattern) Variables() []Variable {
	var vs []Variable
	seen := make(map[Variable]bool, 3)
	for _, t := range [3]Term{p.S, p.P, p.O} {
		if !t.IsVariable() {
			continue
		}
		if v := t.Variable(); !seen[v] {
			seen[v] = true
			vs = append(vs, v)
		}
	}
	return vs
}

// PatternShape tags a triple pattern by which of its three positions are
// variables (X/Y/Z) versus bound resources (S/P/O).
type PatternShape int

const (
	// XYZ is fully unbound: a full table scan.
	XYZ PatternShape = iota
	// SYZ has a bound subject only.
	SYZ
	// XPZ has a bound predicate only.
	XPZ
	// XYO has a bound object only.
	XYO
	// SPZ has a bound subject and predicate.
	SPZ
	// SYO has a bound subject and object.
	SYO
	// XPO has a bound predicate and object.
	XPO
	// SPO is fully bound: a direct lookup.
	SPO
)

// String names the shape using X/Y/Z for variable positions and S/P/O
// for bound positions.
func (s PatternShape) String() string {
	switch s {
	case XYZ:
		return "XYZ"
	case SYZ:
		return "SYZ"
	case XPZ:
		return "XPZ"
	case XYO:
		return "XYO"
	case SPZ:
		return "SPZ"
	case SYO:
		return "SYO"
	case XPO:
		return "XPO"
	case SPO:
		return "SPO"
	default:
		return "?"
	}
}

// Shape classifies a pattern by which positions are variables versus bound
// resources. It is pure, total and never fails.
func Shape(p TriplePattern) PatternShape {
	sBound, pBound, oBound := !p.S.IsVariable(), !p.P.IsVariable(), !p.O.IsVariable()
	switch {
	case sBound && pBound && oBound:
		return SPO
	case sBound && pBound && !oBound:
		return SPZ
	case !sBound && pBound && oBound:
		return XPO
	case sBound && !pBound && !oBound:
		return SYZ
	case !sBound && pBound && !oBound:
		return XPZ
	case sBound && !pBound && oBound:
		return SYO
	case !sBound && !pBound && oBound:
		return XYO
	default:
		return XYZ
	}
}
