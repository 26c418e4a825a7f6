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

// Package planner picks a join order for a set of triple patterns. It
// is greedy: at every step it scores each still-unplaced pattern by how
// bound its positions would be given what the plan has committed to so
// far, and takes the cheapest one.
package planner

import (
	"github.com/sixway/bgpstore/triple"
)

// score ranks a PatternShape by expected selectivity; lower is cheaper.
// Predicate boundness dominates subject or object alone, since a bound
// predicate is the strongest selectivity signal available in an RDF
// index.
var score = map[triple.PatternShape]int{
	triple.SPO: 1,
	triple.SPZ: 2,
	triple.XPO: 3,
	triple.SYZ: 4,
	triple.XPZ: 5,
	triple.SYO: 6,
	triple.XYO: 7,
	triple.XYZ: 8,
}

// Plan orders patterns for the executor. It never fails: any set of
// patterns, including ones sharing no variables at all, produces an
// order (accepting a cross product where one is unavoidable).
func Plan(patterns []triple.TriplePattern) []triple.TriplePattern {
	unprocessed := append([]triple.TriplePattern(nil), patterns...)
	processed := make([]triple.TriplePattern, 0, len(patterns))
	bound := make(map[triple.Variable]bool)

	for len(unprocessed) > 0 {
		idxs := candidates(unprocessed, bound)

		best := idxs[0]
		bestScore := score[effectiveShape(unprocessed[best], bound)]
		for _, i := range idxs[1:] {
			if s := score[effectiveShape(unprocessed[i], bound)]; s < bestScore {
				bestScore, best = s, i
			}
		}

		chosen := unprocessed[best]
		processed = append(processed, chosen)
		for _, v := range chosen.Variables() {
			bound[v] = true
		}
		unprocessed = append(unprocessed[:best], unprocessed[best+1:]...)
	}
	return processed
}

// candidates returns the indices, in unprocessed's own order, of patterns
// eligible for the next pick: those with no variables at all, those
// picked when nothing is bound yet, or those sharing a variable with
// bound. If none qualify, every index is a candidate and a cross product
// is accepted rather than stalling the planner.
func candidates(unprocessed []triple.TriplePattern, bound map[triple.Variable]bool) []int {
	var out []int
	for i, p := range unprocessed {
		vs := p.Variables()
		if len(vs) == 0 || len(bound) == 0 || shares(vs, bound) {
			out = append(out, i)
		}
	}
	if len(out) == 0 {
		out = make([]int, len(unprocessed))
		for i := range unprocessed {
			out[i] = i
		}
	}
	return out
}

func shares(vs []triple.Variable, bound map[triple.Variable]bool) bool {
	for _, v := range vs {
		if bound[v] {
			return true
		}
	}
	return false
}

// effectiveShape is triple.Shape with one change: a variable already in
// bound counts as a resource, since the executor will have substituted it
// by the time this pattern actually runs.
func effectiveShape(p triple.TriplePattern, bound map[triple.Variable]bool) triple.PatternShape {
	eb := func(t triple.Term) bool {
		return !t.IsVariable() || bound[t.Variable()]
	}
	sBound, pBound, oBound := eb(p.S), eb(p.P), eb(p.O)
	switch {
	case sBound && pBound && oBound:
		return triple.SPO
	case sBound && pBound && !oBound:
		return triple.SPZ
	case !sBound && pBound && oBound:
		return triple.XPO
	case sBound && !pBound && !oBound:
		return triple.SYZ
	case !sBound && pBound && !oBound:
		return triple.XPZ
	case sBound && !pBound && oBound:
		return triple.SYO
	case !sBound && !pBound && oBound:
		return triple.XYO
	default:
		return triple.XYZ
	}
}
