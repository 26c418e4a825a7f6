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

package planner

import (
	"testing"

	"github.com/sixway/bgpstore/triple"
)

func r(id int) triple.Term      { return triple.NewResource(triple.Resource(id)) }
func v(name string) triple.Term { return triple.NewVariable(triple.Variable(name)) }

func TestPlanPrefersMoreBoundShape(t *testing.T) {
	// {?x ?p ?o} is XYZ (score 8); {<a> <p> <b>} is SPO (score 1). The
	// fully bound pattern must be planned first.
	unbound := triple.TriplePattern{S: v("x"), P: v("p"), O: v("o")}
	bound := triple.TriplePattern{S: r(1), P: r(2), O: r(3)}

	got := Plan([]triple.TriplePattern{unbound, bound})
	if got[0] != bound {
		t.Fatalf("Plan()[0] = %v, want the fully bound pattern first", got[0])
	}
}

func TestPlanJoinsOnSharedVariable(t *testing.T) {
	// ?x <p> ?y (XPZ, score 5) then ?y <q> ?z (XPZ, effectively SPZ once
	// y is bound, score 2) should plan before an unrelated XYZ pattern.
	p1 := triple.TriplePattern{S: v("x"), P: r(1), O: v("y")}
	p2 := triple.TriplePattern{S: v("y"), P: r(2), O: v("z")}
	unrelated := triple.TriplePattern{S: v("a"), P: v("b"), O: v("c")}

	got := Plan([]triple.TriplePattern{p1, p2, unrelated})
	if got[2] != unrelated {
		t.Fatalf("Plan() = %v, want the unrelated XYZ pattern last", got)
	}
	if got[0] != p1 {
		t.Fatalf("Plan()[0] = %v, want p1 first (introduces y before p2 needs it)", got[0])
	}
}

func TestPlanAcceptsCrossProduct(t *testing.T) {
	// No shared variables anywhere: candidates must fall back to the
	// full unprocessed set rather than getting stuck.
	p1 := triple.TriplePattern{S: v("x"), P: r(1), O: r(2)}
	p2 := triple.TriplePattern{S: v("y"), P: r(3), O: r(4)}

	got := Plan([]triple.TriplePattern{p1, p2})
	if len(got) != 2 {
		t.Fatalf("Plan() returned %d patterns, want 2", len(got))
	}
}

func TestPlanIsAPermutation(t *testing.T) {
	in := []triple.TriplePattern{
		{S: v("x"), P: r(1), O: v("y")},
		{S: v("y"), P: r(2), O: v("z")},
		{S: r(3), P: r(4), O: r(5)},
	}
	got := Plan(in)
	if len(got) != len(in) {
		t.Fatalf("Plan() returned %d patterns, want %d", len(got), len(in))
	}
	for _, p := range in {
		found := false
		for _, g := range got {
			if g == p {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Plan() dropped pattern %v", p)
		}
	}
}
