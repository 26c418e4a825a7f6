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

// Package executor runs a planned sequence of triple patterns as a
// recursive nested index-loop join. It never materializes an
// intermediate relation: every solution is produced by substituting the
// bindings accumulated so far into the next pattern, probing the index,
// and recursing one pattern deeper for each binding the probe yields.
package executor

import (
	"fmt"
	"iter"

	"github.com/sixway/bgpstore/triple"
)

// Evaluator is the index's contribution to a join: matching a single
// pattern and yielding its bindings lazily. *index.Index satisfies this
// directly.
type Evaluator interface {
	Evaluate(p triple.TriplePattern) iter.Seq[triple.VariableMap]
}

// Execute runs plan (already ordered by the planner) against idx and
// yields one (solution, nil) pair per complete join result, in
// depth-first order. If a projected variable is missing from a leaf
// binding, Execute yields a single (nil, error) pair wrapping
// triple.ErrUnboundProjection and stops: this condition is the same at
// every leaf for a given plan and projection, so it can only indicate a
// planner or parser bug, never a legitimate empty result.
//
// The sequence stops as soon as its consumer stops ranging over it;
// nothing is precomputed.
func Execute(idx Evaluator, plan []triple.TriplePattern, projection []triple.Variable) iter.Seq2[triple.VariableMap, error] {
	return func(yield func(triple.VariableMap, error) bool) {
		var recurse func(depth int, bound triple.VariableMap) bool
		recurse = func(depth int, bound triple.VariableMap) bool {
			if depth == len(plan) {
				for _, v := range projection {
					if _, ok := bound[v]; !ok {
						yield(nil, fmt.Errorf("projected variable %q not bound: %w", v, triple.ErrUnboundProjection))
						return false
					}
				}
				return yield(bound, nil)
			}

			pattern := bound.Substitute(plan[depth])
			for binding := range idx.Evaluate(pattern) {
				extended := bound.Clone()
				for k, v := range binding {
					extended[k] = v
				}
				if !recurse(depth+1, extended) {
					return false
				}
			}
			return true
		}
		recurse(0, triple.VariableMap{})
	}
}
