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

package index

import (
	"iter"

	"github.com/sixway/bgpstore/triple"
)

// Evaluate matches a single triple pattern against the index and returns a
// lazy, pull-style iterator over the bindings it produces for the
// pattern's variables. The traversal strategy is chosen by the pattern's
// PatternShape; matching and binding extraction, including the
// same-variable equality filter a repeated variable imposes (x≡y, y≡z,
// or x≡y≡z), is uniform across shapes via bindRow.
//
// Evaluate never materializes its result: ranging over the returned
// iter.Seq drives the traversal one row at a time, and stopping early
// (an early return, or break, out of the range) stops the traversal.
func (idx *Index) Evaluate(p triple.TriplePattern) iter.Seq[triple.VariableMap] {
	switch triple.Shape(p) {
	case triple.SPO:
		return idx.evalSPO(p)
	case triple.SPZ:
		return idx.evalSPZ(p)
	case triple.XPO:
		return idx.evalXPO(p)
	case triple.SYZ:
		return idx.evalSYZ(p)
	case triple.XYO:
		return idx.evalXYO(p)
	case triple.XPZ:
		return idx.evalXPZ(p)
	case triple.SYO:
		return idx.evalSYO(p)
	default: // triple.XYZ
		return matchRows(idx.allRows(), p)
	}
}

func (idx *Index) evalSPO(p triple.TriplePattern) iter.Seq[triple.VariableMap] {
	s, pp, o := p.S.Resource(), p.P.Resource(), p.O.Resource()
	return func(yield func(triple.VariableMap) bool) {
		if _, ok := idx.idxSPO[spoKey{s, pp, o}]; ok {
			yield(triple.VariableMap{})
		}
	}
}

func (idx *Index) evalSPZ(p triple.TriplePattern) iter.Seq[triple.VariableMap] {
	s, pp := p.S.Resource(), p.P.Resource()
	head, ok := idx.idxSP[spKey{s, pp}]
	if !ok {
		return empty
	}
	return matchRows(idx.rowsFrom(head, rowNextSP, stopOnPredicateMismatch(pp)), p)
}

func (idx *Index) evalXPO(p triple.TriplePattern) iter.Seq[triple.VariableMap] {
	o, pp := p.O.Resource(), p.P.Resource()
	head, ok := idx.idxOP[opKey{o, pp}]
	if !ok {
		return empty
	}
	return matchRows(idx.rowsFrom(head, rowNextOP, stopOnPredicateMismatch(pp)), p)
}

func (idx *Index) evalSYZ(p triple.TriplePattern) iter.Seq[triple.VariableMap] {
	s := p.S.Resource()
	head, ok := idx.idxS[s]
	if !ok {
		return empty
	}
	return matchRows(idx.rowsFrom(head, rowNextSP, never), p)
}

func (idx *Index) evalXYO(p triple.TriplePattern) iter.Seq[triple.VariableMap] {
	o := p.O.Resource()
	head, ok := idx.idxO[o]
	if !ok {
		return empty
	}
	return matchRows(idx.rowsFrom(head, rowNextOP, never), p)
}

func (idx *Index) evalXPZ(p triple.TriplePattern) iter.Seq[triple.VariableMap] {
	pp := p.P.Resource()
	head, ok := idx.idxP[pp]
	if !ok {
		return empty
	}
	return matchRows(idx.rowsFrom(head, rowNextP, never), p)
}

// evalSYO walks whichever of the S-chain or O-chain is shorter, filtering
// rows against the other bound position via bindRow. lenS/lenO default to
// zero for a resource never seen, which is the correct chain length.
func (idx *Index) evalSYO(p triple.TriplePattern) iter.Seq[triple.VariableMap] {
	s, o := p.S.Resource(), p.O.Resource()
	if idx.lenS[s] <= idx.lenO[o] {
		head, ok := idx.idxS[s]
		if !ok {
			return empty
		}
		return matchRows(idx.rowsFrom(head, rowNextSP, never), p)
	}
	head, ok := idx.idxO[o]
	if !ok {
		return empty
	}
	return matchRows(idx.rowsFrom(head, rowNextOP, never), p)
}

// empty is an iter.Seq that yields nothing.
func empty(func(triple.VariableMap) bool) {}

func rowNextSP(r row) int { return r.nextSP }
func rowNextOP(r row) int { return r.nextOP }
func rowNextP(r row) int  { return r.nextP }

func never(row) bool { return false }

// stopOnPredicateMismatch ends a chain walk once it leaves the (*, p)
// group; by the chain-contiguity invariant, rows with predicate p are
// contiguous in both the S-chain and the O-chain, so the first mismatch
// marks the end of the group.
func stopOnPredicateMismatch(p triple.Resource) func(row) bool {
	return func(r row) bool { return r.p != p }
}

// rowsFrom walks a chain starting at head, following next, until stop
// reports true for the current row or the chain runs out.
func (idx *Index) rowsFrom(head int, next func(row) int, stop func(row) bool) iter.Seq[row] {
	return func(yield func(row) bool) {
		for cur := head; cur != noNext; {
			r := idx.rows[cur]
			if stop(r) {
				return
			}
			if !yield(r) {
				return
			}
			cur = next(r)
		}
	}
}

// allRows walks the whole arena in insertion order, for the XYZ full scan.
func (idx *Index) allRows() iter.Seq[row] {
	return func(yield func(row) bool) {
		for _, r := range idx.rows {
			if !yield(r) {
				return
			}
		}
	}
}

// matchRows applies bindRow to each row in rows and yields the resulting
// bindings, skipping rows that fail to match.
func matchRows(rows iter.Seq[row], p triple.TriplePattern) iter.Seq[triple.VariableMap] {
	return func(yield func(triple.VariableMap) bool) {
		for r := range rows {
			if m, ok := bindRow(p, r); ok {
				if !yield(m) {
					return
				}
			}
		}
	}
}

// bindRow tries to bind p's three terms against r, position by position.
// A bound term must equal the row's value at that position; a variable
// term is recorded on first sight and must equal its existing binding on
// every later sighting, which is what makes a repeated variable such as
// ?x in (?x, p, ?x) enforce s == o without any shape-specific code.
func bindRow(p triple.TriplePattern, r row) (triple.VariableMap, bool) {
	m := make(triple.VariableMap, 3)
	if !bind(m, p.S, r.s) {
		return nil, false
	}
	if !bind(m, p.P, r.p) {
		return nil, false
	}
	if !bind(m, p.O, r.o) {
		return nil, false
	}
	return m, true
}

func bind(m triple.VariableMap, t triple.Term, val triple.Resource) bool {
	if !t.IsVariable() {
		return t.Resource() == val
	}
	v := t.Variable()
	if existing, ok := m[v]; ok {
		return existing == val
	}
	m[v] = val
	return true
}
