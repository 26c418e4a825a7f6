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

// Package index implements the six-way intrusive triple index: a
// single append-only arena of rows threaded by three interleaved chains
// (S, O and P), plus the derived head maps needed to enter each chain and
// to choose the cheaper of two chains for an SYO probe.
//
// Rows are addressed by arena position, an int, never by pointer: the
// arena only ever grows, so a row's address is stable for the lifetime of
// the Index and "next" is just another int field.
package index

import "github.com/sixway/bgpstore/triple"

// noNext marks the end of a chain.
const noNext = -1

// row is one arena slot: a triple plus its three forward links.
type row struct {
	s, p, o               triple.Resource
	nextSP, nextOP, nextP int
}

type spKey = [2]triple.Resource
type opKey = [2]triple.Resource
type spoKey = [3]triple.Resource

// Index is the six-way intrusive triple index. The zero value is not
// usable; construct one with New. An Index is not safe for concurrent
// use, and mutating it while an Evaluate iterator from it is in progress
// is undefined behavior (spec.md §5).
type Index struct {
	rows []row

	idxS map[triple.Resource]int // head of subject s's full chain, along nextSP
	idxO map[triple.Resource]int // head of object o's full chain, along nextOP
	idxP map[triple.Resource]int // head of predicate p's chain, along nextP

	idxSP map[spKey]int // head of the (s,p) group within the S-chain
	idxOP map[opKey]int // head of the (o,p) group within the O-chain

	idxSPO map[spoKey]int // direct row for a fully bound triple

	lenS map[triple.Resource]int // count of rows with subject s
	lenO map[triple.Resource]int // count of rows with object o
}

// New returns an empty index.
func New() *Index {
	return &Index{
		idxS:   make(map[triple.Resource]int),
		idxO:   make(map[triple.Resource]int),
		idxP:   make(map[triple.Resource]int),
		idxSP:  make(map[spKey]int),
		idxOP:  make(map[opKey]int),
		idxSPO: make(map[spoKey]int),
		lenS:   make(map[triple.Resource]int),
		lenO:   make(map[triple.Resource]int),
	}
}

// NumTriples returns the number of distinct triples held by the index.
func (idx *Index) NumTriples() int {
	return len(idx.rows)
}

// Add inserts (s, p, o). It is idempotent: adding the same triple again is
// a no-op. This is the only mutator; there is no Remove (spec.md §4.2
// names none).
func (idx *Index) Add(s, p, o triple.Resource) {
	key := spoKey{s, p, o}
	if _, ok := idx.idxSPO[key]; ok {
		return
	}

	newIdx := len(idx.rows)
	idx.rows = append(idx.rows, row{s: s, p: p, o: o, nextSP: noNext, nextOP: noNext, nextP: noNext})

	// SP-chain / S-chain.
	spk := spKey{s, p}
	if head, ok := idx.idxSP[spk]; ok {
		// The (s,p) group already exists: splice the new row in right
		// after its head so the group stays contiguous.
		idx.rows[newIdx].nextSP = idx.rows[head].nextSP
		idx.rows[head].nextSP = newIdx
	} else {
		if shead, ok := idx.idxS[s]; ok {
			idx.rows[newIdx].nextSP = shead
		}
		idx.idxS[s] = newIdx
		idx.idxSP[spk] = newIdx
	}
	idx.lenS[s]++

	// OP-chain / O-chain, symmetric to the above. This must write
	// idxO[o], not idxS[o]; an earlier revision of this index confused
	// the two and silently corrupted the O-chain.
	opk := opKey{o, p}
	if head, ok := idx.idxOP[opk]; ok {
		idx.rows[newIdx].nextOP = idx.rows[head].nextOP
		idx.rows[head].nextOP = newIdx
	} else {
		if ohead, ok := idx.idxO[o]; ok {
			idx.rows[newIdx].nextOP = ohead
		}
		idx.idxO[o] = newIdx
		idx.idxOP[opk] = newIdx
	}
	idx.lenO[o]++

	// P-chain: no grouping, just push at the head.
	if phead, ok := idx.idxP[p]; ok {
		idx.rows[newIdx].nextP = phead
	}
	idx.idxP[p] = newIdx

	idx.idxSPO[key] = newIdx
}
