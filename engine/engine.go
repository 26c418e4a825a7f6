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

// Package engine is the facade tying the dictionary, index, planner
// and executor together behind the two operations the outer shell needs:
// LoadTriples and the select/count pair of Select and Count.
package engine

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sixway/bgpstore/bql"
	"github.com/sixway/bgpstore/executor"
	"github.com/sixway/bgpstore/index"
	"github.com/sixway/bgpstore/ntriples"
	"github.com/sixway/bgpstore/planner"
	"github.com/sixway/bgpstore/tracer"
	"github.com/sixway/bgpstore/triple"
	"github.com/sixway/bgpstore/triple/dictionary"
)

// Engine owns one dictionary and one index and is the only thing that
// touches either. It is not safe for concurrent use (spec.md §5).
type Engine struct {
	dict *dictionary.Dictionary
	idx  *index.Index

	// Trace, if non-nil, receives planning and execution trace lines for
	// every LoadTriples/Select/Count call, each tagged with a per-call
	// execution id so concurrent log consumers (e.g. tailing a shared
	// file across a session of queries) can tell separate queries apart.
	Trace io.Writer
}

// New returns an empty engine.
func New() *Engine {
	return &Engine{dict: dictionary.New(), idx: index.New()}
}

// Stats summarizes one operation for the outer shell's reporting.
type Stats struct {
	Count   int
	Elapsed time.Duration
}

// LoadTriples parses text as the bulk triple format and adds every triple
// it contains to the index.
func (e *Engine) LoadTriples(text string) (Stats, error) {
	execID := tracer.NewExecutionID()
	start := time.Now()
	tracer.V(2).Trace(e.Trace, execID, func() *tracer.Arguments {
		return &tracer.Arguments{Msgs: []string{"load: starting"}}
	})

	n, err := ntriples.Load(context.Background(), strings.NewReader(text), e.dict.Encode, e.idx.Add)
	stats := Stats{Count: n, Elapsed: time.Since(start)}

	tracer.V(1).Trace(e.Trace, execID, func() *tracer.Arguments {
		return &tracer.Arguments{Msgs: []string{fmt.Sprintf("load: added %d triples in %s", n, stats.Elapsed)}}
	})
	return stats, err
}

// Select parses, plans and runs query, invoking emit once per result row
// with the projected variables' values rendered as decoded resource
// strings, in projection order. emit may be nil, in which case the
// results are still counted but nothing is emitted; Count is built on
// exactly that.
func (e *Engine) Select(query string, emit func(row []string)) ([]triple.Variable, Stats, error) {
	execID := tracer.NewExecutionID()
	q, err := bql.Parse(query, e.dict.Encode)
	if err != nil {
		return nil, Stats{}, err
	}

	plan := planner.Plan(q.Patterns)
	tracer.V(2).Trace(e.Trace, execID, func() *tracer.Arguments {
		msgs := make([]string, len(plan))
		for i, p := range plan {
			msgs[i] = fmt.Sprintf("plan[%d] = %s", i, p)
		}
		return &tracer.Arguments{Msgs: msgs}
	})

	start := time.Now()
	count := 0
	for m, err := range executor.Execute(e.idx, plan, q.Projection) {
		if err != nil {
			return nil, Stats{}, err
		}
		if emit != nil {
			row := make([]string, len(q.Projection))
			for i, v := range q.Projection {
				name, err := e.dict.Decode(m[v])
				if err != nil {
					return nil, Stats{}, err
				}
				row[i] = name
			}
			emit(row)
		}
		count++
	}
	stats := Stats{Count: count, Elapsed: time.Since(start)}

	tracer.V(1).Trace(e.Trace, execID, func() *tracer.Arguments {
		return &tracer.Arguments{Msgs: []string{fmt.Sprintf("query: %d results in %s", count, stats.Elapsed)}}
	})
	return q.Projection, stats, nil
}

// Count is Select with per-row output suppressed.
func (e *Engine) Count(query string) ([]triple.Variable, Stats, error) {
	return e.Select(query, nil)
}
