// Copyright 2016 Google Inc. All rights reserved.
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

// Package ntriples loads the bulk triple format consumed by load_triples
// (spec.md §6): one whitespace-separated token stream over the whole
// input, where every four consecutive tokens are S P O '.'. A triple's
// four tokens may straddle a line break; the token count is checked
// against the whole document, not line by line. Once the document is
// split into quadruples, grouping a quadruple into a string triple is
// pure and touches no shared state, so Load fans that out across a
// bounded pool of workers; the resulting (s, p, o) string triples are
// funneled through one channel to a single goroutine that is the only
// caller of encode and add, since neither the dictionary nor the index
// tolerates concurrent writers.
package ntriples

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/sixway/bgpstore/triple"
)

// workers bounds how many quadruples are grouped concurrently.
const workers = 4

// stringTriple is a not-yet-encoded (s, p, o), still in their raw "<...>"
// or "\"...\"" textual form.
type stringTriple struct {
	quad    int
	s, p, o string
}

// Load reads r as the bulk triple format and, for every triple it
// contains, calls encode on each of S, P and O and then add with the
// resulting resources. It returns the number of triples passed to add,
// together with the first error, if any.
//
// Per spec.md §7, load is not atomic: if a quadruple is malformed,
// triples already passed to add stay added. Quadruples reach add in the
// order the workers deliver them, not in input order, so which triples
// were added before an error is not determined by their position in the
// input.
func Load(ctx context.Context, r io.Reader, encode func(string) (triple.Resource, error), add func(s, p, o triple.Resource)) (int, error) {
	toks, err := scanTokens(r)
	if err != nil {
		return 0, err
	}
	if len(toks)%4 != 0 {
		return 0, fmt.Errorf("%d tokens is not a multiple of four: %w", len(toks), triple.ErrMalformedTriples)
	}
	numQuads := len(toks) / 4
	if numQuads == 0 {
		return 0, nil
	}

	parsed := make(chan stringTriple)
	grp, gCtx := errgroup.WithContext(ctx)

	quadsPerWorker := (numQuads + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * quadsPerWorker
		hi := min(lo+quadsPerWorker, numQuads)
		if lo >= hi {
			continue
		}
		grp.Go(func() error {
			for q := lo; q < hi; q++ {
				i := q * 4
				if toks[i+3] != "." {
					return fmt.Errorf("quadruple %d: missing '.' terminator: %w", q, triple.ErrMalformedTriples)
				}
				st := stringTriple{quad: q, s: toks[i], p: toks[i+1], o: toks[i+2]}
				select {
				case parsed <- st:
				case <-gCtx.Done():
					return gCtx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		grp.Wait()
		close(parsed)
	}()

	count := 0
	var consumeErr error
	for st := range parsed {
		if consumeErr != nil {
			continue // drain so the workers don't block on a full channel
		}
		s, err := encode(st.s)
		if err != nil {
			consumeErr = fmt.Errorf("quadruple %d: %w", st.quad, err)
			continue
		}
		p, err := encode(st.p)
		if err != nil {
			consumeErr = fmt.Errorf("quadruple %d: %w", st.quad, err)
			continue
		}
		o, err := encode(st.o)
		if err != nil {
			consumeErr = fmt.Errorf("quadruple %d: %w", st.quad, err)
			continue
		}
		add(s, p, o)
		count++
	}

	if err := grp.Wait(); err != nil {
		if consumeErr != nil {
			return count, consumeErr
		}
		return count, err
	}
	return count, consumeErr
}

// scanTokens splits r into whitespace-separated tokens over the entire
// stream, the same way the text is treated as one continuous sequence
// regardless of line breaks.
func scanTokens(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	var toks []string
	for scanner.Scan() {
		toks = append(toks, scanner.Text())
	}
	return toks, scanner.Err()
}
