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

package engine_test

import (
	"testing"

	"github.com/sixway/bgpstore/engine"
)

func TestLoadAndSelect(t *testing.T) {
	e := engine.New()
	if _, err := e.LoadTriples(`<a> <p> <b> .`); err != nil {
		t.Fatalf("LoadTriples: %v", err)
	}

	var rows [][]string
	proj, stats, err := e.Select(`?x WHERE { ?x <p> <b> . }`, func(row []string) {
		rows = append(rows, append([]string(nil), row...))
	})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(proj) != 1 || proj[0] != "x" {
		t.Fatalf("Projection = %v, want [x]", proj)
	}
	if stats.Count != 1 || len(rows) != 1 || rows[0][0] != "<a>" {
		t.Fatalf("got rows=%v stats=%v, want one row [<a>]", rows, stats)
	}
}

func TestCountSuppressesRows(t *testing.T) {
	e := engine.New()
	if _, err := e.LoadTriples("<a> <p> <b> .\n<c> <p> <b> .\n"); err != nil {
		t.Fatalf("LoadTriples: %v", err)
	}

	called := false
	_, stats, err := e.Count(`?x WHERE { ?x <p> <b> . }`)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if called {
		t.Fatal("Count invoked a row callback, want none")
	}
	if stats.Count != 2 {
		t.Fatalf("stats.Count = %d, want 2", stats.Count)
	}
}

func TestSelectEmptyResult(t *testing.T) {
	e := engine.New()
	if _, err := e.LoadTriples(`<a> <p> <b> .`); err != nil {
		t.Fatalf("LoadTriples: %v", err)
	}
	_, stats, err := e.Select(`?x WHERE { ?x <q> <b> . }`, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if stats.Count != 0 {
		t.Fatalf("stats.Count = %d, want 0", stats.Count)
	}
}

func TestLoadMalformedTriplesIsReported(t *testing.T) {
	e := engine.New()
	if _, err := e.LoadTriples(`<a> <p> <b>`); err == nil {
		t.Fatal("LoadTriples succeeded on a malformed triple, want an error")
	}
}
