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

// Package bql parses the query language consumed by evaluate_query
// (spec.md §6): "V1 V2 ... Vn WHERE { T1 . T2 . ... Tk . }". It has no
// coupling to storage; resource text is turned into a triple.Resource
// through an injected encode callback so the parser never imports the
// dictionary directly.
package bql

import "github.com/sixway/bgpstore/triple"

// Query is a fully parsed, not yet planned query: the variables to
// project and the unordered basic graph pattern to match against.
type Query struct {
	Projection []triple.Variable
	Patterns   []triple.TriplePattern
}
