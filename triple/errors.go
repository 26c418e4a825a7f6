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

import "errors"

// Sentinel errors matching the taxonomy of spec.md §7. Concrete failures
// wrap one of these with fmt.Errorf("...: %w", ...) so callers can match
// with errors.Is regardless of the offending input.
var (
	// ErrMalformedResource is returned when a resource literal is not
	// wrapped in <...> or "...".
	ErrMalformedResource = errors.New("malformed resource")

	// ErrMalformedTriples is returned when an N-Triples source has a
	// token count that is not a multiple of four, or a missing '.'
	// terminator.
	ErrMalformedTriples = errors.New("malformed triples")

	// ErrMalformedQuery is returned for a query string missing WHERE,
	// braces, a bad pattern arity, an empty BGP, a bad variable token,
	// a trailing ';', or a projected variable that never appears in any
	// pattern.
	ErrMalformedQuery = errors.New("malformed query")

	// ErrUnknownResource is returned when decoding an integer id that
	// was never issued by the dictionary.
	ErrUnknownResource = errors.New("unknown resource")

	// ErrUnboundProjection is returned when the executor reaches a leaf
	// solution that lacks a projected variable. It indicates a planner
	// or parser bug and is always fatal.
	ErrUnboundProjection = errors.New("unbound projection")
)
