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

// Package dictionary implements the bijective map between opaque resource
// strings ("<iri>" or "\"literal\"") and the dense integer identifiers the
// rest of the system operates on. It is the only place
// that ever looks at the bytes of a resource; everything downstream deals
// exclusively in triple.Resource.
package dictionary

import (
	"fmt"
	"strings"

	"github.com/sixway/bgpstore/triple"
)

// Dictionary is a bidirectional, monotonically growing map between resource
// strings and triple.Resource identifiers. A Dictionary is not safe for
// concurrent use; see spec.md §5.
type Dictionary struct {
	forward map[string]triple.Resource
	reverse []string
}

// New returns an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		forward: make(map[string]triple.Resource),
	}
}

// isWrapped reports whether s has the opaque "<...>" or "\"...\"" shape
// required of a resource literal. The dictionary never looks past the
// wrapping characters; IRI syntax and literal typing are out of scope.
func isWrapped(s string) bool {
	if len(s) < 2 {
		return false
	}
	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		return true
	}
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return true
	}
	return false
}

// Encode returns the existing id for name if known, otherwise it assigns
// the next integer in sequence, records the reverse mapping and returns it.
// It never returns triple.InvalidResource.
func (d *Dictionary) Encode(name string) (triple.Resource, error) {
	if !isWrapped(name) {
		return triple.InvalidResource, fmt.Errorf("dictionary.Encode(%q): %w", name, triple.ErrMalformedResource)
	}
	if id, ok := d.forward[name]; ok {
		return id, nil
	}
	id := triple.Resource(len(d.reverse))
	d.forward[name] = id
	d.reverse = append(d.reverse, name)
	return id, nil
}

// Decode is the inverse lookup of Encode.
func (d *Dictionary) Decode(id triple.Resource) (string, error) {
	if id < 0 || int(id) >= len(d.reverse) {
		return "", fmt.Errorf("dictionary.Decode(%d): %w", id, triple.ErrUnknownResource)
	}
	return d.reverse[id], nil
}

// Len returns the number of distinct resources encoded so far.
func (d *Dictionary) Len() int {
	return len(d.reverse)
}
