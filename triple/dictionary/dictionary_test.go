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

package dictionary

import (
	"errors"
	"testing"

	"github.com/sixway/bgpstore/triple"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := New()
	id, err := d.Encode("<http://example.org/a>")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	name, err := d.Decode(id)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if name != "<http://example.org/a>" {
		t.Errorf("Decode(Encode(x)) = %q, want %q", name, "<http://example.org/a>")
	}
}

func TestEncodeIsIdempotent(t *testing.T) {
	d := New()
	a, err := d.Encode(`"hello"`)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	b, err := d.Encode(`"hello"`)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if a != b {
		t.Errorf("Encode(x) called twice returned different ids: %v != %v", a, b)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}

func TestEncodeRejectsUnwrapped(t *testing.T) {
	d := New()
	if _, err := d.Encode("not_wrapped"); !errors.Is(err, triple.ErrMalformedResource) {
		t.Errorf("Encode(%q) error = %v, want ErrMalformedResource", "not_wrapped", err)
	}
}

func TestDecodeUnknown(t *testing.T) {
	d := New()
	if _, err := d.Decode(42); !errors.Is(err, triple.ErrUnknownResource) {
		t.Errorf("Decode(42) error = %v, want ErrUnknownResource", err)
	}
	if _, err := d.Decode(triple.InvalidResource); !errors.Is(err, triple.ErrUnknownResource) {
		t.Errorf("Decode(InvalidResource) error = %v, want ErrUnknownResource", err)
	}
}

func TestEncodeNeverReturnsInvalid(t *testing.T) {
	d := New()
	id, err := d.Encode("<a>")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if id == triple.InvalidResource {
		t.Error("Encode returned InvalidResource for a well-formed resource")
	}
}
