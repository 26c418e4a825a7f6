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

package lexer

import "testing"

func collectTypes(t *testing.T, input string) []TokenType {
	t.Helper()
	var got []TokenType
	for tok := range New(input, 0) {
		got = append(got, tok.Type)
		if tok.Type == ItemError || tok.Type == ItemEOF {
			break
		}
	}
	return got
}

func TestLexSimpleQuery(t *testing.T) {
	input := `?x WHERE { ?x <p> <b> . }`
	want := []TokenType{
		ItemBinding, ItemWhere, ItemLBrace,
		ItemBinding, ItemTerm, ItemTerm, ItemDot,
		ItemRBrace, ItemEOF,
	}
	got := collectTypes(t, input)
	if len(got) != len(want) {
		t.Fatalf("collectTypes(%q) = %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexQuotedLiteralWithEscapedQuote(t *testing.T) {
	input := `"he said \"hi\""`
	got := collectTypes(t, input)
	if len(got) != 2 || got[0] != ItemTerm || got[1] != ItemEOF {
		t.Fatalf("collectTypes(%q) = %v, want [TERM EOF]", input, got)
	}
}

func TestLexUnterminatedAngleTerm(t *testing.T) {
	got := collectTypes(t, `<unterminated`)
	if len(got) == 0 || got[len(got)-1] != ItemError {
		t.Fatalf("collectTypes = %v, want to end in ItemError", got)
	}
}

func TestLexUnknownKeyword(t *testing.T) {
	got := collectTypes(t, `select`)
	if len(got) == 0 || got[len(got)-1] != ItemError {
		t.Fatalf("collectTypes = %v, want to end in ItemError", got)
	}
}

func TestLexWhereIsCaseInsensitive(t *testing.T) {
	got := collectTypes(t, `WhErE`)
	if len(got) != 2 || got[0] != ItemWhere {
		t.Fatalf("collectTypes = %v, want [WHERE EOF]", got)
	}
}

func TestLexBareBindingIsAnError(t *testing.T) {
	got := collectTypes(t, `?`)
	if len(got) == 0 || got[len(got)-1] != ItemError {
		t.Fatalf("collectTypes(%q) = %v, want to end in ItemError", "?", got)
	}
}
