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

package bql

import (
	"fmt"

	"github.com/sixway/bgpstore/bql/lexer"
	"github.com/sixway/bgpstore/triple"
)

// parser consumes the lexer's token channel with one token of lookahead.
type parser struct {
	tokens <-chan lexer.Token
	peeked *lexer.Token
}

func (p *parser) peek() lexer.Token {
	if p.peeked == nil {
		t := <-p.tokens
		p.peeked = &t
	}
	return *p.peeked
}

func (p *parser) next() lexer.Token {
	t := p.peek()
	p.peeked = nil
	return t
}

// Parse parses a query string into a Query. encode is used to turn each
// bound term's literal text into a triple.Resource; it is typically
// dictionary.Encode.
func Parse(input string, encode func(string) (triple.Resource, error)) (*Query, error) {
	p := &parser{tokens: lexer.New(input, 0)}

	var projection []triple.Variable
	for p.peek().Type == lexer.ItemBinding {
		projection = append(projection, variableOf(p.next()))
	}
	if len(projection) == 0 {
		return nil, fmt.Errorf("no projected variables before WHERE: %w", triple.ErrMalformedQuery)
	}

	if tok := p.next(); tok.Type != lexer.ItemWhere {
		return nil, fmt.Errorf("expected WHERE, got %s: %w", describe(tok), triple.ErrMalformedQuery)
	}
	if tok := p.next(); tok.Type != lexer.ItemLBrace {
		return nil, fmt.Errorf("expected '{', got %s: %w", describe(tok), triple.ErrMalformedQuery)
	}

	var patterns []triple.TriplePattern
	for p.peek().Type == lexer.ItemBinding || p.peek().Type == lexer.ItemTerm {
		pat, err := p.parsePattern(encode)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, pat)
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("empty pattern block: %w", triple.ErrMalformedQuery)
	}

	if tok := p.next(); tok.Type != lexer.ItemRBrace {
		return nil, fmt.Errorf("expected '}', got %s: %w", describe(tok), triple.ErrMalformedQuery)
	}
	if tok := p.next(); tok.Type != lexer.ItemEOF {
		return nil, fmt.Errorf("unexpected trailing input %s: %w", describe(tok), triple.ErrMalformedQuery)
	}

	known := make(map[triple.Variable]bool)
	for _, pat := range patterns {
		for _, v := range pat.Variables() {
			known[v] = true
		}
	}
	for _, v := range projection {
		if !known[v] {
			return nil, fmt.Errorf("projected variable %q never appears in the pattern block: %w", v, triple.ErrMalformedQuery)
		}
	}

	return &Query{Projection: projection, Patterns: patterns}, nil
}

func (p *parser) parsePattern(encode func(string) (triple.Resource, error)) (triple.TriplePattern, error) {
	s, err := p.parseTerm(encode)
	if err != nil {
		return triple.TriplePattern{}, err
	}
	pp, err := p.parseTerm(encode)
	if err != nil {
		return triple.TriplePattern{}, err
	}
	o, err := p.parseTerm(encode)
	if err != nil {
		return triple.TriplePattern{}, err
	}
	if tok := p.next(); tok.Type != lexer.ItemDot {
		return triple.TriplePattern{}, fmt.Errorf("expected '.', got %s: %w", describe(tok), triple.ErrMalformedQuery)
	}
	return triple.TriplePattern{S: s, P: pp, O: o}, nil
}

func (p *parser) parseTerm(encode func(string) (triple.Resource, error)) (triple.Term, error) {
	tok := p.next()
	switch tok.Type {
	case lexer.ItemBinding:
		return triple.NewVariable(variableOf(tok)), nil
	case lexer.ItemTerm:
		r, err := encode(tok.Text)
		if err != nil {
			return triple.Term{}, fmt.Errorf("%v: %w", err, triple.ErrMalformedQuery)
		}
		return triple.NewResource(r), nil
	default:
		return triple.Term{}, fmt.Errorf("expected a term, got %s: %w", describe(tok), triple.ErrMalformedQuery)
	}
}

func variableOf(tok lexer.Token) triple.Variable {
	return triple.Variable(tok.Text[1:]) // drop the leading '?'
}

func describe(tok lexer.Token) string {
	if tok.Type == lexer.ItemError {
		return tok.ErrorMessage
	}
	return tok.Type.String()
}
