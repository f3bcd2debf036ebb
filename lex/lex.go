// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lex implements the stateful JBPL scanner: an explicit stack of
// lexical states, each with an ordered rule list tried top to bottom, with
// first match winning.  Rule order is load-bearing.  Scanning is total:
// input that no rule matches degrades to single-rune Error tokens, so the
// concatenated lexemes always reconstruct the input exactly.
package lex

import (
	"fmt"

	"github.com/karmakrafts/rouge/token"
)

// Lex represents a single lexical element, with a token kind and start and
// end rune positions within the source buffer
type Lex struct {

	// token kind for this element
	Tok token.Tokens

	// start rune index within the source buffer
	St int

	// end rune index within the source buffer (exclusive)
	Ed int
}

// NewLex returns a new lexical element for the given kind and span
func NewLex(tok token.Tokens, st, ed int) Lex {
	return Lex{Tok: tok, St: st, Ed: ed}
}

// Src returns the rune source (lexeme) for this element -- no validity
// checking
func (lx Lex) Src(src []rune) []rune {
	return src[lx.St:lx.Ed]
}

// ContainsPos returns true if this element contains the given rune position
func (lx Lex) ContainsPos(pos int) bool {
	return pos >= lx.St && pos < lx.Ed
}

// String satisfies the fmt.Stringer interface
func (lx Lex) String() string {
	return fmt.Sprintf("[%v:%v:%v]", lx.St, lx.Ed, lx.Tok.String())
}
