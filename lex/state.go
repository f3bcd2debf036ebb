// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lex

import "github.com/karmakrafts/rouge/token"

// State is the scanner state for one pass over one source buffer: the
// input, the cursor, the state stack and the tokens emitted so far.  Each
// scan owns its State privately, so concurrent scans of independent inputs
// need no locking -- the rule tables they share are read-only.
type State struct {

	// the source buffer being scanned
	Src []rune

	// current rune position within Src -- only ever advances
	Pos int

	// stack of lexical states -- top is the current scanning context
	Stack Stack

	// tokens emitted so far, in input order
	Lexs []Lex
}

// NewState returns a scanner state over the given source text, in the
// root body state
func NewState(src string) *State {
	ls := &State{Src: []rune(src)}
	ls.Stack.Reset()
	return ls
}

// Rune returns the rune at the given offset from the cursor.  Negative
// offsets look behind the cursor.
func (ls *State) Rune(off int) (rune, bool) {
	idx := ls.Pos + off
	if idx < 0 || idx >= len(ls.Src) {
		return 0, false
	}
	return ls.Src[idx], true
}

// String returns the sz runes starting at the given offset from the
// cursor, and false if that span is out of bounds
func (ls *State) String(off, sz int) (string, bool) {
	st := ls.Pos + off
	ed := st + sz
	if st < 0 || ed > len(ls.Src) {
		return "", false
	}
	return string(ls.Src[st:ed]), true
}

// HasPrefix returns true if the remaining input starts with the given
// string
func (ls *State) HasPrefix(s string) bool {
	got, ok := ls.String(0, len(s))
	return ok && got == s
}

// AtEnd returns true if the cursor has consumed the whole buffer
func (ls *State) AtEnd() bool {
	return ls.Pos >= len(ls.Src)
}

// CurState returns the state at the top of the stack
func (ls *State) CurState() StateID {
	return ls.Stack.Top()
}

// Add emits one token over the given span
func (ls *State) Add(tok token.Tokens, st, ed int) {
	ls.Lexs = append(ls.Lexs, NewLex(tok, st, ed))
}

// NextToken fires the first matching rule of the current state at the
// cursor: emits its pieces, applies its transition, and advances the
// cursor by the matched length.  If no rule matches, one single-rune Error
// token is emitted and the cursor advances by one, leaving the stack
// alone.  Returns false at end of input.
func (ls *State) NextToken() bool {
	if ls.AtEnd() {
		return false
	}
	for i := range stateRules[ls.CurState()] {
		r := &stateRules[ls.CurState()][i]
		pieces := r.Match(ls)
		if pieces == nil {
			continue
		}
		for _, pc := range pieces {
			if pc.Len == 0 {
				continue
			}
			ls.Add(pc.Tok, ls.Pos, ls.Pos+pc.Len)
			ls.Pos += pc.Len
		}
		r.Next.Apply(&ls.Stack)
		return true
	}
	ls.Add(token.Error, ls.Pos, ls.Pos+1)
	ls.Pos++
	return true
}

// LexAll scans the whole buffer and returns the token stream.  Residual
// states left on the stack at end of input (unterminated strings,
// comments) are tolerated, not fatal.
func (ls *State) LexAll() []Lex {
	for ls.NextToken() {
	}
	return ls.Lexs
}

// LexString is a convenience that scans src from scratch
func LexString(src string) []Lex {
	return NewState(src).LexAll()
}
