// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lex

import "github.com/karmakrafts/rouge/token"

// Piece is one classified segment of a rule match.  A rule that emits a
// single token returns one piece; a grouped rule returns one piece per
// capture, in input order, covering the match with no gaps.
type Piece struct {
	Tok token.Tokens
	Len int
}

// TransOps are the stack transitions a rule can apply after its pieces are
// emitted
type TransOps int32

const (
	// TransNone leaves the stack alone
	TransNone TransOps = iota

	// TransPush pushes the transition states in order (one state for a
	// plain push, several for a push-sequence)
	TransPush

	// TransPop pops the top state
	TransPop

	// TransReplace pops the top state, then pushes the transition states
	TransReplace

	TransOpsN
)

var transOpNames = [TransOpsN]string{"none", "push", "pop", "replace"}

func (to TransOps) String() string {
	if to < 0 || to >= TransOpsN {
		return "TransOps(?)"
	}
	return transOpNames[to]
}

// Trans is the stack transition applied after a rule fires
type Trans struct {
	Op     TransOps
	States []StateID
}

// Transition helpers used by the rule tables
func push(states ...StateID) Trans { return Trans{Op: TransPush, States: states} }
func pop() Trans                   { return Trans{Op: TransPop} }
func replace(st StateID) Trans     { return Trans{Op: TransReplace, States: []StateID{st}} }

// Apply performs the transition on the given stack
func (tr Trans) Apply(ss *Stack) {
	switch tr.Op {
	case TransPush:
		ss.Push(tr.States...)
	case TransPop:
		ss.Pop()
	case TransReplace:
		ss.Pop()
		ss.Push(tr.States...)
	}
}

// MatchFunc is a recognizer over the remaining input at the scan cursor.
// It returns the classified pieces covering the match, or nil for no
// match.  Matchers may look behind the cursor and ahead of the match
// (bounded look-around), but pieces must cover exactly the consumed text.
type MatchFunc func(ls *State) []Piece

// Rule is one entry of a state's ordered rule list: a recognizer, the
// emission it produces, and the stack transition that follows
type Rule struct {

	// rule name, for tracing and table tests
	Name string

	// the recognizer
	Match MatchFunc

	// stack transition applied after the pieces are emitted
	Next Trans
}

// one wraps a fixed-length match as a single-piece emission
func one(tok token.Tokens, sz int) []Piece {
	return []Piece{{Tok: tok, Len: sz}}
}
