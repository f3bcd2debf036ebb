// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lex

// StateID identifies one lexical state, i.e. one named rule table
type StateID int32

// The lexical states.  Body is the root state and the permanent bottom of
// every state stack.
const (
	// Body is the default grammar: keywords, literals, names, operators,
	// declaration-header dispatch
	Body StateID = iota

	// Str scans double-quoted string text
	Str

	// StrLerp is an interpolation embedded in a string: full body grammar
	// until the closing brace
	StrLerp

	// Lerp is an interpolation outside a string: full body grammar until
	// the closing brace
	Lerp

	// Selection expects exactly one identifier, a function reference
	Selection

	// PreproClass expects exactly one identifier, a class reference
	PreproClass

	// Macro expects a macro declaration name
	Macro

	// MacroCall is the argument list of a macro invocation
	MacroCall

	// Define expects a bound name
	Define

	// Field expects an optional class type annotation then the field name
	Field

	// Function expects an optional class type annotation then the dotted
	// function name
	Function

	// Comment tracks nested multi-line comment markers
	Comment

	StatesN
)

var stateNames = [StatesN]string{
	"body", "string", "string_lerp", "lerp", "selection", "prepro_class",
	"macro", "macro_call", "define", "field", "function", "comment",
}

func (si StateID) String() string {
	if si < 0 || si >= StatesN {
		return "StateID(?)"
	}
	return stateNames[si]
}

// Stack is the stack of active lexical states -- the top is the current
// scanning context.  The stack is never empty: Body sits at the bottom and
// Pop refuses to remove the last element, so a stray closer in malformed
// input cannot strand the scanner without a rule table.
type Stack []StateID

// Top returns the state at the top of the stack
func (ss *Stack) Top() StateID {
	sz := len(*ss)
	if sz == 0 {
		return Body
	}
	return (*ss)[sz-1]
}

// Push appends the given states to the stack in order, so the last one
// becomes the top.  Multiple states implement the push-sequence transition.
func (ss *Stack) Push(states ...StateID) {
	*ss = append(*ss, states...)
}

// Pop takes the top state off the stack and returns it.  The bottom
// element is never removed.
func (ss *Stack) Pop() StateID {
	sz := len(*ss)
	if sz <= 1 {
		return ss.Top()
	}
	st := (*ss)[sz-1]
	*ss = (*ss)[:sz-1]
	return st
}

// Depth returns the current stack depth
func (ss *Stack) Depth() int {
	return len(*ss)
}

// Reset restores the stack to the root state
func (ss *Stack) Reset() {
	*ss = (*ss)[:0]
	*ss = append(*ss, Body)
}
