// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	var ss Stack
	ss.Reset()
	assert.Equal(t, 1, ss.Depth())
	assert.Equal(t, Body, ss.Top())

	ss.Push(Str)
	assert.Equal(t, Str, ss.Top())
	ss.Push(StrLerp, Comment)
	assert.Equal(t, 4, ss.Depth())
	assert.Equal(t, Comment, ss.Top())

	assert.Equal(t, Comment, ss.Pop())
	assert.Equal(t, StrLerp, ss.Pop())
	assert.Equal(t, Str, ss.Pop())

	// the bottom state is never removed
	assert.Equal(t, Body, ss.Pop())
	assert.Equal(t, Body, ss.Pop())
	assert.Equal(t, 1, ss.Depth())
}

func TestTransApply(t *testing.T) {
	var ss Stack
	ss.Reset()

	push(Str).Apply(&ss)
	assert.Equal(t, Str, ss.Top())

	// push-sequence: both states pushed, last one on top
	push(Lerp, Comment).Apply(&ss)
	assert.Equal(t, 4, ss.Depth())
	assert.Equal(t, Comment, ss.Top())

	pop().Apply(&ss)
	assert.Equal(t, Lerp, ss.Top())

	replace(Macro).Apply(&ss)
	assert.Equal(t, Macro, ss.Top())
	assert.Equal(t, 3, ss.Depth())

	Trans{}.Apply(&ss)
	assert.Equal(t, Macro, ss.Top())
}

func TestRuleTables(t *testing.T) {
	body := RulesOf(Body)
	assert.NotEmpty(t, body)
	assert.Equal(t, "whitespace", body[0].Name)

	// the interpolation states are the body grammar behind a close rule
	for _, si := range []StateID{StrLerp, Lerp, MacroCall} {
		rules := RulesOf(si)
		assert.Equal(t, len(body)+1, len(rules), si.String())
		for i, r := range body {
			assert.Equal(t, r.Name, rules[i+1].Name, si.String())
		}
	}

	// the literal group is spliced into body
	names := make(map[string]bool)
	for _, r := range body {
		names[r.Name] = true
	}
	for _, nm := range []string{"string-open", "char", "number"} {
		assert.True(t, names[nm], nm)
	}
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "body", Body.String())
	assert.Equal(t, "string_lerp", StrLerp.String())
	assert.Equal(t, "macro_call", MacroCall.String())
	assert.Equal(t, "comment", Comment.String())
}
