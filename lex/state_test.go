// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karmakrafts/rouge/token"
)

// kinds extracts the token kind sequence
func kinds(lexs []Lex) []token.Tokens {
	ks := make([]token.Tokens, len(lexs))
	for i, lx := range lexs {
		ks[i] = lx.Tok
	}
	return ks
}

// lexAll scans src and asserts the coverage invariant: concatenating the
// lexemes in order reconstructs the input exactly, with no gaps or
// overlaps
func lexAll(t *testing.T, src string) []Lex {
	t.Helper()
	rs := []rune(src)
	lexs := LexString(src)
	got := ""
	pos := 0
	for _, lx := range lexs {
		assert.Equal(t, pos, lx.St, src)
		assert.Greater(t, lx.Ed, lx.St, src)
		got += string(lx.Src(rs))
		pos = lx.Ed
	}
	assert.Equal(t, src, got)
	return lexs
}

func TestCoverage(t *testing.T) {
	inputs := []string{
		"",
		"field <Foo/Bar> myField",
		`"a${b}c"`,
		"/* /* */ */",
		"// comment",
		"fun <Foo> .doThing(x)",
		"0x1Fi32 0b101 3.14e10f64 42",
		"@@@ §§ \x01",
		`"unclosed ${interp`,
		"/* unclosed /* nested",
		")))",
		"macro ${name} define x = 'a'",
	}
	for _, src := range inputs {
		lexAll(t, src)
	}
}

func TestSingleLineComment(t *testing.T) {
	// no trailing newline: still one complete comment token
	lexs := lexAll(t, "// comment")
	assert.Equal(t, []token.Tokens{token.CommentSingle}, kinds(lexs))
	assert.Equal(t, 0, lexs[0].St)
	assert.Equal(t, 10, lexs[0].Ed)

	lexs = lexAll(t, "x // c\ny")
	assert.Equal(t, []token.Tokens{
		token.NameVar, token.TextWhitespace, token.CommentSingle,
		token.TextWhitespace, token.NameVar,
	}, kinds(lexs))
}

func TestNestedBlockComment(t *testing.T) {
	lexs := lexAll(t, "/* /* */ */")
	assert.Equal(t, []token.Tokens{token.CommentMultiline}, kinds(lexs))
	assert.Equal(t, 11, lexs[0].Ed)

	// unclosed comment: opener pushes the comment state, which holds at
	// end of input -- tolerated, not fatal
	ls := NewState("/* a /* b */")
	ls.LexAll()
	assert.Equal(t, Comment, ls.CurState())
	for _, lx := range ls.Lexs {
		assert.Equal(t, token.CommentMultiline, lx.Tok)
	}
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Tokens
	}{
		{"42", token.LitNumInteger},
		{"42i32", token.LitNumInteger},
		{"0b101", token.LitNumBin},
		{"0x1Fi32", token.LitNumHex},
		{"0o17u8", token.LitNumOct},
		{"3.14e10f64", token.LitNumFloat},
		{"1_000u64", token.LitNumInteger},
	}
	for _, tc := range tests {
		lexs := lexAll(t, tc.src)
		// the entire literal-plus-suffix text is exactly one token
		assert.Equal(t, []token.Tokens{tc.kind}, kinds(lexs), tc.src)
	}
}

func TestStringInterpolation(t *testing.T) {
	lexs := lexAll(t, `"a${b}c"`)
	assert.Equal(t, []token.Tokens{
		token.LitStrDouble,   // "
		token.LitStrDouble,   // a
		token.LitStrInterpol, // ${
		token.NameVar,        // b
		token.LitStrInterpol, // }
		token.LitStrDouble,   // c
		token.LitStrDouble,   // "
	}, kinds(lexs))
}

func TestNestedStringInterpolation(t *testing.T) {
	// an interpolation body containing a nested string literal recurses
	// before the interpolation close is matched
	ls := NewState(`"x${"y${z}"}w"`)
	ls.LexAll()
	assert.Equal(t, []token.Tokens{
		token.LitStrDouble, token.LitStrDouble, token.LitStrInterpol,
		token.LitStrDouble, token.LitStrDouble, token.LitStrInterpol,
		token.NameVar, token.LitStrInterpol, token.LitStrDouble,
		token.LitStrInterpol, token.LitStrDouble, token.LitStrDouble,
	}, kinds(ls.Lexs))
	assert.Equal(t, 1, ls.Stack.Depth())
}

func TestStringEscapes(t *testing.T) {
	lexs := lexAll(t, `"a\"b"`)
	assert.Equal(t, []token.Tokens{
		token.LitStrDouble, token.LitStrDouble, token.LitStrDouble,
	}, kinds(lexs))
	// the escaped quote is part of the text run
	assert.Equal(t, 1, lexs[1].St)
	assert.Equal(t, 5, lexs[1].Ed)
}

func TestDeclarationRouting(t *testing.T) {
	lexs := lexAll(t, "field <Foo/Bar> myField")
	assert.Equal(t, []token.Tokens{
		token.Keyword, token.TextWhitespace, token.NameClass,
		token.TextWhitespace, token.NameVarInstance,
	}, kinds(lexs))

	lexs = lexAll(t, "fun <Foo> .doThing(")
	assert.Equal(t, []token.Tokens{
		token.Keyword, token.TextWhitespace, token.NameClass,
		token.TextWhitespace, token.Punctuation, token.NameFunction,
		token.Punctuation,
	}, kinds(lexs))

	// special dotted names keep their brackets in the name token
	lexs = lexAll(t, "inject <Foo> .<init>")
	assert.Equal(t, []token.Tokens{
		token.Keyword, token.TextWhitespace, token.NameClass,
		token.TextWhitespace, token.Punctuation, token.NameFunction,
	}, kinds(lexs))
	rs := []rune("inject <Foo> .<init>")
	assert.Equal(t, "<init>", string(lexs[5].Src(rs)))
}

func TestMacroAndDefine(t *testing.T) {
	lexs := lexAll(t, "macro shout")
	assert.Equal(t, []token.Tokens{
		token.Keyword, token.TextWhitespace, token.NameFunction,
	}, kinds(lexs))

	// interpolated macro name replaces the macro state with lerp
	ls := NewState("macro ${name}")
	ls.LexAll()
	assert.Equal(t, []token.Tokens{
		token.Keyword, token.TextWhitespace, token.LitStrInterpol,
		token.NameVar, token.LitStrInterpol,
	}, kinds(ls.Lexs))
	assert.Equal(t, 1, ls.Stack.Depth())

	lexs = lexAll(t, "define x = 42")
	assert.Equal(t, []token.Tokens{
		token.Keyword, token.TextWhitespace, token.NameVar,
		token.TextWhitespace, token.Punctuation, token.TextWhitespace,
		token.LitNumInteger,
	}, kinds(lexs))
}

func TestSelectionAndPreproClass(t *testing.T) {
	lexs := lexAll(t, "by hook")
	assert.Equal(t, []token.Tokens{
		token.KeywordPseudo, token.TextWhitespace, token.NameFunction,
	}, kinds(lexs))

	lexs = lexAll(t, "^class CombatRules")
	assert.Equal(t, []token.Tokens{
		token.KeywordPseudo, token.TextWhitespace, token.NameClass,
	}, kinds(lexs))
}

func TestPreproTypeInline(t *testing.T) {
	for _, w := range []string{"type", "opcode", "instruction", "signature"} {
		lexs := lexAll(t, w+" Foo")
		assert.Equal(t, []token.Tokens{
			token.Keyword, token.TextWhitespace, token.NameClass,
		}, kinds(lexs), w)
	}
	// without a following identifier the keyword classifies alone
	lexs := lexAll(t, "type)")
	assert.Equal(t, []token.Tokens{token.Keyword, token.Punctuation}, kinds(lexs))
}

func TestMemberScopeReferences(t *testing.T) {
	lexs := lexAll(t, "fun.ref")
	assert.Equal(t, []token.Tokens{
		token.Keyword, token.Punctuation, token.NameVar,
	}, kinds(lexs))

	lexs = lexAll(t, "field.count")
	assert.Equal(t, []token.Tokens{
		token.Keyword, token.Punctuation, token.NameVarInstance,
	}, kinds(lexs))
}

func TestSignatureNames(t *testing.T) {
	lexs := lexAll(t, "doThing(")
	assert.Equal(t, []token.Tokens{token.NameFunction, token.Punctuation}, kinds(lexs))

	lexs = lexAll(t, "amount: i32")
	assert.Equal(t, []token.Tokens{
		token.NameVarInstance, token.Punctuation, token.TextWhitespace,
		token.KeywordType,
	}, kinds(lexs))
}

func TestMnemonicPrecedence(t *testing.T) {
	// classification follows the fixed priority order, not context
	lexs := lexAll(t, "nop")
	assert.Equal(t, []token.Tokens{token.OperatorWord}, kinds(lexs))

	// reserved words never become signature names
	lexs = lexAll(t, "nop(")
	assert.Equal(t, []token.Tokens{token.OperatorWord, token.Punctuation}, kinds(lexs))

	lexs = lexAll(t, "iload amount")
	assert.Equal(t, []token.Tokens{
		token.OperatorWord, token.TextWhitespace, token.NameVar,
	}, kinds(lexs))

	// near-misses are plain variable names
	lexs = lexAll(t, "nopx byte")
	assert.Equal(t, []token.Tokens{
		token.NameVar, token.TextWhitespace, token.NameVar,
	}, kinds(lexs))
}

func TestMacroCallGating(t *testing.T) {
	// identifier+( after >. enters the macro_call state
	ls := NewState("a>.m(x)")
	for ls.Pos < 5 {
		ls.NextToken()
	}
	assert.Equal(t, MacroCall, ls.CurState())
	ls.LexAll()
	assert.Equal(t, 1, ls.Stack.Depth())
	assert.Equal(t, token.NameFunction, ls.Lexs[3].Tok)

	// identifier+( after }. too
	ls = NewState("}.m(x)")
	for ls.Pos < 4 {
		ls.NextToken()
	}
	assert.Equal(t, MacroCall, ls.CurState())

	// an ordinary member call re-enters body instead
	ls = NewState("b.m(x)")
	for ls.Pos < 4 {
		ls.NextToken()
	}
	assert.Equal(t, Body, ls.CurState())
	assert.Equal(t, 2, ls.Stack.Depth())
}

func TestFallback(t *testing.T) {
	ls := NewState("§`")
	ls.LexAll()
	assert.Equal(t, []token.Tokens{token.Error, token.Error}, kinds(ls.Lexs))
	// fallback leaves the stack alone
	assert.Equal(t, 1, ls.Stack.Depth())
}

func TestUnbalancedTolerance(t *testing.T) {
	// unterminated string: scan completes, string state remains
	ls := NewState(`"abc`)
	ls.LexAll()
	assert.Equal(t, Str, ls.CurState())
	assert.Equal(t, []token.Tokens{token.LitStrDouble, token.LitStrDouble}, kinds(ls.Lexs))

	// stray closers never strand the scanner below the root state
	ls = NewState(")))")
	ls.LexAll()
	assert.Equal(t, Body, ls.CurState())
	assert.Equal(t, 1, ls.Stack.Depth())
}

const sample = `// patch the damage calculation
^class CombatRules

define MAX_LEVEL = 100i32

field <demo/Stats> strength

fun <demo/CombatRules> .applyDamage(amount: i32): void by hook
patch (
    iload amount
    ldc 2i32
    imul
    ireturn
)
`

func TestSampleSource(t *testing.T) {
	ls := NewState(sample)
	lexs := lexAll(t, sample)
	ls.LexAll()
	assert.Equal(t, 1, ls.Stack.Depth())

	counts := map[token.Tokens]int{}
	for _, lx := range lexs {
		counts[lx.Tok]++
	}
	assert.Equal(t, 0, counts[token.Error])
	assert.Equal(t, 4, counts[token.OperatorWord])
	assert.Equal(t, 3, counts[token.NameClass])
	assert.Equal(t, 2, counts[token.KeywordPseudo])
	assert.Equal(t, 1, counts[token.CommentSingle])
}
