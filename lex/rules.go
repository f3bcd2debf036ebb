// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lex

import (
	"strings"

	"github.com/karmakrafts/rouge/patterns"
	"github.com/karmakrafts/rouge/token"
)

// stateRules is the flattened rule table per state, assembled once at
// package init and read-only thereafter.  Composite lists (the literal
// group inside body, the body grammar inside the interpolation and
// macro-call states) are spliced in here, not delegated to at runtime.
var stateRules [StatesN][]Rule

// RulesOf returns the rule list for the given state, for table tests and
// tracing
func RulesOf(si StateID) []Rule {
	return stateRules[si]
}

// punctChars are the single-rune punctuation and operator characters of
// the body grammar.  Parens have their own rules: ( re-enters body and )
// pops it.
const punctChars = "[]{};:,.=+-*/%&|^!?@#~<>"

func init() {
	literal := []Rule{
		{Name: "string-open", Match: matchStringOpen, Next: push(Str)},
		{Name: "char", Match: matchCharLit},
		{Name: "number", Match: matchNumber},
	}

	head := []Rule{
		{Name: "whitespace", Match: matchWhitespace},
		{Name: "comment-single", Match: matchLineComment},
		{Name: "comment-multiline", Match: matchClosedBlockComment},
		{Name: "comment-open", Match: matchPrefix("/*", token.CommentMultiline), Next: push(Comment)},
		declRule("fun", Function),
		declRule("inject", Function),
		declRule("macro", Macro),
		declRule("field", Field),
		declRule("define", Define),
		{Name: "by", Match: matchKeyword("by", token.KeywordPseudo), Next: push(Selection)},
		{Name: "prepro-class", Match: matchKeyword("^class", token.KeywordPseudo), Next: push(PreproClass)},
		{Name: "prepro-type", Match: matchPreproType},
		memberRule("fun", token.NameVar),
		memberRule("field", token.NameVarInstance),
		{Name: "macro-call", Match: matchMacroCallStart, Next: push(MacroCall)},
		sigRule("function-sig", '(', token.NameFunction),
		sigRule("field-sig", ':', token.NameVarInstance),
	}

	tail := []Rule{
		{Name: "lerp-open", Match: matchPrefix("${", token.LitStrInterpol), Next: push(Lerp)},
		{Name: "class-type", Match: matchClassType},
		{Name: "ident", Match: matchIdent},
		{Name: "lparen", Match: matchRune('(', token.Punctuation), Next: push(Body)},
		{Name: "rparen", Match: matchRune(')', token.Punctuation), Next: pop()},
		{Name: "punct", Match: matchPunct},
	}

	body := make([]Rule, 0, len(head)+len(literal)+len(tail))
	body = append(body, head...)
	body = append(body, literal...)
	body = append(body, tail...)

	stateRules[Body] = body

	stateRules[Str] = []Rule{
		{Name: "string-close", Match: matchRune('"', token.LitStrDouble), Next: pop()},
		{Name: "lerp-open", Match: matchPrefix("${", token.LitStrInterpol), Next: push(StrLerp)},
		{Name: "string-text", Match: matchStringText},
	}

	lerpClose := Rule{Name: "lerp-close", Match: matchRune('}', token.LitStrInterpol), Next: pop()}
	stateRules[StrLerp] = append([]Rule{lerpClose}, body...)
	stateRules[Lerp] = append([]Rule{lerpClose}, body...)

	stateRules[MacroCall] = append([]Rule{
		{Name: "call-close", Match: matchRune(')', token.Punctuation), Next: pop()},
	}, body...)

	stateRules[Selection] = []Rule{
		{Name: "whitespace", Match: matchWhitespace},
		{Name: "fun-ref", Match: matchIdentAs(token.NameFunction), Next: pop()},
	}

	stateRules[PreproClass] = []Rule{
		{Name: "whitespace", Match: matchWhitespace},
		{Name: "class-ref", Match: matchIdentAs(token.NameClass), Next: pop()},
	}

	stateRules[Macro] = []Rule{
		{Name: "whitespace", Match: matchWhitespace},
		{Name: "lerp-open", Match: matchPrefix("${", token.LitStrInterpol), Next: replace(Lerp)},
		{Name: "macro-name", Match: matchIdentAs(token.NameFunction), Next: pop()},
	}

	stateRules[Define] = []Rule{
		{Name: "whitespace", Match: matchWhitespace},
		{Name: "lerp-open", Match: matchPrefix("${", token.LitStrInterpol), Next: replace(Lerp)},
		{Name: "define-name", Match: matchIdentAs(token.NameVar), Next: pop()},
		{Name: "punct", Match: matchPunct},
	}

	stateRules[Field] = []Rule{
		{Name: "whitespace", Match: matchWhitespace},
		{Name: "class-type", Match: matchClassType},
		{Name: "field-name", Match: matchIdentAs(token.NameVarInstance), Next: pop()},
		{Name: "punct", Match: matchPunct},
	}

	stateRules[Function] = []Rule{
		{Name: "whitespace", Match: matchWhitespace},
		{Name: "class-type", Match: matchClassType},
		{Name: "dotted-name", Match: matchDottedName, Next: pop()},
	}

	stateRules[Comment] = []Rule{
		{Name: "comment-nest", Match: matchPrefix("/*", token.CommentMultiline), Next: push(Comment)},
		{Name: "comment-close", Match: matchPrefix("*/", token.CommentMultiline), Next: pop()},
		{Name: "comment-text", Match: matchCommentText},
	}
}

// matchWord returns true if the remaining input starts with the given word
// at an identifier boundary
func (ls *State) matchWord(w string) bool {
	if !ls.HasPrefix(w) {
		return false
	}
	r, ok := ls.Rune(len(w))
	return !ok || !patterns.IsIdentPart(r)
}

// declRule dispatches a declaration keyword followed by whitespace into
// its header state.  The whitespace itself is left for the pushed state.
func declRule(w string, st StateID) Rule {
	return Rule{
		Name: w + "-decl",
		Match: func(ls *State) []Piece {
			if !ls.matchWord(w) {
				return nil
			}
			r, ok := ls.Rune(len(w))
			if !ok || !patterns.IsWhiteSpace(r) {
				return nil
			}
			return one(token.Keyword, len(w))
		},
		Next: push(st),
	}
}

// memberRule recognizes the member-scope form keyword.NAME (fun.NAME,
// field.NAME) as one grouped emission, without a state push
func memberRule(w string, tok token.Tokens) Rule {
	pre := w + "."
	return Rule{
		Name: w + "-member",
		Match: func(ls *State) []Piece {
			if !ls.HasPrefix(pre) {
				return nil
			}
			idn := patterns.ScanIdent(ls.Src, ls.Pos+len(pre))
			if idn == 0 {
				return nil
			}
			return []Piece{
				{Tok: token.Keyword, Len: len(w)},
				{Tok: token.Punctuation, Len: 1},
				{Tok: tok, Len: idn},
			}
		},
	}
}

// sigRule recognizes an identifier immediately followed by the given rune
// (a field-signature name before ':', a function-signature name before
// '(') without consuming the trailing rune.  Reserved words fall through
// to the ordinary classification.
func sigRule(name string, next rune, tok token.Tokens) Rule {
	return Rule{
		Name: name,
		Match: func(ls *State) []Piece {
			idn := patterns.ScanIdent(ls.Src, ls.Pos)
			if idn == 0 {
				return nil
			}
			r, ok := ls.Rune(idn)
			if !ok || r != next {
				return nil
			}
			word, _ := ls.String(0, idn)
			if patterns.IsReservedWord(word) {
				return nil
			}
			return one(tok, idn)
		},
	}
}

// matchKeyword matches the given word at a boundary and emits it with the
// given kind
func matchKeyword(w string, tok token.Tokens) MatchFunc {
	return func(ls *State) []Piece {
		if !ls.matchWord(w) {
			return nil
		}
		return one(tok, len(w))
	}
}

// matchPrefix matches the given literal string and emits it with the
// given kind
func matchPrefix(s string, tok token.Tokens) MatchFunc {
	return func(ls *State) []Piece {
		if !ls.HasPrefix(s) {
			return nil
		}
		return one(tok, len(s))
	}
}

// matchRune matches one specific rune
func matchRune(r rune, tok token.Tokens) MatchFunc {
	return func(ls *State) []Piece {
		c, ok := ls.Rune(0)
		if !ok || c != r {
			return nil
		}
		return one(tok, 1)
	}
}

func matchWhitespace(ls *State) []Piece {
	sz := patterns.ScanWhitespace(ls.Src, ls.Pos)
	if sz == 0 {
		return nil
	}
	return one(token.TextWhitespace, sz)
}

// matchLineComment matches // to end of line or end of input, whichever
// comes first -- an unterminated trailing comment is still one complete
// token
func matchLineComment(ls *State) []Piece {
	if !ls.HasPrefix("//") {
		return nil
	}
	p := ls.Pos + 2
	for p < len(ls.Src) && ls.Src[p] != '\n' {
		p++
	}
	return one(token.CommentSingle, p-ls.Pos)
}

// matchClosedBlockComment matches a /* */ comment whose balanced closer is
// present, including nested marker pairs, as one token.  An unterminated
// opener is left for the comment-open rule, which pushes the comment
// state instead.
func matchClosedBlockComment(ls *State) []Piece {
	if !ls.HasPrefix("/*") {
		return nil
	}
	n := len(ls.Src)
	depth := 1
	p := ls.Pos + 2
	for p < n {
		if ls.Src[p] == '/' && p+1 < n && ls.Src[p+1] == '*' {
			depth++
			p += 2
			continue
		}
		if ls.Src[p] == '*' && p+1 < n && ls.Src[p+1] == '/' {
			depth--
			p += 2
			if depth == 0 {
				return one(token.CommentMultiline, p-ls.Pos)
			}
			continue
		}
		p++
	}
	return nil
}

// matchPreproType recognizes a preprocessor-type keyword introducing a
// type name (type NAME) as one grouped emission, without a state push
func matchPreproType(ls *State) []Piece {
	for _, w := range []string{"type", "opcode", "instruction", "signature"} {
		if !ls.matchWord(w) {
			continue
		}
		wsn := patterns.ScanWhitespace(ls.Src, ls.Pos+len(w))
		if wsn == 0 {
			continue
		}
		idn := patterns.ScanIdent(ls.Src, ls.Pos+len(w)+wsn)
		if idn == 0 {
			continue
		}
		return []Piece{
			{Tok: token.Keyword, Len: len(w)},
			{Tok: token.TextWhitespace, Len: wsn},
			{Tok: token.NameClass, Len: idn},
		}
	}
	return nil
}

// matchMacroCallStart recognizes an identifier immediately followed by (,
// gated on the two runes before the identifier being >. or }. -- the only
// disambiguator between a macro invocation on a typed/result expression
// and an ordinary parenthesized expression
func matchMacroCallStart(ls *State) []Piece {
	idn := patterns.ScanIdent(ls.Src, ls.Pos)
	if idn == 0 {
		return nil
	}
	r, ok := ls.Rune(idn)
	if !ok || r != '(' {
		return nil
	}
	dot, ok1 := ls.Rune(-1)
	brk, ok2 := ls.Rune(-2)
	if !ok1 || !ok2 || dot != '.' || (brk != '>' && brk != '}') {
		return nil
	}
	return []Piece{
		{Tok: token.NameFunction, Len: idn},
		{Tok: token.Punctuation, Len: 1},
	}
}

func matchStringOpen(ls *State) []Piece {
	c, ok := ls.Rune(0)
	if !ok || c != '"' {
		return nil
	}
	return one(token.LitStrDouble, 1)
}

// matchStringText matches a run of plain string content, stopping before
// the closing quote and interpolation openers, skipping over escapes
func matchStringText(ls *State) []Piece {
	n := len(ls.Src)
	p := ls.Pos
	for p < n {
		switch {
		case ls.Src[p] == '"':
			goto done
		case ls.Src[p] == '$' && p+1 < n && ls.Src[p+1] == '{':
			goto done
		case ls.Src[p] == '\\' && p+1 < n:
			p += 2
		default:
			p++
		}
	}
done:
	if p == ls.Pos {
		return nil
	}
	return one(token.LitStrDouble, p-ls.Pos)
}

func matchCharLit(ls *State) []Piece {
	if c, ok := ls.Rune(0); !ok || c != '\'' {
		return nil
	}
	c, ok := ls.Rune(1)
	if !ok {
		return nil
	}
	if c == '\\' {
		if q, ok := ls.Rune(3); ok && q == '\'' {
			return one(token.LitStrChar, 4)
		}
		return nil
	}
	if q, ok := ls.Rune(2); ok && q == '\'' && c != '\'' {
		return one(token.LitStrChar, 3)
	}
	return nil
}

func matchNumber(ls *State) []Piece {
	sz, kind := patterns.ScanNumber(ls.Src, ls.Pos)
	if sz == 0 {
		return nil
	}
	return one(kind, sz)
}

// matchClassType matches a bracketed, optionally slash-qualified type
// reference <A/B/C> as one class token
func matchClassType(ls *State) []Piece {
	sz := patterns.ScanClassType(ls.Src, ls.Pos)
	if sz == 0 {
		return nil
	}
	return one(token.NameClass, sz)
}

// matchIdent matches a generic identifier and classifies it against the
// pattern library priority order
func matchIdent(ls *State) []Piece {
	idn := patterns.ScanIdent(ls.Src, ls.Pos)
	if idn == 0 {
		return nil
	}
	word, _ := ls.String(0, idn)
	return one(patterns.ClassifyName(word), idn)
}

// matchIdentAs matches an identifier with a fixed classification, for the
// single-name declaration states
func matchIdentAs(tok token.Tokens) MatchFunc {
	return func(ls *State) []Piece {
		idn := patterns.ScanIdent(ls.Src, ls.Pos)
		if idn == 0 {
			return nil
		}
		return one(tok, idn)
	}
}

// matchDottedName matches the dotted function name forms .name and
// .<name> (special names) as one grouped emission
func matchDottedName(ls *State) []Piece {
	if c, ok := ls.Rune(0); !ok || c != '.' {
		return nil
	}
	if ctn := patterns.ScanClassType(ls.Src, ls.Pos+1); ctn > 0 {
		return []Piece{
			{Tok: token.Punctuation, Len: 1},
			{Tok: token.NameFunction, Len: ctn},
		}
	}
	idn := patterns.ScanIdent(ls.Src, ls.Pos+1)
	if idn == 0 {
		return nil
	}
	return []Piece{
		{Tok: token.Punctuation, Len: 1},
		{Tok: token.NameFunction, Len: idn},
	}
}

func matchPunct(ls *State) []Piece {
	c, ok := ls.Rune(0)
	if !ok || !strings.ContainsRune(punctChars, c) {
		return nil
	}
	return one(token.Punctuation, 1)
}

// matchCommentText matches a run of comment content up to the next nesting
// marker or end of input
func matchCommentText(ls *State) []Piece {
	n := len(ls.Src)
	p := ls.Pos
	for p < n {
		if p+1 < n && ls.Src[p] == '/' && ls.Src[p+1] == '*' {
			break
		}
		if p+1 < n && ls.Src[p] == '*' && ls.Src[p+1] == '/' {
			break
		}
		p++
	}
	if p == ls.Pos {
		return nil
	}
	return one(token.CommentMultiline, p-ls.Pos)
}
