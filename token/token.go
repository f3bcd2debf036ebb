// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the closed set of lexical token kinds produced by
// the JBPL lexer.  It follows the alecthomas/chroma / pygments category
// scheme: kinds are grouped into categories and sub-categories, and a
// consumer may match at any of the three levels.
package token

// Tokens is the set of lexical token kinds for JBPL source.
//
// There are categories and sub-categories, and methods to get those from a
// given element.  The first category is 'None'.
type Tokens int32

// CatMap is the map into the category level for each token
var CatMap map[Tokens]Tokens

// SubCatMap is the map into the sub-category level for each token
var SubCatMap map[Tokens]Tokens

func init() {
	InitCatMap()
	InitSubCatMap()
}

// Cat returns the category that a given token lives in, using CatMap
func (tk Tokens) Cat() Tokens {
	return CatMap[tk]
}

// SubCat returns the sub-category that a given token lives in, using SubCatMap
func (tk Tokens) SubCat() Tokens {
	return SubCatMap[tk]
}

// IsKeyword returns true if this is in the Keyword category
func (tk Tokens) IsKeyword() bool {
	return tk.Cat() == Keyword
}

// Match returns true if the two tokens match, in a category / subcategory
// sensitive manner: if receiver token is a category, then it matches other
// token if it is the same category, and likewise for subcategory
func (tk Tokens) Match(otk Tokens) bool {
	if tk == otk {
		return true
	}
	if tk.Cat() == tk && otk.Cat() == tk {
		return true
	}
	if tk.SubCat() == tk && otk.SubCat() == tk {
		return true
	}
	return false
}

// CombineRepeats are token types where repeated adjacent tokens of the same
// type should be combined together -- literals, comments, text
func (tk Tokens) CombineRepeats() bool {
	cat := tk.Cat()
	return cat == Literal || cat == Comment || cat == Text
}

// The list of tokens
const (
	// None is the nil token value -- for non-terminal cases or TBD
	None Tokens = iota

	// Error is an input unit that no rule classified -- the single-rune
	// fallback that keeps the scan total over malformed input
	Error

	// EOF is end of file
	EOF

	// Cat: Keywords
	Keyword
	KeywordConstant
	KeywordPseudo
	KeywordType

	// Cat: Names
	Name
	NameClass
	NameFunction
	NameVar
	NameVarInstance

	// Cat: Literals
	Literal

	// SubCat: Literal Strings
	LitStr
	LitStrChar
	LitStrDouble
	LitStrInterpol

	// SubCat: Literal Numbers
	LitNum
	LitNumBin
	LitNumFloat
	LitNumHex
	LitNumInteger
	LitNumOct

	// Cat: Operators
	Operator
	OperatorWord

	// Cat: Punctuation
	Punctuation

	// Cat: Comments
	Comment
	CommentMultiline
	CommentSingle

	// Cat: Text (insignificant)
	Text
	TextWhitespace

	TokensN
)

// Categories
var Cats = []Tokens{
	None,
	Keyword,
	Name,
	Literal,
	Operator,
	Punctuation,
	Comment,
	Text,
	TokensN,
}

// Sub-Categories
var SubCats = []Tokens{
	None,
	Keyword,
	Name,
	Literal,
	LitStr,
	LitNum,
	Operator,
	Punctuation,
	Comment,
	Text,
	TokensN,
}

// InitCatMap initializes the CatMap
func InitCatMap() {
	if CatMap != nil {
		return
	}
	CatMap = make(map[Tokens]Tokens, TokensN)
	for tk := None; tk < TokensN; tk++ {
		for c := 1; c < len(Cats); c++ {
			if tk < Cats[c] {
				CatMap[tk] = Cats[c-1]
				break
			}
		}
	}
}

// InitSubCatMap initializes the SubCatMap
func InitSubCatMap() {
	if SubCatMap != nil {
		return
	}
	SubCatMap = make(map[Tokens]Tokens, TokensN)
	for tk := None; tk < TokensN; tk++ {
		for c := 1; c < len(SubCats); c++ {
			if tk < SubCats[c] {
				SubCatMap[tk] = SubCats[c-1]
				break
			}
		}
	}
}

var names = map[Tokens]string{
	None:             "None",
	Error:            "Error",
	EOF:              "EOF",
	Keyword:          "Keyword",
	KeywordConstant:  "KeywordConstant",
	KeywordPseudo:    "KeywordPseudo",
	KeywordType:      "KeywordType",
	Name:             "Name",
	NameClass:        "NameClass",
	NameFunction:     "NameFunction",
	NameVar:          "NameVar",
	NameVarInstance:  "NameVarInstance",
	Literal:          "Literal",
	LitStr:           "LitStr",
	LitStrChar:       "LitStrChar",
	LitStrDouble:     "LitStrDouble",
	LitStrInterpol:   "LitStrInterpol",
	LitNum:           "LitNum",
	LitNumBin:        "LitNumBin",
	LitNumFloat:      "LitNumFloat",
	LitNumHex:        "LitNumHex",
	LitNumInteger:    "LitNumInteger",
	LitNumOct:        "LitNumOct",
	Operator:         "Operator",
	OperatorWord:     "OperatorWord",
	Punctuation:      "Punctuation",
	Comment:          "Comment",
	CommentMultiline: "CommentMultiline",
	CommentSingle:    "CommentSingle",
	Text:             "Text",
	TextWhitespace:   "TextWhitespace",
}

func (tk Tokens) String() string {
	if nm, ok := names[tk]; ok {
		return nm
	}
	return "Tokens(?)"
}
