// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlight

import (
	"github.com/alecthomas/chroma/v2"

	"github.com/karmakrafts/rouge/token"
)

// chromaTab maps our token kinds to the corresponding chroma token types
var chromaTab = map[token.Tokens]chroma.TokenType{
	token.None:             chroma.None,
	token.Error:            chroma.Error,
	token.EOF:              chroma.EOFType,
	token.Keyword:          chroma.Keyword,
	token.KeywordConstant:  chroma.KeywordConstant,
	token.KeywordPseudo:    chroma.KeywordPseudo,
	token.KeywordType:      chroma.KeywordType,
	token.Name:             chroma.Name,
	token.NameClass:        chroma.NameClass,
	token.NameFunction:     chroma.NameFunction,
	token.NameVar:          chroma.NameVariable,
	token.NameVarInstance:  chroma.NameVariableInstance,
	token.Literal:          chroma.Literal,
	token.LitStr:           chroma.LiteralString,
	token.LitStrChar:       chroma.LiteralStringChar,
	token.LitStrDouble:     chroma.LiteralStringDouble,
	token.LitStrInterpol:   chroma.LiteralStringInterpol,
	token.LitNum:           chroma.LiteralNumber,
	token.LitNumBin:        chroma.LiteralNumberBin,
	token.LitNumFloat:      chroma.LiteralNumberFloat,
	token.LitNumHex:        chroma.LiteralNumberHex,
	token.LitNumInteger:    chroma.LiteralNumberInteger,
	token.LitNumOct:        chroma.LiteralNumberOct,
	token.Operator:         chroma.Operator,
	token.OperatorWord:     chroma.OperatorWord,
	token.Punctuation:      chroma.Punctuation,
	token.Comment:          chroma.Comment,
	token.CommentMultiline: chroma.CommentMultiline,
	token.CommentSingle:    chroma.CommentSingle,
	token.Text:             chroma.Text,
	token.TextWhitespace:   chroma.TextWhitespace,
}

// ChromaToken returns the chroma token type for the given token kind
func ChromaToken(tk token.Tokens) chroma.TokenType {
	if ct, ok := chromaTab[tk]; ok {
		return ct
	}
	return chroma.Text
}
