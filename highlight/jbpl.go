// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlight exposes the JBPL scanner to the chroma highlighting
// framework: a chroma.Lexer over the core state machine, registered with
// the global chroma registry under the *.jbpl filename pattern and the
// text/x-jbpl media type.  Import for side effects to make chroma's
// lexers.Match and lexers.MatchMimeType find JBPL sources.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/karmakrafts/rouge/lex"
)

// Lexer is the chroma lexer for JBPL, registered with the global chroma
// registry at package load
var Lexer = lexers.Register(New())

// New returns an unregistered chroma lexer for JBPL
func New() chroma.Lexer {
	return &jbplLexer{
		config: &chroma.Config{
			Name:      "JBPL",
			Aliases:   []string{"jbpl"},
			Filenames: []string{"*.jbpl"},
			MimeTypes: []string{"text/x-jbpl"},
		},
	}
}

// jbplLexer adapts the core scanner to the chroma.Lexer contract
type jbplLexer struct {
	config   *chroma.Config
	analyser func(text string) float32
}

func (l *jbplLexer) Config() *chroma.Config {
	return l.config
}

func (l *jbplLexer) SetRegistry(registry *chroma.LexerRegistry) chroma.Lexer {
	return l
}

func (l *jbplLexer) SetAnalyser(analyser func(text string) float32) chroma.Lexer {
	l.analyser = analyser
	return l
}

func (l *jbplLexer) AnalyseText(text string) float32 {
	if l.analyser != nil {
		return l.analyser(text)
	}
	return 0
}

// Tokenise runs the core scanner over text and returns the token stream as
// a chroma iterator.  The scan is total, so this never fails; the error
// return satisfies the chroma.Lexer contract.
func (l *jbplLexer) Tokenise(options *chroma.TokeniseOptions, text string) (chroma.Iterator, error) {
	if options != nil && options.EnsureLF {
		text = ensureLF(text)
	}
	src := []rune(text)
	lexs := lex.LexString(text)
	toks := make([]chroma.Token, 0, len(lexs))
	for _, lx := range lexs {
		toks = append(toks, chroma.Token{
			Type:  ChromaToken(lx.Tok),
			Value: string(lx.Src(src)),
		})
	}
	return chroma.Literator(toks...), nil
}

// ensureLF normalizes line endings to bare line feeds
func ensureLF(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
