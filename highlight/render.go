// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlight

import (
	"io"
	"log/slog"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// Format renders src through the named chroma formatter and style.
// Unknown formatter or style names fall back to the chroma defaults.
func Format(w io.Writer, formatterName, styleName, src string) error {
	f := formatters.Get(formatterName)
	style := styles.Get(styleName)
	it, err := Lexer.Tokenise(nil, src)
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	return f.Format(w, style, it)
}

// HTML renders src as class-based HTML with the given tab width, in the
// shape editors embed: the stylesheet is the caller's concern.
func HTML(w io.Writer, src string, tabSize int) error {
	it, err := Lexer.Tokenise(nil, src)
	if err != nil {
		slog.Error(err.Error())
		return err
	}
	formatter := html.New(html.WithClasses(true), html.TabWidth(tabSize))
	return formatter.Format(w, styles.Fallback, it)
}
