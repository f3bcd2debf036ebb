// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patterns

import "github.com/karmakrafts/rouge/token"

// ScanIdent returns the length of the identifier at src[pos:], or 0 if
// there is none.  Identifiers start with a letter or underscore and
// continue with letters, digits, underscore and $.
func ScanIdent(src []rune, pos int) int {
	n := len(src)
	if pos >= n || !IsIdentStart(src[pos]) {
		return 0
	}
	p := pos + 1
	for p < n && IsIdentPart(src[p]) {
		p++
	}
	return p - pos
}

// ScanWhitespace returns the length of the whitespace run at src[pos:]
func ScanWhitespace(src []rune, pos int) int {
	p := pos
	for p < len(src) && IsWhiteSpace(src[p]) {
		p++
	}
	return p - pos
}

// ScanClassType returns the length of the class type reference at
// src[pos:], or 0 if there is none.  A class type is one or more
// slash-separated identifiers enclosed in angle brackets: <A>, <A/B/C>.
func ScanClassType(src []rune, pos int) int {
	n := len(src)
	if pos >= n || src[pos] != '<' {
		return 0
	}
	p := pos + 1
	for {
		in := ScanIdent(src, p)
		if in == 0 {
			return 0
		}
		p += in
		if p >= n {
			return 0
		}
		if src[p] == '/' {
			p++
			continue
		}
		if src[p] == '>' {
			return p + 1 - pos
		}
		return 0
	}
}

// ScanNumber returns the length and token kind of the numeric literal at
// src[pos:], or (0, None) if there is none.  Recognizes binary (0b/0B),
// hexadecimal (0x/0X), octal (0o/0O), float (fraction and/or exponent) and
// decimal integer forms, each with interior _ separators and an optional
// trailing width suffix drawn from the integer or float type names.  The
// suffix is only taken when it forms a complete identifier run, so
// 0x1Fi32x is the literal 0x1F followed by the identifier i32x.
func ScanNumber(src []rune, pos int) (int, token.Tokens) {
	n := len(src)
	if pos >= n || !IsDigit(src[pos]) {
		return 0, token.None
	}
	if src[pos] == '0' && pos+1 < n {
		var class func(rune) bool
		var kind token.Tokens
		switch src[pos+1] {
		case 'b', 'B':
			class, kind = IsBinDigit, token.LitNumBin
		case 'x', 'X':
			class, kind = IsHexDigit, token.LitNumHex
		case 'o', 'O':
			class, kind = IsOctDigit, token.LitNumOct
		}
		if class != nil {
			p := scanDigits(src, pos+2, class)
			if p > pos+2 {
				p += scanSuffix(src, p, IntSuffixes)
				return p - pos, kind
			}
			// prefix without digits: just the leading 0
			return 1, token.LitNumInteger
		}
	}
	p := scanDigits(src, pos, IsDigit)
	float := false
	if p+1 < n && src[p] == '.' && IsDigit(src[p+1]) {
		float = true
		p = scanDigits(src, p+1, IsDigit)
	}
	if p < n && (src[p] == 'e' || src[p] == 'E') {
		q := p + 1
		if q < n && (src[q] == '+' || src[q] == '-') {
			q++
		}
		if q < n && IsDigit(src[q]) {
			float = true
			p = scanDigits(src, q, IsDigit)
		}
	}
	if float {
		p += scanSuffix(src, p, FloatSuffixes)
		return p - pos, token.LitNumFloat
	}
	p += scanSuffix(src, p, IntSuffixes)
	return p - pos, token.LitNumInteger
}

// scanDigits consumes a run of digits of the given class, allowing
// interior _ separators
func scanDigits(src []rune, pos int, class func(rune) bool) int {
	n := len(src)
	p := pos
	for p < n {
		if class(src[p]) {
			p++
			continue
		}
		if src[p] == '_' && p+1 < n && class(src[p+1]) {
			p += 2
			continue
		}
		break
	}
	return p
}

// scanSuffix returns the length of the width suffix at src[pos:] if the
// identifier run there is a member of the given set, else 0
func scanSuffix(src []rune, pos int, set Set) int {
	in := ScanIdent(src, pos)
	if in == 0 {
		return 0
	}
	if set[string(src[pos:pos+in])] {
		return in
	}
	return 0
}
