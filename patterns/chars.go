// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patterns

// IsLetter returns true for ASCII letters
func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsDigit returns true for decimal digits 0-9
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsHexDigit returns true for hexadecimal digits
func IsHexDigit(r rune) bool {
	return IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsOctDigit returns true for octal digits 0-7
func IsOctDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// IsBinDigit returns true for binary digits
func IsBinDigit(r rune) bool {
	return r == '0' || r == '1'
}

// IsIdentStart returns true for runes that can start an identifier:
// a letter or underscore
func IsIdentStart(r rune) bool {
	return IsLetter(r) || r == '_'
}

// IsIdentPart returns true for runes that can continue an identifier:
// letters, digits, underscore and $
func IsIdentPart(r rune) bool {
	return IsLetter(r) || IsDigit(r) || r == '_' || r == '$'
}

// IsWhiteSpace returns true for space, tab, newline and carriage return
func IsWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
