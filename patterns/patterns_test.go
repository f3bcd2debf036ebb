// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karmakrafts/rouge/token"
)

func TestClassifyName(t *testing.T) {
	tests := []struct {
		name string
		tok  token.Tokens
	}{
		{"by", token.KeywordPseudo},
		{"^class", token.KeywordPseudo},
		{"fun", token.Keyword},
		{"inject", token.Keyword},
		{"macro", token.Keyword},
		{"type", token.Keyword},
		{"signature", token.Keyword},
		{"i32", token.KeywordType},
		{"f64", token.KeywordType},
		{"void", token.KeywordType},
		{"true", token.KeywordConstant},
		{"null", token.KeywordConstant},
		{"this", token.KeywordConstant},
		{"nop", token.OperatorWord},
		{"invokevirtual", token.OperatorWord},
		{"if_icmpeq", token.OperatorWord},
		{"goto", token.OperatorWord},
		{"anything", token.NameVar},
		{"_x$1", token.NameVar},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.tok, ClassifyName(tc.name), tc.name)
	}
}

func TestMnemonicUnion(t *testing.T) {
	// union covers every category set
	for _, set := range []Set{
		ConstPushMnemonics, StackMnemonics, FieldMnemonics, JumpMnemonics,
		ConversionMnemonics, LogicMnemonics, ArithmeticMnemonics,
		ArrayMnemonics, MiscMnemonics, ControlMnemonics, TypeCheckMnemonics,
		ConditionalMnemonics, InvocationMnemonics,
	} {
		for w := range set {
			assert.True(t, Mnemonics[w], w)
		}
	}
}

func TestIsReservedWord(t *testing.T) {
	assert.True(t, IsReservedWord("fun"))
	assert.True(t, IsReservedWord("nop"))
	assert.True(t, IsReservedWord("i64"))
	assert.False(t, IsReservedWord("myField"))
	assert.False(t, IsReservedWord("nopx"))
}
