// Copyright (c) 2026, The JBPL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package patterns holds the immutable pattern library for the JBPL lexer:
// keyword and mnemonic sets, literal scanners, and the priority-ordered
// name classification.  Everything here is built once at package init and
// read-only thereafter, so concurrent scans need no locking.
package patterns

import "github.com/karmakrafts/rouge/token"

// Set is a string membership set
type Set map[string]bool

// NewSet returns a Set holding the given words
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

// Union returns a new Set holding the contents of all given sets
func Union(sets ...Set) Set {
	s := Set{}
	for _, in := range sets {
		for w := range in {
			s[w] = true
		}
	}
	return s
}

// Keywords are the ordinary JBPL keywords
var Keywords = NewSet(
	"fun", "inject", "macro", "field", "define", "patch",
	"import", "at", "as", "before", "after", "replace",
)

// TypeKeywords are the primitive type names.  The fixed-width integer and
// float names double as numeric literal width suffixes.
var TypeKeywords = NewSet(
	"void", "bool", "char", "str",
	"i8", "i16", "i32", "i64",
	"u8", "u16", "u32", "u64",
	"f32", "f64",
)

// ConstantKeywords are the built-in constant names
var ConstantKeywords = NewSet("true", "false", "null", "this", "super")

// SpecialKeywords are keywords with their own dispatch states
var SpecialKeywords = NewSet("by", "^class")

// PreproTypeKeywords are keywords that additionally introduce a type name
var PreproTypeKeywords = NewSet("type", "opcode", "instruction", "signature")

// IntSuffixes are the width suffixes valid after an integer literal
var IntSuffixes = NewSet("i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64")

// FloatSuffixes are the width suffixes valid after a float literal
var FloatSuffixes = NewSet("f32", "f64")

// Instruction mnemonic sets, partitioned by category.  The partition
// mirrors the bytecode instruction set reference; classification only ever
// consults the union.
var (
	ConstPushMnemonics = NewSet(
		"aconst_null", "iconst", "lconst", "fconst", "dconst",
		"bipush", "sipush", "ldc", "ldc_w", "ldc2_w",
	)

	StackMnemonics = NewSet(
		"pop", "pop2", "dup", "dup_x1", "dup_x2",
		"dup2", "dup2_x1", "dup2_x2", "swap",
		"iload", "lload", "fload", "dload", "aload",
		"istore", "lstore", "fstore", "dstore", "astore",
	)

	FieldMnemonics = NewSet("getstatic", "putstatic", "getfield", "putfield")

	JumpMnemonics = NewSet("goto", "goto_w", "jsr", "jsr_w", "ret")

	ConversionMnemonics = NewSet(
		"i2l", "i2f", "i2d", "l2i", "l2f", "l2d",
		"f2i", "f2l", "f2d", "d2i", "d2l", "d2f",
		"i2b", "i2c", "i2s",
	)

	LogicMnemonics = NewSet(
		"ishl", "lshl", "ishr", "lshr", "iushr", "lushr",
		"iand", "land", "ior", "lor", "ixor", "lxor",
	)

	ArithmeticMnemonics = NewSet(
		"iadd", "ladd", "fadd", "dadd",
		"isub", "lsub", "fsub", "dsub",
		"imul", "lmul", "fmul", "dmul",
		"idiv", "ldiv", "fdiv", "ddiv",
		"irem", "lrem", "frem", "drem",
		"ineg", "lneg", "fneg", "dneg", "iinc",
	)

	ArrayMnemonics = NewSet(
		"newarray", "anewarray", "multianewarray", "arraylength",
		"iaload", "laload", "faload", "daload", "aaload",
		"baload", "caload", "saload",
		"iastore", "lastore", "fastore", "dastore", "aastore",
		"bastore", "castore", "sastore",
	)

	MiscMnemonics = NewSet(
		"nop", "athrow", "monitorenter", "monitorexit", "wide", "breakpoint",
	)

	ControlMnemonics = NewSet(
		"ireturn", "lreturn", "freturn", "dreturn", "areturn", "return",
		"tableswitch", "lookupswitch",
	)

	TypeCheckMnemonics = NewSet("checkcast", "instanceof", "new")

	ConditionalMnemonics = NewSet(
		"ifeq", "ifne", "iflt", "ifge", "ifgt", "ifle",
		"if_icmpeq", "if_icmpne", "if_icmplt", "if_icmpge",
		"if_icmpgt", "if_icmple", "if_acmpeq", "if_acmpne",
		"ifnull", "ifnonnull",
	)

	InvocationMnemonics = NewSet(
		"invokevirtual", "invokespecial", "invokestatic",
		"invokeinterface", "invokedynamic",
	)
)

// Mnemonics is the union of all instruction mnemonic sets
var Mnemonics = Union(
	ConstPushMnemonics, StackMnemonics, FieldMnemonics, JumpMnemonics,
	ConversionMnemonics, LogicMnemonics, ArithmeticMnemonics, ArrayMnemonics,
	MiscMnemonics, ControlMnemonics, TypeCheckMnemonics,
	ConditionalMnemonics, InvocationMnemonics,
)

// ClassifyName classifies a matched identifier against the keyword and
// mnemonic sets.  The lookup order is load-bearing: identifier text may be
// a member of several sets at once, and the first set in this order wins.
// Never reorder these cases.
func ClassifyName(name string) token.Tokens {
	switch {
	case SpecialKeywords[name]:
		return token.KeywordPseudo
	case Keywords[name]:
		return token.Keyword
	case PreproTypeKeywords[name]:
		return token.Keyword
	case TypeKeywords[name]:
		return token.KeywordType
	case ConstantKeywords[name]:
		return token.KeywordConstant
	case Mnemonics[name]:
		return token.OperatorWord
	}
	return token.NameVar
}

// IsReservedWord returns true if name belongs to any keyword or mnemonic
// set, i.e. ClassifyName would not classify it as a plain variable name.
func IsReservedWord(name string) bool {
	return ClassifyName(name) != token.NameVar
}
