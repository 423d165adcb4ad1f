// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

// Package rustsyn parses the subset of Rust surface syntax needed to
// extract type declarations: top-level structs and enums, their derive
// attributes, and the raw shape of every field or payload type.
package rustsyn

// Kind classifies a scanned token.
type Kind int

const (
	// EOF marks the end of the token stream.
	EOF Kind = iota
	// Ident is an identifier or keyword.
	Ident
	// Lifetime is a lifetime token such as 'a.
	Lifetime
	// Number is an integer or float literal, including suffixes.
	Number
	// String is a string literal (regular, raw, or byte).
	String
	// Char is a character or byte-character literal.
	Char
	// Punct is a punctuation token. Multi-character operators that matter
	// for declaration parsing ("::", "->", "=>") are kept whole; everything
	// else is emitted one character at a time.
	Punct
)

// Token is a single lexical element of a Rust source file.
type Token struct {
	Kind Kind
	Text string
	Line int
}

func (t Token) is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}
