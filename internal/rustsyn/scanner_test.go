// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package rustsyn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinds extracts the token kinds, dropping the trailing EOF.
func kinds(toks []Token) []Kind {
	out := make([]Kind, 0, len(toks)-1)
	for _, t := range toks[:len(toks)-1] {
		out = append(out, t.Kind)
	}
	return out
}

func texts(toks []Token) []string {
	out := make([]string, 0, len(toks)-1)
	for _, t := range toks[:len(toks)-1] {
		out = append(out, t.Text)
	}
	return out
}

func TestScanBasicTokens(t *testing.T) {
	toks, err := scanAll("struct Foo { a: i32 }")
	require.NoError(t, err)

	assert.Equal(t, []Kind{Ident, Ident, Punct, Ident, Punct, Ident, Punct}, kinds(toks))
	assert.Equal(t, []string{"struct", "Foo", "{", "a", ":", "i32", "}"}, texts(toks))
}

func TestScanMultiCharPunct(t *testing.T) {
	toks, err := scanAll("std::vec -> x => y")
	require.NoError(t, err)

	assert.Equal(t, []string{"std", "::", "vec", "->", "x", "=>", "y"}, texts(toks))
}

func TestScanComments(t *testing.T) {
	src := `
// line comment
/// doc comment
/* block /* nested */ comment */
x
`
	toks, err := scanAll(src)
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, texts(toks))
}

func TestScanLifetimeVersusChar(t *testing.T) {
	toks, err := scanAll(`'a 'static 'x' '\n'`)
	require.NoError(t, err)

	assert.Equal(t, []Kind{Lifetime, Lifetime, Char, Char}, kinds(toks))
	assert.Equal(t, "a", toks[0].Text)
	assert.Equal(t, "static", toks[1].Text)
}

func TestScanStrings(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"plain", `"hello \" world"`},
		{"raw", `r#"no \ escapes "#`},
		{"raw no hash", `r"plain raw"`},
		{"byte", `b"bytes"`},
		{"byte raw", `br#"raw bytes"#`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := scanAll(tt.src)
			require.NoError(t, err)
			require.Len(t, toks, 2) // literal + EOF
			assert.Equal(t, String, toks[0].Kind)
		})
	}
}

func TestScanRawIdentifier(t *testing.T) {
	toks, err := scanAll("r#type: String")
	require.NoError(t, err)

	assert.Equal(t, []Kind{Ident, Punct, Ident}, kinds(toks))
	assert.Equal(t, "type", toks[0].Text)
}

func TestScanNumbers(t *testing.T) {
	toks, err := scanAll("0xff 1_000 3.14 1e10 42u8")
	require.NoError(t, err)

	assert.Equal(t, []Kind{Number, Number, Number, Number, Number}, kinds(toks))
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := scanAll(`"never closed`)
	assert.Error(t, err)
}

func TestScanLineNumbers(t *testing.T) {
	toks, err := scanAll("a\nb\n\nc")
	require.NoError(t, err)

	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 4, toks[2].Line)
}
