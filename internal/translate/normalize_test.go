// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package translate

import (
	"testing"

	"github.com/nicholasbishop/rsts/internal/rustsyn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawType parses a single type expression via the rustsyn parser.
func rawType(t *testing.T, src string) rustsyn.Type {
	t.Helper()
	file, err := rustsyn.ParseFile("test.rs", "struct W { f: "+src+" }")
	require.NoError(t, err)
	s := file.Items[0].(*rustsyn.Struct)
	require.Len(t, s.Fields, 1)
	return s.Fields[0].Type
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want TypeRef
	}{
		{
			name: "single segment",
			src:  "String",
			want: TypeRef{Path: []string{"String"}},
		},
		{
			name: "multi segment kept verbatim",
			src:  "std::collections::HashMap",
			want: TypeRef{Path: []string{"std", "collections", "HashMap"}},
		},
		{
			name: "generic argument",
			src:  "Vec<u8>",
			want: TypeRef{Path: []string{"Vec"}, Args: []TypeRef{{Path: []string{"u8"}}}},
		},
		{
			name: "nested generics",
			src:  "Option<Vec<String>>",
			want: TypeRef{
				Path: []string{"Option"},
				Args: []TypeRef{{
					Path: []string{"Vec"},
					Args: []TypeRef{{Path: []string{"String"}}},
				}},
			},
		},
		{
			name: "two arguments in order",
			src:  "HashMap<String, i32>",
			want: TypeRef{
				Path: []string{"HashMap"},
				Args: []TypeRef{{Path: []string{"String"}}, {Path: []string{"i32"}}},
			},
		},
		{
			name: "args on final segment of long path",
			src:  "std::vec::Vec<u8>",
			want: TypeRef{
				Path: []string{"std", "vec", "Vec"},
				Args: []TypeRef{{Path: []string{"u8"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(rawType(t, tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"reference", "&str", ErrNotAPathType},
		{"tuple", "(u8, u16)", ErrNotAPathType},
		{"slice", "[u8]", ErrNotAPathType},
		{"leading root marker", "::std::string::String", ErrLeadingRootMarker},
		{"qualified self", "<T as Iterator>::Item", ErrQualifiedSelfNotSupported},
		{"early generic args", "Vec<u8>::Iter", ErrGenericArgsNotOnFinalSegment},
		{"early empty args", "Foo<>::Bar", ErrGenericArgsNotOnFinalSegment},
		{"lifetime argument", "Ref<'a, T>", ErrUnsupportedGenericArgumentKind},
		{"const argument", "Matrix<4>", ErrUnsupportedGenericArgumentKind},
		{"binding argument", "Iter<Item = u32>", ErrUnsupportedGenericArgumentKind},
		{"parenthesized arguments", "Fn(u8) -> u8", ErrUnsupportedArgumentSyntax},
		{"nested failure propagates", "Vec<&str>", ErrNotAPathType},
		{"nested parenthesized propagates", "Box<Fn(u8) -> u8>", ErrUnsupportedArgumentSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(rawType(t, tt.src))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
