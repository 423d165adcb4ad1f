// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package translate

import (
	"errors"
	"fmt"

	"github.com/nicholasbishop/rsts/internal/rustsyn"
)

// Normalization failures. Each raw type either maps onto a TypeRef or is
// rejected with one of these; callers decide whether that skips a field or
// drops a whole declaration.
var (
	// ErrNotAPathType rejects references, tuples, arrays, and every other
	// non-path type form.
	ErrNotAPathType = errors.New("not a path type")

	// ErrLeadingRootMarker rejects root-qualified paths (::a::B); TypeScript
	// has no equivalent.
	ErrLeadingRootMarker = errors.New("leading path root marker")

	// ErrQualifiedSelfNotSupported rejects <T as Trait>::Assoc forms.
	ErrQualifiedSelfNotSupported = errors.New("qualified self type")

	// ErrGenericArgsNotOnFinalSegment rejects paths whose non-final segments
	// carry argument lists; TypeRef attaches arguments to the path as a
	// whole, so they are only meaningful on the last segment.
	ErrGenericArgsNotOnFinalSegment = errors.New("generic arguments on a non-final path segment")

	// ErrUnsupportedGenericArgumentKind rejects lifetime, const, and
	// associated-binding arguments.
	ErrUnsupportedGenericArgumentKind = errors.New("unsupported generic argument kind")

	// ErrUnsupportedArgumentSyntax rejects parenthesized argument lists
	// (Fn(A) -> B).
	ErrUnsupportedArgumentSyntax = errors.New("unsupported path argument syntax")
)

// Normalize converts a raw syntactic type into its canonical TypeRef,
// recursing through angle-bracketed type arguments. The first failure wins;
// no partial result is returned.
func Normalize(t rustsyn.Type) (TypeRef, error) {
	path, ok := t.(*rustsyn.Path)
	if !ok {
		if np, isNonPath := t.(*rustsyn.NonPath); isNonPath {
			return TypeRef{}, fmt.Errorf("%w (%s)", ErrNotAPathType, np.Kind)
		}
		return TypeRef{}, ErrNotAPathType
	}
	if path.LeadingColon {
		return TypeRef{}, ErrLeadingRootMarker
	}
	if path.Qualified {
		return TypeRef{}, ErrQualifiedSelfNotSupported
	}

	var ref TypeRef
	for i, seg := range path.Segments {
		last := i == len(path.Segments)-1
		if !last && seg.Args != nil {
			return TypeRef{}, ErrGenericArgsNotOnFinalSegment
		}
		ref.Path = append(ref.Path, seg.Ident)
		if seg.Args == nil {
			continue
		}
		if seg.Args.Parenthesized {
			return TypeRef{}, ErrUnsupportedArgumentSyntax
		}
		for _, arg := range seg.Args.List {
			if arg.Kind != rustsyn.ArgType {
				return TypeRef{}, ErrUnsupportedGenericArgumentKind
			}
			inner, err := Normalize(arg.Type)
			if err != nil {
				return TypeRef{}, err
			}
			ref.Args = append(ref.Args, inner)
		}
	}
	return ref, nil
}
