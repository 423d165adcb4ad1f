// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

// Package translate holds the canonical type model shared by all output
// generators, the normalizer that builds it from raw Rust syntax, and the
// marker filter that decides which structs are translated at all.
package translate

// TypeRef is the canonical, normalized form of a declared type: a dotted
// path plus the generic arguments attached to its final segment. It is
// built once by Normalize and read-only afterwards.
type TypeRef struct {
	Path []string
	Args []TypeRef
}

// Field is a single record field. Name is empty for the unnamed field of a
// newtype-style struct.
type Field struct {
	Name string
	Type TypeRef
}

// Record is a product type: a struct with named fields or a single unnamed
// one.
type Record struct {
	Name   string
	Fields []Field
}

// Variant is one member of a Union. Payload is empty for unit variants,
// holds one type for single-payload variants, and two or more for tuple
// variants.
type Variant struct {
	Name    string
	Payload []TypeRef
}

// Union is a sum type with named variants.
type Union struct {
	Name     string
	Variants []Variant
}

// SourceFile groups the translatable declarations of one input file.
// Ordering mirrors the source and is preserved through rendering.
type SourceFile struct {
	Name    string
	Unions  []Union
	Records []Record
}
