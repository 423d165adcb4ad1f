// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package rustsyn

// File holds the type declarations extracted from one source file, in
// source order. Items the translator has no use for (functions, impls,
// uses, mods, ...) are skipped during parsing and never appear here.
type File struct {
	Name  string
	Items []Item
}

// Item is a top-level declaration: *Struct or *Enum.
type Item interface {
	item()
}

// Struct is a struct declaration together with its derive markers.
type Struct struct {
	Name    string
	Derives []string
	Fields  []FieldDef
}

func (*Struct) item() {}

// FieldDef is a single struct field. Name is empty for the positional
// fields of a tuple struct.
type FieldDef struct {
	Name string
	Type Type
}

// Enum is an enum declaration.
type Enum struct {
	Name     string
	Variants []VariantDef
}

func (*Enum) item() {}

// VariantDef is one enum variant. Payload holds the raw types of tuple or
// struct variant fields in declaration order; it is empty for unit
// variants. Discriminant values are not recorded.
type VariantDef struct {
	Name    string
	Payload []Type
}

// Type is the raw syntactic form of a declared type. Only path types carry
// structure; every other form is represented as an opaque NonPath node so
// the normalizer can reject it uniformly.
type Type interface {
	typeNode()
}

// Path is a (possibly qualified) path type such as std::collections::HashMap<K, V>.
type Path struct {
	// LeadingColon is set for paths written with a root marker (::a::b).
	LeadingColon bool
	// Qualified is set for qualified-self forms (<T as Trait>::Assoc).
	Qualified bool
	Segments  []Segment
}

func (*Path) typeNode() {}

// Segment is one path segment plus the argument list attached to it, if any.
// Args is nil when the segment has no argument list at all; an empty list
// (Foo<>) still produces a non-nil Args.
type Segment struct {
	Ident string
	Args  *Args
}

// Args is the argument list of a path segment.
type Args struct {
	// Parenthesized is set for function-call style arguments (Fn(A) -> B).
	Parenthesized bool
	List          []Arg
}

// ArgKind classifies a generic argument.
type ArgKind int

const (
	// ArgType is a type argument; Arg.Type is set.
	ArgType ArgKind = iota
	// ArgLifetime is a lifetime argument such as 'a.
	ArgLifetime
	// ArgConst is a const argument such as 16 or { N + 1 }.
	ArgConst
	// ArgBinding is an associated type binding such as Item = u32.
	ArgBinding
)

// Arg is a single generic argument.
type Arg struct {
	Kind ArgKind
	Type Type // set when Kind == ArgType
}

// NonPath stands in for every type form that is not a plain path: references,
// tuples, arrays, slices, pointers, function pointers, trait objects, and the
// never type. Kind is a short human-readable label used in diagnostics.
type NonPath struct {
	Kind string
}

func (*NonPath) typeNode() {}
