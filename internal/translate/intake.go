// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package translate

import (
	"github.com/nicholasbishop/rsts/internal/rustsyn"
)

// SkippedField records a field dropped from an eligible struct because its
// type could not be normalized. It is reported on the diagnostic channel,
// never in the generated output.
type SkippedField struct {
	Record string
	Field  string // empty for unnamed tuple fields
	Err    error
}

// FromFile converts the parsed declarations of one source file into the
// translation model. Structs without a recognized marker are dropped
// silently. Fields of eligible structs that fail normalization are skipped
// and reported; the struct keeps its remaining fields. Enums with any
// non-normalizable payload are dropped whole.
func FromFile(f *rustsyn.File, markers []string) (*SourceFile, []SkippedField) {
	out := &SourceFile{Name: f.Name}
	var skipped []SkippedField
	for _, item := range f.Items {
		switch it := item.(type) {
		case *rustsyn.Enum:
			if u, ok := fromEnum(it); ok {
				out.Unions = append(out.Unions, u)
			}
		case *rustsyn.Struct:
			if !Eligible(it.Derives, markers) {
				continue
			}
			r, sk := fromStruct(it)
			skipped = append(skipped, sk...)
			out.Records = append(out.Records, r)
		}
	}
	return out, skipped
}

func fromStruct(s *rustsyn.Struct) (Record, []SkippedField) {
	rec := Record{Name: s.Name}
	var skipped []SkippedField
	for _, f := range s.Fields {
		ref, err := Normalize(f.Type)
		if err != nil {
			skipped = append(skipped, SkippedField{Record: s.Name, Field: f.Name, Err: err})
			continue
		}
		rec.Fields = append(rec.Fields, Field{Name: f.Name, Type: ref})
	}
	return rec, skipped
}

func fromEnum(e *rustsyn.Enum) (Union, bool) {
	u := Union{Name: e.Name}
	for _, v := range e.Variants {
		variant := Variant{Name: v.Name}
		for _, ty := range v.Payload {
			ref, err := Normalize(ty)
			if err != nil {
				return Union{}, false
			}
			variant.Payload = append(variant.Payload, ref)
		}
		u.Variants = append(u.Variants, variant)
	}
	return u, true
}
