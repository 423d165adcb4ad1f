// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

// Package typescript renders the canonical type model as TypeScript
// declarations.
package typescript

import (
	"fmt"
	"strings"

	"github.com/nicholasbishop/rsts/internal/translate"
)

// TimestampAlias is the name of the alias emitted once per run for UTC
// timestamps, which serde serializes as strings.
const TimestampAlias = "DateTimeUtc"

// Placeholders emitted for shapes with no defined TypeScript rendering.
// They keep the output syntactically complete and are easy to grep for.
const (
	unresolvedPath    = "RSTS_UNRESOLVED_PATH"
	unresolvedGeneric = "RSTS_UNRESOLVED_GENERIC"
)

// numericTypes are the fixed-width Rust numerics that all map to number.
var numericTypes = map[string]struct{}{
	"i8": {}, "i16": {}, "i32": {}, "i64": {},
	"u8": {}, "u16": {}, "u32": {}, "u64": {},
	"f32": {}, "f64": {},
}

// RenderType renders a normalized type as a TypeScript type expression. It
// is total: unmapped shapes render as placeholders, never as an error. The
// rules are order-sensitive — the wrapper forms carry generic arguments and
// must be tried before the generic fallthroughs.
func RenderType(t translate.TypeRef) string {
	switch {
	case isWrapper(t, "Option", 1):
		return RenderType(t.Args[0]) + " | null"

	case isWrapper(t, "Vec", 1):
		inner := RenderType(t.Args[0])
		if strings.Contains(inner, " ") {
			// Compound renderings such as unions must bind tighter than [].
			inner = "(" + inner + ")"
		}
		return inner + "[]"

	case isDateTimeUtc(t):
		return TimestampAlias

	case isWrapper(t, "HashMap", 2):
		return fmt.Sprintf("Record<%s, %s>", RenderType(t.Args[0]), RenderType(t.Args[1]))

	case len(t.Args) == 0 && len(t.Path) == 1:
		name := t.Path[0]
		if _, ok := numericTypes[name]; ok {
			return "number"
		}
		if name == "String" {
			return "string"
		}
		// Assume a declaration with the same name exists on the TypeScript
		// side.
		return name

	case len(t.Args) == 0:
		return unresolvedPath

	default:
		return unresolvedGeneric
	}
}

// isWrapper matches a single-segment path with an exact argument count.
func isWrapper(t translate.TypeRef, name string, argc int) bool {
	return len(t.Path) == 1 && t.Path[0] == name && len(t.Args) == argc
}

// isDateTimeUtc matches chrono's DateTime<Utc>.
func isDateTimeUtc(t translate.TypeRef) bool {
	return len(t.Path) == 1 && t.Path[0] == "DateTime" &&
		len(t.Args) == 1 &&
		len(t.Args[0].Path) == 1 && t.Args[0].Path[0] == "Utc" &&
		len(t.Args[0].Args) == 0
}
