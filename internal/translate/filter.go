// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nicholas Bishop

package translate

// DefaultMarkers are the derive names that make a struct eligible for
// translation. Structs without one of these may implement serialization by
// hand, and a mechanical translator cannot safely guess what such an
// implementation produces.
var DefaultMarkers = []string{"Serialize", "Deserialize"}

// Eligible reports whether a struct carrying the given derive names should
// be translated. It is a pure predicate over the two name lists; a struct
// qualifies when at least one of its derives appears in markers.
func Eligible(derives, markers []string) bool {
	for _, d := range derives {
		for _, m := range markers {
			if d == m {
				return true
			}
		}
	}
	return false
}
