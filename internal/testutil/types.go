// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"strings"
)

// NestedArrays returns a JSON text of depth nested arrays, with the innermost
// holding a single 1, e.g. depth 3 yields "[[[1]]]". A depth of 0 or less
// yields "1".
func NestedArrays(depth int) string {
	if depth <= 0 {
		return "1"
	}
	return strings.Repeat("[", depth) + "1" + strings.Repeat("]", depth)
}

// NestedObjects returns a JSON text of depth nested objects, each with a
// single member "k", e.g. depth 2 yields `{"k":{"k":true}}`.
func NestedObjects(depth int) string {
	if depth <= 0 {
		return "true"
	}
	return strings.Repeat(`{"k":`, depth) + "true" + strings.Repeat("}", depth)
}

// Records returns a JSON array of n small objects with a mix of value types,
// for use as benchmark input.
func Records(n int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n  ")
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "item é %d", "score": %d.%d5e-1, `+
			`"ok": %v, "tags": ["a", "b\n", null], "parent": null}`,
			i, i, i%100, i%10, i%2 == 0)
	}
	sb.WriteByte(']')
	return sb.String()
}
